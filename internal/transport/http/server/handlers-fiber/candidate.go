package handlers_fiber

import (
	"net/http"

	"candidate-pipeline/internal/api"
	"candidate-pipeline/internal/entities"
	"candidate-pipeline/internal/mapper"
	"candidate-pipeline/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

// PostCandidates registers a candidate handed over by the ingestion pipeline.
func (h *Handler) PostCandidates(c *fiber.Ctx) error {
	var body api.IntakeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	status, err := entities.ParseStatus(body.Status)
	if err != nil {
		return writeError(c, err)
	}

	rec, err := h.uc.IntakeCandidate(c.Context(), domain.IntakeParams{
		Status:    status,
		Positions: body.Positions,
		Notes:     body.Notes,
		ActorID:   body.ActorID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}

// GetCandidates lists candidates filtered by status and position.
func (h *Handler) GetCandidates(c *fiber.Ctx) error {
	filter := entities.CandidateFilter{
		Position: c.Query("position"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseStatus(raw)
		if err != nil {
			return writeError(c, err)
		}
		filter.Status = &status
	}

	records, total, err := h.uc.Candidates(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateListResponse{
		Candidates:   mapper.ToAPICandidateList(records),
		TotalResults: total,
	})
}

// GetCandidate returns a single candidate record.
func (h *Handler) GetCandidate(c *fiber.Ctx) error {
	rec, err := h.uc.Candidate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}

// PostTransition applies a status transition to a candidate.
func (h *Handler) PostTransition(c *fiber.Ctx) error {
	var body api.TransitionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	target, err := entities.ParseStatus(body.TargetStatus)
	if err != nil {
		return writeError(c, err)
	}

	var payload entities.TransitionPayload
	if target == entities.StatusOfferMade {
		payload = entities.OfferPayload{
			OfferDetails:     body.OfferDetails,
			EvaluationRating: body.EvaluationRating,
			Notes:            body.Notes,
		}
	} else {
		payload = entities.StagePayload{Notes: body.Notes}
	}

	rec, err := h.uc.ApplyTransition(c.Context(), domain.TransitionRequest{
		CandidateID:     c.Params("id"),
		Target:          target,
		Payload:         payload,
		ExpectedVersion: body.ExpectedVersion,
		ActorID:         body.ActorID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}
