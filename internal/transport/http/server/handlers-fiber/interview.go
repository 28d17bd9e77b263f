package handlers_fiber

import (
	"net/http"

	"candidate-pipeline/internal/api"
	"candidate-pipeline/internal/mapper"
	"candidate-pipeline/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

// PostInterviewPropose opens a slot negotiation for a candidate.
func (h *Handler) PostInterviewPropose(c *fiber.Ctx) error {
	var body api.ProposeInterviewRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	rec, err := h.uc.ProposeInterview(c.Context(), domain.ProposeInterviewParams{
		CandidateID:     c.Params("id"),
		Slots:           mapper.FromAPISlots(body.Slots),
		Location:        body.Location,
		InterviewType:   body.InterviewType,
		Notes:           body.Notes,
		ActorID:         body.ActorID,
		ExpectedVersion: body.ExpectedVersion,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}

// PostInterviewResponse records the candidate's answer to an open proposal.
func (h *Handler) PostInterviewResponse(c *fiber.Ctx) error {
	var body api.InterviewResponseRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	rec, err := h.uc.RecordCandidateResponse(c.Context(), c.Params("id"), domain.CandidateResponse{
		AcceptSlot: body.AcceptSlot,
		Decline:    body.Decline,
		Notes:      body.Notes,
	}, body.ExpectedVersion, body.ActorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}

// PostInterviewCancel abandons a confirmed interview.
func (h *Handler) PostInterviewCancel(c *fiber.Ctx) error {
	var body api.CancelInterviewRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	rec, err := h.uc.CancelOrReschedule(c.Context(), c.Params("id"), body.ExpectedVersion, body.ActorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CandidateResponseBody{Candidate: mapper.ToAPICandidate(*rec)})
}
