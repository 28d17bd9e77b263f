package handlers_fiber

import (
	"errors"
	"net/http"

	"candidate-pipeline/internal/api"
	"candidate-pipeline/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrCandidateNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "candidate not found"
	case errors.Is(err, entities.ErrInvalidTransition):
		status = http.StatusConflict
		code = api.CodeInvalidTransition
		msg = err.Error()
	case errors.Is(err, entities.ErrConcurrentModification):
		status = http.StatusConflict
		code = api.CodeVersionConflict
		msg = "record version is stale, refetch and retry"
	case errors.Is(err, entities.ErrMissingField):
		status = http.StatusBadRequest
		code = api.CodeMissingField
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidSlot):
		status = http.StatusBadRequest
		code = api.CodeInvalidSlot
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
