package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"candidate-pipeline/internal/api"
	"candidate-pipeline/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrCandidateNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.CodeNotFound, body.Error.Code)
	require.Equal(t, "candidate not found", body.Error.Message)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorCode
	}{
		{
			name:   "invalid transition",
			err:    &entities.TransitionError{From: entities.StatusHired, Target: entities.StatusRejected},
			status: http.StatusConflict,
			code:   api.CodeInvalidTransition,
		},
		{
			name:   "version conflict",
			err:    &entities.VersionError{CandidateID: "c1", Expected: 3, Actual: 5},
			status: http.StatusConflict,
			code:   api.CodeVersionConflict,
		},
		{
			name:   "missing field",
			err:    &entities.MissingFieldError{From: entities.StatusInterested, Target: entities.StatusInterviewProposed, Field: "slots"},
			status: http.StatusBadRequest,
			code:   api.CodeMissingField,
		},
		{
			name:   "invalid slot",
			err:    &entities.SlotError{Index: 4, Reason: "out of range"},
			status: http.StatusBadRequest,
			code:   api.CodeInvalidSlot,
		},
		{
			name:   "invalid argument",
			err:    entities.ErrInvalidArgument,
			status: http.StatusBadRequest,
			code:   api.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteErrorUnknownIsInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("pool exhausted"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.CodeInternal, body.Error.Code)
	// storage failure detail stays in the logs, never in the response
	require.Equal(t, "internal error", body.Error.Message)
}
