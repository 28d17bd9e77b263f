package handlers_fiber

import (
	"net/http"

	"candidate-pipeline/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetHistory returns one page of a candidate's audit trail, most recent first.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	page, err := h.uc.GetHistory(c.Context(), c.Params("id"), c.QueryInt("page", 1), c.QueryInt("page_size", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIHistory(*page))
}
