package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists the handlers an HTTP delivery layer must provide.
type ServerInterface interface {
	PostCandidates(c *fiber.Ctx) error
	GetCandidates(c *fiber.Ctx) error
	GetCandidate(c *fiber.Ctx) error
	PostTransition(c *fiber.Ctx) error
	PostInterviewPropose(c *fiber.Ctx) error
	PostInterviewResponse(c *fiber.Ctx) error
	PostInterviewCancel(c *fiber.Ctx) error
	GetHistory(c *fiber.Ctx) error
}

// RegisterHandlers binds all pipeline routes onto the fiber app.
func RegisterHandlers(app *fiber.App, h ServerInterface) {
	app.Post("/candidates", h.PostCandidates)
	app.Get("/candidates", h.GetCandidates)
	app.Get("/candidates/:id", h.GetCandidate)
	app.Post("/candidates/:id/transition", h.PostTransition)
	app.Post("/candidates/:id/interview/propose", h.PostInterviewPropose)
	app.Post("/candidates/:id/interview/response", h.PostInterviewResponse)
	app.Post("/candidates/:id/interview/cancel", h.PostInterviewCancel)
	app.Get("/candidates/:id/history", h.GetHistory)
}
