package controller

import (
	"github.com/gofiber/fiber/v2"

	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/pkg/serverutils"
	"killchain-analyzer-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Statistics(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Cleanup(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/statistics", c.Statistics)
	r.Post("/reset-session", c.Reset)

	admin := r.Group("/admin")
	admin.Post("/cleanup-sessions", c.Cleanup)
	admin.Get("/session-count", c.Count)
}

func (c *sessionController) Statistics(ctx *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	stats := c.sessionService.Statistics(req.SessionId)
	return ctx.JSON(serverutils.SuccessResponse("Statistics retrieved", stats))
}

// Reset deletes a session outright. Unknown ids are not an error; the
// response just reports that nothing existed.
func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	existed := c.sessionService.Reset(req.SessionId)
	return ctx.JSON(serverutils.SuccessResponse("Session reset", dto.ResetSessionResponse{
		Existed: existed,
	}))
}

func (c *sessionController) Cleanup(ctx *fiber.Ctx) error {
	var req dto.CleanupSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	maxAge := service.DefaultSessionMaxAgeHours
	if req.MaxAgeHours != nil {
		maxAge = *req.MaxAgeHours
	}

	removed := c.sessionService.Cleanup(maxAge)
	return ctx.JSON(serverutils.SuccessResponse("Cleanup finished", dto.CleanupSessionsResponse{
		Removed: removed,
	}))
}

func (c *sessionController) Count(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Session count retrieved", dto.SessionCountResponse{
		ActiveSessions: c.sessionService.Count(),
	}))
}
