package controller

import (
	"github.com/gofiber/fiber/v2"

	"killchain-analyzer-be/internal/catalog"
	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/pkg/serverutils"
	"killchain-analyzer-be/internal/service"
)

type IGameController interface {
	RegisterRoutes(r fiber.Router)
	GetPhases(ctx *fiber.Ctx) error
	GetLog(ctx *fiber.Ctx) error
	ValidatePhase(ctx *fiber.Ctx) error
	ValidateMitigation(ctx *fiber.Ctx) error
}

type gameController struct {
	catalog        *catalog.Catalog
	gameService    service.IGameService
	sessionService service.ISessionService
}

func NewGameController(cat *catalog.Catalog, gameService service.IGameService, sessionService service.ISessionService) IGameController {
	return &gameController{
		catalog:        cat,
		gameService:    gameService,
		sessionService: sessionService,
	}
}

func (c *gameController) RegisterRoutes(r fiber.Router) {
	r.Get("/get-phases", c.GetPhases)
	r.Post("/get-log", c.GetLog)
	r.Post("/validate-phase", c.ValidatePhase)
	r.Post("/validate-mitigation", c.ValidateMitigation)
}

// GetPhases returns all 7 kill chain phases for the client to render.
func (c *gameController) GetPhases(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Phases retrieved", fiber.Map{
		"phases": c.catalog.Phases(),
	}))
}

// GetLog starts a new round: draws a log for the effective difficulty
// and returns it with the answer fields stripped.
func (c *gameController) GetLog(ctx *fiber.Ctx) error {
	var req dto.GenerateLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gameService.GenerateLog(req.SessionId, req.Difficulty, req.Stats)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Log generated", res))
}

// ValidatePhase checks the player's phase guess against the open round.
func (c *gameController) ValidatePhase(ctx *fiber.Ctx) error {
	var req dto.ValidatePhaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gameService.ValidatePhase(req.SessionId, req.SelectedPhase)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Phase validated", res))
}

// ValidateMitigation scores the mitigation guess and folds the outcome
// into the session's rolling stats.
func (c *gameController) ValidateMitigation(ctx *fiber.Ctx) error {
	var req dto.ValidateMitigationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.ErrInvalidInput
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gameService.ValidateMitigation(req.SessionId, req.SelectedMitigation, req.TimeRemaining, req.Difficulty)
	if err != nil {
		return err
	}

	res.Stats = c.sessionService.RecordOutcome(req.SessionId, res.Points, res.IsCorrect)

	return ctx.JSON(serverutils.SuccessResponse("Mitigation validated", res))
}
