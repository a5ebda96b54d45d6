package controller

import (
	"github.com/gofiber/fiber/v2"

	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/pkg/serverutils"
	"killchain-analyzer-be/internal/service"
)

type ILeaderboardController interface {
	RegisterRoutes(r fiber.Router)
	Leaderboard(ctx *fiber.Ctx) error
}

type leaderboardController struct {
	leaderboardService service.ILeaderboardService
}

func NewLeaderboardController(leaderboardService service.ILeaderboardService) ILeaderboardController {
	return &leaderboardController{
		leaderboardService: leaderboardService,
	}
}

func (c *leaderboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/leaderboard", c.Leaderboard)
}

func (c *leaderboardController) Leaderboard(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)
	entries := c.leaderboardService.Top(limit)
	return ctx.JSON(serverutils.SuccessResponse("Leaderboard retrieved", dto.LeaderboardResponse{
		Leaderboard: entries,
	}))
}
