package controller

import (
	"mindful-campus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWellnessController interface {
	RegisterRoutes(r fiber.Router)
	Config(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type wellnessController struct {
	contentService service.IContentService
	historyService service.IHistoryService
}

func NewWellnessController(contentService service.IContentService, historyService service.IHistoryService) IWellnessController {
	return &wellnessController{
		contentService: contentService,
		historyService: historyService,
	}
}

func (c *wellnessController) RegisterRoutes(r fiber.Router) {
	r.Get("/config", c.Config)
	r.Get("/history", c.History)
}

func (c *wellnessController) Config(ctx *fiber.Ctx) error {
	return ctx.JSON(c.contentService.Bundle())
}

func (c *wellnessController) History(ctx *fiber.Ctx) error {
	res, err := c.historyService.Recent(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
