package controller

import (
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{assessmentService: assessmentService}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	r.Post("/mental-test", c.Submit)
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	var req dto.MentalTestRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assessmentService.Submit(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
