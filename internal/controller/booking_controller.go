package controller

import (
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	BookSession(ctx *fiber.Ctx) error
}

type bookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) IBookingController {
	return &bookingController{bookingService: bookingService}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	r.Post("/book-session", c.BookSession)
}

func (c *bookingController) BookSession(ctx *fiber.Ctx) error {
	var req dto.BookSessionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.bookingService.Book(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}
