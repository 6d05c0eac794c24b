package controller

import (
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Send)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.UserContext(), ctx.IP(), req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
