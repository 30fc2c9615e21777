package controller

import (
	"codekickstart-be/internal/dto"
	"codekickstart-be/internal/pkg/serverutils"
	"codekickstart-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("/history", serverutils.OptionalJwtMiddleware, c.GetHistory)
	h.Post("", serverutils.JwtMiddleware, c.SendMessage)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)
	languageSlug := ctx.Query("language_slug")

	res, err := c.service.GetChatHistory(ctx.Context(), identity, languageSlug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}
