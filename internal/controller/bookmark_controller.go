package controller

import (
	"errors"

	"codekickstart-be/internal/pkg/serverutils"
	"codekickstart-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookmarkController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type bookmarkController struct {
	service service.IBookmarkService
}

func NewBookmarkController(service service.IBookmarkService) IBookmarkController {
	return &bookmarkController{service: service}
}

func (c *bookmarkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookmark/v1")
	h.Get("", serverutils.JwtMiddleware, c.GetAll)
	h.Get("/:slug/status", serverutils.OptionalJwtMiddleware, c.GetStatus)
	h.Post("/:slug/toggle", serverutils.JwtMiddleware, c.Toggle)
}

func (c *bookmarkController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetBookmarks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get bookmarks", res))
}

func (c *bookmarkController) GetStatus(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)
	slug := ctx.Params("slug")

	res, err := c.service.GetBookmarkStatus(ctx.Context(), identity, slug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get bookmark status", res))
}

func (c *bookmarkController) Toggle(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	slug := ctx.Params("slug")

	res, err := c.service.ToggleBookmark(ctx.Context(), userId, slug)
	if err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle bookmark", res))
}
