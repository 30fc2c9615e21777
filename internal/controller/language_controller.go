package controller

import (
	"codekickstart-be/internal/pkg/serverutils"
	"codekickstart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILanguageController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
	Seed(ctx *fiber.Ctx) error
}

type languageController struct {
	service service.ILanguageService
}

func NewLanguageController(service service.ILanguageService) ILanguageController {
	return &languageController{service: service}
}

func (c *languageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/language/v1")
	h.Get("", c.GetAll)
	h.Post("/seed", c.Seed)
	h.Get("/:slug", c.GetBySlug)
}

func (c *languageController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllLanguages(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all languages", res))
}

func (c *languageController) GetBySlug(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.service.GetLanguageBySlug(ctx.Context(), slug)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "language not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get language", res))
}

func (c *languageController) Seed(ctx *fiber.Ctx) error {
	res, err := c.service.SeedLanguages(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Result, res))
}
