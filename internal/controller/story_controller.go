package controller

import (
	"strings"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/pkg/apperror"
	"ai-comicstory-be/internal/pkg/serverutils"
	"ai-comicstory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

var createStoryMessages = serverutils.ValidationMessages{
	"title":       "Title and notes are required",
	"notes":       "Title and notes are required",
	"theme.oneof": "Theme must be one of: classic, modern, vintage",
}

type IStoryController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type storyController struct {
	storyService service.IStoryService
	comicService service.IComicService
}

func NewStoryController(storyService service.IStoryService, comicService service.IComicService) IStoryController {
	return &storyController{
		storyService: storyService,
		comicService: comicService,
	}
}

func (c *storyController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/stories", auth)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/generate", c.Generate)
}

func (c *storyController) Create(ctx *fiber.Ctx) error {
	principal, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateStoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.ErrValidation, "Invalid request body", err)
	}
	req.Theme = strings.TrimSpace(req.Theme)

	if err := serverutils.ValidateRequest(req, createStoryMessages); err != nil {
		return err
	}

	res, err := c.storyService.Create(ctx.UserContext(), principal.UserId(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *storyController) GetAll(ctx *fiber.Ctx) error {
	principal, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.storyService.GetAll(ctx.UserContext(), principal.UserId())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *storyController) Show(ctx *fiber.Ctx) error {
	principal, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.storyService.Show(ctx.UserContext(), principal.UserId(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *storyController) Delete(ctx *fiber.Ctx) error {
	principal, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.storyService.Delete(ctx.UserContext(), principal.UserId(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *storyController) Generate(ctx *fiber.Ctx) error {
	principal, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.comicService.Generate(ctx.UserContext(), principal.UserId(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
