package controller

import (
	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/serverutils"
	"vehicle-diagnosis-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Dealerships(ctx *fiber.Ctx) error
	SearchProblems(ctx *fiber.Ctx) error
	DealerLabour(ctx *fiber.Ctx) error
	DealerParts(ctx *fiber.Ctx) error
	CustomerVehicles(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/dealerships", c.Dealerships)
	r.Get("/problems/search", c.SearchProblems)
	r.Get("/dealers/:id/labour", c.DealerLabour)
	r.Get("/dealers/:id/parts", c.DealerParts)
	r.Get("/customers/:id/vehicles", c.CustomerVehicles)
}

func (c *catalogController) Dealerships(ctx *fiber.Ctx) error {
	res, err := c.service.Dealerships(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dealerships", res))
}

func (c *catalogController) SearchProblems(ctx *fiber.Ctx) error {
	var q dto.ProblemSearchQuery
	if err := ctx.QueryParser(&q); err != nil {
		return badBody(err)
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.service.SearchProblems(ctx.Context(), q.Query, q.Limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search problems", res))
}

func (c *catalogController) DealerLabour(ctx *fiber.Ctx) error {
	res, err := c.service.DealerLabour(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get labour", res))
}

func (c *catalogController) DealerParts(ctx *fiber.Ctx) error {
	res, err := c.service.DealerParts(ctx.Context(), ctx.Params("id"), ctx.Query("problem_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get parts", res))
}

func (c *catalogController) CustomerVehicles(ctx *fiber.Ctx) error {
	res, err := c.service.CustomerVehicles(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get vehicles", res))
}
