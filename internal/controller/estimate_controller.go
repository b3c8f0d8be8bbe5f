package controller

import (
	"vehicle-diagnosis-be/internal/pkg/serverutils"
	"vehicle-diagnosis-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEstimateController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type estimateController struct {
	service service.IEstimateService
}

func NewEstimateController(service service.IEstimateService) IEstimateController {
	return &estimateController{service: service}
}

func (c *estimateController) RegisterRoutes(r fiber.Router) {
	r.Get("/estimate/:sessionId", c.Show)
}

func (c *estimateController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.GetEstimates(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get estimates", res))
}
