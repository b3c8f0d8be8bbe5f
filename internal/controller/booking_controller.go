package controller

import (
	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/serverutils"
	"vehicle-diagnosis-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	CustomerServices(ctx *fiber.Ctx) error
	DealerServices(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type bookingController struct {
	service service.IBookingService
}

func NewBookingController(service service.IBookingService) IBookingController {
	return &bookingController{service: service}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	r.Post("/bookings", c.Create)
	r.Get("/customers/:id/services", c.CustomerServices)
	r.Get("/dealers/:id/services", c.DealerServices)
	r.Get("/services/:id", c.Show)
	r.Put("/services/:id", c.Update)
}

func (c *bookingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service request created", res))
}

func (c *bookingController) CustomerServices(ctx *fiber.Ctx) error {
	res, err := c.service.CustomerServices(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get customer services", res))
}

func (c *bookingController) DealerServices(ctx *fiber.Ctx) error {
	res, err := c.service.DealerServices(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dealer services", res))
}

func (c *bookingController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show service request", res))
}

func (c *bookingController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service request updated", res))
}
