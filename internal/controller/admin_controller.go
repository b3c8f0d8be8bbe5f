package controller

import (
	"crypto/subtle"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/serverutils"
	"vehicle-diagnosis-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type adminController struct {
	catalogService service.ICatalogService
	reindexService service.IReindexService
	adminToken     string
}

func NewAdminController(catalogService service.ICatalogService, reindexService service.IReindexService, adminToken string) IAdminController {
	return &adminController{
		catalogService: catalogService,
		reindexService: reindexService,
		adminToken:     adminToken,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)

	h := r.Group("/admin")
	h.Use(c.adminMiddleware)
	h.Post("/catalog/reindex", c.Reindex)
}

// adminMiddleware requires the X-Admin-Token header when a token is configured
func (c *adminController) adminMiddleware(ctx *fiber.Ctx) error {
	if c.adminToken == "" {
		return ctx.Next()
	}
	got := ctx.Get("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(c.adminToken)) != 1 {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing or invalid admin token"))
	}
	return ctx.Next()
}

func (c *adminController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", c.catalogService.Health(ctx.Context())))
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	if err := c.reindexService.Request(ctx.Context()); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Reindex queued", &dto.ReindexResponse{Queued: true}))
}
