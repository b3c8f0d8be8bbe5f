package controller

import (
	"fmt"
	"io"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/apperror"
	"vehicle-diagnosis-be/internal/pkg/serverutils"
	"vehicle-diagnosis-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDiagnosisController interface {
	RegisterRoutes(r fiber.Router)
	Text(ctx *fiber.Ctx) error
	Voice(ctx *fiber.Ctx) error
	Image(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type diagnosisController struct {
	service service.IDiagnosisService
}

func NewDiagnosisController(service service.IDiagnosisService) IDiagnosisController {
	return &diagnosisController{service: service}
}

func (c *diagnosisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/diagnose")
	h.Post("/text", c.Text)
	h.Post("/voice", c.Voice)
	h.Post("/image", c.Image)
	h.Post("/answer", c.Answer)
	h.Get("/:sessionId", c.Status)
}

func (c *diagnosisController) Text(ctx *fiber.Ctx) error {
	var req dto.DiagnoseTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DiagnoseText(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stageMessage(res), res))
}

func (c *diagnosisController) Voice(ctx *fiber.Ctx) error {
	form, err := parseMediaForm(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return fmt.Errorf("%w: missing audio file", apperror.ErrBadRequest)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.DiagnoseVoice(ctx.Context(), form, fileHeader.Filename, file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stageMessage(res), res))
}

func (c *diagnosisController) Image(ctx *fiber.Ctx) error {
	form, err := parseMediaForm(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return fmt.Errorf("%w: missing image file", apperror.ErrBadRequest)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.DiagnoseImage(ctx.Context(), form, fileHeader.Filename, content)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stageMessage(res), res))
}

func (c *diagnosisController) Answer(ctx *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Answer(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stageMessage(res), res))
}

func (c *diagnosisController) Status(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(stageMessage(res), res))
}

func parseMediaForm(ctx *fiber.Ctx) (*dto.DiagnoseMediaForm, error) {
	var form dto.DiagnoseMediaForm
	if err := ctx.BodyParser(&form); err != nil {
		return nil, badBody(err)
	}
	if err := serverutils.ValidateRequest(form); err != nil {
		return nil, err
	}
	return &form, nil
}

func stageMessage(res *dto.DiagnosisResponse) string {
	switch res.Stage {
	case "estimation":
		return "Diagnosis complete"
	case "error":
		return "No matching problems"
	default:
		return "Clarification needed"
	}
}

func badBody(err error) error {
	return fmt.Errorf("%w: invalid request body: %v", apperror.ErrBadRequest, err)
}
