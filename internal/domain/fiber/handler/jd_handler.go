package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/middleware"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

type JDHandler struct {
	jdUsecase *usecase.JDUsecase
}

func NewJDHandler(jdUsecase *usecase.JDUsecase) *JDHandler {
	return &JDHandler{jdUsecase: jdUsecase}
}

func (h *JDHandler) RegisterRoutes(router fiber.Router) {
	jd := router.Group("/jd")
	jd.Post("/clarify", h.Clarify)
	jd.Post("/generate", h.Generate)
}

func (h *JDHandler) Clarify(c *fiber.Ctx) error {
	var body dto.JDClarifyRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if body.RoleTitle == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "role_title is required",
		})
	}

	questions := h.jdUsecase.Clarify(c.Context(), body.JDFormData)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Clarifying questions generated",
		Data:    fiber.Map{"questions": questions},
	})
}

func (h *JDHandler) Generate(c *fiber.Ctx) error {
	var body dto.JDGenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	if body.RoleTitle == "" && body.JobID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "role_title or job_id is required",
		})
	}

	jd, err := h.jdUsecase.Generate(c.Context(), middleware.UserFromCtx(c), body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job description generated",
		Data:    fiber.Map{"jd_text": jd},
	})
}
