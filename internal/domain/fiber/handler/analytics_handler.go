package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

type AnalyticsHandler struct {
	analyticsUsecase *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/analytics/pipeline", h.HiringPipeline)
}

func (h *AnalyticsHandler) HiringPipeline(c *fiber.Ctx) error {
	pipeline, err := h.analyticsUsecase.HiringPipeline()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to build hiring pipeline",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Hiring pipeline fetched",
		Data:    pipeline,
	})
}
