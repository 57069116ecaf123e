package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

// PipelineHandler exposes the CV analysis pipeline. Each stage can be called
// on its own so a client can inspect or adjust intermediate output, or the
// whole flow can run in one request.
type PipelineHandler struct {
	pipelineUsecase *usecase.PipelineUsecase
}

func NewPipelineHandler(pipelineUsecase *usecase.PipelineUsecase) *PipelineHandler {
	return &PipelineHandler{pipelineUsecase: pipelineUsecase}
}

func (h *PipelineHandler) RegisterRoutes(router fiber.Router) {
	cv := router.Group("/cv")
	cv.Post("/personas", h.GeneratePersonas)
	cv.Post("/evaluate", h.EvaluateCandidates)
	cv.Post("/rank", h.RankShortlist)
	cv.Post("/full", h.RunFullPipeline)
}

func (h *PipelineHandler) GeneratePersonas(c *fiber.Ctx) error {
	var body dto.PersonasRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	result := h.pipelineUsecase.GeneratePersonas(c.Context(), body.Profile)
	if result.Error != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: result.Error,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Personas generated",
		Data:    result,
	})
}

func (h *PipelineHandler) EvaluateCandidates(c *fiber.Ctx) error {
	var body dto.EvaluateRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	jobID, err := uuid.Parse(body.JobID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid job_id",
		}, err)
	}

	result := h.pipelineUsecase.EvaluateCandidates(c.Context(), jobID, body.Personas)
	if result.Error != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: result.Error,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidates evaluated",
		Data:    result,
	})
}

func (h *PipelineHandler) RankShortlist(c *fiber.Ctx) error {
	var body dto.RankRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	result := h.pipelineUsecase.RankShortlist(body.Evaluations, body.TopN)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Shortlist ranked",
		Data:    result,
	})
}

func (h *PipelineHandler) RunFullPipeline(c *fiber.Ctx) error {
	var body dto.FullPipelineRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	jobID, err := uuid.Parse(body.JobID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid job_id",
		}, err)
	}

	result := h.pipelineUsecase.RunFullPipeline(c.Context(), jobID, body.TopN)
	if result.Error != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: result.Error,
			Details: result,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Pipeline completed",
		Data:    result,
	})
}
