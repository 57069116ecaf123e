package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

type CandidateHandler struct {
	candidateUsecase *usecase.CandidateUsecase
}

func NewCandidateHandler(candidateUsecase *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{candidateUsecase: candidateUsecase}
}

func (h *CandidateHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/job-requests/:id/candidates", h.Add)
	router.Get("/job-requests/:id/candidates", h.ListByJob)
	router.Post("/candidates/search", h.Search)
}

func (h *CandidateHandler) Add(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.CandidateCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if body.Name == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "name is required",
		})
	}

	cand, err := h.candidateUsecase.Add(c.Context(), jobID, body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Candidate added",
		Data:    cand,
	})
}

func (h *CandidateHandler) ListByJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	candidates, err := h.candidateUsecase.ListByJob(jobID)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidates fetched",
		Data:    candidates,
	})
}

func (h *CandidateHandler) Search(c *fiber.Ctx) error {
	var body dto.CandidateSearchRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if body.Query == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "query is required",
		})
	}

	candidates, err := h.candidateUsecase.Search(c.Context(), body.Query, body.TopK)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Candidate search failed",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidates fetched",
		Data:    candidates,
	})
}
