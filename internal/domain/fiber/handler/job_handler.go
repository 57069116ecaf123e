package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/middleware"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

type JobHandler struct {
	jobUsecase *usecase.JobUsecase
}

func NewJobHandler(jobUsecase *usecase.JobUsecase) *JobHandler {
	return &JobHandler{jobUsecase: jobUsecase}
}

func (h *JobHandler) RegisterRoutes(router fiber.Router) {
	jobs := router.Group("/job-requests")
	jobs.Get("/", h.List)
	jobs.Post("/", middleware.RequireRole(model.RoleTeamLead), h.Create)
	jobs.Get("/pending", middleware.RequireRole(model.RoleHR), h.Pending)
	jobs.Get("/:id", h.Get)
	jobs.Put("/:id", middleware.RequireRole(model.RoleTeamLead), h.Update)
	jobs.Post("/:id/submit", middleware.RequireRole(model.RoleTeamLead), h.Submit)
	jobs.Post("/:id/cancel", middleware.RequireRole(model.RoleTeamLead), h.Cancel)
	jobs.Post("/:id/activate", middleware.RequireRole(model.RoleHR), h.Activate)
	jobs.Post("/:id/reject", middleware.RequireRole(model.RoleHR), h.Reject)
	jobs.Put("/:id/hr-edit", middleware.RequireRole(model.RoleHR), h.HREdit)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var body dto.JobCreateRequest
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

	job, err := h.jobUsecase.Create(middleware.UserFromCtx(c), body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job request created",
		Data:    job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobUsecase.ListForUser(middleware.UserFromCtx(c))
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job requests fetched",
		Data:    jobs,
	})
}

func (h *JobHandler) Pending(c *fiber.Ctx) error {
	jobs, err := h.jobUsecase.PendingForHR()
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Pending job requests fetched",
		Data:    jobs,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobUsecase.Get(middleware.UserFromCtx(c), id)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request fetched",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.JobCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	job, err := h.jobUsecase.Update(middleware.UserFromCtx(c), id, body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request updated",
		Data:    job,
	})
}

func (h *JobHandler) Submit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.JobSubmitRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	job, err := h.jobUsecase.Submit(middleware.UserFromCtx(c), id, body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request submitted for HR review",
		Data:    job,
	})
}

func (h *JobHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobUsecase.Cancel(middleware.UserFromCtx(c), id)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request cancelled",
		Data:    job,
	})
}

func (h *JobHandler) Activate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobUsecase.Activate(id)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request activated",
		Data:    job,
	})
}

func (h *JobHandler) Reject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.JobRejectRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	job, err := h.jobUsecase.Reject(id, body.Reason)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request rejected",
		Data:    job,
	})
}

func (h *JobHandler) HREdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.JobCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	job, err := h.jobUsecase.HREdit(id, body)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job request updated by HR",
		Data:    job,
	})
}
