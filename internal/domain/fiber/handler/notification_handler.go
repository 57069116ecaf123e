package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hiresage/recruitai/internal/middleware"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	notificationUsecase *usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notifications := router.Group("/notifications")
	notifications.Get("/", h.List)
	notifications.Get("/unread-count", h.UnreadCount)
	notifications.Post("/read-all", h.MarkAllRead)
	notifications.Post("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	notifications, err := h.notificationUsecase.ListForUser(user.ID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to fetch notifications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Notifications fetched",
		Data:    notifications,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	count, err := h.notificationUsecase.UnreadCount(user.ID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to count notifications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Unread count fetched",
		Data:    fiber.Map{"unread": count},
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user := middleware.UserFromCtx(c)
	if err := h.notificationUsecase.MarkRead(id, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Notification not found",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to mark notification as read",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Notification marked as read",
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	if err := h.notificationUsecase.MarkAllRead(user.ID); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to mark notifications as read",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "All notifications marked as read",
	})
}
