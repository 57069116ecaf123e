package usecase

import (
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
)

const notificationPageSize = 50

type NotificationUsecase struct {
	notifRepo *repository.NotificationRepository
}

func NewNotificationUsecase(notifRepo *repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notifRepo: notifRepo}
}

func (uc *NotificationUsecase) ListForUser(userID uuid.UUID) ([]model.Notification, error) {
	return uc.notifRepo.ListByUser(userID, notificationPageSize)
}

func (uc *NotificationUsecase) UnreadCount(userID uuid.UUID) (int64, error) {
	return uc.notifRepo.UnreadCount(userID)
}

func (uc *NotificationUsecase) MarkRead(id, userID uuid.UUID) error {
	return uc.notifRepo.MarkRead(id, userID)
}

func (uc *NotificationUsecase) MarkAllRead(userID uuid.UUID) error {
	return uc.notifRepo.MarkAllRead(userID)
}
