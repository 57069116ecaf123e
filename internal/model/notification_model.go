package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifJobSubmitted         NotificationType = "job_submitted"
	NotifJobCancelled         NotificationType = "job_cancelled"
	NotifJobActivated         NotificationType = "job_activated"
	NotifJobRejected          NotificationType = "job_rejected"
	NotifClosingReminder      NotificationType = "closing_reminder"
	NotifCVEvaluationComplete NotificationType = "cv_evaluation_complete"
	NotifGeneral              NotificationType = "general"
)

type Notification struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Message      string           `gorm:"type:text;not null" json:"message"`
	Type         NotificationType `gorm:"type:varchar(40);default:'general'" json:"type"`
	IsRead       bool             `gorm:"default:false" json:"is_read"`
	RelatedJobID *uuid.UUID       `gorm:"type:uuid" json:"related_job_id"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (n *Notification) TableName() string {
	return "notifications"
}
