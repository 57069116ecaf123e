package model

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPendingHR JobStatus = "pending_hr"
	JobStatusRejected  JobStatus = "rejected"
	JobStatusActive    JobStatus = "active"
	JobStatusClosed    JobStatus = "closed"
	JobStatusCancelled JobStatus = "cancelled"
)

type JDSource string

const (
	JDSourceAICreated JDSource = "ai_created"
	JDSourceManual    JDSource = "manual"
	JDSourceLinked    JDSource = "linked"
)

type JobRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`
	Creator   *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`

	RoleTitle        string  `gorm:"type:varchar(255);not null" json:"role_title"`
	JDText           string  `gorm:"type:text" json:"jd_text"`
	Department       string  `gorm:"type:varchar(120)" json:"department"`
	Location         string  `gorm:"type:varchar(120)" json:"location"`
	ExperienceMin    int     `json:"experience_min"`
	ExperienceMax    int     `json:"experience_max"`
	Budget           float64 `json:"budget"`
	AdjustableBudget float64 `json:"adjustable_budget"`
	Headcount        int     `gorm:"default:1" json:"headcount"`
	HiredCount       int     `gorm:"default:0" json:"hired_count"`

	EndDate         *time.Time `json:"end_date"`
	Status          JobStatus  `gorm:"type:varchar(20);default:'draft';not null" json:"status"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`

	JDSource    JDSource `gorm:"type:varchar(20)" json:"jd_source"`
	ProfileJSON string   `gorm:"type:text" json:"profile_json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Candidates []Candidate `gorm:"foreignKey:JobID" json:"candidates,omitempty"`
}

func (j *JobRequest) TableName() string {
	return "job_requests"
}
