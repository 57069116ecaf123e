package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type CandidateStage string

const (
	StageApplied     CandidateStage = "applied"
	StageCVEvaluated CandidateStage = "cv_evaluated"
	StageShortlisted CandidateStage = "shortlisted"
	StageInterviewed CandidateStage = "interviewed"
	StageOfferMade   CandidateStage = "offer_made"
	StageHired       CandidateStage = "hired"
	StageRejected    CandidateStage = "rejected"
)

type Candidate struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`

	Name           string  `gorm:"type:varchar(200);not null" json:"name"`
	Email          string  `gorm:"type:varchar(255)" json:"email"`
	Phone          string  `gorm:"type:varchar(20)" json:"phone"`
	CurrentSalary  float64 `json:"current_salary"`
	ExpectedSalary float64 `json:"expected_salary"`
	ResumeText     string  `gorm:"type:text" json:"resume_text"`

	// Resume embedding for semantic search against JD text.
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"-"`

	Stage     CandidateStage `gorm:"type:varchar(20);default:'applied'" json:"stage"`
	AppliedAt time.Time      `json:"applied_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
