package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateEvaluation holds one evaluation per candidate. The unique index on
// CandidateID is the storage-level guard against duplicate evaluation rows when
// the same scheduled task fires concurrently.
type CandidateEvaluation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"candidate_id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`

	OverallScore     int    `json:"overall_score"`
	Grade            string `gorm:"type:varchar(5)" json:"grade"`
	IsAboveThreshold bool   `gorm:"default:false" json:"is_above_threshold"`

	PersonaScores  string `gorm:"type:jsonb" json:"persona_scores"`
	Strengths      string `gorm:"type:text" json:"strengths"`
	Weaknesses     string `gorm:"type:text" json:"weaknesses"`
	Recommendation string `gorm:"type:text" json:"recommendation"`

	EvaluatedAt time.Time `json:"evaluated_at"`
	IsAutomated bool      `gorm:"default:false" json:"is_automated"`
}

func (e *CandidateEvaluation) TableName() string {
	return "candidate_evaluations"
}
