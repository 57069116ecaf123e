package dto

import "github.com/hiresage/recruitai/internal/agent"

type PersonasRequest struct {
	Profile string `json:"profile"`
}

type EvaluateRequest struct {
	JobID    string          `json:"job_id"`
	Personas []agent.Persona `json:"personas"`
}

type RankRequest struct {
	Evaluations []agent.Evaluation `json:"evaluations"`
	TopN        int                `json:"top_n"`
}

type FullPipelineRequest struct {
	JobID string `json:"job_id"`
	TopN  int    `json:"top_n"`
}
