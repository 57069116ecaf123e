package dto

import "github.com/hiresage/recruitai/internal/agent"

type JDClarifyRequest struct {
	agent.JDFormData
}

type JDGenerateRequest struct {
	agent.JDFormData
	JobID       string `json:"job_id"`
	ProfileJSON string `json:"profile_json"`
}
