package dto

type JobCreateRequest struct {
	RoleTitle        string  `json:"role_title"`
	Department       string  `json:"department"`
	JDText           string  `json:"jd_text"`
	ProfileJSON      string  `json:"profile_json"`
	Budget           float64 `json:"budget"`
	AdjustableBudget float64 `json:"adjustable_budget"`
	EndDate          string  `json:"end_date"` // RFC3339 or YYYY-MM-DD
}

type JobSubmitRequest struct {
	Budget           *float64 `json:"budget"`
	AdjustableBudget *float64 `json:"adjustable_budget"`
	EndDate          *string  `json:"end_date"`
}

type JobRejectRequest struct {
	Reason string `json:"reason"`
}
