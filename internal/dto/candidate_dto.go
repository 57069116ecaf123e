package dto

type CandidateCreateRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CurrentSalary  float64 `json:"current_salary"`
	ExpectedSalary float64 `json:"expected_salary"`
	ResumeText     string  `json:"resume_text"`
}

type CandidateSearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}
