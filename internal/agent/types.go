package agent

import "context"

// TextGenerator is the boundary between the agents and whichever LLM provider
// backs them. Implementations return raw text; the agents own all parsing.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Persona describes one ideal-candidate archetype generated for a role.
type Persona struct {
	PersonaID         string   `json:"persona_id"`
	Name              string   `json:"name"`
	Summary           string   `json:"summary"`
	ExperienceRange   string   `json:"experience_range"`
	CoreStrengths     []string `json:"core_strengths"`
	RequiredSkills    []string `json:"required_skills"`
	NiceToHaveSkills  []string `json:"nice_to_have_skills"`
	BehavioralTraits  []string `json:"behavioral_traits"`
	RedFlags          []string `json:"red_flags"`
	SuccessDefinition string   `json:"success_definition"`
}

// CandidateCV is the structured resume representation fed to the evaluator.
type CandidateCV struct {
	CandidateID string `json:"candidate_id"`
	Summary     string `json:"summary"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	Projects    string `json:"projects"`
	RawText     string `json:"raw_text"`
}

// PersonaResult is the strict result type for one CV-vs-persona evaluation.
// Field names match the JSON schema the prompts request.
type PersonaResult struct {
	PersonaID   string   `json:"persona_id"`
	Score       int      `json:"score"`
	Grade       string   `json:"grade"`
	Strengths   []string `json:"strengths"`
	Gaps        []string `json:"gaps"`
	Explanation string   `json:"explanation"`
}

// Evaluation aggregates one candidate's results across all personas.
type Evaluation struct {
	CandidateID        string          `json:"candidate_id"`
	PersonaResults     []PersonaResult `json:"persona_results"`
	OverallScore       int             `json:"overall_score"`
	OverallGrade       string          `json:"overall_grade"`
	BestFitPersona     string          `json:"best_fit_persona"`
	BestFitPersonaName string          `json:"best_fit_persona_name"`
	Summary            string          `json:"summary"`
}
