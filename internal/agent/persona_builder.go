package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const personaBuilderPrompt = `
You are a senior hiring strategist.

You are given an Ideal Candidate Profile for a role.
Your task is to create 3-5 DISTINCT ideal candidate personas — each representing a DIFFERENT type of person who could succeed in this role.

These personas will later be used to evaluate real candidate CVs, so they must be specific and actionable.

INPUT:
─────────────────────────────
IDEAL CANDIDATE PROFILE:
%s
─────────────────────────────

OUTPUT FORMAT (STRICT JSON ARRAY):
[
  {
    "persona_id": "P1",
    "name": "Short Persona Title (e.g. 'The Scalable Systems Expert')",
    "summary": "2-3 sentence description of who this persona is and why they'd succeed",
    "experience_range": "X-Y years",
    "core_strengths": [
      "Strength 1: why it matters for this role",
      "Strength 2: why it matters for this role",
      "Strength 3: why it matters for this role"
    ],
    "required_skills": ["Skill 1", "Skill 2", "Skill 3"],
    "nice_to_have_skills": ["Skill 1", "Skill 2"],
    "behavioral_traits": [
      "Trait 1: why it's relevant",
      "Trait 2: why it's relevant"
    ],
    "red_flags": [
      "Warning sign 1 that would disqualify this persona type",
      "Warning sign 2"
    ],
    "success_definition": "What does success look like for this persona in 6 months?"
  }
]

RULES:
- Create 3-5 personas. Each must represent a DIFFERENT hiring path (e.g. deep specialist vs generalist vs high-potential learner).
- Use ONLY information from the given profile. Do NOT hallucinate.
- Each persona should have different experience ranges and strengths.
- Output ONLY valid JSON array. No markdown, no explanations, no wrapping.
`

// PersonaBuilder generates ideal-candidate personas from a role profile.
type PersonaBuilder struct {
	gen TextGenerator
	log *zap.Logger
}

func NewPersonaBuilder(gen TextGenerator, log *zap.Logger) *PersonaBuilder {
	return &PersonaBuilder{gen: gen, log: log}
}

// BuildPersonas asks the provider for 3-5 personas for the given profile text.
// Persona IDs are forced to P1..Pn regardless of what the provider returned.
// On any generation or parse failure a single generic persona is returned, so
// the evaluation pipeline always has something to score against.
func (b *PersonaBuilder) BuildPersonas(ctx context.Context, profile string) []Persona {
	prompt := fmt.Sprintf(personaBuilderPrompt, profile)

	text, err := b.gen.GenerateText(ctx, prompt)
	if err != nil {
		b.log.Warn("persona generation call failed", zap.Error(err))
		return fallbackPersonas()
	}

	content := stripCodeFences(text)

	var personas []Persona
	if err := json.Unmarshal([]byte(content), &personas); err != nil || len(personas) == 0 {
		b.log.Warn("persona generation response could not be parsed", zap.Error(err))
		return fallbackPersonas()
	}

	for i := range personas {
		personas[i].PersonaID = fmt.Sprintf("P%d", i+1)
	}
	return personas
}

func fallbackPersonas() []Persona {
	return []Persona{{
		PersonaID:         "P1",
		Name:              "General Candidate",
		Summary:           "Candidate for the described role.",
		ExperienceRange:   "3-6 years",
		CoreStrengths:     []string{},
		RequiredSkills:    []string{},
		NiceToHaveSkills:  []string{},
		BehavioralTraits:  []string{},
		RedFlags:          []string{},
		SuccessDefinition: "Meets basic role requirements",
	}}
}
