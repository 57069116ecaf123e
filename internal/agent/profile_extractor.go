package agent

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const profileFromJDPrompt = `
You are a senior HR strategist.

You are given a finalized Job Description (JD). Your task is to extract
a structured "Ideal Candidate Profile" from it.

This profile will later be used to:
1. Generate ideal candidate personas.
2. Evaluate candidate CVs against those personas.

So make it specific, detailed, and grounded in what the JD says.

─────────────────────────────
JOB DESCRIPTION:
%s
─────────────────────────────

OUTPUT FORMAT (STRICT JSON ONLY):
{
  "role": "<job title extracted from the JD>",
  "department": "<department if mentioned, otherwise %q>",
  "profile_summary": "2-3 sentence paragraph: Who is the ideal person for this role? What mindset and background do they bring?",
  "core_competencies": [
    "Competency 1: brief explanation of why it matters",
    "Competency 2: brief explanation",
    "Competency 3: brief explanation"
  ],
  "behavioral_traits": [
    "Trait 1: why it's relevant to this role",
    "Trait 2: why it's relevant"
  ],
  "success_metrics": [
    "What does success look like in 30 days?",
    "What does success look like in 90 days?",
    "What does success look like in 6 months?"
  ],
  "team_context": "1-2 sentences: Who does this person work with?",
  "key_responsibilities_refined": [
    "Key responsibility 1",
    "Key responsibility 2"
  ],
  "must_have_skills_refined": [
    "Required skill 1",
    "Required skill 2"
  ],
  "nice_to_have_skills": [
    "Bonus skill 1",
    "Bonus skill 2"
  ]
}

RULES:
- Output ONLY valid JSON. No markdown, no explanations.
- Extract ALL information from the JD. Do NOT hallucinate.
- If a section is not mentioned in the JD, use an empty list [] or a reasonable inference.
- Keep language professional and specific.
`

// ProfileExtractor turns finalized JD text into an ideal-candidate profile,
// bridging job creation with the persona builder and CV evaluator.
type ProfileExtractor struct {
	gen TextGenerator
	log *zap.Logger
}

func NewProfileExtractor(gen TextGenerator, log *zap.Logger) *ProfileExtractor {
	return &ProfileExtractor{gen: gen, log: log}
}

// ExtractProfile returns the profile as a JSON string. On any generation or
// parse failure it falls back to the JD text itself, which the persona builder
// accepts as a plain-text profile.
func (p *ProfileExtractor) ExtractProfile(ctx context.Context, jdText, department string) string {
	if department == "" {
		department = "General"
	}
	prompt := fmt.Sprintf(profileFromJDPrompt, jdText, department)

	text, err := p.gen.GenerateText(ctx, prompt)
	if err != nil {
		p.log.Warn("profile extraction call failed", zap.Error(err))
		return jdText
	}

	content := stripCodeFences(text)
	if !gjson.Valid(content) || !gjson.Get(content, "role").Exists() {
		p.log.Warn("profile extraction response could not be parsed")
		return jdText
	}
	return content
}
