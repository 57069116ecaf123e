package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const cvVsPersonaPrompt = `
You are an expert technical interviewer and hiring evaluator.

You are given:
1. A candidate's CV (parsed into structured sections).
2. An ideal candidate persona describing what a successful hire looks like.

YOUR TASK:
Evaluate how well the candidate matches this specific persona.

SCORING DIMENSIONS (evaluate each):
- Skill Match: Do their skills align with required skills?
- Experience Fit: Years and depth of experience vs. persona expectation
- Responsibility Match: Have they done similar work?
- Behavioral Signals: Ownership, leadership, initiative
- Domain Fit: Industry or domain relevance
- Risk Flags: Job hopping, shallow roles, gaps

Give a score from 0 to 100.

INPUTS:
─────────────────────────────
CANDIDATE CV:
%s

PERSONA:
%s
─────────────────────────────

OUTPUT FORMAT (STRICT JSON ONLY):
{
  "persona_id": "%s",
  "score": <integer 0-100>,
  "grade": "<A+ / A / A- / B+ / B / B- / C+ / C / C- / D / F>",
  "strengths": [
    "Strength 1",
    "Strength 2"
  ],
  "gaps": [
    "Gap 1",
    "Gap 2"
  ],
  "explanation": "2-3 sentence summary of the fit analysis"
}

RULES:
- Be strict but fair. Do not inflate scores.
- Cite specific evidence from the CV.
- Output ONLY valid JSON. No markdown, no extra text.
`

const maxRawTextLen = 3000

// Evaluator scores candidate CVs against personas via a text-generation
// provider. All provider output is parsed defensively; a failed evaluation for
// one persona degrades to a zero-score result and never aborts the rest.
type Evaluator struct {
	gen TextGenerator
	log *zap.Logger
}

func NewEvaluator(gen TextGenerator, log *zap.Logger) *Evaluator {
	return &Evaluator{gen: gen, log: log}
}

// EvaluateCandidate evaluates one CV against every persona and aggregates the
// results: overall score is the truncated mean, best fit is the highest-scoring
// persona (first wins on ties), and the summary is the best fit's explanation.
func (e *Evaluator) EvaluateCandidate(ctx context.Context, cv CandidateCV, personas []Persona) Evaluation {
	results := make([]PersonaResult, 0, len(personas))
	for _, p := range personas {
		results = append(results, e.evaluateAgainstPersona(ctx, cv, p))
	}

	eval := Evaluation{
		CandidateID:    cv.CandidateID,
		PersonaResults: results,
		OverallGrade:   "F",
		Summary:        "No explanation available.",
	}
	if len(results) == 0 {
		return eval
	}

	total := 0
	best := results[0]
	for _, r := range results {
		total += r.Score
		if r.Score > best.Score {
			best = r
		}
	}

	eval.OverallScore = total / len(results)
	eval.OverallGrade = Grade(eval.OverallScore)
	eval.BestFitPersona = best.PersonaID
	eval.BestFitPersonaName = best.PersonaID
	for _, p := range personas {
		if p.PersonaID == best.PersonaID && p.Name != "" {
			eval.BestFitPersonaName = p.Name
			break
		}
	}
	if best.Explanation != "" {
		eval.Summary = best.Explanation
	}
	return eval
}

func (e *Evaluator) evaluateAgainstPersona(ctx context.Context, cv CandidateCV, persona Persona) PersonaResult {
	if len(cv.RawText) > maxRawTextLen {
		cv.RawText = cv.RawText[:maxRawTextLen]
	}

	cvJSON, _ := json.MarshalIndent(cv, "", "  ")
	personaJSON, _ := json.MarshalIndent(persona, "", "  ")
	prompt := fmt.Sprintf(cvVsPersonaPrompt, cvJSON, personaJSON, persona.PersonaID)

	text, err := e.gen.GenerateText(ctx, prompt)
	if err != nil {
		e.log.Warn("cv evaluation call failed",
			zap.String("candidate_id", cv.CandidateID),
			zap.String("persona_id", persona.PersonaID),
			zap.Error(err))
		return fallbackResult(persona.PersonaID, "Evaluation failed due to an unexpected error", err.Error())
	}

	return parsePersonaResult(text, persona.PersonaID, e.log, cv.CandidateID)
}

// parsePersonaResult is the single parsing boundary for evaluator output:
// it returns either a validated PersonaResult or the fixed fallback, never
// partially parsed data.
func parsePersonaResult(text, personaID string, log *zap.Logger, candidateID string) PersonaResult {
	content := stripCodeFences(text)
	if !gjson.Valid(content) {
		log.Warn("cv evaluation response is not valid JSON",
			zap.String("candidate_id", candidateID),
			zap.String("persona_id", personaID))
		return fallbackResult(personaID,
			"Unable to evaluate — LLM response parsing failed",
			"Evaluation could not be completed due to a parsing error.")
	}

	result := PersonaResult{
		// The provider may hallucinate an identifier; always force the
		// requested persona.
		PersonaID:   personaID,
		Score:       int(gjson.Get(content, "score").Int()),
		Explanation: gjson.Get(content, "explanation").String(),
	}
	result.Grade = gjson.Get(content, "grade").String()
	if result.Grade == "" {
		result.Grade = Grade(result.Score)
	}
	for _, s := range gjson.Get(content, "strengths").Array() {
		result.Strengths = append(result.Strengths, s.String())
	}
	for _, g := range gjson.Get(content, "gaps").Array() {
		result.Gaps = append(result.Gaps, g.String())
	}
	return result
}

func fallbackResult(personaID, gap, explanation string) PersonaResult {
	return PersonaResult{
		PersonaID:   personaID,
		Score:       0,
		Grade:       "F",
		Strengths:   []string{},
		Gaps:        []string{gap},
		Explanation: explanation,
	}
}

// stripCodeFences removes a leading ```/```json fence pair when present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.Split(s, "```")
	if len(parts) < 2 {
		return s
	}
	s = parts[1]
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
