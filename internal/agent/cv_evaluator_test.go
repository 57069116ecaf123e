package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fakeGenerator returns canned responses keyed by persona id found in the prompt.
type fakeGenerator struct {
	responses map[string]string
	err       error
	calls     int
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for id, resp := range f.responses {
		if strings.Contains(prompt, fmt.Sprintf("%q", id)) {
			return resp, nil
		}
	}
	return "", errors.New("no canned response")
}

func personaResponse(personaID string, score int) string {
	return fmt.Sprintf(`{"persona_id": %q, "score": %d, "grade": %q,
		"strengths": ["good fit"], "gaps": [], "explanation": "Explanation for %s"}`,
		personaID, score, Grade(score), personaID)
}

func TestEvaluateCandidateAggregation(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{
		"P1": personaResponse("P1", 80),
		"P2": personaResponse("P2", 60),
	}}
	e := NewEvaluator(gen, zap.NewNop())

	eval := e.EvaluateCandidate(context.Background(),
		CandidateCV{CandidateID: "cand-1"},
		[]Persona{{PersonaID: "P1", Name: "Specialist"}, {PersonaID: "P2", Name: "Generalist"}})

	if eval.OverallScore != 70 {
		t.Errorf("overall_score = %d, want 70", eval.OverallScore)
	}
	if eval.OverallGrade != "B-" {
		t.Errorf("overall_grade = %q, want B-", eval.OverallGrade)
	}
	if eval.BestFitPersona != "P1" {
		t.Errorf("best_fit_persona = %q, want P1", eval.BestFitPersona)
	}
	if eval.BestFitPersonaName != "Specialist" {
		t.Errorf("best_fit_persona_name = %q, want Specialist", eval.BestFitPersonaName)
	}
	if eval.Summary != "Explanation for P1" {
		t.Errorf("summary = %q, want best-fit explanation", eval.Summary)
	}
}

func TestEvaluateCandidateTruncatedMean(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{
		"P1": personaResponse("P1", 80),
		"P2": personaResponse("P2", 61),
	}}
	e := NewEvaluator(gen, zap.NewNop())

	eval := e.EvaluateCandidate(context.Background(),
		CandidateCV{CandidateID: "cand-1"},
		[]Persona{{PersonaID: "P1"}, {PersonaID: "P2"}})

	// (80+61)/2 = 70.5, truncated to 70.
	if eval.OverallScore != 70 {
		t.Errorf("overall_score = %d, want truncated mean 70", eval.OverallScore)
	}
}

func TestEvaluateCandidateTiePrefersFirstPersona(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{
		"P1": personaResponse("P1", 75),
		"P2": personaResponse("P2", 75),
	}}
	e := NewEvaluator(gen, zap.NewNop())

	eval := e.EvaluateCandidate(context.Background(),
		CandidateCV{CandidateID: "cand-1"},
		[]Persona{{PersonaID: "P1"}, {PersonaID: "P2"}})

	if eval.BestFitPersona != "P1" {
		t.Errorf("best_fit_persona = %q, want first-seen P1 on tie", eval.BestFitPersona)
	}
}

func TestEvaluateCandidateSinglePersonaFailureIsIsolated(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{
		"P1": "this is not json at all",
		"P2": personaResponse("P2", 90),
	}}
	e := NewEvaluator(gen, zap.NewNop())

	eval := e.EvaluateCandidate(context.Background(),
		CandidateCV{CandidateID: "cand-1"},
		[]Persona{{PersonaID: "P1"}, {PersonaID: "P2"}})

	if len(eval.PersonaResults) != 2 {
		t.Fatalf("expected 2 persona results, got %d", len(eval.PersonaResults))
	}
	if eval.PersonaResults[0].Score != 0 || eval.PersonaResults[0].Grade != "F" {
		t.Errorf("failed persona should fall back to 0/F, got %d/%s",
			eval.PersonaResults[0].Score, eval.PersonaResults[0].Grade)
	}
	if len(eval.PersonaResults[0].Gaps) == 0 {
		t.Error("fallback result should carry an explanatory gap entry")
	}
	if eval.PersonaResults[1].Score != 90 {
		t.Errorf("healthy persona score = %d, want 90", eval.PersonaResults[1].Score)
	}
	if eval.BestFitPersona != "P2" {
		t.Errorf("best_fit_persona = %q, want P2", eval.BestFitPersona)
	}
}

func TestParsePersonaResult(t *testing.T) {
	log := zap.NewNop()

	tests := []struct {
		name      string
		text      string
		wantScore int
		wantGrade string
	}{
		{
			name:      "plain json",
			text:      `{"persona_id": "P9", "score": 82, "grade": "B+", "strengths": ["a"], "gaps": ["b"], "explanation": "ok"}`,
			wantScore: 82,
			wantGrade: "B+",
		},
		{
			name:      "fenced json",
			text:      "```json\n{\"persona_id\": \"P9\", \"score\": 67, \"grade\": \"C+\", \"strengths\": [], \"gaps\": [], \"explanation\": \"ok\"}\n```",
			wantScore: 67,
			wantGrade: "C+",
		},
		{
			name:      "garbage falls back",
			text:      "I could not evaluate this candidate, sorry!",
			wantScore: 0,
			wantGrade: "F",
		},
		{
			name:      "missing grade derived from score",
			text:      `{"score": 88, "explanation": "ok"}`,
			wantScore: 88,
			wantGrade: "A-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePersonaResult(tt.text, "P1", log, "cand-1")
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Grade != tt.wantGrade {
				t.Errorf("grade = %q, want %q", got.Grade, tt.wantGrade)
			}
			// The requested persona id always wins over whatever the
			// response claimed.
			if got.PersonaID != "P1" {
				t.Errorf("persona_id = %q, want forced P1", got.PersonaID)
			}
		})
	}
}

func TestEvaluateCandidateGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	e := NewEvaluator(gen, zap.NewNop())

	eval := e.EvaluateCandidate(context.Background(),
		CandidateCV{CandidateID: "cand-1"},
		[]Persona{{PersonaID: "P1"}, {PersonaID: "P2"}})

	if gen.calls != 2 {
		t.Errorf("expected both personas attempted, got %d calls", gen.calls)
	}
	if eval.OverallScore != 0 || eval.OverallGrade != "F" {
		t.Errorf("total failure should yield 0/F, got %d/%s", eval.OverallScore, eval.OverallGrade)
	}
}
