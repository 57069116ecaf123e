package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/hiresage/recruitai/internal/agent"
)

func TestGeneratePersonasRequiresProfile(t *testing.T) {
	uc := &PipelineUsecase{}
	result := uc.GeneratePersonas(context.Background(), "")
	if result.Error == "" {
		t.Error("expected error for empty profile")
	}
	if result.Personas == nil {
		t.Error("personas should be an empty slice, not nil")
	}
}

func TestRankShortlistEmptyInput(t *testing.T) {
	uc := &PipelineUsecase{}
	result := uc.RankShortlist(nil, 10)
	if result.Error == "" {
		t.Error("expected error for empty evaluations")
	}
	if len(result.Shortlist) != 0 {
		t.Errorf("shortlist should be empty, got %d entries", len(result.Shortlist))
	}
}

func TestCollectFindingsUsesBestFitPersona(t *testing.T) {
	eval := agent.Evaluation{
		BestFitPersona: "P2",
		PersonaResults: []agent.PersonaResult{
			{PersonaID: "P1", Strengths: []string{"wrong"}, Gaps: []string{"wrong"}},
			{PersonaID: "P2", Strengths: []string{"go", "sql"}, Gaps: []string{"k8s"}},
		},
	}

	strengths, weaknesses := collectFindings(eval)
	if strengths != `["go","sql"]` {
		t.Errorf("strengths = %q", strengths)
	}
	if weaknesses != `["k8s"]` {
		t.Errorf("weaknesses = %q", weaknesses)
	}
}

func TestCollectFindingsNoMatch(t *testing.T) {
	strengths, weaknesses := collectFindings(agent.Evaluation{BestFitPersona: "P9"})
	if strengths != "" || weaknesses != "" {
		t.Errorf("expected empty findings, got %q / %q", strengths, weaknesses)
	}
}

func TestParseEndDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
		wantErr bool
	}{
		{"empty", "", true, false},
		{"date only", "2026-10-01", false, false},
		{"rfc3339", "2026-10-01T12:00:00Z", false, false},
		{"garbage", "next tuesday", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEndDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEndDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("parseEndDate(%q) = %v, wantNil %v", tt.raw, got, tt.wantNil)
			}
			if got != nil && got.Before(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("parsed time %v is before expected date", got)
			}
		})
	}
}
