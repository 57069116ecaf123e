package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type staticGenerator struct {
	text string
	err  error
}

func (s *staticGenerator) GenerateText(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestExtractProfileReturnsParsedJSON(t *testing.T) {
	profile := `{"role": "Backend Engineer", "profile_summary": "Builds services."}`
	p := NewProfileExtractor(&staticGenerator{text: "```json\n" + profile + "\n```"}, zap.NewNop())

	got := p.ExtractProfile(context.Background(), "some JD text", "Engineering")
	if got != profile {
		t.Errorf("ExtractProfile = %q, want %q", got, profile)
	}
}

func TestExtractProfileFallsBackToJD(t *testing.T) {
	jd := "We are hiring a backend engineer."
	tests := []struct {
		name string
		gen  *staticGenerator
	}{
		{"generation error", &staticGenerator{err: errors.New("boom")}},
		{"invalid json", &staticGenerator{text: "not json at all"}},
		{"json without role", &staticGenerator{text: `{"summary": "missing role"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfileExtractor(tt.gen, zap.NewNop())
			if got := p.ExtractProfile(context.Background(), jd, ""); got != jd {
				t.Errorf("ExtractProfile = %q, want JD fallback", got)
			}
		})
	}
}

func TestExtractProfileDefaultsDepartment(t *testing.T) {
	var captured string
	p := NewProfileExtractor(&capturingGenerator{captured: &captured}, zap.NewNop())

	p.ExtractProfile(context.Background(), "jd", "")
	if !strings.Contains(captured, `"General"`) {
		t.Error("prompt should carry the default department")
	}
}

type capturingGenerator struct {
	captured *string
}

func (c *capturingGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	*c.captured = prompt
	return "", errors.New("capture only")
}
