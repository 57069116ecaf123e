package agent

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestGenerateJDRequiresRoleTitle(t *testing.T) {
	g := NewJDGenerator(&staticGenerator{text: "irrelevant"}, zap.NewNop())
	if _, err := g.GenerateJD(context.Background(), JDFormData{}, ""); err == nil {
		t.Error("expected error for missing role title")
	}
}

func TestGenerateJDNormalizesOutput(t *testing.T) {
	raw := "# AI Engineer\n\n## Key Responsibilities\n• Own the agent pipeline\n* Ship weekly\n  - Review code\n"
	g := NewJDGenerator(&staticGenerator{text: raw}, zap.NewNop())

	jd, err := g.GenerateJD(context.Background(), JDFormData{RoleTitle: "AI Engineer"}, "")
	if err != nil {
		t.Fatalf("GenerateJD: %v", err)
	}
	for _, want := range []string{"- Own the agent pipeline", "- Ship weekly", "- Review code"} {
		if !strings.Contains(jd, want) {
			t.Errorf("jd missing normalized bullet %q:\n%s", want, jd)
		}
	}
	if strings.Contains(jd, "•") {
		t.Error("jd still contains raw bullet characters")
	}
	if !strings.Contains(jd, "# AI Engineer") {
		t.Error("heading was rewritten")
	}
}

func TestGenerateJDHidesProfileCoveredFormFields(t *testing.T) {
	var captured string
	g := NewJDGenerator(&capturingJDGenerator{captured: &captured}, zap.NewNop())

	form := JDFormData{
		RoleTitle:           "AI Engineer",
		MustHaveSkills:      "Python, LLMs",
		KeyResponsibilities: "Build agents",
		ReportingTo:         "Tech Lead",
	}
	profile := `{"role": "AI Engineer", "must_have_skills_refined": ["Go"]}`
	if _, err := g.GenerateJD(context.Background(), form, profile); err != nil {
		t.Fatalf("GenerateJD: %v", err)
	}

	if !strings.Contains(captured, profile) {
		t.Error("prompt does not carry the profile")
	}
	if strings.Contains(captured, "must_have_skills: Python, LLMs") {
		t.Error("profile-covered form field leaked into the metadata block")
	}
	if !strings.Contains(captured, "reporting_to: Tech Lead") {
		t.Error("metadata-only field missing from the prompt")
	}
}

type capturingJDGenerator struct {
	captured *string
}

func (c *capturingJDGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	*c.captured = prompt
	return "# JD", nil
}

func TestFormatExperience(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Not specified"},
		{"3-5", "Approximately 3-5 years"},
		{"3-5 years", "Approximately 3-5"},
		{"4 years", "Relevant experience of 4 years or equivalent"},
		{"senior level", "senior level"},
	}
	for _, tt := range tests {
		if got := formatExperience(tt.in); got != tt.want {
			t.Errorf("formatExperience(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
