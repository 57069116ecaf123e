package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const jdGeneratorPrompt = `
You are a senior HR and talent acquisition expert.

Your task is to generate a clean, professional, hiring-ready Job Description (JD).

─────────────────────────────
CRITICAL SOURCE OF TRUTH
─────────────────────────────
The IDEAL CANDIDATE PROFILE below is your SINGLE SOURCE OF TRUTH.
- You MUST use the exact content from this profile (responsibilities, skills, traits).
- The intake-form data is ONLY for metadata (location, reporting line, etc.).
- If the form data contradicts the profile, IGNORE THE FORM DATA.
- Do NOT hallucinate or invent new requirements.

─────────────────────────────
IDEAL CANDIDATE PROFILE (PRIMARY)
─────────────────────────────
%s

─────────────────────────────
METADATA & CONTEXT
─────────────────────────────
Role: %s
Department: %s
Location: %s
Experience: %s

INTAKE FORM DATA (SECONDARY, metadata only):
%s

─────────────────────────────
OUTPUT FORMAT (STRICTLY FOLLOW)
─────────────────────────────

# %s

**Location:** %s

## Role Overview
Write 2-3 concise sentences explaining the purpose of the role and its impact.
Base this ONLY on the profile_summary from the profile.

## Key Responsibilities
Use ONLY key_responsibilities_refined from the profile.
Write 5-7 bullet points.

STRICT BULLET RULES:
- ONE LINE ONLY per bullet.
- MAXIMUM 30 words per bullet.
- Start with "• "
- Focus on outcomes and ownership.
- Do NOT use multiple sentences in one bullet.
- Do NOT use sub-bullets.

## Requirements

### Must-Have Skills
Use ONLY must_have_skills_refined and core_competencies from the profile.
Write 4-6 one-line bullet points starting with "• ", each briefly noting the
expected proficiency level.

### Nice-to-Have Skills
Use ONLY nice_to_have_skills from the profile. Write 2-3 one-line bullets.

## Who Will Succeed in This Role
Use ONLY behavioral_traits and success_metrics. Write 2-3 sentences describing
the mindset and work ethic required. Do NOT repeat earlier content.

─────────────────────────────
FINAL CHECKLIST
─────────────────────────────
- Did you use the profile as the source of truth?
- Are all bullets SINGLE LINE?
- Is the tone professional?
- Output ONLY the formatted JD.
`

// Form fields that duplicate profile content; excluded from the metadata block
// when a profile is present so the prompt has one source of truth.
var profileCoveredFields = map[string]bool{
	"role":                 true,
	"department":           true,
	"experience":           true,
	"key_responsibilities": true,
	"must_have_skills":     true,
}

var (
	experienceRangeRe  = regexp.MustCompile(`\d+\s*[-–]\s*\d+`)
	experienceNumberRe = regexp.MustCompile(`\d+`)
)

// JDGenerator produces a hiring-ready markdown JD from the intake form and the
// ideal-candidate profile.
type JDGenerator struct {
	gen TextGenerator
	log *zap.Logger
}

func NewJDGenerator(gen TextGenerator, log *zap.Logger) *JDGenerator {
	return &JDGenerator{gen: gen, log: log}
}

// GenerateJD renders the JD for the given form. When profileJSON is non-empty
// it is the source of truth and overlapping form fields are withheld from the
// prompt. The role title is the only required field.
func (g *JDGenerator) GenerateJD(ctx context.Context, form JDFormData, profileJSON string) (string, error) {
	if form.RoleTitle == "" {
		return "", fmt.Errorf("role_title is required to generate a JD")
	}

	location := form.Location
	if location == "" {
		location = "Not specified"
	}
	if profileJSON == "" {
		profileJSON = "{}"
	}

	prompt := fmt.Sprintf(jdGeneratorPrompt,
		profileJSON,
		form.RoleTitle, form.Department, location, formatExperience(form.Experience),
		metadataBlock(form, profileJSON != "{}"),
		form.RoleTitle, location)

	text, err := g.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate jd: %w", err)
	}
	return strings.TrimSpace(normalizeBullets(text)), nil
}

// metadataBlock lists the form fields as "key: value" lines, hiding fields the
// profile already covers when one was supplied.
func metadataBlock(form JDFormData, hasProfile bool) string {
	fields := []struct {
		key   string
		value string
	}{
		{"role", form.RoleTitle},
		{"department", form.Department},
		{"location", form.Location},
		{"experience", form.Experience},
		{"work_mode", form.WorkMode},
		{"must_have_skills", form.MustHaveSkills},
		{"key_responsibilities", form.KeyResponsibilities},
		{"reporting_to", form.ReportingTo},
		{"additional_info", form.AdditionalInfo},
	}

	var lines []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if hasProfile && profileCoveredFields[f.key] {
			continue
		}
		lines = append(lines, f.key+": "+f.value)
	}
	if len(lines) == 0 {
		return "(No additional metadata)"
	}
	return strings.Join(lines, "\n")
}

// formatExperience turns free-text experience input into a readable phrase.
func formatExperience(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "Not specified"
	}
	lower := strings.ToLower(s)

	if span := experienceRangeRe.FindString(s); span != "" {
		span = strings.ReplaceAll(strings.ReplaceAll(span, " ", ""), "\t", "")
		if strings.Contains(lower, "year") {
			return "Approximately " + span
		}
		return "Approximately " + span + " years"
	}

	if num := experienceNumberRe.FindString(s); num != "" && strings.Contains(lower, "year") {
		return fmt.Sprintf("Relevant experience of %s years or equivalent", num)
	}
	return s
}

// normalizeBullets rewrites every bullet style ("•", "*", "-") to markdown
// "- " so the JD renders consistently. Headings and rules are left alone.
func normalizeBullets(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		stripped := strings.TrimLeft(line, " \t")

		switch {
		case strings.HasPrefix(stripped, "#"),
			strings.HasPrefix(stripped, "---"),
			strings.HasPrefix(stripped, "***"):
			lines = append(lines, line)
		case strings.HasPrefix(stripped, "-"), strings.HasPrefix(stripped, "*"):
			content := strings.TrimSpace(strings.TrimLeft(stripped, "-* "))
			lines = append(lines, "- "+content)
		case strings.HasPrefix(stripped, "•"):
			content := strings.TrimSpace(strings.TrimPrefix(stripped, "•"))
			lines = append(lines, "- "+content)
		default:
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
