package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const jdClarifyPrompt = `You are a senior recruitment strategist.

SCENARIO:
The Head of %s has requested to hire a %s.
The Head may not be fully aware of every detail this role needs.
Your job is to generate clarifying questions FROM the Head's perspective,
questions that help the Head think more deeply about what they truly need.

CONTEXT FROM THE INTAKE FORM:
- Job Title: %s
- Department: %s
- Location: %s
- Experience Level: %s
- Work Mode: %s
- Must-Have Skills: %s
- Key Responsibilities: %s
- Reporting To: %s
- Additional Info: %s

TASK:
Generate exactly 5 multiple-choice questions that:
1. Are phrased as if asking the Department Head directly
2. Help clarify responsibilities, success metrics, team dynamics, authority level, and ownership
3. Each question MUST have exactly 4 options
4. Options should be meaningful, specific to the role, and allow MULTI-SELECT
5. Focus on gaps in the form data that the Head might not have thought about

OUTPUT FORMAT (STRICT JSON ARRAY ONLY, EXACTLY 5 QUESTIONS):
[
  {
    "id": "q1",
    "question": "As the Head of the department, ...",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "target_section": "responsibilities|authority|ownership|success_metrics|team_dynamics"
  }
]

RULES:
- Output ONLY a valid JSON array with exactly 5 questions
- NEVER include "Not Applicable" as an option
- Each question MUST have exactly 4 options
- Questions must feel like they come from a Head-of-Department conversation
- No explanations, no markdown, no extra text
- Do NOT ask about salary, CTC, compensation, work mode, remote/hybrid, travel, shift timing, or urgency
`

const (
	clarifyQuestionOptions = 4
	clarifyQuestionLimit   = 5
)

// Topics the clarifier must never ask about; the intake form already covers
// them and they derail the Head-of-Department conversation.
var bannedQuestionKeywords = []string{
	"salary", "ctc", "compensation",
	"years of experience", "years experience",
	"work mode", "remote", "hybrid", "onsite",
	"travel", "shift", "timing", "working hours",
	"urgency", "how urgent",
}

// ClarifyingQuestion is one multiple-choice question put to the requesting
// department head before a JD is generated.
type ClarifyingQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	TargetSection string   `json:"target_section"`
}

// JDFormData is the intake-form payload the JD agents work from.
type JDFormData struct {
	RoleTitle           string `json:"role_title"`
	Department          string `json:"department"`
	Location            string `json:"location"`
	Experience          string `json:"experience"`
	WorkMode            string `json:"work_mode"`
	MustHaveSkills      string `json:"must_have_skills"`
	KeyResponsibilities string `json:"key_responsibilities"`
	ReportingTo         string `json:"reporting_to"`
	AdditionalInfo      string `json:"additional_info"`
}

// JDClarifier generates head-of-department clarifying questions for a role.
// It needs no draft JD; the intake form alone is enough.
type JDClarifier struct {
	gen TextGenerator
	log *zap.Logger
}

func NewJDClarifier(gen TextGenerator, log *zap.Logger) *JDClarifier {
	return &JDClarifier{gen: gen, log: log}
}

// GenerateQuestions returns up to 5 validated questions. Generation or parse
// failure yields an empty slice, never an error; the JD flow continues without
// clarification in that case.
func (c *JDClarifier) GenerateQuestions(ctx context.Context, form JDFormData) []ClarifyingQuestion {
	title := form.RoleTitle
	if title == "" {
		title = "Unknown Role"
	}
	department := form.Department
	if department == "" {
		department = "General"
	}
	additional := form.AdditionalInfo
	if additional == "" {
		additional = "None provided"
	}

	prompt := fmt.Sprintf(jdClarifyPrompt,
		department, title,
		title, department, form.Location, form.Experience, form.WorkMode,
		form.MustHaveSkills, form.KeyResponsibilities, form.ReportingTo, additional)

	text, err := c.gen.GenerateText(ctx, prompt)
	if err != nil {
		c.log.Warn("clarifying question generation failed", zap.Error(err))
		return []ClarifyingQuestion{}
	}

	var questions []ClarifyingQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &questions); err != nil {
		c.log.Warn("clarifying question response could not be parsed", zap.Error(err))
		return []ClarifyingQuestion{}
	}

	valid := make([]ClarifyingQuestion, 0, clarifyQuestionLimit)
	for _, q := range questions {
		if !isValidQuestion(q) {
			continue
		}
		valid = append(valid, q)
		if len(valid) == clarifyQuestionLimit {
			break
		}
	}
	return valid
}

func isValidQuestion(q ClarifyingQuestion) bool {
	if q.ID == "" || q.Question == "" || q.TargetSection == "" {
		return false
	}
	if len(q.Options) != clarifyQuestionOptions {
		return false
	}
	lower := strings.ToLower(q.Question)
	for _, banned := range bannedQuestionKeywords {
		if strings.Contains(lower, banned) {
			return false
		}
	}
	return true
}
