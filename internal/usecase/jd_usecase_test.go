package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/model"
	"go.uber.org/zap"
)

type cannedGenerator struct {
	text string
}

func (g *cannedGenerator) GenerateText(context.Context, string) (string, error) {
	return g.text, nil
}

func newJDTestUsecase(text string) *JDUsecase {
	gen := &cannedGenerator{text: text}
	return NewJDUsecase(nil,
		agent.NewJDClarifier(gen, zap.NewNop()),
		agent.NewJDGenerator(gen, zap.NewNop()),
		zap.NewNop())
}

func TestJDGenerateWithoutJobPersistence(t *testing.T) {
	uc := newJDTestUsecase("# Backend Engineer\n• Build services")

	jd, err := uc.Generate(context.Background(), &model.User{Role: model.RoleHR},
		dto.JDGenerateRequest{JDFormData: agent.JDFormData{RoleTitle: "Backend Engineer"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(jd, "- Build services") {
		t.Errorf("jd = %q, want normalized bullet", jd)
	}
}

func TestJDGenerateRejectsInvalidJobID(t *testing.T) {
	uc := newJDTestUsecase("# JD")

	_, err := uc.Generate(context.Background(), &model.User{Role: model.RoleHR},
		dto.JDGenerateRequest{JobID: "not-a-uuid"})
	if err == nil {
		t.Error("expected error for malformed job id")
	}
}

func TestJDClarifyPassesFormThrough(t *testing.T) {
	payload := `[{"id": "q1", "question": "What level of ownership will this role hold?",
		"options": ["A", "B", "C", "D"], "target_section": "ownership"}]`
	uc := newJDTestUsecase(payload)

	questions := uc.Clarify(context.Background(), agent.JDFormData{RoleTitle: "Backend Engineer"})
	if len(questions) != 1 || questions[0].ID != "q1" {
		t.Fatalf("questions = %+v, want q1", questions)
	}
}
