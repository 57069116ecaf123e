package agent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestBuildPersonasForcesStableIDs(t *testing.T) {
	gen := &staticGenerator{text: `[
		{"persona_id": "WRONG", "name": "The Specialist"},
		{"persona_id": "ALSO-WRONG", "name": "The Generalist"}
	]`}
	b := NewPersonaBuilder(gen, zap.NewNop())

	personas := b.BuildPersonas(context.Background(), "some profile")

	if len(personas) != 2 {
		t.Fatalf("expected 2 personas, got %d", len(personas))
	}
	if personas[0].PersonaID != "P1" || personas[1].PersonaID != "P2" {
		t.Errorf("persona ids = %q, %q; want P1, P2", personas[0].PersonaID, personas[1].PersonaID)
	}
	if personas[0].Name != "The Specialist" {
		t.Errorf("name = %q, want The Specialist", personas[0].Name)
	}
}

func TestBuildPersonasStripsCodeFences(t *testing.T) {
	gen := &staticGenerator{text: "```json\n[{\"persona_id\": \"P1\", \"name\": \"The Builder\"}]\n```"}
	b := NewPersonaBuilder(gen, zap.NewNop())

	personas := b.BuildPersonas(context.Background(), "profile")

	if len(personas) != 1 || personas[0].Name != "The Builder" {
		t.Fatalf("fenced persona array not parsed: %+v", personas)
	}
}

func TestBuildPersonasFallback(t *testing.T) {
	tests := []struct {
		name string
		gen  *staticGenerator
	}{
		{"generation error", &staticGenerator{err: errors.New("provider down")}},
		{"invalid json", &staticGenerator{text: "not json"}},
		{"empty array", &staticGenerator{text: "[]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewPersonaBuilder(tt.gen, zap.NewNop())
			personas := b.BuildPersonas(context.Background(), "profile")

			if len(personas) != 1 {
				t.Fatalf("expected single fallback persona, got %d", len(personas))
			}
			if personas[0].PersonaID != "P1" {
				t.Errorf("fallback persona id = %q, want P1", personas[0].PersonaID)
			}
		})
	}
}
