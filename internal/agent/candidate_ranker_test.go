package agent

import (
	"fmt"
	"testing"
)

func makeEval(id, persona string, score int) Evaluation {
	return Evaluation{
		CandidateID:        id,
		OverallScore:       score,
		OverallGrade:       Grade(score),
		BestFitPersona:     persona,
		BestFitPersonaName: "Persona " + persona,
	}
}

func TestRankCandidatesEmptyInput(t *testing.T) {
	result := RankCandidates(nil, 10)

	if len(result.Shortlist) != 0 {
		t.Errorf("expected empty shortlist, got %d entries", len(result.Shortlist))
	}
	if result.TotalEvaluated != 0 {
		t.Errorf("expected total_evaluated 0, got %d", result.TotalEvaluated)
	}
	if result.Notes == "" {
		t.Error("expected a non-empty notes string for empty input")
	}
}

func TestRankCandidatesOrderingAndRanks(t *testing.T) {
	evals := []Evaluation{
		makeEval("c1", "P1", 60),
		makeEval("c2", "P2", 90),
		makeEval("c3", "P1", 75),
		makeEval("c4", "P3", 90),
	}

	result := RankCandidates(evals, 10)

	if result.TotalEvaluated != 4 {
		t.Fatalf("total_evaluated = %d, want 4", result.TotalEvaluated)
	}
	for i, entry := range result.Shortlist {
		if entry.Rank != i+1 {
			t.Errorf("entry %d has rank %d, want %d", i, entry.Rank, i+1)
		}
		if i > 0 && entry.Score > result.Shortlist[i-1].Score {
			t.Errorf("scores not non-increasing at rank %d", entry.Rank)
		}
	}

	// Ties keep input order: c2 (P2) was seen before c4 (P3).
	if result.Shortlist[0].CandidateID != "c2" || result.Shortlist[1].CandidateID != "c4" {
		t.Errorf("tie ordering not stable: got %s then %s",
			result.Shortlist[0].CandidateID, result.Shortlist[1].CandidateID)
	}
}

func TestRankCandidatesPersonaCap(t *testing.T) {
	// 12 evaluations, 3 personas with 4 candidates each, topN=10:
	// cap is max(4, 10/2) = 5, so the shortlist fills all 10 slots.
	var evals []Evaluation
	for i := 0; i < 12; i++ {
		persona := fmt.Sprintf("P%d", i%3+1)
		evals = append(evals, makeEval(fmt.Sprintf("c%d", i), persona, 100-i))
	}

	result := RankCandidates(evals, 10)

	if len(result.Shortlist) != 10 {
		t.Fatalf("shortlist has %d entries, want 10", len(result.Shortlist))
	}
	counts := map[string]int{}
	for _, entry := range result.Shortlist {
		counts[entry.Persona]++
	}
	for persona, n := range counts {
		if n > 5 {
			t.Errorf("persona %s has %d entries, cap is 5", persona, n)
		}
	}
}

func TestRankCandidatesSkipsCappedPersonas(t *testing.T) {
	// Six candidates all best-fitting one persona with topN=4: cap is
	// max(4, 2) = 4, so only four make the shortlist even though more
	// qualify. Capped-out personas are skipped, not backfilled.
	var evals []Evaluation
	for i := 0; i < 6; i++ {
		evals = append(evals, makeEval(fmt.Sprintf("c%d", i), "P1", 90-i))
	}

	result := RankCandidates(evals, 4)

	if len(result.Shortlist) != 4 {
		t.Fatalf("shortlist has %d entries, want 4", len(result.Shortlist))
	}
	if result.PersonaDistribution["Persona P1"] != 4 {
		t.Errorf("persona distribution = %v, want 4 for Persona P1", result.PersonaDistribution)
	}
}

func TestRankCandidatesAtMostTopN(t *testing.T) {
	var evals []Evaluation
	for i := 0; i < 30; i++ {
		evals = append(evals, makeEval(fmt.Sprintf("c%d", i), fmt.Sprintf("P%d", i%6), 50+i))
	}

	for _, topN := range []int{1, 3, 10, 25} {
		result := RankCandidates(evals, topN)
		if len(result.Shortlist) > topN {
			t.Errorf("topN=%d: shortlist has %d entries", topN, len(result.Shortlist))
		}
	}
}

func TestRankCandidatesDefaultTopN(t *testing.T) {
	var evals []Evaluation
	for i := 0; i < 15; i++ {
		evals = append(evals, makeEval(fmt.Sprintf("c%d", i), fmt.Sprintf("P%d", i%5), 50+i))
	}

	result := RankCandidates(evals, 0)
	if len(result.Shortlist) != 10 {
		t.Errorf("default topN shortlist has %d entries, want 10", len(result.Shortlist))
	}
}
