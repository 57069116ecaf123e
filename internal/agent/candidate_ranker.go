package agent

import (
	"fmt"
	"sort"
)

const defaultTopN = 10

// ShortlistEntry is one ranked candidate in the final shortlist.
type ShortlistEntry struct {
	Rank           int             `json:"rank"`
	CandidateID    string          `json:"candidate_id"`
	Persona        string          `json:"persona"`
	PersonaName    string          `json:"persona_name"`
	Score          int             `json:"score"`
	Grade          string          `json:"grade"`
	Why            string          `json:"why"`
	PersonaResults []PersonaResult `json:"persona_results"`
}

// RankResult is the full output of a ranking run. It is always well formed;
// empty input yields an empty shortlist with an explanatory note.
type RankResult struct {
	Shortlist           []ShortlistEntry `json:"shortlist"`
	TotalEvaluated      int              `json:"total_evaluated"`
	PersonaDistribution map[string]int   `json:"persona_distribution"`
	Notes               string           `json:"notes"`
}

// RankCandidates sorts evaluations by overall score (stable, descending) and
// walks the result collecting up to topN entries. No persona may fill more
// than max(4, topN/2) slots; candidates from capped-out personas are skipped
// rather than backfilled, which can leave the shortlist short of topN.
func RankCandidates(evaluations []Evaluation, topN int) RankResult {
	if topN <= 0 {
		topN = defaultTopN
	}

	if len(evaluations) == 0 {
		return RankResult{
			Shortlist:           []ShortlistEntry{},
			TotalEvaluated:      0,
			PersonaDistribution: map[string]int{},
			Notes:               "No candidates were evaluated.",
		}
	}

	sorted := make([]Evaluation, len(evaluations))
	copy(sorted, evaluations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallScore > sorted[j].OverallScore
	})

	maxPerPersona := topN / 2
	if maxPerPersona < 4 {
		maxPerPersona = 4
	}

	shortlist := make([]ShortlistEntry, 0, topN)
	personaCount := make(map[string]int)

	for _, cand := range sorted {
		persona := cand.BestFitPersona
		if persona == "" {
			persona = "unknown"
		}
		if personaCount[persona] >= maxPerPersona {
			continue
		}

		personaName := cand.BestFitPersonaName
		if personaName == "" {
			personaName = persona
		}

		shortlist = append(shortlist, ShortlistEntry{
			Rank:           len(shortlist) + 1,
			CandidateID:    cand.CandidateID,
			Persona:        persona,
			PersonaName:    personaName,
			Score:          cand.OverallScore,
			Grade:          cand.OverallGrade,
			Why:            cand.Summary,
			PersonaResults: cand.PersonaResults,
		})
		personaCount[persona]++

		if len(shortlist) >= topN {
			break
		}
	}

	distribution := make(map[string]int)
	for _, entry := range shortlist {
		distribution[entry.PersonaName]++
	}

	return RankResult{
		Shortlist:           shortlist,
		TotalEvaluated:      len(evaluations),
		PersonaDistribution: distribution,
		Notes: fmt.Sprintf(
			"Top %d candidates selected from %d evaluated. Balanced across %d persona type(s).",
			len(shortlist), len(evaluations), len(distribution)),
	}
}
