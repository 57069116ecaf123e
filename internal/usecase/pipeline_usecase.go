package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"go.uber.org/zap"
)

// PersonasResult is always well formed; callers check Error instead of
// handling failures out of band.
type PersonasResult struct {
	Personas []agent.Persona `json:"personas"`
	Error    string          `json:"error,omitempty"`
}

type EvaluationsResult struct {
	Evaluations []agent.Evaluation `json:"evaluations"`
	Error       string             `json:"error,omitempty"`
}

type RankingResult struct {
	agent.RankResult
	Error string `json:"error,omitempty"`
}

type FullPipelineResult struct {
	Personas    []agent.Persona    `json:"personas"`
	Evaluations []agent.Evaluation `json:"evaluations"`
	Ranking     agent.RankResult   `json:"ranking"`
	Error       string             `json:"error,omitempty"`
}

// PipelineUsecase orchestrates the CV analysis pipeline:
// profile → personas → per-candidate evaluation → ranked shortlist.
type PipelineUsecase struct {
	jobRepo       *repository.JobRepository
	candidateRepo *repository.CandidateRepository
	evalRepo      *repository.EvaluationRepository
	builder       *agent.PersonaBuilder
	evaluator     *agent.Evaluator
	log           *zap.Logger
}

func NewPipelineUsecase(
	jobRepo *repository.JobRepository,
	candidateRepo *repository.CandidateRepository,
	evalRepo *repository.EvaluationRepository,
	builder *agent.PersonaBuilder,
	evaluator *agent.Evaluator,
	log *zap.Logger,
) *PipelineUsecase {
	return &PipelineUsecase{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		evalRepo:      evalRepo,
		builder:       builder,
		evaluator:     evaluator,
		log:           log,
	}
}

func (uc *PipelineUsecase) GeneratePersonas(ctx context.Context, profile string) PersonasResult {
	if profile == "" {
		return PersonasResult{Personas: []agent.Persona{}, Error: "Missing 'profile' in request body"}
	}
	return PersonasResult{Personas: uc.builder.BuildPersonas(ctx, profile)}
}

// EvaluateCandidates scores every candidate attached to the job against the
// supplied personas.
func (uc *PipelineUsecase) EvaluateCandidates(ctx context.Context, jobID uuid.UUID, personas []agent.Persona) EvaluationsResult {
	if len(personas) == 0 {
		return EvaluationsResult{Evaluations: []agent.Evaluation{}, Error: "Persona list is empty"}
	}

	candidates, err := uc.candidateRepo.FindByJob(jobID)
	if err != nil {
		uc.log.Error("failed to load candidates", zap.String("job_id", jobID.String()), zap.Error(err))
		return EvaluationsResult{Evaluations: []agent.Evaluation{}, Error: "Failed to load candidates"}
	}
	if len(candidates) == 0 {
		return EvaluationsResult{Evaluations: []agent.Evaluation{}, Error: "No candidates found for this job"}
	}

	evaluations := make([]agent.Evaluation, 0, len(candidates))
	for _, cand := range candidates {
		cv := agent.CandidateCV{
			CandidateID: cand.ID.String(),
			Summary:     cand.Name,
			RawText:     cand.ResumeText,
		}
		evaluations = append(evaluations, uc.evaluator.EvaluateCandidate(ctx, cv, personas))
	}
	return EvaluationsResult{Evaluations: evaluations}
}

func (uc *PipelineUsecase) RankShortlist(evaluations []agent.Evaluation, topN int) RankingResult {
	if len(evaluations) == 0 {
		return RankingResult{
			RankResult: agent.RankCandidates(nil, topN),
			Error:      "No evaluations provided",
		}
	}
	return RankingResult{RankResult: agent.RankCandidates(evaluations, topN)}
}

// RunFullPipeline runs the end-to-end flow for one job and persists an
// evaluation record per candidate that has none yet.
func (uc *PipelineUsecase) RunFullPipeline(ctx context.Context, jobID uuid.UUID, topN int) FullPipelineResult {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return FullPipelineResult{Error: "Job not found"}
	}

	profile := job.ProfileJSON
	if profile == "" {
		profile = job.JDText
	}
	if profile == "" {
		return FullPipelineResult{Error: "Job has neither a profile nor JD text"}
	}

	personas := uc.builder.BuildPersonas(ctx, profile)

	evalResult := uc.EvaluateCandidates(ctx, jobID, personas)
	if evalResult.Error != "" {
		return FullPipelineResult{
			Personas:    personas,
			Evaluations: []agent.Evaluation{},
			Ranking:     agent.RankCandidates(nil, topN),
			Error:       evalResult.Error,
		}
	}

	uc.persistEvaluations(jobID, evalResult.Evaluations)

	return FullPipelineResult{
		Personas:    personas,
		Evaluations: evalResult.Evaluations,
		Ranking:     agent.RankCandidates(evalResult.Evaluations, topN),
	}
}

func (uc *PipelineUsecase) persistEvaluations(jobID uuid.UUID, evaluations []agent.Evaluation) {
	for _, eval := range evaluations {
		candidateID, err := uuid.Parse(eval.CandidateID)
		if err != nil {
			continue
		}
		exists, err := uc.evalRepo.ExistsForCandidate(candidateID)
		if err != nil || exists {
			continue
		}

		personaScores, _ := json.Marshal(eval.PersonaResults)
		strengths, weaknesses := collectFindings(eval)

		record := model.CandidateEvaluation{
			CandidateID:    candidateID,
			JobID:          jobID,
			OverallScore:   eval.OverallScore,
			Grade:          eval.OverallGrade,
			PersonaScores:  string(personaScores),
			Strengths:      strengths,
			Weaknesses:     weaknesses,
			Recommendation: eval.Summary,
			EvaluatedAt:    time.Now(),
		}
		if err := uc.evalRepo.Create(&record); err != nil {
			uc.log.Warn("failed to persist evaluation",
				zap.String("candidate_id", eval.CandidateID), zap.Error(err))
		}
	}
}

func collectFindings(eval agent.Evaluation) (strengths, weaknesses string) {
	for _, r := range eval.PersonaResults {
		if r.PersonaID != eval.BestFitPersona {
			continue
		}
		sb, _ := json.Marshal(r.Strengths)
		wb, _ := json.Marshal(r.Gaps)
		return string(sb), string(wb)
	}
	return "", ""
}
