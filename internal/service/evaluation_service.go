package service

import (
	"encoding/json"
	"fmt"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/repository"
	"asg-backend-V2.0/internal/scoring"
	"asg-backend-V2.0/utilities"
)

// riskItemThreshold is the score below which a saved evaluation is surfaced
// on the project risk board.
const riskItemThreshold = 40

// SubmitEvaluationRequest carries one raw answer from the evaluation form.
type SubmitEvaluationRequest struct {
	ProjectID  uint            `json:"project_id" binding:"required"`
	QuestionID string          `json:"question_id" binding:"required"`
	Response   json.RawMessage `json:"response"`
	Evidence   string          `json:"evidence"`
	Comments   string          `json:"comments"`
}

// QuickEvaluationResult is the outcome of the quick intake flow: the raw
// risk-factor sum classified on the moderate-path thresholds, without
// normalization.
type QuickEvaluationResult struct {
	Factors   scoring.RiskFactors `json:"factors"`
	Total     int                 `json:"total"`
	RiskLevel model.RiskLevel     `json:"risk_level"`
}

type EvaluationService interface {
	SubmitEvaluation(req SubmitEvaluationRequest, evaluatedBy string) (*model.Evaluation, error)
	GetEvaluations(projectID uint) ([]model.Evaluation, error)
	QuickEvaluation(factors scoring.RiskFactors) QuickEvaluationResult
	GetQuestions(phase model.Phase, pillar model.Pillar) ([]catalog.Question, error)
}

type evaluationService struct {
	evalRepo    repository.EvaluationRepository
	projectRepo repository.ProjectRepository
	cat         *catalog.Catalog
}

func NewEvaluationService(evalRepo repository.EvaluationRepository, projectRepo repository.ProjectRepository, cat *catalog.Catalog) EvaluationService {
	return &evaluationService{evalRepo: evalRepo, projectRepo: projectRepo, cat: cat}
}

// SubmitEvaluation normalizes the raw answer, upserts the evaluation for its
// (project, question) key and publishes the save so the project snapshot is
// refreshed. Malformed answers are stored with score 0 rather than rejected;
// forms autosave mid-edit and must never lose data to a scoring error.
func (s *evaluationService) SubmitEvaluation(req SubmitEvaluationRequest, evaluatedBy string) (*model.Evaluation, error) {
	question, ok := s.cat.Question(req.QuestionID)
	if !ok {
		return nil, fmt.Errorf("unknown question %q", req.QuestionID)
	}
	if _, err := s.projectRepo.GetProjectByID(req.ProjectID); err != nil {
		return nil, err
	}

	score := scoring.NormalizeRaw(question.ResponseType, req.Response)

	evaluation := &model.Evaluation{
		ProjectID:   req.ProjectID,
		QuestionID:  req.QuestionID,
		Phase:       question.Phase,
		Response:    string(req.Response),
		Score:       score,
		Evidence:    req.Evidence,
		Comments:    req.Comments,
		EvaluatedBy: evaluatedBy,
	}
	if err := s.evalRepo.UpsertEvaluation(evaluation); err != nil {
		return nil, err
	}

	if score < riskItemThreshold {
		_ = s.projectRepo.SaveRisk(&model.RiskItem{
			ProjectID:    req.ProjectID,
			EvaluationID: evaluation.ID,
			RiskType:     question.Category,
			Description:  question.Text,
			Severity:     scoring.ClassifyByScore(score),
			Phase:        question.Phase,
			Pillar:       question.Pillar,
		})
	}

	utilities.GlobalEventBus.PublishSync(utilities.EventEvaluationSaved, evaluation)
	return evaluation, nil
}

func (s *evaluationService) GetEvaluations(projectID uint) ([]model.Evaluation, error) {
	return s.evalRepo.GetEvaluationsByProject(projectID)
}

// QuickEvaluation runs the raw-factor-sum classification path. It is kept
// separate from the score-based path on purpose: the domains, thresholds
// and labels differ.
func (s *evaluationService) QuickEvaluation(factors scoring.RiskFactors) QuickEvaluationResult {
	total := factors.Sum()
	return QuickEvaluationResult{
		Factors:   factors,
		Total:     total,
		RiskLevel: scoring.ClassifyByRiskSum(total),
	}
}

// GetQuestions lists catalog questions, optionally filtered by phase and
// pillar. Empty filters match everything.
func (s *evaluationService) GetQuestions(phase model.Phase, pillar model.Pillar) ([]catalog.Question, error) {
	if phase != "" && !phase.IsValid() {
		return nil, fmt.Errorf("unknown phase %q", phase)
	}
	if pillar != "" && !pillar.IsValid() {
		return nil, fmt.Errorf("unknown pillar %q", pillar)
	}
	var out []catalog.Question
	for _, q := range s.cat.Questions {
		if phase != "" && q.Phase != phase {
			continue
		}
		if pillar != "" && q.Pillar != pillar {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}
