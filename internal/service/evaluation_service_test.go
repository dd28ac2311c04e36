package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/scoring"
)

// In-memory fakes so the service layer can be exercised without a database.

type fakeEvaluationRepo struct {
	evaluations map[string]*model.Evaluation // keyed projectID/questionID
	questions   []model.Question
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{evaluations: make(map[string]*model.Evaluation)}
}

func evalKey(projectID uint, questionID string) string {
	return fmt.Sprintf("%d/%s", projectID, questionID)
}

func (f *fakeEvaluationRepo) UpsertEvaluation(e *model.Evaluation) error {
	key := evalKey(e.ProjectID, e.QuestionID)
	if existing, ok := f.evaluations[key]; ok {
		e.ID = existing.ID
	} else {
		e.ID = uint(len(f.evaluations) + 1)
	}
	copied := *e
	f.evaluations[key] = &copied
	return nil
}

func (f *fakeEvaluationRepo) GetEvaluationsByProject(projectID uint) ([]model.Evaluation, error) {
	var out []model.Evaluation
	for _, e := range f.evaluations {
		if e.ProjectID == projectID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEvaluationRepo) GetEvaluation(projectID uint, questionID string) (*model.Evaluation, error) {
	if e, ok := f.evaluations[evalKey(projectID, questionID)]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeEvaluationRepo) GetQuestions(phase model.Phase, pillar model.Pillar) ([]model.Question, error) {
	return f.questions, nil
}

func (f *fakeEvaluationRepo) SaveQuestion(q *model.Question) error {
	f.questions = append(f.questions, *q)
	return nil
}

type fakeProjectRepo struct {
	projects map[uint]*model.Project
	risks    []model.RiskItem
	history  []model.ProjectHistory
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uint]*model.Project)}
}

func (f *fakeProjectRepo) CreateProject(p *model.Project) error {
	if p.ID == 0 {
		p.ID = uint(len(f.projects) + 1)
	}
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectRepo) GetProjects() ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectRepo) GetProjectByID(id uint) (*model.Project, error) {
	if p, ok := f.projects[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, errProjectNotFound
}

func (f *fakeProjectRepo) UpdateScores(id uint, scores model.Project) error {
	p, ok := f.projects[id]
	if !ok {
		return errProjectNotFound
	}
	p.ASGScore = scores.ASGScore
	p.EnvironmentalScore = scores.EnvironmentalScore
	p.SocialScore = scores.SocialScore
	p.GovernanceScore = scores.GovernanceScore
	p.RiskLevel = scores.RiskLevel
	return nil
}

func (f *fakeProjectRepo) GetRisks(projectID uint) ([]model.RiskItem, error) {
	var out []model.RiskItem
	for _, r := range f.risks {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) SaveRisk(r *model.RiskItem) error {
	f.risks = append(f.risks, *r)
	return nil
}

func (f *fakeProjectRepo) GetHistory(projectID uint) ([]model.ProjectHistory, error) {
	var out []model.ProjectHistory
	for _, h := range f.history {
		if h.ProjectID == projectID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) AppendHistory(h *model.ProjectHistory) error {
	f.history = append(f.history, *h)
	return nil
}

var errProjectNotFound = errors.New("project not found")

func newTestServices(t *testing.T) (EvaluationService, ProjectService, *fakeProjectRepo) {
	t.Helper()
	cat := catalog.Default()
	evalRepo := newFakeEvaluationRepo()
	projectRepo := newFakeProjectRepo()
	projectService := NewProjectService(projectRepo, evalRepo, cat)
	evaluationService := NewEvaluationService(evalRepo, projectRepo, cat)
	if err := projectRepo.CreateProject(&model.Project{ID: 1, Name: "Parque Central"}); err != nil {
		t.Fatal(err)
	}
	return evaluationService, projectService, projectRepo
}

func TestSubmitEvaluationNormalizesAndStores(t *testing.T) {
	evaluationService, _, _ := newTestServices(t)

	evaluation, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID:  1,
		QuestionID: "risk_amb_1",
		Response:   json.RawMessage(`1`),
	}, "ana")
	if err != nil {
		t.Fatalf("SubmitEvaluation failed: %v", err)
	}
	if evaluation.Score != 100 {
		t.Errorf("risk rating 1 stored with score %d, want 100", evaluation.Score)
	}
	if evaluation.Phase != model.PhaseFeasibility {
		t.Errorf("evaluation phase = %s, want feasibility", evaluation.Phase)
	}
	if evaluation.EvaluatedBy != "ana" {
		t.Errorf("evaluation attributed to %q, want ana", evaluation.EvaluatedBy)
	}
}

func TestSubmitEvaluationUpsertsByQuestion(t *testing.T) {
	evaluationService, _, _ := newTestServices(t)

	first, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID: 1, QuestionID: "norm_6", Response: json.RawMessage(`true`),
	}, "ana")
	if err != nil {
		t.Fatal(err)
	}
	second, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID: 1, QuestionID: "norm_6", Response: json.RawMessage(`false`),
	}, "ana")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("re-submission created a new evaluation: ids %d and %d", first.ID, second.ID)
	}
	if second.Score != 0 {
		t.Errorf("updated score = %d, want 0", second.Score)
	}

	evaluations, _ := evaluationService.GetEvaluations(1)
	if len(evaluations) != 1 {
		t.Errorf("expected 1 evaluation after upsert, got %d", len(evaluations))
	}
}

func TestSubmitEvaluationUnknownQuestion(t *testing.T) {
	evaluationService, _, _ := newTestServices(t)

	if _, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID: 1, QuestionID: "does_not_exist", Response: json.RawMessage(`true`),
	}, "ana"); err == nil {
		t.Fatal("expected error for unknown question")
	}
}

func TestSubmitEvaluationRecordsRiskItem(t *testing.T) {
	evaluationService, _, projectRepo := newTestServices(t)

	// Highest risk rating normalizes to 20, below the risk threshold.
	if _, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID: 1, QuestionID: "risk_soc_1", Response: json.RawMessage(`5`),
	}, "ana"); err != nil {
		t.Fatal(err)
	}

	risks, _ := projectRepo.GetRisks(1)
	if len(risks) != 1 {
		t.Fatalf("expected 1 risk item, got %d", len(risks))
	}
	if risks[0].Severity != model.RiskHigh {
		t.Errorf("risk severity = %s, want high", risks[0].Severity)
	}
	if risks[0].Pillar != model.PillarSocial {
		t.Errorf("risk pillar = %s, want social", risks[0].Pillar)
	}
}

func TestProjectScoreReflectsSubmissions(t *testing.T) {
	evaluationService, projectService, _ := newTestServices(t)

	if _, err := evaluationService.SubmitEvaluation(SubmitEvaluationRequest{
		ProjectID: 1, QuestionID: "risk_amb_1", Response: json.RawMessage(`1`),
	}, "ana"); err != nil {
		t.Fatal(err)
	}

	result, err := projectService.GetProjectScore(1)
	if err != nil {
		t.Fatalf("GetProjectScore failed: %v", err)
	}
	if result.Score.ByPhase.Feasibility == 0 {
		t.Error("feasibility phase score still 0 after a perfect answer")
	}
	if result.Score.ByPhase.Design != 0 || result.Score.ByPhase.Construction != 0 {
		t.Error("unanswered phases should score 0")
	}
	if result.RiskLevel != scoring.ClassifyByScore(result.Score.Overall) {
		t.Error("risk level inconsistent with overall score")
	}
}

func TestQuickEvaluation(t *testing.T) {
	evaluationService, _, _ := newTestServices(t)

	result := evaluationService.QuickEvaluation(scoring.RiskFactors{
		CarbonFootprint:        3,
		SoilWaterContamination: 2,
		ClimateChangeRisk:      2,
		CommunityImpact:        1,
		BasicServicesAccess:    1,
		HumanRightsRisk:        1,
	})
	if result.Total != 10 {
		t.Errorf("total = %d, want 10", result.Total)
	}
	if result.RiskLevel != model.RiskModerate {
		t.Errorf("risk level = %s, want moderate", result.RiskLevel)
	}
}

func TestGetQuestionsFilters(t *testing.T) {
	evaluationService, _, _ := newTestServices(t)

	questions, err := evaluationService.GetQuestions(model.PhaseFeasibility, model.PillarEnvironmental)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) == 0 {
		t.Fatal("expected feasibility/environmental questions")
	}
	for _, q := range questions {
		if q.Phase != model.PhaseFeasibility || q.Pillar != model.PillarEnvironmental {
			t.Errorf("filter leaked question %s (%s/%s)", q.ID, q.Phase, q.Pillar)
		}
	}

	if _, err := evaluationService.GetQuestions("demolition", ""); err == nil {
		t.Error("expected error for unknown phase filter")
	}
}
