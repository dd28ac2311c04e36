package service

import (
	"fmt"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/repository"
	"asg-backend-V2.0/internal/scoring"
	"asg-backend-V2.0/pkg/logging"
	"asg-backend-V2.0/utilities"
)

// ProjectScoreResult is the aggregate served to the frontend: the full
// score breakdown plus its risk classification.
type ProjectScoreResult struct {
	ProjectID uint                 `json:"project_id"`
	Score     scoring.ProjectScore `json:"score"`
	RiskLevel model.RiskLevel      `json:"risk_level"`
}

type ProjectService interface {
	CreateProject(project *model.Project, createdBy string) error
	GetProjects() ([]model.Project, error)
	GetProject(id uint) (*model.Project, error)
	GetProjectScore(id uint) (*ProjectScoreResult, error)
	RecomputeScores(id uint) error
	GetRisks(projectID uint) ([]model.RiskItem, error)
	GetHistory(projectID uint) ([]model.ProjectHistory, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	evalRepo    repository.EvaluationRepository
	cat         *catalog.Catalog
}

func NewProjectService(projectRepo repository.ProjectRepository, evalRepo repository.EvaluationRepository, cat *catalog.Catalog) ProjectService {
	return &projectService{projectRepo: projectRepo, evalRepo: evalRepo, cat: cat}
}

func (s *projectService) CreateProject(project *model.Project, createdBy string) error {
	if project.CurrentPhase == "" {
		project.CurrentPhase = model.PhaseFeasibility
	}
	if !project.CurrentPhase.IsValid() {
		return fmt.Errorf("unknown phase %q", project.CurrentPhase)
	}
	if err := s.projectRepo.CreateProject(project); err != nil {
		return err
	}
	return s.projectRepo.AppendHistory(&model.ProjectHistory{
		ProjectID:   project.ID,
		Action:      "project_created",
		Description: fmt.Sprintf("Project %q created in phase %s", project.Name, project.CurrentPhase),
		PerformedBy: createdBy,
	})
}

func (s *projectService) GetProjects() ([]model.Project, error) {
	return s.projectRepo.GetProjects()
}

func (s *projectService) GetProject(id uint) (*model.Project, error) {
	return s.projectRepo.GetProjectByID(id)
}

// GetProjectScore recomputes the full aggregate from the current evaluation
// snapshot. The persisted snapshot on the project row is only a cache; this
// is the authoritative path.
func (s *projectService) GetProjectScore(id uint) (*ProjectScoreResult, error) {
	if _, err := s.projectRepo.GetProjectByID(id); err != nil {
		return nil, err
	}
	evaluations, err := s.evalRepo.GetEvaluationsByProject(id)
	if err != nil {
		return nil, err
	}
	score := scoring.OverallScore(s.cat, evaluations, id)
	return &ProjectScoreResult{
		ProjectID: id,
		Score:     score,
		RiskLevel: scoring.ClassifyByScore(score.Overall),
	}, nil
}

// RecomputeScores refreshes the cached aggregate snapshot on the project
// row. Invoked via the event bus whenever an evaluation is saved.
func (s *projectService) RecomputeScores(id uint) error {
	result, err := s.GetProjectScore(id)
	if err != nil {
		return err
	}
	return s.projectRepo.UpdateScores(id, model.Project{
		ASGScore:           result.Score.Overall,
		EnvironmentalScore: result.Score.Environmental,
		SocialScore:        result.Score.Social,
		GovernanceScore:    result.Score.Governance,
		RiskLevel:          result.RiskLevel,
	})
}

func (s *projectService) GetRisks(projectID uint) ([]model.RiskItem, error) {
	return s.projectRepo.GetRisks(projectID)
}

func (s *projectService) GetHistory(projectID uint) ([]model.ProjectHistory, error) {
	return s.projectRepo.GetHistory(projectID)
}

// InitScoreEventListeners wires the score recompute to evaluation saves so
// the dashboard always reads a fresh snapshot.
func InitScoreEventListeners(projectService ProjectService, projectRepo repository.ProjectRepository) {
	utilities.GlobalEventBus.Subscribe(utilities.EventEvaluationSaved, func(data interface{}) {
		evaluation, ok := data.(*model.Evaluation)
		if !ok {
			logging.Warn("evaluation_saved event carried unexpected payload %T", data)
			return
		}
		if err := projectService.RecomputeScores(evaluation.ProjectID); err != nil {
			logging.Error("Failed to recompute scores for project %d: %v", evaluation.ProjectID, err)
			return
		}
		err := projectRepo.AppendHistory(&model.ProjectHistory{
			ProjectID:   evaluation.ProjectID,
			Action:      "evaluation_saved",
			Description: fmt.Sprintf("Question %s scored %d", evaluation.QuestionID, evaluation.Score),
			PerformedBy: evaluation.EvaluatedBy,
		})
		if err != nil {
			logging.Error("Failed to append history for project %d: %v", evaluation.ProjectID, err)
		}
	})
}
