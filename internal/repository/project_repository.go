package repository

import (
	"errors"

	"asg-backend-V2.0/internal/db"
	"asg-backend-V2.0/internal/model"
)

type ProjectRepository interface {
	CreateProject(project *model.Project) error
	GetProjects() ([]model.Project, error)
	GetProjectByID(id uint) (*model.Project, error)
	UpdateScores(id uint, scores model.Project) error
	GetRisks(projectID uint) ([]model.RiskItem, error)
	SaveRisk(risk *model.RiskItem) error
	GetHistory(projectID uint) ([]model.ProjectHistory, error)
	AppendHistory(entry *model.ProjectHistory) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) CreateProject(project *model.Project) error {
	return db.GetDB().Create(project).Error
}

func (r *projectRepository) GetProjects() ([]model.Project, error) {
	var projects []model.Project
	err := db.GetDB().Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) GetProjectByID(id uint) (*model.Project, error) {
	var project model.Project
	err := db.GetDB().Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, errors.New("project not found")
	}
	return &project, nil
}

// UpdateScores persists a freshly computed aggregate snapshot on the
// project row.
func (r *projectRepository) UpdateScores(id uint, scores model.Project) error {
	return db.GetDB().Model(&model.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"asg_score":           scores.ASGScore,
		"environmental_score": scores.EnvironmentalScore,
		"social_score":        scores.SocialScore,
		"governance_score":    scores.GovernanceScore,
		"risk_level":          scores.RiskLevel,
	}).Error
}

func (r *projectRepository) GetRisks(projectID uint) ([]model.RiskItem, error) {
	var risks []model.RiskItem
	err := db.GetDB().Where("project_id = ?", projectID).Order("created_at DESC").Find(&risks).Error
	return risks, err
}

func (r *projectRepository) SaveRisk(risk *model.RiskItem) error {
	return db.GetDB().Create(risk).Error
}

func (r *projectRepository) GetHistory(projectID uint) ([]model.ProjectHistory, error) {
	var history []model.ProjectHistory
	err := db.GetDB().Where("project_id = ?", projectID).Order("created_at DESC").Find(&history).Error
	return history, err
}

func (r *projectRepository) AppendHistory(entry *model.ProjectHistory) error {
	return db.GetDB().Create(entry).Error
}
