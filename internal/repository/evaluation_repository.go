package repository

import (
	"gorm.io/gorm/clause"

	"asg-backend-V2.0/internal/db"
	"asg-backend-V2.0/internal/model"
)

type EvaluationRepository interface {
	UpsertEvaluation(evaluation *model.Evaluation) error
	GetEvaluationsByProject(projectID uint) ([]model.Evaluation, error)
	GetEvaluation(projectID uint, questionID string) (*model.Evaluation, error)
	GetQuestions(phase model.Phase, pillar model.Pillar) ([]model.Question, error)
	SaveQuestion(question *model.Question) error
}

type evaluationRepository struct{}

func NewEvaluationRepository() EvaluationRepository {
	return &evaluationRepository{}
}

// UpsertEvaluation inserts the evaluation or, when one already exists for
// the same (project, question), replaces its answer in place. Superseded
// answers are never kept.
func (r *evaluationRepository) UpsertEvaluation(evaluation *model.Evaluation) error {
	return db.GetDB().Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phase", "response", "score", "evidence", "comments", "evaluated_by", "updated_at",
		}),
	}).Create(evaluation).Error
}

func (r *evaluationRepository) GetEvaluationsByProject(projectID uint) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := db.GetDB().Where("project_id = ?", projectID).Find(&evaluations).Error
	return evaluations, err
}

func (r *evaluationRepository) GetEvaluation(projectID uint, questionID string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := db.GetDB().Where("project_id = ? AND question_id = ?", projectID, questionID).First(&evaluation).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetQuestions lists catalog questions from the mirror table, optionally
// filtered by phase and pillar.
func (r *evaluationRepository) GetQuestions(phase model.Phase, pillar model.Pillar) ([]model.Question, error) {
	var questions []model.Question
	tx := db.GetDB()
	if phase != "" {
		tx = tx.Where("phase = ?", phase)
	}
	if pillar != "" {
		tx = tx.Where("pillar = ?", pillar)
	}
	err := tx.Find(&questions).Error
	return questions, err
}

func (r *evaluationRepository) SaveQuestion(question *model.Question) error {
	return db.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(question).Error
}
