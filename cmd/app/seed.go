package main

import (
	"encoding/json"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/repository"
	"asg-backend-V2.0/pkg/logging"
)

// seedQuestions mirrors the catalog into the questions table so the API can
// serve it to clients. The scoring engine always reads the catalog directly;
// the table is a read model.
func seedQuestions(cat *catalog.Catalog, evaluationRepo repository.EvaluationRepository) {
	seeded := 0
	for _, q := range cat.Questions {
		options := ""
		if len(q.Options) > 0 {
			if data, err := json.Marshal(q.Options); err == nil {
				options = string(data)
			}
		}
		question := &model.Question{
			ID:           q.ID,
			Phase:        q.Phase,
			Pillar:       q.Pillar,
			Category:     q.Category,
			Text:         q.Text,
			ResponseType: q.ResponseType,
			Options:      options,
			Weight:       q.Weight,
			IsRequired:   q.IsRequired,
		}
		if err := evaluationRepo.SaveQuestion(question); err != nil {
			logging.Error("Failed to seed question %s: %v", q.ID, err)
			continue
		}
		seeded++
	}
	logging.Info("Seeded %d catalog questions", seeded)
}
