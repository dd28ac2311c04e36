package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"asg-backend-V2.0/internal/model"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
	if len(cat.Questions) == 0 {
		t.Fatal("default catalog has no questions")
	}
	// Every phase must have at least one question so the rollup has data to
	// work with once evaluations come in.
	for _, phase := range model.AllPhases {
		found := false
		for _, q := range cat.Questions {
			if q.Phase == phase {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("default catalog has no questions for phase %s", phase)
		}
	}
}

func TestValidateRejectsUnknownResponseType(t *testing.T) {
	cat := Default()
	cat.Questions = append([]Question{}, cat.Questions...)
	cat.Questions = append(cat.Questions, Question{
		ID: "bad_1", Phase: model.PhaseDesign, Pillar: model.PillarSocial,
		ResponseType: "fecha", Weight: 0.1,
	})
	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for unknown response type")
	}
}

func TestValidateRejectsBadWeightTables(t *testing.T) {
	cat := Default()
	weights := map[model.Phase]PillarWeights{}
	for k, v := range cat.PhaseWeights {
		weights[k] = v
	}
	weights[model.PhaseDesign] = PillarWeights{Environmental: 0.5, Social: 0.5, Governance: 0.5}
	cat.PhaseWeights = weights
	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for weight triple not summing to 1.0")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cat := &Catalog{
		Questions: []Question{
			{ID: "q1", Phase: model.PhaseDesign, Pillar: model.PillarSocial, ResponseType: model.ResponseTexto, Weight: 0.1},
			{ID: "q1", Phase: model.PhaseDesign, Pillar: model.PillarSocial, ResponseType: model.ResponseTexto, Weight: 0.1},
		},
		PhaseWeights:   Default().PhaseWeights,
		OverallWeights: Default().OverallWeights,
	}
	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for duplicate question id")
	}
}

func TestQuestionsFor(t *testing.T) {
	cat := Default()
	for _, q := range cat.QuestionsFor(model.PhaseFeasibility, model.PillarEnvironmental) {
		if q.Phase != model.PhaseFeasibility || q.Pillar != model.PillarEnvironmental {
			t.Errorf("QuestionsFor returned %s (%s/%s)", q.ID, q.Phase, q.Pillar)
		}
	}
	if len(cat.QuestionsFor(model.PhaseFeasibility, model.PillarEnvironmental)) == 0 {
		t.Error("expected feasibility/environmental questions in default catalog")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")

	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal catalog: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	if len(cat.Questions) != len(Default().Questions) {
		t.Errorf("loaded %d questions, want %d", len(cat.Questions), len(Default().Questions))
	}
	if _, ok := cat.Question("risk_amb_1"); !ok {
		t.Error("expected risk_amb_1 in loaded catalog")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
