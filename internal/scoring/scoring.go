package scoring

import (
	"math"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/model"
)

// PhaseScores holds the three per-phase scores of one project.
type PhaseScores struct {
	Feasibility  int `json:"feasibility"`
	Design       int `json:"design"`
	Construction int `json:"construction"`
}

// ProjectScore is the full aggregate for one project: the overall score,
// the three project-wide pillar scores and the three phase scores. Each
// value is independently derivable from the same evaluation snapshot and
// the two weight tables.
type ProjectScore struct {
	Overall       int         `json:"overall"`
	Environmental int         `json:"environmental"`
	Social        int         `json:"social"`
	Governance    int         `json:"governance"`
	ByPhase       PhaseScores `json:"by_phase"`
}

// PillarScore computes the weighted mean score of one (phase, pillar) group
// for a project. Questions without an evaluation are excluded from both the
// numerator and the denominator, so a partially answered group is averaged
// over what has been answered so far rather than penalized with implicit
// zeros. An empty or fully unanswered group scores 0.
func PillarScore(cat *catalog.Catalog, evaluations []model.Evaluation, projectID uint, phase model.Phase, pillar model.Pillar) int {
	byQuestion := make(map[string]model.Evaluation)
	for _, e := range evaluations {
		if e.ProjectID == projectID {
			byQuestion[e.QuestionID] = e
		}
	}

	var totalScore, totalWeight float64
	for _, q := range cat.QuestionsFor(phase, pillar) {
		e, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		totalScore += float64(e.Score) * q.Weight
		totalWeight += q.Weight
	}

	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(totalScore / totalWeight))
}

// PhaseScore combines the three pillar scores of one phase using that
// phase's pillar weight triple. The weights are trusted to sum to 1.0; the
// catalog validates this at load time.
func PhaseScore(cat *catalog.Catalog, evaluations []model.Evaluation, projectID uint, phase model.Phase) int {
	weights := cat.PhaseWeights[phase]

	environmental := PillarScore(cat, evaluations, projectID, phase, model.PillarEnvironmental)
	social := PillarScore(cat, evaluations, projectID, phase, model.PillarSocial)
	governance := PillarScore(cat, evaluations, projectID, phase, model.PillarGovernance)

	return int(math.Round(
		float64(environmental)*weights.Environmental +
			float64(social)*weights.Social +
			float64(governance)*weights.Governance))
}

// OverallScore computes the complete project aggregate. The overall score is
// the phase-weighted sum of phase scores; each project-wide pillar score is
// the phase-weighted sum of that pillar's per-phase scores, computed
// independently of the other pillars.
func OverallScore(cat *catalog.Catalog, evaluations []model.Evaluation, projectID uint) ProjectScore {
	byPhase := PhaseScores{
		Feasibility:  PhaseScore(cat, evaluations, projectID, model.PhaseFeasibility),
		Design:       PhaseScore(cat, evaluations, projectID, model.PhaseDesign),
		Construction: PhaseScore(cat, evaluations, projectID, model.PhaseConstruction),
	}

	w := cat.OverallWeights
	overall := int(math.Round(
		float64(byPhase.Feasibility)*w.Feasibility +
			float64(byPhase.Design)*w.Design +
			float64(byPhase.Construction)*w.Construction))

	pillarOverall := func(pillar model.Pillar) int {
		return int(math.Round(
			float64(PillarScore(cat, evaluations, projectID, model.PhaseFeasibility, pillar))*w.Feasibility +
				float64(PillarScore(cat, evaluations, projectID, model.PhaseDesign, pillar))*w.Design +
				float64(PillarScore(cat, evaluations, projectID, model.PhaseConstruction, pillar))*w.Construction))
	}

	return ProjectScore{
		Overall:       overall,
		Environmental: pillarOverall(model.PillarEnvironmental),
		Social:        pillarOverall(model.PillarSocial),
		Governance:    pillarOverall(model.PillarGovernance),
		ByPhase:       byPhase,
	}
}
