package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"asg-backend-V2.0/internal/model"
)

// weightTolerance is the allowed deviation when a weight triple is checked
// against 1.0.
const weightTolerance = 0.001

// PillarWeights is the weight triple applied to the three pillar scores of
// one phase. A valid triple sums to 1.0.
type PillarWeights struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

func (w PillarWeights) Sum() float64 {
	return w.Environmental + w.Social + w.Governance
}

func (w PillarWeights) For(p model.Pillar) float64 {
	switch p {
	case model.PillarEnvironmental:
		return w.Environmental
	case model.PillarSocial:
		return w.Social
	case model.PillarGovernance:
		return w.Governance
	default:
		return 0
	}
}

// Validate checks the triple sums to 1.0 and carries no negative weight.
func (w PillarWeights) Validate() error {
	if w.Environmental < 0 || w.Social < 0 || w.Governance < 0 {
		return fmt.Errorf("pillar weights must be non-negative: %+v", w)
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("pillar weights must sum to 1.0, got %.3f", w.Sum())
	}
	return nil
}

// PhaseWeights is the weight triple applied to phase scores when rolling up
// to the overall project score. A valid triple sums to 1.0.
type PhaseWeights struct {
	Feasibility  float64 `json:"feasibility"`
	Design       float64 `json:"design"`
	Construction float64 `json:"construction"`
}

func (w PhaseWeights) Sum() float64 {
	return w.Feasibility + w.Design + w.Construction
}

func (w PhaseWeights) For(p model.Phase) float64 {
	switch p {
	case model.PhaseFeasibility:
		return w.Feasibility
	case model.PhaseDesign:
		return w.Design
	case model.PhaseConstruction:
		return w.Construction
	default:
		return 0
	}
}

func (w PhaseWeights) Validate() error {
	if w.Feasibility < 0 || w.Design < 0 || w.Construction < 0 {
		return fmt.Errorf("phase weights must be non-negative: %+v", w)
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("phase weights must sum to 1.0, got %.3f", w.Sum())
	}
	return nil
}

// Question is one catalog entry. The catalog is trusted configuration: it is
// validated once at load time and immutable afterwards.
type Question struct {
	ID           string             `json:"id"`
	Phase        model.Phase        `json:"phase"`
	Pillar       model.Pillar       `json:"pillar"`
	Category     string             `json:"category"`
	Text         string             `json:"question"`
	ResponseType model.ResponseType `json:"response_type"`
	Options      []string           `json:"options,omitempty"`
	Weight       float64            `json:"weight"`
	IsRequired   bool               `json:"is_required"`
}

// Catalog bundles the question set with the two weight tables the
// aggregators consume.
type Catalog struct {
	Questions      []Question                    `json:"questions"`
	PhaseWeights   map[model.Phase]PillarWeights `json:"phase_weights"`
	OverallWeights PhaseWeights                  `json:"overall_weights"`

	byID map[string]Question
}

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	cat.index()
	return &cat, nil
}

// Validate fails fast on out-of-contract configuration: unknown response
// types, invalid phases or pillars, negative or duplicate entries, and
// weight triples not summing to 1.0.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if !q.Phase.IsValid() {
			return fmt.Errorf("question %q: unknown phase %q", q.ID, q.Phase)
		}
		if !q.Pillar.IsValid() {
			return fmt.Errorf("question %q: unknown pillar %q", q.ID, q.Pillar)
		}
		if !q.ResponseType.IsValid() {
			return fmt.Errorf("question %q: unknown response type %q", q.ID, q.ResponseType)
		}
		if q.Weight < 0 {
			return fmt.Errorf("question %q: negative weight %.3f", q.ID, q.Weight)
		}
	}
	for _, phase := range model.AllPhases {
		w, ok := c.PhaseWeights[phase]
		if !ok {
			return fmt.Errorf("missing pillar weights for phase %q", phase)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("phase %q: %w", phase, err)
		}
	}
	if err := c.OverallWeights.Validate(); err != nil {
		return fmt.Errorf("overall weights: %w", err)
	}
	return nil
}

// QuestionsFor returns the catalog questions of one (phase, pillar) group,
// in catalog order.
func (c *Catalog) QuestionsFor(phase model.Phase, pillar model.Pillar) []Question {
	var out []Question
	for _, q := range c.Questions {
		if q.Phase == phase && q.Pillar == pillar {
			out = append(out, q)
		}
	}
	return out
}

// Question looks up one catalog entry by id.
func (c *Catalog) Question(id string) (Question, bool) {
	if c.byID == nil {
		c.index()
	}
	q, ok := c.byID[id]
	return q, ok
}

func (c *Catalog) index() {
	c.byID = make(map[string]Question, len(c.Questions))
	for _, q := range c.Questions {
		c.byID[q.ID] = q
	}
}
