package model

import "time"

// Phase is a project lifecycle stage. Every question and evaluation belongs
// to exactly one phase.
type Phase string

const (
	PhaseFeasibility  Phase = "feasibility"
	PhaseDesign       Phase = "design"
	PhaseConstruction Phase = "construction"
)

// AllPhases lists phases in lifecycle order.
var AllPhases = []Phase{PhaseFeasibility, PhaseDesign, PhaseConstruction}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseFeasibility, PhaseDesign, PhaseConstruction:
		return true
	default:
		return false
	}
}

// Pillar is one of the three ASG dimensions.
type Pillar string

const (
	PillarEnvironmental Pillar = "environmental"
	PillarSocial        Pillar = "social"
	PillarGovernance    Pillar = "governance"
)

var AllPillars = []Pillar{PillarEnvironmental, PillarSocial, PillarGovernance}

func (p Pillar) IsValid() bool {
	switch p {
	case PillarEnvironmental, PillarSocial, PillarGovernance:
		return true
	default:
		return false
	}
}

// ResponseType tags how a question is answered and therefore how its raw
// response is converted into a 0-100 score. The set is closed; the catalog
// loader rejects anything else.
type ResponseType string

const (
	ResponseSiNo         ResponseType = "si_no"
	ResponseSiNoParcial  ResponseType = "si_no_parcial"
	ResponseSiNoCual     ResponseType = "si_no_cual"
	ResponseEscala       ResponseType = "escala"
	ResponseEscalaRiesgo ResponseType = "escala_riesgo"
	ResponseTexto        ResponseType = "texto"
	ResponseNumero       ResponseType = "numero"
	ResponseSeleccion    ResponseType = "seleccion"
)

func (rt ResponseType) IsValid() bool {
	switch rt {
	case ResponseSiNo, ResponseSiNoParcial, ResponseSiNoCual, ResponseEscala,
		ResponseEscalaRiesgo, ResponseTexto, ResponseNumero, ResponseSeleccion:
		return true
	default:
		return false
	}
}

// RiskLevel is the discrete classification derived from an aggregate score
// or from a raw risk-factor sum. The score path uses low/medium/high, the
// risk-sum path uses low/moderate/high; both share this type.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"` // Exclude from JSON responses
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project carries the latest persisted aggregate snapshot. Scores here are a
// cache recomputed from evaluations whenever one is saved, never the source
// of truth.
type Project struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Location           string    `json:"location"`
	CurrentPhase       Phase     `json:"current_phase" gorm:"default:'feasibility'"`
	ASGScore           int       `json:"asg_score"`
	EnvironmentalScore int       `json:"environmental_score"`
	SocialScore        int       `json:"social_score"`
	GovernanceScore    int       `json:"governance_score"`
	RiskLevel          RiskLevel `json:"risk_level"`
	Status             string    `json:"status" gorm:"default:'planning'"` // planning, in_progress, completed, suspended
	ProjectType        string    `json:"project_type"`
	Area               float64   `json:"area"`
	Budget             float64   `json:"budget"`
	StartDate          time.Time `json:"start_date"`
	ExpectedEndDate    time.Time `json:"expected_end_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Question is one catalog entry persisted for API listing. The scoring
// engine reads the catalog directly; this row mirrors it.
type Question struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	Phase        Phase        `json:"phase" gorm:"index"`
	Pillar       Pillar       `json:"pillar" gorm:"index"`
	Category     string       `json:"category"`
	Text         string       `json:"question"`
	ResponseType ResponseType `json:"response_type"`
	Options      string       `json:"options"` // JSON array of choices
	Weight       float64      `json:"weight"`
	IsRequired   bool         `json:"is_required"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Evaluation is one scored answer, keyed by (project, question).
// Re-submissions update the row in place.
type Evaluation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"not null;index:idx_eval_project_question,unique"`
	QuestionID  string    `json:"question_id" gorm:"not null;index:idx_eval_project_question,unique"`
	Phase       Phase     `json:"phase"`
	Response    string    `json:"response"` // raw response JSON, shape depends on the question's response type
	Score       int       `json:"score"`
	Evidence    string    `json:"evidence"`
	Comments    string    `json:"comments"`
	EvaluatedBy string    `json:"evaluated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RiskItem is recorded when a saved evaluation scores below the risk
// threshold, so low-scoring answers surface on the project risk board.
type RiskItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProjectID    uint      `json:"project_id" gorm:"index"`
	EvaluationID uint      `json:"evaluation_id"`
	RiskType     string    `json:"risk_type"`
	Description  string    `json:"description"`
	Severity     RiskLevel `json:"severity"`
	Phase        Phase     `json:"phase"`
	Pillar       Pillar    `json:"pillar"`
	Status       string    `json:"status" gorm:"default:'identified'"` // identified, mitigating, mitigated, closed
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectHistory is an append-only audit trail entry.
type ProjectHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"index"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
