// Package scoring is the ASG scoring and risk-classification engine. Every
// function here is a pure computation over a snapshot of catalog questions
// and saved evaluations; nothing reads the database or mutates shared state.
package scoring

import (
	"encoding/json"
	"math"
	"strings"

	"asg-backend-V2.0/internal/model"
)

// Response is one raw questionnaire answer. Each variant corresponds to one
// response type of the catalog, so Normalize can match exhaustively instead
// of switching on a string tag. A nil Response means "not answered" and
// normalizes to 0.
type Response interface {
	isResponse()
}

// Ternary is a si_no answer: yes, no, or explicitly "not applicable".
type Ternary struct {
	Value         bool
	NotApplicable bool
}

// Partial is a si_no_parcial answer: "si", "parcial" or "no".
type Partial struct {
	Value string
}

// Conditional is a si_no_cual answer: the question asks whether an
// encumbrance or restriction exists, plus which one. Answer "no" is the
// favorable outcome.
type Conditional struct {
	Answer string
	Detail string
}

// Scale is an escala answer on the 1-5 satisfaction scale.
type Scale struct {
	Value int
}

// RiskScale is an escala_riesgo answer, 1 (very low risk) to 5 (very high).
type RiskScale struct {
	Value int
}

// Text is a texto or seleccion answer.
type Text struct {
	Value string
}

// Number is a numero answer.
type Number struct {
	Value float64
}

func (Ternary) isResponse()     {}
func (Partial) isResponse()     {}
func (Conditional) isResponse() {}
func (Scale) isResponse()       {}
func (RiskScale) isResponse()   {}
func (Text) isResponse()        {}
func (Number) isResponse()      {}

// Normalize converts one raw answer into a score in [0, 100].
//
// The mapping is fail-soft: answers are frequently saved mid-edit, so a
// malformed or absent response scores 0 rather than failing the aggregation.
// The one exception is the ternary "not applicable" answer, which is a real
// answer and scores a neutral 50.
func Normalize(r Response) int {
	switch v := r.(type) {
	case Ternary:
		if v.NotApplicable {
			return 50
		}
		if v.Value {
			return 100
		}
		return 0
	case Partial:
		switch v.Value {
		case "si":
			return 100
		case "parcial":
			return 50
		default:
			return 0
		}
	case Conditional:
		// "no" means the encumbrance does not exist, which is the
		// favorable outcome.
		if v.Answer == "no" {
			return 100
		}
		return 0
	case Scale:
		if v.Value < 1 || v.Value > 5 {
			return 0
		}
		return v.Value * 20
	case RiskScale:
		switch v.Value {
		case 1:
			return 100
		case 2:
			return 80
		case 3:
			return 60
		case 4:
			return 40
		case 5:
			return 20
		default:
			return 50
		}
	case Text:
		if strings.TrimSpace(v.Value) != "" {
			return 100
		}
		return 0
	case Number:
		return int(math.Round(math.Min(100, math.Max(0, v.Value))))
	default:
		return 0
	}
}

// conditionalPayload is the object shape of a si_no_cual answer.
type conditionalPayload struct {
	Answer string `json:"answer"`
	Detail string `json:"detail"`
}

// ParseResponse decodes the raw JSON of an answer according to the declared
// response type. Unrecognized shapes yield nil (score 0); no error is ever
// returned for well-formed requests, matching the fail-soft normalization
// contract. Unknown response types cannot reach this function because the
// catalog rejects them at load time.
func ParseResponse(rt model.ResponseType, raw json.RawMessage) Response {
	if len(raw) == 0 {
		return nil
	}
	switch rt {
	case model.ResponseSiNo:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return Ternary{Value: b}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s == "na" {
			return Ternary{NotApplicable: true}
		}
		return nil
	case model.ResponseSiNoParcial:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		switch s {
		case "si", "parcial", "no":
			return Partial{Value: s}
		}
		return nil
	case model.ResponseSiNoCual:
		var p conditionalPayload
		if err := json.Unmarshal(raw, &p); err == nil && p.Answer != "" {
			return Conditional{Answer: p.Answer, Detail: p.Detail}
		}
		// Bare forms sent by older clients.
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			if b {
				return Conditional{Answer: "si"}
			}
			return Conditional{Answer: "no"}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && (s == "si" || s == "no") {
			return Conditional{Answer: s}
		}
		return nil
	case model.ResponseEscala:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n != math.Trunc(n) {
			return nil
		}
		return Scale{Value: int(n)}
	case model.ResponseEscalaRiesgo:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n != math.Trunc(n) {
			return nil
		}
		return RiskScale{Value: int(n)}
	case model.ResponseTexto, model.ResponseSeleccion:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return Text{Value: s}
	case model.ResponseNumero:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil
		}
		return Number{Value: n}
	default:
		return nil
	}
}

// NormalizeRaw is ParseResponse followed by Normalize, the path the
// evaluation service takes for every submitted answer.
func NormalizeRaw(rt model.ResponseType, raw json.RawMessage) int {
	return Normalize(ParseResponse(rt, raw))
}
