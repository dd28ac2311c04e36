package scoring

import (
	"encoding/json"
	"testing"

	"asg-backend-V2.0/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		want     int
	}{
		{"ternary yes", Ternary{Value: true}, 100},
		{"ternary no", Ternary{Value: false}, 0},
		{"ternary not applicable", Ternary{NotApplicable: true}, 50},
		{"partial yes", Partial{Value: "si"}, 100},
		{"partial partial", Partial{Value: "parcial"}, 50},
		{"partial no", Partial{Value: "no"}, 0},
		{"partial garbage", Partial{Value: "maybe"}, 0},
		{"conditional no encumbrance", Conditional{Answer: "no"}, 100},
		{"conditional has encumbrance", Conditional{Answer: "si", Detail: "hipoteca"}, 0},
		{"scale 1", Scale{Value: 1}, 20},
		{"scale 3", Scale{Value: 3}, 60},
		{"scale 5", Scale{Value: 5}, 100},
		{"scale out of range", Scale{Value: 7}, 0},
		{"risk scale very low", RiskScale{Value: 1}, 100},
		{"risk scale low", RiskScale{Value: 2}, 80},
		{"risk scale moderate", RiskScale{Value: 3}, 60},
		{"risk scale high", RiskScale{Value: 4}, 40},
		{"risk scale very high", RiskScale{Value: 5}, 20},
		{"risk scale out of range", RiskScale{Value: 9}, 50},
		{"text filled", Text{Value: "estudio completo"}, 100},
		{"text whitespace only", Text{Value: "   "}, 0},
		{"text empty", Text{Value: ""}, 0},
		{"number in range", Number{Value: 73}, 73},
		{"number above range", Number{Value: 250}, 100},
		{"number below range", Number{Value: -4}, 0},
		{"number fractional", Number{Value: 66.6}, 67},
		{"absent", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.response); got != tt.want {
				t.Errorf("Normalize(%#v) = %d, want %d", tt.response, got, tt.want)
			}
		})
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		rt   model.ResponseType
		raw  string
		want int
	}{
		{"si_no true", model.ResponseSiNo, `true`, 100},
		{"si_no false", model.ResponseSiNo, `false`, 0},
		{"si_no na sentinel", model.ResponseSiNo, `"na"`, 50},
		{"si_no malformed", model.ResponseSiNo, `{"weird": 1}`, 0},
		{"si_no_parcial si", model.ResponseSiNoParcial, `"si"`, 100},
		{"si_no_parcial parcial", model.ResponseSiNoParcial, `"parcial"`, 50},
		{"si_no_parcial no", model.ResponseSiNoParcial, `"no"`, 0},
		{"si_no_cual object no", model.ResponseSiNoCual, `{"answer":"no"}`, 100},
		{"si_no_cual object si", model.ResponseSiNoCual, `{"answer":"si","detail":"servidumbre"}`, 0},
		{"si_no_cual bare false", model.ResponseSiNoCual, `false`, 100},
		{"si_no_cual bare no", model.ResponseSiNoCual, `"no"`, 100},
		{"escala 4", model.ResponseEscala, `4`, 80},
		{"escala non-integer", model.ResponseEscala, `3.5`, 0},
		{"escala_riesgo 1", model.ResponseEscalaRiesgo, `1`, 100},
		{"escala_riesgo 5", model.ResponseEscalaRiesgo, `5`, 20},
		{"escala_riesgo out of range", model.ResponseEscalaRiesgo, `8`, 50},
		{"texto filled", model.ResponseTexto, `"12 meses"`, 100},
		{"texto empty", model.ResponseTexto, `""`, 0},
		{"texto wrong shape", model.ResponseTexto, `42`, 0},
		{"numero clamped", model.ResponseNumero, `140`, 100},
		{"seleccion choice", model.ResponseSeleccion, `"Llave en mano"`, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRaw(tt.rt, json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("NormalizeRaw(%s, %s) = %d, want %d", tt.rt, tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseResponseAbsent(t *testing.T) {
	for _, rt := range []model.ResponseType{
		model.ResponseSiNo, model.ResponseSiNoParcial, model.ResponseSiNoCual,
		model.ResponseEscala, model.ResponseEscalaRiesgo, model.ResponseTexto,
		model.ResponseNumero, model.ResponseSeleccion,
	} {
		if got := NormalizeRaw(rt, nil); got != 0 {
			t.Errorf("NormalizeRaw(%s, nil) = %d, want 0", rt, got)
		}
	}
}
