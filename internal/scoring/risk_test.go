package scoring

import (
	"testing"

	"asg-backend-V2.0/internal/model"
)

func TestClassifyByScore(t *testing.T) {
	tests := []struct {
		score int
		want  model.RiskLevel
	}{
		{100, model.RiskLow},
		{80, model.RiskLow},
		{79, model.RiskMedium},
		{60, model.RiskMedium},
		{59, model.RiskHigh},
		{0, model.RiskHigh},
	}

	for _, tt := range tests {
		if got := ClassifyByScore(tt.score); got != tt.want {
			t.Errorf("ClassifyByScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyByRiskSum(t *testing.T) {
	tests := []struct {
		sum  int
		want model.RiskLevel
	}{
		{6, model.RiskLow},
		{9, model.RiskLow},
		{10, model.RiskModerate},
		{20, model.RiskModerate},
		{21, model.RiskHigh},
		{30, model.RiskHigh},
	}

	for _, tt := range tests {
		if got := ClassifyByRiskSum(tt.sum); got != tt.want {
			t.Errorf("ClassifyByRiskSum(%d) = %s, want %s", tt.sum, got, tt.want)
		}
	}
}

func TestRiskFactorsSum(t *testing.T) {
	allOnes := RiskFactors{1, 1, 1, 1, 1, 1}
	if got := allOnes.Sum(); got != 6 {
		t.Errorf("sum of all-ones factors = %d, want 6", got)
	}
	if got := ClassifyByRiskSum(allOnes.Sum()); got != model.RiskLow {
		t.Errorf("all-ones factors classify as %s, want low", got)
	}

	allFives := RiskFactors{5, 5, 5, 5, 5, 5}
	if got := allFives.Sum(); got != 30 {
		t.Errorf("sum of all-fives factors = %d, want 30", got)
	}
	if got := ClassifyByRiskSum(allFives.Sum()); got != model.RiskHigh {
		t.Errorf("all-fives factors classify as %s, want high", got)
	}
}
