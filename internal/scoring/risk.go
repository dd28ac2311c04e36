package scoring

import "asg-backend-V2.0/internal/model"

// ClassifyByScore maps an aggregate 0-100 score to a risk level. High scores
// mean low risk.
//
// This is one of two classification paths and is not interchangeable with
// ClassifyByRiskSum: the domains, thresholds and label sets differ.
func ClassifyByScore(score int) model.RiskLevel {
	if score >= 80 {
		return model.RiskLow
	}
	if score >= 60 {
		return model.RiskMedium
	}
	return model.RiskHigh
}

// RiskFactors are the six raw 1-5 ratings collected by the quick evaluation
// flow, summed before any normalization.
type RiskFactors struct {
	CarbonFootprint        int `json:"carbon_footprint"`
	SoilWaterContamination int `json:"soil_water_contamination"`
	ClimateChangeRisk      int `json:"climate_change_risk"`
	CommunityImpact        int `json:"community_impact"`
	BasicServicesAccess    int `json:"basic_services_access"`
	HumanRightsRisk        int `json:"human_rights_risk"`
}

// Sum totals the six factors, giving a value in [6, 30] when all are rated.
func (f RiskFactors) Sum() int {
	return f.CarbonFootprint + f.SoilWaterContamination + f.ClimateChangeRisk +
		f.CommunityImpact + f.BasicServicesAccess + f.HumanRightsRisk
}

// ClassifyByRiskSum maps a raw risk-factor sum to a risk level. Unlike the
// score path, higher input means higher risk, and the middle band is labeled
// moderate rather than medium.
func ClassifyByRiskSum(sum int) model.RiskLevel {
	if sum < 10 {
		return model.RiskLow
	}
	if sum <= 20 {
		return model.RiskModerate
	}
	return model.RiskHigh
}
