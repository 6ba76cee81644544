package model

// Threat levels, ordered by indicator count.
const (
	ThreatLevelLow      = "low"
	ThreatLevelMedium   = "medium"
	ThreatLevelHigh     = "high"
	ThreatLevelCritical = "critical"
)

// ThreatAnalysis - 인시던트 본문에서 파생된 위협 평가
// 저장하지 않고 요청마다 다시 계산
type ThreatAnalysis struct {
	ThreatLevel     string   `json:"threat_level"`
	ConfidenceScore float64  `json:"confidence_score"`

	// Indicators keeps matched substrings in category-then-match order,
	// duplicates included, capped at 10 in the payload.
	Indicators      []string `json:"indicators"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}
