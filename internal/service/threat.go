// 위협 패턴 휴리스틱 스코어러
//
// 외부 I/O 없는 순수 함수. 고정된 (카테고리, 패턴) 테이블로
// 인시던트 본문에서 지표를 추출하고 위협 수준을 매긴다.
//
// 매칭 수 → 수준/신뢰도:
//   0   → low      / 0.0
//   1-2 → medium   / 0.5
//   3-4 → high     / 0.7
//   ≥5  → critical / 0.9
//
// 지표는 중복 제거하지 않으며, 수준 계산에는 절단 전 전체 개수를 쓴다.
// 잦은 저신호 토큰(IP 여러 개 등)이 수준을 끌어올릴 수 있지만 의도된 동작.

package service

import (
	"regexp"
	"strings"

	"github.com/soc-nexus/backend/internal/model"
)

const (
	maxIndicators      = 10
	maxRecommendations = 5
)

type threatCategory struct {
	name     string
	patterns []*regexp.Regexp
}

// 카테고리 순서가 indicators의 삽입 순서를 결정한다.
var threatCategories = []threatCategory{
	{
		name: "malware_indicators",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(malware|virus|trojan|ransomware|backdoor|rootkit)`),
			regexp.MustCompile(`(?i)(payload|exploit|shellcode|injection)`),
			regexp.MustCompile(`(?i)(keylogger|spyware|adware)`),
		},
	},
	{
		name: "network_indicators",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(lateral movement|pivot|exfiltration)`),
			regexp.MustCompile(`(?i)(command and control|c2|beacon)`),
			regexp.MustCompile(`(?i)(data breach|leak|exfil)`),
		},
	},
	{
		name: "attack_vectors",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(phishing|spear phishing|social engineering)`),
			regexp.MustCompile(`(?i)(privilege escalation|escalation)`),
			regexp.MustCompile(`(?i)(persistence|persistent)`),
		},
	},
	{
		name: "ioc_patterns",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`),    // IP addresses
			regexp.MustCompile(`\b(?:[a-f0-9]{2}:){5}[a-f0-9]{2}\b`),   // MAC addresses
			regexp.MustCompile(`\b[A-Za-z0-9+/]{40}={0,2}\b`),          // SHA1 hashes
			regexp.MustCompile(`\b[A-Za-z0-9+/]{64}={0,2}\b`),          // SHA256 hashes
			regexp.MustCompile(`\b[A-Za-z0-9+/]{32}={0,2}\b`),          // MD5 hashes
		},
	},
}

// riskFactorRules maps indicator substrings to human-readable risk factors.
// 순서 고정: malware → lateral → exfil
var riskFactorRules = []struct {
	fragment string
	label    string
}{
	{"malware", "Malware detected"},
	{"lateral", "Lateral movement detected"},
	{"exfil", "Data exfiltration risk"},
}

var generalRecommendations = []string{
	"Immediate incident response required",
	"Isolate affected systems",
	"Notify security team and management",
	"Preserve evidence for forensic analysis",
}

var riskFactorRecommendations = map[string][]string{
	"Malware detected": {
		"Run full antivirus scan on all systems",
		"Check for persistence mechanisms",
		"Review system logs for additional indicators",
	},
	"Lateral movement detected": {
		"Review network segmentation",
		"Check for unauthorized access attempts",
		"Monitor for additional lateral movement",
	},
	"Data exfiltration risk": {
		"Review data access logs",
		"Check for unusual data transfers",
		"Implement data loss prevention measures",
	},
}

// AnalyzeThreat scores a piece of incident text.
func AnalyzeThreat(text string) model.ThreatAnalysis {
	indicators := []string{}
	for _, cat := range threatCategories {
		for _, re := range cat.patterns {
			indicators = append(indicators, re.FindAllString(text, -1)...)
		}
	}

	level := model.ThreatLevelLow
	confidence := 0.0
	switch count := len(indicators); {
	case count >= 5:
		level = model.ThreatLevelCritical
		confidence = 0.9
	case count >= 3:
		level = model.ThreatLevelHigh
		confidence = 0.7
	case count >= 1:
		level = model.ThreatLevelMedium
		confidence = 0.5
	}

	riskFactors := []string{}
	for _, rule := range riskFactorRules {
		for _, indicator := range indicators {
			if strings.Contains(strings.ToLower(indicator), rule.fragment) {
				riskFactors = append(riskFactors, rule.label)
				break
			}
		}
	}

	recommendations := SecurityRecommendations(level, riskFactors)

	// 응답에는 상위 10개만 싣는다. 수준 계산은 이미 전체 개수로 끝난 상태.
	if len(indicators) > maxIndicators {
		indicators = indicators[:maxIndicators]
	}

	return model.ThreatAnalysis{
		ThreatLevel:     level,
		ConfidenceScore: confidence,
		Indicators:      indicators,
		RiskFactors:     riskFactors,
		Recommendations: recommendations,
	}
}

// SecurityRecommendations maps a threat level and risk factors to a fixed
// response checklist, general actions first, capped at 5.
func SecurityRecommendations(level string, riskFactors []string) []string {
	recommendations := []string{}

	if level == model.ThreatLevelHigh || level == model.ThreatLevelCritical {
		recommendations = append(recommendations, generalRecommendations...)
	}

	for _, rule := range riskFactorRules {
		for _, factor := range riskFactors {
			if factor == rule.label {
				recommendations = append(recommendations, riskFactorRecommendations[rule.label]...)
				break
			}
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
