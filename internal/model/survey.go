package model

import "strings"

// GeneralPlatform is the group name for responses that carry no platform
const GeneralPlatform = "General"

// Severity is the risk severity level
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// IsHigh reports whether the severity is High, ignoring case
func (s Severity) IsHigh() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(SeverityHigh))
}

// ChoiceStats is the resolved distribution entry for one option letter
type ChoiceStats struct {
	Count         int     `json:"count" yaml:"count"`
	Percentage    float64 `json:"percentage" yaml:"percentage"` // 0-100
	AvgConfidence float64 `json:"avgConfidence,omitempty" yaml:"avgConfidence,omitempty"`
	MinConfidence float64 `json:"minConfidence,omitempty" yaml:"minConfidence,omitempty"`
	MaxConfidence float64 `json:"maxConfidence,omitempty" yaml:"maxConfidence,omitempty"`
}

// Response is one simulated respondent's answer
type Response struct {
	AgentID          string  `json:"agentId" yaml:"agentId"`
	Platform         string  `json:"platform" yaml:"platform"`
	Choice           string  `json:"choice" yaml:"choice"`         // Option letter, "A" = first option
	Confidence       float64 `json:"confidence" yaml:"confidence"` // 0-1 by convention, not enforced upstream
	Reasoning        string  `json:"reasoning" yaml:"reasoning"`
	ReasoningSummary string  `json:"reasoningSummary,omitempty" yaml:"reasoningSummary,omitempty"`
}

// Text joins the reasoning and the optional summary
func (r Response) Text() string {
	if r.ReasoningSummary == "" {
		return r.Reasoning
	}
	if r.Reasoning == "" {
		return r.ReasoningSummary
	}
	return r.Reasoning + " " + r.ReasoningSummary
}

// ClampedConfidence returns the confidence forced into [0,1]
func (r Response) ClampedConfidence() float64 {
	return Clamp(r.Confidence, 0, 1)
}

// PlatformGroup is a set of responses collected on one platform
type PlatformGroup struct {
	Platform  string     `json:"platform" yaml:"platform"`
	Consensus float64    `json:"consensus" yaml:"consensus"` // Agreement strength, 0-1
	Responses []Response `json:"responses" yaml:"responses"`
}

// Risk is a risk annotation attached to the survey result
type Risk struct {
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Mitigation  string   `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
}

// DecisionFactor is a factor respondents cited when choosing
type DecisionFactor struct {
	Factor              string   `json:"factor" yaml:"factor"`
	ImpactScore         float64  `json:"impactScore" yaml:"impactScore"`
	AgentMentions       int      `json:"agentMentions" yaml:"agentMentions"`
	PlatformsInfluenced []string `json:"platformsInfluenced,omitempty" yaml:"platformsInfluenced,omitempty"`
}

// SurveyResult is the completed multi-agent survey handed to the analyzers.
// Responses are supplied either flat or pre-grouped by platform; when
// PlatformGroups is set it wins.
type SurveyResult struct {
	ID                 string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Question           string                 `json:"question" yaml:"question"`
	Options            []string               `json:"options" yaml:"options"`                       // Index 0 = "A"
	ChoiceDistribution map[string]ChoiceStats `json:"choiceDistribution" yaml:"choiceDistribution"` // letter -> stats
	Responses          []Response             `json:"responses,omitempty" yaml:"responses,omitempty"`
	PlatformGroups     []PlatformGroup        `json:"platformGroups,omitempty" yaml:"platformGroups,omitempty"`
	Platforms          []string               `json:"platforms,omitempty" yaml:"platforms,omitempty"` // Platforms named in survey metadata
	RiskAnnotations    []Risk                 `json:"riskAnnotations,omitempty" yaml:"riskAnnotations,omitempty"`
	DecisionFactors    []DecisionFactor       `json:"decisionFactors,omitempty" yaml:"decisionFactors,omitempty"`
}

// AllResponses returns every response, flattening platform groups when present
func (s *SurveyResult) AllResponses() []Response {
	if s == nil {
		return nil
	}
	if len(s.PlatformGroups) == 0 {
		return s.Responses
	}
	var all []Response
	for _, g := range s.PlatformGroups {
		all = append(all, g.Responses...)
	}
	return all
}

// Groups returns the platform groups. Flat responses are grouped by platform
// in first-seen order, with consensus set to the share of the modal choice.
func (s *SurveyResult) Groups() []PlatformGroup {
	if s == nil {
		return nil
	}
	if len(s.PlatformGroups) > 0 {
		return s.PlatformGroups
	}

	index := make(map[string]int)
	groups := []PlatformGroup{}
	for _, r := range s.Responses {
		name := strings.TrimSpace(r.Platform)
		if name == "" {
			name = GeneralPlatform
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, PlatformGroup{Platform: name})
		}
		groups[i].Responses = append(groups[i].Responses, r)
	}
	for i := range groups {
		groups[i].Consensus = modalShare(groups[i].Responses, len(s.Options))
	}
	return groups
}

// PreferencePct returns the resolved preference percentage for an option
// index, clamped to [0,100]. Missing entries and indexes without a letter
// count as 0.
func (s *SurveyResult) PreferencePct(index int) float64 {
	if s == nil {
		return 0
	}
	letter, err := IndexToLetter(index)
	if err != nil {
		return 0
	}
	stats, ok := s.ChoiceDistribution[letter]
	if !ok {
		return 0
	}
	return Clamp(stats.Percentage, 0, 100)
}

// TopDecisionFactor returns the factor with the highest impact score
func (s *SurveyResult) TopDecisionFactor() (DecisionFactor, bool) {
	if s == nil || len(s.DecisionFactors) == 0 {
		return DecisionFactor{}, false
	}
	best := s.DecisionFactors[0]
	for _, f := range s.DecisionFactors[1:] {
		if f.ImpactScore > best.ImpactScore {
			best = f
		}
	}
	return best, strings.TrimSpace(best.Factor) != ""
}

func modalShare(responses []Response, optionCount int) float64 {
	if len(responses) == 0 {
		return 0
	}
	counts := make(map[int]int)
	best := 0
	for _, r := range responses {
		i, err := LetterToIndex(r.Choice)
		if err != nil || i >= optionCount {
			continue
		}
		counts[i]++
		if counts[i] > best {
			best = counts[i]
		}
	}
	return float64(best) / float64(len(responses))
}

// Clamp forces v into [lo,hi]
func Clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
