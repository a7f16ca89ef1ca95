package insight

import (
	"fmt"
	"strings"

	"surveyinsights/internal/model"
)

// PlatformFamilyOf classifies a platform name by the first family rule whose
// keywords it contains. Unknown platforms are generic.
func (e *Engine) PlatformFamilyOf(platform string) PlatformFamily {
	lower := strings.ToLower(strings.TrimSpace(platform))
	if lower == "" {
		return FamilyGeneric
	}
	for _, rule := range e.tables.PlatformFamilies {
		if matchesAny(lower, rule.Keywords, e.matcher) {
			return rule.Family
		}
	}
	return FamilyGeneric
}

// TempoFor returns Sprint for short-form platforms and Marathon otherwise
func TempoFor(f PlatformFamily) Tempo {
	if f == FamilyShortForm {
		return TempoSprint
	}
	return TempoMarathon
}

// BandFor picks the budget strategy for a confidence in [0,1]
func (e *Engine) BandFor(confidence float64) Band {
	c := model.Clamp(confidence, 0, 1)
	switch {
	case c > e.tables.Timeline.ScaleAbove:
		return BandScale
	case c < e.tables.Timeline.ValidateBelow:
		return BandValidation
	default:
		return BandBalanced
	}
}

// GenerateCampaignTimeline builds the rollout plan for a platform. The tempo
// sets the time labels and the confidence band sets the phase titles,
// actions and budget split.
func (e *Engine) GenerateCampaignTimeline(platform string, confidence float64, option, benefit string) model.CampaignTimeline {
	tempo := TempoFor(e.PlatformFamilyOf(platform))
	band := e.BandFor(confidence)
	labels := e.tables.Timeline.Tempos[tempo].Labels
	r := newFiller(option, "", benefit, platform)

	timeline := model.CampaignTimeline{
		StrategyType: string(tempo) + " " + string(band),
		Platform:     platform,
		Confidence:   model.Clamp(confidence, 0, 1),
		Phases:       []model.TimelinePhase{},
	}
	for i, tmpl := range e.tables.Timeline.Bands[band] {
		label := fmt.Sprintf("Phase %d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		timeline.Phases = append(timeline.Phases, model.TimelinePhase{
			TimeLabel:           label,
			Title:               tmpl.Title,
			Action:              r.Replace(tmpl.Action),
			BudgetAllocationPct: tmpl.Budget,
		})
	}
	return timeline
}

func newFiller(option, driver, benefit, platform string) *strings.Replacer {
	return strings.NewReplacer(
		"{option}", option,
		"{driver}", driver,
		"{benefit}", benefit,
		"{platform}", platform,
	)
}
