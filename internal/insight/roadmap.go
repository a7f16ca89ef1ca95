package insight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"surveyinsights/internal/model"
)

// Phase rule thresholds. The NOW rule accepts any option with roi > 10, even
// a High-difficulty one.
const (
	AvoidBelowPct      = 5.0
	NowAboveROI        = 10.0
	StrongPrefAbovePct = 40.0
)

// Timeline messages
const (
	TimelineNoRecommendation = "No recommended timeline" // only AVOID options
	TimelineNotAvailable     = "N/A"                     // no options at all
	ReasonNoPreference       = "no agent preference detected"
)

var phaseOrder = []model.Phase{model.PhaseNow, model.PhaseQ2, model.PhaseBacklog, model.PhaseAvoid}

var phaseTimelines = map[model.Phase]string{
	model.PhaseNow:     "0-2 weeks",
	model.PhaseQ2:      "6-12 weeks",
	model.PhaseBacklog: "3+ months",
	model.PhaseAvoid:   "Not scheduled",
}

// PhaseTimeline returns the timeline label of a phase
func PhaseTimeline(p model.Phase) string {
	return phaseTimelines[p]
}

// EstimateEffort classifies an option's build effort from its text.
// High wins over Medium, Medium over Low; unmatched text is Medium.
func (e *Engine) EstimateEffort(optionText string) model.Effort {
	t := e.tables.Effort
	text := strings.TrimSpace(optionText)
	lower := strings.ToLower(text)
	n := utf8.RuneCountInString(text)

	switch {
	case matchesAny(lower, t.High.Keywords, e.matcher) || n > t.HighAboveLen:
		return model.Effort{Days: t.High.Days, Difficulty: model.DifficultyHigh}
	case matchesAny(lower, t.Medium.Keywords, e.matcher) || (n > t.MediumAboveLen && n <= t.HighAboveLen):
		return model.Effort{Days: t.Medium.Days, Difficulty: model.DifficultyMedium}
	case matchesAny(lower, t.Low.Keywords, e.matcher) || n <= t.LowAtMostLen:
		return model.Effort{Days: t.Low.Days, Difficulty: model.DifficultyLow}
	default:
		return model.Effort{Days: t.Medium.Days, Difficulty: model.DifficultyMedium}
	}
}

// ROIScore is preference percentage * 100 / effort days, 0 when effort is 0
func ROIScore(preferencePct float64, effortDays int) float64 {
	if effortDays <= 0 || preferencePct <= 0 {
		return 0
	}
	return preferencePct * 100 / float64(effortDays)
}

// AssignPhase applies the phase rules top to bottom; the first match wins
func AssignPhase(plan model.OptionPlan) (model.Phase, string) {
	switch {
	case plan.PreferencePct <= 0:
		return model.PhaseAvoid, ReasonNoPreference
	case plan.PreferencePct < AvoidBelowPct:
		return model.PhaseAvoid, fmt.Sprintf("low preference (%.1f%%) below the %.0f%% floor", plan.PreferencePct, AvoidBelowPct)
	case len(plan.Blockers) > 0:
		return model.PhaseAvoid, "blocked by high-severity risk: " + plan.Blockers[0]
	case plan.ROIScore > NowAboveROI:
		return model.PhaseNow, fmt.Sprintf("high ROI (%.1f): %.1f%% preference for %d days of effort", plan.ROIScore, plan.PreferencePct, plan.EffortDays)
	case plan.PreferencePct > StrongPrefAbovePct && plan.Difficulty == model.DifficultyLow:
		return model.PhaseNow, fmt.Sprintf("strong preference (%.1f%%) with low effort", plan.PreferencePct)
	case plan.PreferencePct > StrongPrefAbovePct:
		return model.PhaseQ2, fmt.Sprintf("strong preference (%.1f%%) but %s effort (%d days)", plan.PreferencePct, strings.ToLower(string(plan.Difficulty)), plan.EffortDays)
	default:
		return model.PhaseBacklog, fmt.Sprintf("moderate ROI (%.1f); revisit after current priorities", plan.ROIScore)
	}
}

// ComputeRoadmap turns the survey options into a phased build plan. Every
// option lands in exactly one phase; empty phases are omitted.
func (e *Engine) ComputeRoadmap(result *model.SurveyResult) model.Roadmap {
	roadmap := model.Roadmap{
		Phases:      []model.RoadmapPhase{},
		SkipReasons: []string{},
	}
	if result == nil || len(result.Options) == 0 {
		roadmap.EstimatedTotalTimeline = TimelineNotAvailable
		return roadmap
	}

	buckets := make(map[model.Phase][]model.OptionPlan)
	for i := range result.Options {
		plan, phase := e.planOption(result, i)
		buckets[phase] = append(buckets[phase], plan)
		if phase == model.PhaseAvoid {
			roadmap.SkipReasons = append(roadmap.SkipReasons, fmt.Sprintf("%s: %s", plan.OptionText, plan.Rationale))
		}
	}

	var active []model.RoadmapPhase
	for _, phase := range phaseOrder {
		plans := buckets[phase]
		if len(plans) == 0 {
			continue
		}
		rp := model.RoadmapPhase{
			Phase:    phase,
			Timeline: PhaseTimeline(phase),
			Options:  plans,
		}
		for _, p := range plans {
			rp.AggregateEffortDays += p.EffortDays
			rp.AggregatePreferencePct += p.PreferencePct
		}
		roadmap.Phases = append(roadmap.Phases, rp)
		if phase != model.PhaseAvoid {
			active = append(active, rp)
			roadmap.TotalEffortDays += rp.AggregateEffortDays
		}
	}

	switch len(active) {
	case 0:
		roadmap.EstimatedTotalTimeline = TimelineNoRecommendation
	case 1:
		roadmap.EstimatedTotalTimeline = active[0].Timeline
	default:
		roadmap.EstimatedTotalTimeline = active[0].Timeline + " to " + active[len(active)-1].Timeline
	}
	return roadmap
}

func (e *Engine) planOption(result *model.SurveyResult, index int) (model.OptionPlan, model.Phase) {
	text := result.Options[index]
	letter, _ := model.IndexToLetter(index)
	pref := result.PreferencePct(index)
	effort := e.EstimateEffort(text)

	plan := model.OptionPlan{
		OptionText:    text,
		Letter:        letter,
		PreferencePct: pref,
		EffortDays:    effort.Days,
		Difficulty:    effort.Difficulty,
		ROIScore:      ROIScore(pref, effort.Days),
		Dependencies:  e.dependencies(result, index),
		Blockers:      e.blockers(result, text),
	}
	phase, rationale := AssignPhase(plan)
	plan.Rationale = rationale
	return plan, phase
}

// dependencies lists the other options that share a risk description with
// the option at index
func (e *Engine) dependencies(result *model.SurveyResult, index int) []string {
	deps := []string{}
	self := strings.TrimSpace(result.Options[index])
	if self == "" {
		return deps
	}
	seen := make(map[int]bool)
	for _, risk := range result.RiskAnnotations {
		desc := strings.ToLower(risk.Description)
		if !e.matcher.Matches(desc, self) {
			continue
		}
		for j, other := range result.Options {
			if j == index || seen[j] {
				continue
			}
			other = strings.TrimSpace(other)
			if other == "" || strings.EqualFold(other, self) {
				continue
			}
			if e.matcher.Matches(desc, other) {
				seen[j] = true
			}
		}
	}
	for j, other := range result.Options {
		if seen[j] {
			deps = append(deps, other)
		}
	}
	return deps
}

func (e *Engine) blockers(result *model.SurveyResult, optionText string) []string {
	blockers := []string{}
	text := strings.TrimSpace(optionText)
	if text == "" {
		return blockers
	}
	for _, risk := range result.RiskAnnotations {
		if risk.Severity.IsHigh() && e.matcher.Matches(strings.ToLower(risk.Description), text) {
			blockers = append(blockers, risk.Description)
		}
	}
	return blockers
}
