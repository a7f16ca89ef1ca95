package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyinsights/internal/model"
)

func surveyWithPrefs(options []string, prefs ...float64) *model.SurveyResult {
	dist := make(map[string]model.ChoiceStats)
	for i, p := range prefs {
		letter, _ := model.IndexToLetter(i)
		dist[letter] = model.ChoiceStats{Percentage: p}
	}
	return &model.SurveyResult{
		Question:           "Which feature should we build next?",
		Options:            options,
		ChoiceDistribution: dist,
	}
}

func phaseOf(t *testing.T, r model.Roadmap, option string) model.Phase {
	t.Helper()
	for _, p := range r.Phases {
		for _, o := range p.Options {
			if o.OptionText == option {
				return p.Phase
			}
		}
	}
	t.Fatalf("option %q not in any phase", option)
	return ""
}

func TestEstimateEffort(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		text string
		want model.Effort
	}{
		{"high keyword", "Enterprise SSO integration", model.Effort{Days: 45, Difficulty: model.DifficultyHigh}},
		{"high wins over low", "Toggle for realtime sync", model.Effort{Days: 45, Difficulty: model.DifficultyHigh}},
		{"medium keyword", "Saved search", model.Effort{Days: 14, Difficulty: model.DifficultyMedium}},
		{"low keyword", "Dark mode toggle", model.Effort{Days: 5, Difficulty: model.DifficultyLow}},
		{"long text", strings.Repeat("x", 61), model.Effort{Days: 45, Difficulty: model.DifficultyHigh}},
		{"mid length text", strings.Repeat("x", 35), model.Effort{Days: 14, Difficulty: model.DifficultyMedium}},
		{"short text", strings.Repeat("x", 10), model.Effort{Days: 5, Difficulty: model.DifficultyLow}},
		{"ambiguous length defaults to medium", strings.Repeat("x", 25), model.Effort{Days: 14, Difficulty: model.DifficultyMedium}},
		{"empty text", "", model.Effort{Days: 5, Difficulty: model.DifficultyLow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.EstimateEffort(tt.text))
		})
	}
}

func TestEstimateEffortMatcherChoice(t *testing.T) {
	// substring matching finds "ai" inside "maintain"
	assert.Equal(t, model.DifficultyHigh, NewEngine().EstimateEffort("Maintain settings").Difficulty)
	assert.Equal(t, model.DifficultyMedium, NewEngine(WithMatcher(WordMatcher{})).EstimateEffort("Maintain settings").Difficulty)
}

func TestROIScore(t *testing.T) {
	assert.Equal(t, 900.0, ROIScore(45, 5))
	assert.InDelta(t, 88.89, ROIScore(40, 45), 0.01)
	assert.Equal(t, 0.0, ROIScore(45, 0))
	assert.Equal(t, 0.0, ROIScore(0, 5))
	assert.Equal(t, 0.0, ROIScore(-3, 5))
}

func TestAssignPhase(t *testing.T) {
	tests := []struct {
		name string
		plan model.OptionPlan
		want model.Phase
	}{
		{"no preference", model.OptionPlan{PreferencePct: 0, ROIScore: 0}, model.PhaseAvoid},
		{"below floor despite roi", model.OptionPlan{PreferencePct: 4.9, ROIScore: 98, Difficulty: model.DifficultyLow}, model.PhaseAvoid},
		{"blocked despite roi", model.OptionPlan{PreferencePct: 60, ROIScore: 1200, Blockers: []string{"vendor"}}, model.PhaseAvoid},
		{"high roi at high difficulty", model.OptionPlan{PreferencePct: 40, ROIScore: 88.9, Difficulty: model.DifficultyHigh}, model.PhaseNow},
		{"strong preference low effort", model.OptionPlan{PreferencePct: 45, ROIScore: 5, Difficulty: model.DifficultyLow}, model.PhaseNow},
		{"strong preference high effort", model.OptionPlan{PreferencePct: 45, ROIScore: 5, Difficulty: model.DifficultyHigh}, model.PhaseQ2},
		{"moderate", model.OptionPlan{PreferencePct: 20, ROIScore: 10, Difficulty: model.DifficultyMedium}, model.PhaseBacklog},
		{"exactly at floor", model.OptionPlan{PreferencePct: 5, ROIScore: 1, Difficulty: model.DifficultyHigh}, model.PhaseBacklog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rationale := AssignPhase(tt.plan)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, rationale)
		})
	}
}

func TestComputeRoadmapWorkedExample(t *testing.T) {
	options := []string{"Dark mode toggle", "Enterprise SSO integration", "Minor color update"}
	r := NewEngine().ComputeRoadmap(surveyWithPrefs(options, 45, 40, 3))

	require.Len(t, r.Phases, 2)
	now := r.Phases[0]
	assert.Equal(t, model.PhaseNow, now.Phase)
	require.Len(t, now.Options, 2)

	dark, sso := now.Options[0], now.Options[1]
	assert.Equal(t, "A", dark.Letter)
	assert.Equal(t, 5, dark.EffortDays)
	assert.Equal(t, model.DifficultyLow, dark.Difficulty)
	assert.Equal(t, 900.0, dark.ROIScore)

	// roi 88.9 > 10 puts a High-difficulty option in NOW
	assert.Equal(t, 45, sso.EffortDays)
	assert.Equal(t, model.DifficultyHigh, sso.Difficulty)
	assert.InDelta(t, 88.9, sso.ROIScore, 0.05)

	avoid := r.Phases[1]
	assert.Equal(t, model.PhaseAvoid, avoid.Phase)
	require.Len(t, avoid.Options, 1)
	assert.Equal(t, "Minor color update", avoid.Options[0].OptionText)
	assert.Equal(t, 60.0, avoid.Options[0].ROIScore)

	assert.Equal(t, 50, now.AggregateEffortDays)
	assert.Equal(t, 85.0, now.AggregatePreferencePct)
	assert.Equal(t, 50, r.TotalEffortDays)
	assert.Equal(t, "0-2 weeks", r.EstimatedTotalTimeline)
	require.Len(t, r.SkipReasons, 1)
	assert.True(t, strings.HasPrefix(r.SkipReasons[0], "Minor color update: "))
}

func TestComputeRoadmapLaterPhases(t *testing.T) {
	tables := DefaultTables()
	tables.Effort.High.Days = 1000
	e := NewEngine(WithTables(tables))

	options := []string{"Realtime integration layer", "AI assistant"}
	r := e.ComputeRoadmap(surveyWithPrefs(options, 50, 20))

	assert.Equal(t, model.PhaseQ2, phaseOf(t, r, "Realtime integration layer"))
	assert.Equal(t, model.PhaseBacklog, phaseOf(t, r, "AI assistant"))
	assert.Equal(t, "6-12 weeks to 3+ months", r.EstimatedTotalTimeline)
	assert.Equal(t, 2000, r.TotalEffortDays)
	assert.Empty(t, r.SkipReasons)
}

func TestComputeRoadmapRisks(t *testing.T) {
	options := []string{"Dark mode toggle", "Enterprise SSO integration", "Saved search"}
	result := surveyWithPrefs(options, 30, 30, 30)
	result.RiskAnnotations = []model.Risk{
		{Description: "Dark mode toggle and Enterprise SSO integration share the settings rework", Severity: model.SeverityMedium},
		{Description: "enterprise sso integration needs a signed vendor contract", Severity: "high"},
		{Description: "Unrelated infrastructure risk", Severity: model.SeverityHigh},
	}
	r := NewEngine().ComputeRoadmap(result)

	plans := make(map[string]model.OptionPlan)
	for _, p := range r.Phases {
		for _, o := range p.Options {
			plans[o.OptionText] = o
		}
	}

	assert.Equal(t, []string{"Enterprise SSO integration"}, plans["Dark mode toggle"].Dependencies)
	assert.Equal(t, []string{"Dark mode toggle"}, plans["Enterprise SSO integration"].Dependencies)
	assert.Empty(t, plans["Saved search"].Dependencies)

	assert.Empty(t, plans["Dark mode toggle"].Blockers)
	assert.Equal(t, []string{"enterprise sso integration needs a signed vendor contract"}, plans["Enterprise SSO integration"].Blockers)
	assert.Equal(t, model.PhaseAvoid, phaseOf(t, r, "Enterprise SSO integration"))
	assert.Equal(t, model.PhaseNow, phaseOf(t, r, "Dark mode toggle"))
}

func TestComputeRoadmapDegenerateInput(t *testing.T) {
	e := NewEngine()

	t.Run("nil result", func(t *testing.T) {
		r := e.ComputeRoadmap(nil)
		assert.Empty(t, r.Phases)
		assert.Equal(t, TimelineNotAvailable, r.EstimatedTotalTimeline)
	})

	t.Run("no options", func(t *testing.T) {
		r := e.ComputeRoadmap(&model.SurveyResult{Question: "q"})
		assert.Equal(t, TimelineNotAvailable, r.EstimatedTotalTimeline)
	})

	t.Run("zero responses routes everything to avoid", func(t *testing.T) {
		options := []string{"Dark mode toggle", "Enterprise SSO integration", "Minor color update"}
		r := e.ComputeRoadmap(&model.SurveyResult{Options: options})

		require.Len(t, r.Phases, 1)
		assert.Equal(t, model.PhaseAvoid, r.Phases[0].Phase)
		require.Len(t, r.Phases[0].Options, 3)
		for _, o := range r.Phases[0].Options {
			assert.Equal(t, 0.0, o.PreferencePct)
			assert.Equal(t, ReasonNoPreference, o.Rationale)
		}
		assert.Equal(t, TimelineNoRecommendation, r.EstimatedTotalTimeline)
		assert.Equal(t, 0, r.TotalEffortDays)
		assert.Len(t, r.SkipReasons, 3)
	})

	t.Run("out of range percentages are clamped", func(t *testing.T) {
		r := e.ComputeRoadmap(surveyWithPrefs([]string{"Dark mode toggle", "Saved search"}, 250, -10))
		assert.Equal(t, 100.0, r.Phases[0].Options[0].PreferencePct)
		assert.Equal(t, model.PhaseAvoid, phaseOf(t, r, "Saved search"))
	})
}

func TestComputeRoadmapPhaseCompleteness(t *testing.T) {
	options := []string{
		"Dark mode toggle", "Enterprise SSO integration", "Minor color update",
		"Saved search", "Realtime collaboration architecture", "", "Notification settings page for teams",
	}
	r := NewEngine().ComputeRoadmap(surveyWithPrefs(options, 45, 40, 3, 12, 50, 7, 0))

	seen := make(map[int]int)
	for _, p := range r.Phases {
		assert.NotEmpty(t, p.Options, "phase %s emitted without options", p.Phase)
		for _, o := range p.Options {
			idx, err := model.LetterToIndex(o.Letter)
			require.NoError(t, err)
			seen[idx]++
			assert.GreaterOrEqual(t, o.ROIScore, 0.0)
		}
	}
	require.Len(t, seen, len(options))
	for i := range options {
		assert.Equal(t, 1, seen[i], "option %d", i)
	}
}
