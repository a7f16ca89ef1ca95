package insight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyinsights/internal/model"
)

func campaignSurvey() *model.SurveyResult {
	return &model.SurveyResult{
		Question: "How should we publish the launch?",
		Options:  []string{"Short video clips", "Long articles"},
		PlatformGroups: []model.PlatformGroup{
			{
				Platform:  "LinkedIn",
				Consensus: 0.6,
				Responses: []model.Response{
					{AgentID: "a1", Choice: "A", Confidence: 0.9, Reasoning: "Reliable and secure because it saves hours every week"},
					{AgentID: "a2", Choice: "A", Confidence: 0.8, Reasoning: "Trust matters. It is reliable"},
					{AgentID: "a3", Choice: "B", Confidence: 0.4, Reasoning: "Cheap price"},
				},
			},
			{
				Platform:  "TikTok",
				Consensus: 0.9,
				Responses: []model.Response{
					{AgentID: "b1", Choice: "A", Confidence: 0.95, Reasoning: "fun and viral, it lets me share clips fast"},
					{AgentID: "b2", Choice: "a", Confidence: 1.4, Reasoning: "So fun"},
				},
			},
		},
	}
}

func TestComputeCampaignMessaging(t *testing.T) {
	c := NewEngine().ComputeCampaignMessaging(campaignSurvey())

	assert.Equal(t, "TikTok", c.PrimaryPlatform)
	assert.Equal(t, []string{"LinkedIn", "TikTok"}, c.PlatformOrder)
	require.Len(t, c.PlatformMessaging, 2)

	li := c.PlatformMessaging["LinkedIn"]
	assert.Equal(t, string(FamilyProfessional), li.Family)
	assert.Equal(t, 3, li.ResponseCount)
	assert.Equal(t, "Short video clips", li.WinningOption)
	assert.Equal(t, "it saves hours every week", li.PrimaryBenefit)
	assert.Equal(t, []string{"trust", "value"}, li.TopDrivers)
	assert.Equal(t, 2, li.EmotionalDrivers["trust"])
	assert.Equal(t, 0, li.EmotionalDrivers["fun"])
	assert.Equal(t, "Short video clips delivers trust for professionals: it saves hours every week.", li.RecommendedMessage)
	assert.False(t, li.Placeholder)

	require.Contains(t, li.Effectiveness, "A")
	require.Contains(t, li.Effectiveness, "B")
	assert.InDelta(t, 66.67, li.Effectiveness["A"].Percentage, 0.01)
	assert.InDelta(t, 33.33, li.Effectiveness["B"].Percentage, 0.01)
	assert.Equal(t, []string{"value"}, li.Effectiveness["B"].TopDrivers)
	assert.Equal(t, "Long articles delivers value for professionals: it saves hours every week.", li.Effectiveness["B"].Message)
	assert.Len(t, li.Effectiveness["A"].AdCopyIdeas, 3)

	tt := c.PlatformMessaging["TikTok"]
	assert.Equal(t, string(FamilyShortForm), tt.Family)
	assert.Equal(t, []string{"fun", "speed", "trendy"}, tt.TopDrivers)
	assert.Equal(t, 100.0, tt.Effectiveness["A"].Percentage)
	assert.Equal(t, 0.0, tt.Effectiveness["B"].Percentage)
	assert.Empty(t, tt.Effectiveness["B"].TopDrivers)

	require.Len(t, c.MessageVariations, 3)
	assert.Equal(t, model.ToneVariation{Tone: model.ToneFormal, Message: tt.ToneVariations.Formal}, c.MessageVariations[0])
	assert.Equal(t, model.ToneCasual, c.MessageVariations[1].Tone)
	assert.Equal(t, model.ToneUrgent, c.MessageVariations[2].Tone)

	tl := c.CampaignTimeline
	assert.Equal(t, "Sprint Scale", tl.StrategyType)
	assert.Equal(t, "TikTok", tl.Platform)
	// 1.4 is clamped to 1 before averaging with 0.95
	assert.InDelta(t, 0.975, tl.Confidence, 1e-9)
	require.Len(t, tl.Phases, 3)
	assert.Equal(t, "Days 1-3", tl.Phases[0].TimeLabel)
	assert.Contains(t, tl.Phases[0].Action, "Short video clips")
}

func TestComputeCampaignMessagingFlatResponses(t *testing.T) {
	result := &model.SurveyResult{
		Options: []string{"Weekly digest", "Live stream"},
		Responses: []model.Response{
			{Platform: "YouTube", Choice: "B", Confidence: 0.6, Reasoning: "Fun to watch"},
			{Platform: "", Choice: "A", Confidence: 0.6, Reasoning: "Easy to skim"},
			{Platform: "YouTube", Choice: "A", Confidence: 0.6, Reasoning: "Quality content"},
			{Platform: "YouTube", Choice: "B", Confidence: 0.6, Reasoning: "Genuine people"},
		},
	}
	c := NewEngine().ComputeCampaignMessaging(result)

	assert.Equal(t, []string{"YouTube", model.GeneralPlatform}, c.PlatformOrder)
	assert.Equal(t, string(FamilyVideo), c.PlatformMessaging["YouTube"].Family)
	assert.Equal(t, "Live stream", c.PlatformMessaging["YouTube"].WinningOption)
	// the General group agrees fully, so it outranks YouTube's 2/3
	assert.Equal(t, model.GeneralPlatform, c.PrimaryPlatform)
	assert.Equal(t, "Marathon Balanced", c.CampaignTimeline.StrategyType)
}

func TestComputeCampaignMessagingPlaceholders(t *testing.T) {
	e := NewEngine()

	t.Run("metadata platforms", func(t *testing.T) {
		result := &model.SurveyResult{
			Options:   []string{"Starter", "Pro"},
			Platforms: []string{"LinkedIn", "TikTok", "LinkedIn", " "},
		}
		c := e.ComputeCampaignMessaging(result)

		assert.Equal(t, []string{"LinkedIn", "TikTok"}, c.PlatformOrder)
		assert.Equal(t, "LinkedIn", c.PrimaryPlatform)
		for _, name := range c.PlatformOrder {
			pm := c.PlatformMessaging[name]
			assert.True(t, pm.Placeholder)
			assert.Equal(t, 0, pm.ResponseCount)
			assert.Equal(t, 0.0, pm.Effectiveness["A"].Percentage)
			assert.Equal(t, "improves", pm.PrimaryBenefit)
			assert.NotEmpty(t, pm.RecommendedMessage)
		}
		assert.Equal(t, "Marathon Validation", c.CampaignTimeline.StrategyType)
		assert.Len(t, c.MessageVariations, 3)
	})

	t.Run("generic fallback platform", func(t *testing.T) {
		c := e.ComputeCampaignMessaging(nil)
		assert.Equal(t, []string{model.GeneralPlatform}, c.PlatformOrder)
		assert.True(t, c.PlatformMessaging[model.GeneralPlatform].Placeholder)
		assert.Contains(t, c.PlatformMessaging[model.GeneralPlatform].RecommendedMessage, fallbackSubject)
	})

	t.Run("groups without responses", func(t *testing.T) {
		result := &model.SurveyResult{
			Options: []string{"Starter"},
			PlatformGroups: []model.PlatformGroup{
				{Platform: "LinkedIn", Consensus: 0.6},
				{Platform: "TikTok", Consensus: 0.9},
				{Platform: "LinkedIn"},
			},
		}
		c := e.ComputeCampaignMessaging(result)
		assert.Equal(t, []string{"LinkedIn", "TikTok"}, c.PlatformOrder)
		assert.True(t, c.PlatformMessaging["TikTok"].Placeholder)
		assert.Equal(t, "TikTok", c.PrimaryPlatform)
		assert.Equal(t, "Sprint Scale", c.CampaignTimeline.StrategyType)
	})

	t.Run("metadata platforms win over empty groups", func(t *testing.T) {
		result := &model.SurveyResult{
			Options:        []string{"Starter"},
			Platforms:      []string{"YouTube"},
			PlatformGroups: []model.PlatformGroup{{Platform: "Instagram", Consensus: 0.7}},
		}
		c := e.ComputeCampaignMessaging(result)
		assert.Equal(t, []string{"YouTube"}, c.PlatformOrder)
	})
}

func TestGenerateCampaignTimeline(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		platform   string
		confidence float64
		strategy   string
		budgets    []int
		firstLabel string
	}{
		{"TikTok", 0.9, "Sprint Scale", []int{60, 30, 10}, "Days 1-3"},
		{"TikTok", 0.3, "Sprint Validation", []int{20, 30, 50}, "Days 1-3"},
		{"TikTok", 0.6, "Sprint Balanced", []int{30, 40, 30}, "Days 1-3"},
		{"LinkedIn", 0.95, "Marathon Scale", []int{60, 30, 10}, "Weeks 1-2"},
		{"LinkedIn", 0.1, "Marathon Validation", []int{20, 30, 50}, "Weeks 1-2"},
		{"Podcast", 0.7, "Marathon Balanced", []int{30, 40, 30}, "Weeks 1-2"},
		{"Instagram", 0.8, "Sprint Balanced", []int{30, 40, 30}, "Days 1-3"},
		{"Email", 0.5, "Marathon Balanced", []int{30, 40, 30}, "Weeks 1-2"},
		{"Forum", 7, "Marathon Scale", []int{60, 30, 10}, "Weeks 1-2"},
	}
	for _, tt := range tests {
		t.Run(tt.strategy+"/"+tt.platform, func(t *testing.T) {
			tl := e.GenerateCampaignTimeline(tt.platform, tt.confidence, "Pro plan", "saves time")
			assert.Equal(t, tt.strategy, tl.StrategyType)
			require.Len(t, tl.Phases, 3)

			sum := 0
			budgets := make([]int, len(tl.Phases))
			for i, p := range tl.Phases {
				budgets[i] = p.BudgetAllocationPct
				sum += p.BudgetAllocationPct
				assert.NotContains(t, p.Action, "{")
			}
			assert.Equal(t, 100, sum)
			assert.Equal(t, tt.budgets, budgets)
			assert.Equal(t, tt.firstLabel, tl.Phases[0].TimeLabel)
		})
	}
}

func TestDefaultBandBudgetsSumTo100(t *testing.T) {
	for band, phases := range DefaultTables().Timeline.Bands {
		sum := 0
		for _, p := range phases {
			sum += p.Budget
		}
		assert.Len(t, phases, 3, "band %s", band)
		assert.Equal(t, 100, sum, "band %s", band)
	}
}

func TestPlatformFamilyOf(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, FamilyProfessional, e.PlatformFamilyOf("LinkedIn"))
	assert.Equal(t, FamilyShortForm, e.PlatformFamilyOf("Instagram Reels"))
	assert.Equal(t, FamilyVideo, e.PlatformFamilyOf("YouTube"))
	assert.Equal(t, FamilyGeneric, e.PlatformFamilyOf("Reddit"))
	assert.Equal(t, FamilyGeneric, e.PlatformFamilyOf(""))
	assert.Equal(t, TempoSprint, TempoFor(FamilyShortForm))
	assert.Equal(t, TempoMarathon, TempoFor(FamilyVideo))
}

func TestExtractPrimaryBenefit(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{"most frequent clause", []string{"It wins because it saves time.", "since it is cheap", "Because  it saves TIME"}, "it saves time"},
		{"first clause wins ties", []string{"it helps teams ship", "this lets us relax"}, "teams ship"},
		{"long clause is capped", []string{"because one two three four five six seven eight nine ten eleven twelve thirteen"}, "one two three four five six seven eight nine ten eleven twelve"},
		{"bucket fallback", []string{"Very easy and simple", "simple enough"}, "simplifies the experience"},
		{"default", nil, "improves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractPrimaryBenefit(tt.texts))
		})
	}
}

func TestComputeCampaignMessagingDeterministic(t *testing.T) {
	e := NewEngine()
	first := e.ComputeCampaignMessaging(campaignSurvey())
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, e.ComputeCampaignMessaging(campaignSurvey())); diff != "" {
			t.Fatalf("ComputeCampaignMessaging not deterministic (-first +again):\n%s", diff)
		}
	}
}
