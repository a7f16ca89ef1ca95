package model

// Tone is a rhetorical register for messaging
type Tone string

const (
	ToneFormal Tone = "FORMAL"
	ToneCasual Tone = "CASUAL"
	ToneUrgent Tone = "URGENT"
)

// ToneVariations holds one message per tone
type ToneVariations struct {
	Formal string `json:"formal"`
	Casual string `json:"casual"`
	Urgent string `json:"urgent"`
}

// ToneVariation is a single tone/message pair
type ToneVariation struct {
	Tone    Tone   `json:"tone"`
	Message string `json:"message"`
}

// OptionEffectiveness is how well one option sells on one platform
type OptionEffectiveness struct {
	OptionText  string   `json:"optionText"`
	Percentage  float64  `json:"percentage"`
	TopDrivers  []string `json:"topDrivers"`
	Message     string   `json:"message"`
	AdCopyIdeas []string `json:"adCopyIdeas"`
}

// PlatformMessaging is the messaging synthesized for one platform
type PlatformMessaging struct {
	Platform           string                         `json:"platform"`
	Family             string                         `json:"family"`
	Consensus          float64                        `json:"consensus"`
	ResponseCount      int                            `json:"responseCount"`
	Effectiveness      map[string]OptionEffectiveness `json:"effectiveness"` // letter -> effectiveness
	EmotionalDrivers   map[string]int                 `json:"emotionalDrivers"`
	TopDrivers         []string                       `json:"topDrivers"`
	WinningOption      string                         `json:"winningOption"`
	PrimaryBenefit     string                         `json:"primaryBenefit"`
	RecommendedMessage string                         `json:"recommendedMessage"`
	ToneVariations     ToneVariations                 `json:"toneVariations"`
	Placeholder        bool                           `json:"placeholder,omitempty"`
}

// TimelinePhase is one step of a campaign rollout
type TimelinePhase struct {
	TimeLabel           string `json:"timeLabel"`
	Title               string `json:"title"`
	Action              string `json:"action"`
	BudgetAllocationPct int    `json:"budgetAllocationPct"`
}

// CampaignTimeline is the rollout plan for the primary platform
type CampaignTimeline struct {
	StrategyType string          `json:"strategyType"`
	Platform     string          `json:"platform"`
	Confidence   float64         `json:"confidence"`
	Phases       []TimelinePhase `json:"phases"`
}

// CampaignMessaging is the campaign messaging output
type CampaignMessaging struct {
	PrimaryPlatform   string                       `json:"primaryPlatform"`
	PlatformOrder     []string                     `json:"platformOrder"`
	PlatformMessaging map[string]PlatformMessaging `json:"platformMessaging"`
	MessageVariations []ToneVariation              `json:"messageVariations"`
	CampaignTimeline  CampaignTimeline             `json:"campaignTimeline"`
}
