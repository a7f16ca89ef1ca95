package model

// Phase is a roadmap bucket
type Phase string

const (
	PhaseNow     Phase = "NOW"
	PhaseQ2      Phase = "Q2"
	PhaseBacklog Phase = "BACKLOG"
	PhaseAvoid   Phase = "AVOID"
)

// Difficulty is the coarse effort class of an option
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Effort is an effort estimate for one option
type Effort struct {
	Days       int        `json:"days"`
	Difficulty Difficulty `json:"difficulty"`
}

// OptionPlan is the build plan for one option
type OptionPlan struct {
	OptionText    string     `json:"optionText"`
	Letter        string     `json:"letter,omitempty"`
	PreferencePct float64    `json:"preferencePct"`
	EffortDays    int        `json:"effortDays"`
	Difficulty    Difficulty `json:"difficulty"`
	ROIScore      float64    `json:"roiScore"`
	Dependencies  []string   `json:"dependencies"` // Other option texts, option order
	Blockers      []string   `json:"blockers"`     // High-severity risk descriptions
	Rationale     string     `json:"rationale"`
}

// RoadmapPhase groups the options assigned to one phase
type RoadmapPhase struct {
	Phase                  Phase        `json:"phase"`
	Timeline               string       `json:"timeline"`
	Options                []OptionPlan `json:"options"`
	AggregateEffortDays    int          `json:"aggregateEffortDays"`
	AggregatePreferencePct float64      `json:"aggregatePreferencePct"`
}

// Roadmap is the phased implementation plan
type Roadmap struct {
	Phases                 []RoadmapPhase `json:"phases"`
	EstimatedTotalTimeline string         `json:"estimatedTotalTimeline"`
	TotalEffortDays        int            `json:"totalEffortDays"` // Active phases only
	SkipReasons            []string       `json:"skipReasons"`
}
