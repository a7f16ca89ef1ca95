package insight

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EffortTier is one effort class with its day estimate and trigger keywords
type EffortTier struct {
	Days     int      `yaml:"days"`
	Keywords []string `yaml:"keywords"`
}

// EffortTable drives EstimateEffort. Checks run High, Medium, Low, then the
// Medium default.
type EffortTable struct {
	High           EffortTier `yaml:"high"`
	Medium         EffortTier `yaml:"medium"`
	Low            EffortTier `yaml:"low"`
	HighAboveLen   int        `yaml:"highAboveLen"`   // len > this => High
	MediumAboveLen int        `yaml:"mediumAboveLen"` // len in (this, HighAboveLen] => Medium
	LowAtMostLen   int        `yaml:"lowAtMostLen"`   // len <= this => Low
}

// JobDefinition is one entry of the jobs-to-be-done taxonomy
type JobDefinition struct {
	ID                 string   `yaml:"id"`
	Title              string   `yaml:"title"`
	Description        string   `yaml:"description"`
	Keywords           []string `yaml:"keywords"`
	Outcomes           Lexicon  `yaml:"outcomes"`     // phrase -> keywords
	Frustrations       Lexicon  `yaml:"frustrations"` // phrase -> keywords
	DesignImplications []string `yaml:"designImplications"`
}

// FallbackJob is a default job used when no job clears the adoption floor
type FallbackJob struct {
	ID            string   `yaml:"id"`
	Adoption      float64  `yaml:"adoption"`
	Nudge         float64  `yaml:"nudge"`
	NudgeKeywords []string `yaml:"nudgeKeywords"`
}

// PlatformFamily is a coarse platform classification for templates
type PlatformFamily string

const (
	FamilyProfessional PlatformFamily = "professional"
	FamilyShortForm    PlatformFamily = "short_form"
	FamilyVideo        PlatformFamily = "video"
	FamilyGeneric      PlatformFamily = "generic"
)

// FamilyRule maps platform name keywords to a family. Rules are checked in order.
type FamilyRule struct {
	Family   PlatformFamily `yaml:"family"`
	Keywords []string       `yaml:"keywords"`
}

// MessageTemplates are the fixed phrase templates of one platform family.
// Placeholders: {option} {driver} {benefit} {platform}.
type MessageTemplates struct {
	Message string   `yaml:"message"`
	AdCopy  []string `yaml:"adCopy"`
	Formal  string   `yaml:"formal"`
	Casual  string   `yaml:"casual"`
	Urgent  string   `yaml:"urgent"`
}

// Tempo is the rollout cadence of a platform
type Tempo string

const (
	TempoSprint   Tempo = "Sprint"
	TempoMarathon Tempo = "Marathon"
)

// Band is the confidence band that picks the budget strategy
type Band string

const (
	BandScale      Band = "Scale"
	BandValidation Band = "Validation"
	BandBalanced   Band = "Balanced"
)

// TempoSpec holds the time labels of a tempo, one per timeline phase
type TempoSpec struct {
	Unit   string   `yaml:"unit"`
	Labels []string `yaml:"labels"`
}

// PhaseTemplate is one timeline phase of a band.
// Placeholders: {option} {benefit} {platform}.
type PhaseTemplate struct {
	Title  string `yaml:"title"`
	Action string `yaml:"action"`
	Budget int    `yaml:"budget"`
}

// TimelineTable is the strategy decision table
type TimelineTable struct {
	ScaleAbove    float64                  `yaml:"scaleAbove"`
	ValidateBelow float64                  `yaml:"validateBelow"`
	Tempos        map[Tempo]TempoSpec      `yaml:"tempos"`
	Bands         map[Band][]PhaseTemplate `yaml:"bands"`
}

// Tables is every piece of static data the analyzers read. Analyzers never
// write to it.
type Tables struct {
	Effort             EffortTable                         `yaml:"effort"`
	Jobs               []JobDefinition                     `yaml:"jobs"`
	JobFallback        []FallbackJob                       `yaml:"jobFallback"`
	Drivers            Lexicon                             `yaml:"drivers"`
	DriverLabels       map[string]string                   `yaml:"driverLabels"`
	DefaultDriver      string                              `yaml:"defaultDriver"`
	PlatformFamilies   []FamilyRule                        `yaml:"platformFamilies"`
	Templates          map[PlatformFamily]MessageTemplates `yaml:"templates"`
	BenefitConnectives []string                            `yaml:"benefitConnectives"`
	BenefitBuckets     Lexicon                             `yaml:"benefitBuckets"`
	DefaultBenefit     string                              `yaml:"defaultBenefit"`
	Timeline           TimelineTable                       `yaml:"timeline"`
}

// LoadTables reads a YAML file and overlays every section it sets onto the
// default tables
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}
	t := DefaultTables()
	t.overlay(&override)
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return t, nil
}

// TimelinePhases is the number of phases every campaign timeline has
const TimelinePhases = 3

func (t *Tables) overlay(o *Tables) {
	overlayTier(&t.Effort.High, o.Effort.High)
	overlayTier(&t.Effort.Medium, o.Effort.Medium)
	overlayTier(&t.Effort.Low, o.Effort.Low)
	if o.Effort.HighAboveLen > 0 {
		t.Effort.HighAboveLen = o.Effort.HighAboveLen
	}
	if o.Effort.MediumAboveLen > 0 {
		t.Effort.MediumAboveLen = o.Effort.MediumAboveLen
	}
	if o.Effort.LowAtMostLen > 0 {
		t.Effort.LowAtMostLen = o.Effort.LowAtMostLen
	}
	if len(o.Jobs) > 0 {
		t.Jobs = o.Jobs
	}
	if len(o.JobFallback) > 0 {
		t.JobFallback = o.JobFallback
	}
	if len(o.Drivers) > 0 {
		t.Drivers = o.Drivers
	}
	for k, v := range o.DriverLabels {
		t.DriverLabels[k] = v
	}
	if o.DefaultDriver != "" {
		t.DefaultDriver = o.DefaultDriver
	}
	if len(o.PlatformFamilies) > 0 {
		t.PlatformFamilies = o.PlatformFamilies
	}
	for k, v := range o.Templates {
		t.Templates[k] = v
	}
	if len(o.BenefitConnectives) > 0 {
		t.BenefitConnectives = o.BenefitConnectives
	}
	if len(o.BenefitBuckets) > 0 {
		t.BenefitBuckets = o.BenefitBuckets
	}
	if o.DefaultBenefit != "" {
		t.DefaultBenefit = o.DefaultBenefit
	}
	if o.Timeline.ScaleAbove > 0 {
		t.Timeline.ScaleAbove = o.Timeline.ScaleAbove
	}
	if o.Timeline.ValidateBelow > 0 {
		t.Timeline.ValidateBelow = o.Timeline.ValidateBelow
	}
	for k, v := range o.Timeline.Tempos {
		t.Timeline.Tempos[k] = v
	}
	for k, v := range o.Timeline.Bands {
		t.Timeline.Bands[k] = v
	}
}

func overlayTier(dst *EffortTier, o EffortTier) {
	if o.Days != 0 {
		dst.Days = o.Days
	}
	if o.Keywords != nil {
		dst.Keywords = o.Keywords
	}
}

// validate checks the invariants the analyzers rely on
func (t *Tables) validate() error {
	var problems []string

	eff := t.Effort
	tiers := []struct {
		name string
		days int
	}{{"high", eff.High.Days}, {"medium", eff.Medium.Days}, {"low", eff.Low.Days}}
	for _, tier := range tiers {
		if tier.days <= 0 {
			problems = append(problems, fmt.Sprintf("effort.%s.days must be positive, got %d", tier.name, tier.days))
		}
	}
	if eff.LowAtMostLen <= 0 || eff.LowAtMostLen >= eff.MediumAboveLen || eff.MediumAboveLen >= eff.HighAboveLen {
		problems = append(problems, fmt.Sprintf("effort lengths must satisfy 0 < lowAtMostLen < mediumAboveLen < highAboveLen, got %d, %d, %d",
			eff.LowAtMostLen, eff.MediumAboveLen, eff.HighAboveLen))
	}

	tl := t.Timeline
	if !(tl.ValidateBelow >= 0 && tl.ValidateBelow <= tl.ScaleAbove && tl.ScaleAbove <= 1) {
		problems = append(problems, fmt.Sprintf("timeline thresholds must satisfy 0 <= validateBelow <= scaleAbove <= 1, got %v, %v",
			tl.ValidateBelow, tl.ScaleAbove))
	}
	for _, tempo := range []Tempo{TempoSprint, TempoMarathon} {
		if n := len(tl.Tempos[tempo].Labels); n != TimelinePhases {
			problems = append(problems, fmt.Sprintf("timeline.tempos.%s needs %d labels, got %d", tempo, TimelinePhases, n))
		}
	}
	for _, band := range []Band{BandScale, BandBalanced, BandValidation} {
		phases := tl.Bands[band]
		if len(phases) != TimelinePhases {
			problems = append(problems, fmt.Sprintf("timeline.bands.%s needs %d phases, got %d", band, TimelinePhases, len(phases)))
			continue
		}
		sum := 0
		for _, p := range phases {
			if p.Budget < 0 {
				problems = append(problems, fmt.Sprintf("timeline.bands.%s has a negative budget %d", band, p.Budget))
			}
			sum += p.Budget
		}
		if sum != 100 {
			problems = append(problems, fmt.Sprintf("timeline.bands.%s budgets must sum to 100, got %d", band, sum))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid tables:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// DefaultTables returns a fresh copy of the built-in tables
func DefaultTables() *Tables {
	return &Tables{
		Effort: EffortTable{
			High: EffortTier{Days: 45, Keywords: []string{
				"integration", "ai", "architecture", "real-time", "realtime",
				"machine learning", "migration", "infrastructure", "sso",
				"encryption", "offline sync", "rewrite",
			}},
			Medium: EffortTier{Days: 14, Keywords: []string{
				"dashboard", "workflow", "search", "filter", "notification",
				"export", "import", "report", "analytics", "settings",
				"onboarding", "api", "editor", "template", "permission", "calendar",
			}},
			Low: EffortTier{Days: 5, Keywords: []string{
				"toggle", "color", "colour", "text", "label", "icon", "font",
				"copy", "tooltip", "button", "typo", "theme", "dark mode",
				"link", "spacing", "minor",
			}},
			HighAboveLen:   60,
			MediumAboveLen: 30,
			LowAtMostLen:   20,
		},
		Jobs:        defaultJobs(),
		JobFallback: defaultJobFallback(),
		Drivers: Lexicon{
			{Name: "roi", Keywords: []string{"roi", "return on investment", "revenue", "profit", "pays off", "cost-effective", "payback"}},
			{Name: "trust", Keywords: []string{"trust", "reliable", "secure", "safe", "proven", "credib"}},
			{Name: "speed", Keywords: []string{"fast", "quick", "speed", "instant", "faster", "efficient"}},
			{Name: "convenience", Keywords: []string{"easy", "convenient", "simple", "seamless", "hassle"}},
			{Name: "trendy", Keywords: []string{"trend", "viral", "popular", "modern", "cool", "hype"}},
			{Name: "fun", Keywords: []string{"fun", "enjoy", "playful", "delight", "entertaining"}},
			{Name: "professional", Keywords: []string{"professional", "polished", "enterprise", "business"}},
			{Name: "authentic", Keywords: []string{"authentic", "genuine", "real", "honest", "transparent"}},
			{Name: "quality", Keywords: []string{"quality", "premium", "well-made", "durable", "craftsmanship", "best"}},
			{Name: "value", Keywords: []string{"value", "affordable", "price", "cheap", "worth", "budget", "deal"}},
		},
		DriverLabels: map[string]string{
			"roi":          "ROI",
			"trust":        "trust",
			"speed":        "speed",
			"convenience":  "convenience",
			"trendy":       "trend appeal",
			"fun":          "fun",
			"professional": "professional polish",
			"authentic":    "authenticity",
			"quality":      "quality",
			"value":        "value",
		},
		DefaultDriver: "value",
		PlatformFamilies: []FamilyRule{
			{Family: FamilyProfessional, Keywords: []string{"linkedin", "slack", "email", "newsletter", "xing", "professional", "b2b"}},
			{Family: FamilyShortForm, Keywords: []string{"tiktok", "instagram", "snapchat", "twitter", "threads", "pinterest", "reels", "shorts", "bluesky", "x.com"}},
			{Family: FamilyVideo, Keywords: []string{"youtube", "twitch", "vimeo", "video", "podcast"}},
		},
		Templates: map[PlatformFamily]MessageTemplates{
			FamilyProfessional: {
				Message: "{option} delivers {driver} for professionals: {benefit}.",
				AdCopy: []string{
					"Built for teams that value {driver}: {option}.",
					"{option}. Because it {benefit}.",
					"See why leaders choose {option} for {driver}.",
				},
				Formal: "{option} provides measurable {driver}: {benefit}.",
				Casual: "Honestly, {option} just works: {benefit}.",
				Urgent: "Don't let competitors get {driver} first. Adopt {option} today.",
			},
			FamilyShortForm: {
				Message: "POV: you picked {option}. Pure {driver}, and it {benefit}.",
				AdCopy: []string{
					"Stop scrolling: {option} is here.",
					"{driver} unlocked with {option}",
					"Why everyone is switching to {option}: {benefit}",
				},
				Formal: "{option} offers {driver} you can see: {benefit}.",
				Casual: "ok but {option} is the move: {benefit}",
				Urgent: "Last chance to get in early on {option}!",
			},
			FamilyVideo: {
				Message: "Watch how {option} brings {driver} to life: {benefit}.",
				AdCopy: []string{
					"60-second demo: {option} in action",
					"Before and after {option}: {benefit}",
					"The {driver} story behind {option}",
				},
				Formal: "Explore how {option} delivers {driver}: {benefit}.",
				Casual: "Hit play and see {option} do its thing: {benefit}.",
				Urgent: "Watch now: {option} is changing the game today.",
			},
			FamilyGeneric: {
				Message: "Choose {option} for {driver}: {benefit}.",
				AdCopy: []string{
					"{option}: {benefit}.",
					"Discover the {driver} of {option}.",
					"{option}, made for you.",
				},
				Formal: "{option} delivers {driver}: {benefit}.",
				Casual: "Try {option}, you'll like it: {benefit}.",
				Urgent: "Act now and get {option} today.",
			},
		},
		BenefitConnectives: []string{
			"because", "since", "as it", "enables", "enable", "allows",
			"helps", "so that", "lets", "which means",
		},
		BenefitBuckets: Lexicon{
			{Name: "saves time", Keywords: []string{"time", "fast", "quick", "speed", "faster"}},
			{Name: "improves", Keywords: []string{"improve", "better", "enhance", "upgrade"}},
			{Name: "simplifies the experience", Keywords: []string{"easy", "simple", "intuitive", "seamless"}},
			{Name: "reduces costs", Keywords: []string{"cost", "cheap", "afford", "save money", "budget"}},
			{Name: "builds trust", Keywords: []string{"trust", "reliab", "secure", "safe"}},
		},
		DefaultBenefit: "improves",
		Timeline: TimelineTable{
			ScaleAbove:    0.8,
			ValidateBelow: 0.5,
			Tempos: map[Tempo]TempoSpec{
				TempoSprint:   {Unit: "Days", Labels: []string{"Days 1-3", "Days 4-7", "Days 8-14"}},
				TempoMarathon: {Unit: "Weeks", Labels: []string{"Weeks 1-2", "Weeks 3-6", "Weeks 7-12"}},
			},
			Bands: map[Band][]PhaseTemplate{
				BandScale: {
					{Title: "Launch Blitz", Action: "Front-load spend on {platform} with the {option} message: {benefit}.", Budget: 60},
					{Title: "Amplify Winners", Action: "Double down on the best-performing {option} creatives.", Budget: 30},
					{Title: "Sustain and Retarget", Action: "Retarget engaged {platform} audiences to keep momentum.", Budget: 10},
				},
				BandValidation: {
					{Title: "A/B Test Messaging", Action: "Run small {platform} tests comparing {option} angles before committing budget.", Budget: 20},
					{Title: "Refine Creative", Action: "Iterate on the winning angle: {benefit}.", Budget: 30},
					{Title: "Commit Budget", Action: "Scale the validated {option} message on {platform}.", Budget: 50},
				},
				BandBalanced: {
					{Title: "Soft Launch", Action: "Introduce {option} on {platform} with a measured budget.", Budget: 30},
					{Title: "Optimize", Action: "Shift spend toward creatives highlighting: {benefit}.", Budget: 40},
					{Title: "Scale Proven Angles", Action: "Expand reach for the strongest {option} messages.", Budget: 30},
				},
			},
		},
	}
}

func defaultJobFallback() []FallbackJob {
	// Defaults and nudges keep this order non-increasing after nudging.
	return []FallbackJob{
		{ID: "save_time", Adoption: 35, Nudge: 10, NudgeKeywords: []string{"rapid", "instant", "prompt", "responsive", "latency", "turnaround"}},
		{ID: "achieve_goals", Adoption: 25, Nudge: 10, NudgeKeywords: []string{"quality", "better", "effective", "performance", "improve"}},
		{ID: "reduce_stress", Adoption: 20, Nudge: 5, NudgeKeywords: []string{"easy", "simple", "smooth", "hassle", "comfort"}},
	}
}

func defaultJobs() []JobDefinition {
	return []JobDefinition{
		{
			ID:          "reduce_stress",
			Title:       "Reduce stress and feel in control",
			Description: "Respondents want the choice to take pressure off and make their day calmer.",
			Keywords:    []string{"stress", "anxiety", "anxious", "worry", "overwhelm", "calm", "peace of mind", "relax", "burnout", "pressure"},
			Outcomes: Lexicon{
				{Name: "Feel in control", Keywords: []string{"control", "organized", "on top of", "predictable"}},
				{Name: "Fewer surprises and errors", Keywords: []string{"error", "mistake", "surprise", "bug"}},
				{Name: "A calmer day-to-day experience", Keywords: []string{"calm", "relax", "peace", "stress-free"}},
				{Name: "Simple, easy-to-use tools", Keywords: []string{"easy", "simple", "intuitive", "straightforward"}},
			},
			Frustrations: Lexicon{
				{Name: "Overwhelming complexity", Keywords: []string{"overwhelm", "complex", "complicated", "confusing"}},
				{Name: "Constant firefighting", Keywords: []string{"firefight", "urgent", "crisis", "chaos"}},
				{Name: "Anxiety about getting it wrong", Keywords: []string{"anxi", "worry", "afraid", "nervous"}},
				{Name: "Information overload", Keywords: []string{"overload", "noise", "too much", "clutter"}},
			},
			DesignImplications: []string{
				"Default to calm, uncluttered screens with one primary action",
				"Surface status and progress so users never wonder what is happening",
				"Make every destructive action reversible",
			},
		},
		{
			ID:          "feel_professional",
			Title:       "Look and feel professional",
			Description: "Respondents want the choice to make their work look credible and polished.",
			Keywords:    []string{"professional", "credib", "polished", "expert", "reputation", "serious", "enterprise-grade"},
			Outcomes: Lexicon{
				{Name: "Look credible to clients", Keywords: []string{"client", "credib", "trust", "reputation"}},
				{Name: "Polished, consistent output", Keywords: []string{"polish", "consistent", "clean", "quality"}},
				{Name: "Work like an expert", Keywords: []string{"expert", "pro", "advanced", "mastery"}},
				{Name: "Meet industry standards", Keywords: []string{"standard", "compliance", "best practice", "industry"}},
			},
			Frustrations: Lexicon{
				{Name: "Amateur-looking results", Keywords: []string{"amateur", "cheap", "sloppy", "unprofessional"}},
				{Name: "Inconsistent branding", Keywords: []string{"inconsistent", "brand", "mismatch", "off-brand"}},
				{Name: "Tools that feel like toys", Keywords: []string{"toy", "basic", "limited", "gimmick"}},
				{Name: "Embarrassing mistakes in front of others", Keywords: []string{"embarrass", "awkward", "mistake", "public"}},
			},
			DesignImplications: []string{
				"Ship polished defaults that look good without configuration",
				"Support brand assets and consistent styling across outputs",
				"Offer export formats clients and stakeholders expect",
			},
		},
		{
			ID:          "save_time",
			Title:       "Save time and get things done faster",
			Description: "Respondents want the choice to cut the time and effort a task takes.",
			Keywords:    []string{"time", "fast", "quick", "efficient", "speed", "automat", "hours", "faster", "productiv"},
			Outcomes: Lexicon{
				{Name: "Finish tasks in less time", Keywords: []string{"time", "fast", "quick", "faster", "hours"}},
				{Name: "Automate repetitive work", Keywords: []string{"automat", "repetitive", "manual", "routine"}},
				{Name: "Reduce steps to get started", Keywords: []string{"setup", "steps", "onboarding", "get started", "clicks"}},
				{Name: "Stay focused on high-value work", Keywords: []string{"focus", "priorit", "important", "high-value"}},
				{Name: "Respond faster to customers", Keywords: []string{"respond", "customer", "support", "reply"}},
			},
			Frustrations: Lexicon{
				{Name: "Slow, clunky workflows", Keywords: []string{"slow", "clunky", "lag", "sluggish"}},
				{Name: "Too many manual steps", Keywords: []string{"manual", "tedious", "repetitive", "steps"}},
				{Name: "Waiting on others or systems", Keywords: []string{"wait", "delay", "bottleneck", "blocked"}},
				{Name: "Context switching between tools", Keywords: []string{"switch", "tools", "juggle", "scattered"}},
			},
			DesignImplications: []string{
				"Minimize clicks on the critical path and remember recent choices",
				"Automate repetitive steps and offer sensible defaults",
				"Keep load and response times visibly fast",
			},
		},
		{
			ID:          "impress_others",
			Title:       "Impress others and stand out",
			Description: "Respondents want the choice to earn recognition from the people around them.",
			Keywords:    []string{"impress", "stand out", "show off", "admire", "status", "wow", "look good", "envy"},
			Outcomes: Lexicon{
				{Name: "Stand out from the crowd", Keywords: []string{"stand out", "unique", "different", "distinctive"}},
				{Name: "Earn recognition", Keywords: []string{"recogni", "praise", "admire", "compliment"}},
				{Name: "Share something worth showing", Keywords: []string{"share", "show", "post", "showcase"}},
				{Name: "Look ahead of the curve", Keywords: []string{"trend", "modern", "cutting-edge", "latest"}},
			},
			Frustrations: Lexicon{
				{Name: "Blending in with everyone else", Keywords: []string{"generic", "boring", "same", "bland"}},
				{Name: "Outdated look and feel", Keywords: []string{"outdated", "old", "dated", "legacy"}},
				{Name: "Nothing worth sharing", Keywords: []string{"forgettable", "meh", "unremarkable", "nothing special"}},
				{Name: "Peers getting ahead", Keywords: []string{"competitor", "behind", "peers", "falling behind"}},
			},
			DesignImplications: []string{
				"Make results easy to share with a single action",
				"Invest in visual polish on the screens users show to others",
				"Highlight achievements and milestones publicly when users opt in",
			},
		},
		{
			ID:          "learn_grow",
			Title:       "Learn and grow",
			Description: "Respondents want the choice to help them build skills and understanding.",
			Keywords:    []string{"learn", "grow", "skill", "develop", "insight", "understand", "curious", "knowledge"},
			Outcomes: Lexicon{
				{Name: "Build new skills", Keywords: []string{"skill", "learn", "master", "practice"}},
				{Name: "Understand what is happening", Keywords: []string{"understand", "insight", "visibility", "clarity"}},
				{Name: "Track personal progress", Keywords: []string{"progress", "track", "growth", "improve"}},
				{Name: "Access expert guidance", Keywords: []string{"guide", "tutorial", "mentor", "tips"}},
			},
			Frustrations: Lexicon{
				{Name: "Steep learning curve", Keywords: []string{"learning curve", "hard to learn", "steep", "confusing"}},
				{Name: "No feedback on progress", Keywords: []string{"no feedback", "unclear", "blind", "guess"}},
				{Name: "Stagnating skills", Keywords: []string{"stagnat", "stuck", "plateau", "bored"}},
				{Name: "Lack of resources", Keywords: []string{"documentation", "resources", "no help", "unsupported"}},
			},
			DesignImplications: []string{
				"Explain the why behind recommendations inline",
				"Offer progressive disclosure from basic to advanced features",
				"Show progress over time so growth is visible",
			},
		},
		{
			ID:          "belong_community",
			Title:       "Belong to a community",
			Description: "Respondents want the choice to connect them with people who share their interests.",
			Keywords:    []string{"community", "together", "belong", "friends", "team", "connect", "social", "share"},
			Outcomes: Lexicon{
				{Name: "Connect with like-minded people", Keywords: []string{"connect", "like-minded", "people", "network"}},
				{Name: "Collaborate with the team", Keywords: []string{"team", "collaborat", "together", "shared"}},
				{Name: "Feel part of something", Keywords: []string{"belong", "part of", "community", "member"}},
				{Name: "Get help from peers", Keywords: []string{"peer", "forum", "ask", "help"}},
			},
			Frustrations: Lexicon{
				{Name: "Working in isolation", Keywords: []string{"isolat", "alone", "lonely", "solo"}},
				{Name: "Hard to coordinate with others", Keywords: []string{"coordinat", "miscommunicat", "sync up", "handoff"}},
				{Name: "No shared space", Keywords: []string{"scattered", "no place", "fragmented", "silo"}},
				{Name: "Feeling left out", Keywords: []string{"left out", "excluded", "ignored", "outsider"}},
			},
			DesignImplications: []string{
				"Build shared spaces where users can see each other's activity",
				"Make inviting and collaborating a first-class flow",
				"Recognize community contributions visibly",
			},
		},
		{
			ID:          "achieve_goals",
			Title:       "Achieve goals and see results",
			Description: "Respondents want the choice to move them measurably closer to a target.",
			Keywords:    []string{"goal", "achieve", "result", "success", "progress", "accomplish", "outcome", "target"},
			Outcomes: Lexicon{
				{Name: "Hit measurable targets", Keywords: []string{"target", "metric", "kpi", "measurable"}},
				{Name: "See tangible results", Keywords: []string{"result", "outcome", "impact", "tangible"}},
				{Name: "Make steady progress", Keywords: []string{"progress", "milestone", "momentum", "step by step"}},
				{Name: "Grow revenue or reach", Keywords: []string{"revenue", "growth", "reach", "sales"}},
			},
			Frustrations: Lexicon{
				{Name: "Unclear path to success", Keywords: []string{"unclear", "direction", "lost", "no plan"}},
				{Name: "Effort without results", Keywords: []string{"no results", "wasted", "pointless", "ineffective"}},
				{Name: "Missed deadlines", Keywords: []string{"deadline", "late", "missed", "behind schedule"}},
				{Name: "Hard to measure impact", Keywords: []string{"measure", "attribution", "prove", "roi"}},
			},
			DesignImplications: []string{
				"Let users set explicit goals and track them in the main view",
				"Tie features to the metric they move",
				"Celebrate milestones along the way",
			},
		},
		{
			ID:          "avoid_risk",
			Title:       "Avoid risk and stay safe",
			Description: "Respondents want the choice that minimizes the chance of something going wrong.",
			Keywords:    []string{"risk", "safe", "secure", "mistake", "avoid", "protect", "reliab", "compliance"},
			Outcomes: Lexicon{
				{Name: "Protect data and privacy", Keywords: []string{"data", "privacy", "secure", "protect"}},
				{Name: "Stay compliant", Keywords: []string{"complian", "regulat", "audit", "legal"}},
				{Name: "Reliable, proven choices", Keywords: []string{"reliab", "proven", "stable", "track record"}},
				{Name: "Undo mistakes easily", Keywords: []string{"undo", "backup", "recover", "rollback"}},
			},
			Frustrations: Lexicon{
				{Name: "Fear of breaking things", Keywords: []string{"break", "crash", "outage", "downtime"}},
				{Name: "Security incidents", Keywords: []string{"breach", "leak", "hack", "vulnerab"}},
				{Name: "Vendor lock-in", Keywords: []string{"lock-in", "locked in", "dependency", "switching cost"}},
				{Name: "Unpredictable costs", Keywords: []string{"hidden cost", "unpredictable", "surprise bill", "overrun"}},
			},
			DesignImplications: []string{
				"Show safety signals such as backups, audit logs and certifications up front",
				"Add confirmation and undo for consequential actions",
				"Offer a low-commitment trial path before full rollout",
			},
		},
	}
}
