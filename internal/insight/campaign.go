package insight

import (
	"strings"

	"surveyinsights/internal/model"
)

// MaxDrivers is how many emotional drivers are kept per platform and option
const MaxDrivers = 3

const fallbackSubject = "our solution"

// ComputeCampaignMessaging builds messaging for every platform that has
// responses and a rollout timeline for the primary platform. Without any
// responses it returns placeholder entries so at least one platform exists.
func (e *Engine) ComputeCampaignMessaging(result *model.SurveyResult) model.CampaignMessaging {
	if result == nil {
		result = &model.SurveyResult{}
	}
	out := model.CampaignMessaging{
		PlatformOrder:     []string{},
		PlatformMessaging: make(map[string]model.PlatformMessaging),
		MessageVariations: []model.ToneVariation{},
	}

	groups, placeholder := messagingGroups(result)
	primary := ""
	bestConsensus := -1.0
	var primaryGroup model.PlatformGroup
	for _, g := range groups {
		pm := e.platformMessaging(result, g)
		if _, dup := out.PlatformMessaging[pm.Platform]; dup {
			continue
		}
		pm.Placeholder = placeholder
		out.PlatformMessaging[pm.Platform] = pm
		out.PlatformOrder = append(out.PlatformOrder, pm.Platform)
		if pm.Consensus > bestConsensus {
			bestConsensus = pm.Consensus
			primary = pm.Platform
			primaryGroup = g
		}
	}

	pm := out.PlatformMessaging[primary]
	out.PrimaryPlatform = primary
	out.MessageVariations = []model.ToneVariation{
		{Tone: model.ToneFormal, Message: pm.ToneVariations.Formal},
		{Tone: model.ToneCasual, Message: pm.ToneVariations.Casual},
		{Tone: model.ToneUrgent, Message: pm.ToneVariations.Urgent},
	}
	out.CampaignTimeline = e.GenerateCampaignTimeline(
		primary,
		groupConfidence(primaryGroup, pm.Consensus),
		subjectOf(result, pm.WinningOption),
		pm.PrimaryBenefit,
	)
	return out
}

// messagingGroups returns the platform groups with responses. When there are
// none it returns empty groups for the metadata platforms, else for the named
// empty groups, else a single General group, and reports that they are
// placeholders.
func messagingGroups(result *model.SurveyResult) ([]model.PlatformGroup, bool) {
	var groups []model.PlatformGroup
	for _, g := range result.Groups() {
		if len(g.Responses) == 0 {
			continue
		}
		if strings.TrimSpace(g.Platform) == "" {
			g.Platform = model.GeneralPlatform
		}
		groups = append(groups, g)
	}
	if len(groups) > 0 {
		return groups, false
	}

	var named []model.PlatformGroup
	for _, name := range result.Platforms {
		named = append(named, model.PlatformGroup{Platform: name})
	}
	if len(named) == 0 {
		named = result.PlatformGroups
	}
	seen := make(map[string]bool)
	for _, g := range named {
		name := strings.TrimSpace(g.Platform)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		groups = append(groups, model.PlatformGroup{Platform: name, Consensus: g.Consensus})
	}
	if len(groups) == 0 {
		groups = append(groups, model.PlatformGroup{Platform: model.GeneralPlatform})
	}
	return groups, true
}

func (e *Engine) platformMessaging(result *model.SurveyResult, g model.PlatformGroup) model.PlatformMessaging {
	texts := make([]string, len(g.Responses))
	byOption := make([][]string, len(result.Options))
	counts := make([]int, len(result.Options))
	for i, r := range g.Responses {
		texts[i] = r.Text()
		idx, err := model.LetterToIndex(r.Choice)
		if err != nil || idx >= len(result.Options) {
			continue
		}
		counts[idx]++
		byOption[idx] = append(byOption[idx], texts[i])
	}

	winner := -1
	for i, c := range counts {
		if c > 0 && (winner < 0 || c > counts[winner]) {
			winner = i
		}
	}

	family := e.PlatformFamilyOf(g.Platform)
	tmpl := e.templatesFor(family)
	driverHits := CountKeywordHits(texts, e.tables.Drivers, e.matcher)
	topDrivers := driverHits.NonZero().Top(MaxDrivers)
	driver := e.driverLabel(topDrivers)

	pm := model.PlatformMessaging{
		Platform:         g.Platform,
		Family:           string(family),
		Consensus:        model.Clamp(g.Consensus, 0, 1),
		ResponseCount:    len(g.Responses),
		Effectiveness:    make(map[string]model.OptionEffectiveness, len(result.Options)),
		EmotionalDrivers: driverHits.Map(),
		TopDrivers:       topDrivers,
	}
	if winner >= 0 {
		pm.WinningOption = result.Options[winner]
		pm.PrimaryBenefit = e.ExtractPrimaryBenefit(byOption[winner])
	} else {
		pm.PrimaryBenefit = e.ExtractPrimaryBenefit(texts)
	}

	for i, option := range result.Options {
		letter, err := model.IndexToLetter(i)
		if err != nil {
			break
		}
		optDrivers := CountKeywordHits(byOption[i], e.tables.Drivers, e.matcher).NonZero().Top(MaxDrivers)
		optDriver := driver
		if len(optDrivers) > 0 {
			optDriver = e.driverLabel(optDrivers)
		}
		f := newFiller(option, optDriver, pm.PrimaryBenefit, g.Platform)
		pm.Effectiveness[letter] = model.OptionEffectiveness{
			OptionText:  option,
			Percentage:  Percent(counts[i], len(g.Responses)),
			TopDrivers:  optDrivers,
			Message:     f.Replace(tmpl.Message),
			AdCopyIdeas: fillAll(f, tmpl.AdCopy),
		}
	}

	f := newFiller(subjectOf(result, pm.WinningOption), driver, pm.PrimaryBenefit, g.Platform)
	pm.RecommendedMessage = f.Replace(tmpl.Message)
	pm.ToneVariations = model.ToneVariations{
		Formal: f.Replace(tmpl.Formal),
		Casual: f.Replace(tmpl.Casual),
		Urgent: f.Replace(tmpl.Urgent),
	}
	return pm
}

func (e *Engine) templatesFor(f PlatformFamily) MessageTemplates {
	if t, ok := e.tables.Templates[f]; ok {
		return t
	}
	return e.tables.Templates[FamilyGeneric]
}

// driverLabel returns the display label of the first driver, or of the
// default driver when there is none
func (e *Engine) driverLabel(drivers []string) string {
	name := e.tables.DefaultDriver
	if len(drivers) > 0 {
		name = drivers[0]
	}
	if label, ok := e.tables.DriverLabels[name]; ok {
		return label
	}
	return name
}

// subjectOf names what the messaging promotes: the winning option, the first
// option, or a generic subject
func subjectOf(result *model.SurveyResult, winning string) string {
	if winning != "" {
		return winning
	}
	for _, o := range result.Options {
		if strings.TrimSpace(o) != "" {
			return o
		}
	}
	return fallbackSubject
}

// groupConfidence is the mean clamped confidence of the group's responses,
// or the consensus when the group is empty
func groupConfidence(g model.PlatformGroup, consensus float64) float64 {
	if len(g.Responses) == 0 {
		return model.Clamp(consensus, 0, 1)
	}
	var sum float64
	for _, r := range g.Responses {
		sum += r.ClampedConfidence()
	}
	return sum / float64(len(g.Responses))
}

func fillAll(r *strings.Replacer, templates []string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = r.Replace(t)
	}
	return out
}
