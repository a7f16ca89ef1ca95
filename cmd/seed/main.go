package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"surveyinsights/internal/model"
	"surveyinsights/internal/pkg/logger"
	"surveyinsights/internal/transport/stdio"
)

func main() {
	out := flag.String("out", "sample_survey.yaml", "Where to write the sample survey result (.yaml or .json)")
	flag.Parse()

	log, err := logger.New("info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	result := sampleSurvey()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("Failed to create output file", zap.String("path", *out), zap.Error(err))
	}
	if err := write(f, *out, result); err != nil {
		f.Close()
		log.Fatal("Failed to write sample survey", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		log.Fatal("Failed to close output file", zap.Error(err))
	}

	log.Info("Sample survey written",
		zap.String("path", *out),
		zap.Int("options", len(result.Options)),
		zap.Int("responses", len(result.AllResponses())),
	)
}

func write(w io.Writer, path string, result *model.SurveyResult) error {
	if stdio.FormatFor(path) == stdio.FormatJSON {
		return stdio.WriteJSON(w, result, true)
	}
	return stdio.WriteYAML(w, result)
}

type seedResponse struct {
	choice     string
	confidence float64
	reasoning  string
}

func sampleSurvey() *model.SurveyResult {
	platforms := []struct {
		name      string
		consensus float64
		responses []seedResponse
	}{
		{
			name:      "LinkedIn",
			consensus: 0.72,
			responses: []seedResponse{
				{"B", 0.91, "Enterprise buyers trust SSO because it keeps accounts secure and compliant."},
				{"B", 0.84, "Our IT team needs SSO; it saves hours of manual account setup every week."},
				{"A", 0.62, "Dark mode looks polished and professional during long workdays."},
				{"B", 0.78, "Reliable login reduces risk and helps us pass security audits."},
			},
		},
		{
			name:      "TikTok",
			consensus: 0.86,
			responses: []seedResponse{
				{"A", 0.93, "Dark mode is trendy and fun, it lets me scroll at night without eye strain."},
				{"A", 0.88, "Everyone wants dark mode, it's the modern look and so easy on the eyes."},
				{"A", 0.81, "Quick win, feels fresh and cool."},
				{"C", 0.35, "A new color would be fun to share."},
			},
		},
		{
			name:      "YouTube",
			consensus: 0.55,
			responses: []seedResponse{
				{"A", 0.66, "Watching tutorials in dark mode is more relaxing and less stressful."},
				{"B", 0.58, "Teams on our channel keep asking for SSO to connect their workspace."},
			},
		},
	}

	result := &model.SurveyResult{
		ID:       "sample-feature-priorities",
		Question: "Which feature should we build next?",
		Options:  []string{"Dark mode toggle", "Enterprise SSO integration", "Minor color update"},
		RiskAnnotations: []model.Risk{
			{Description: "Enterprise SSO integration depends on the identity provider contract", Severity: model.SeverityMedium, Mitigation: "Start with one provider"},
			{Description: "Dark mode toggle and Minor color update both touch the theme tokens", Severity: model.SeverityLow},
		},
		DecisionFactors: []model.DecisionFactor{
			{Factor: "Security", ImpactScore: 0.82, AgentMentions: 4, PlatformsInfluenced: []string{"LinkedIn", "YouTube"}},
			{Factor: "Visual comfort", ImpactScore: 0.74, AgentMentions: 5, PlatformsInfluenced: []string{"TikTok", "YouTube"}},
		},
	}

	counts := make(map[string]int)
	total := 0
	for _, p := range platforms {
		group := model.PlatformGroup{Platform: p.name, Consensus: p.consensus}
		for i, r := range p.responses {
			group.Responses = append(group.Responses, model.Response{
				AgentID:    fmt.Sprintf("%s-%02d", strings.ToLower(p.name), i+1),
				Platform:   p.name,
				Choice:     r.choice,
				Confidence: r.confidence,
				Reasoning:  r.reasoning,
			})
			counts[r.choice]++
			total++
		}
		result.PlatformGroups = append(result.PlatformGroups, group)
		result.Platforms = append(result.Platforms, p.name)
	}

	result.ChoiceDistribution = make(map[string]model.ChoiceStats, len(result.Options))
	for i := range result.Options {
		letter, _ := model.IndexToLetter(i)
		result.ChoiceDistribution[letter] = model.ChoiceStats{
			Count:      counts[letter],
			Percentage: float64(counts[letter]) / float64(total) * 100,
		}
	}
	return result
}
