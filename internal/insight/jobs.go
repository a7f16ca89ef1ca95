package insight

import (
	"fmt"
	"sort"
	"strings"

	"surveyinsights/internal/model"
)

const (
	// AdoptionFloorPct is the minimum adoption for a job to be reported
	AdoptionFloorPct = 5.0
	// MaxJobs is how many ranked jobs are kept
	MaxJobs = 3
	// MaxEvidencePhrases is how many outcomes/frustrations are kept per job
	MaxEvidencePhrases = 4
)

var jobRanks = []string{"Primary", "Secondary", "Tertiary"}

type scoredJob struct {
	def      JobDefinition
	adoption float64
}

// ComputeJobs classifies respondent reasoning into the job taxonomy and
// returns the top jobs by adoption. The result always holds at least one
// job: when none clears the floor the fixed fallback jobs are returned.
func (e *Engine) ComputeJobs(result *model.SurveyResult) model.JobsAnalysis {
	if result == nil {
		result = &model.SurveyResult{}
	}
	responses := result.AllResponses()
	texts := make([]string, len(responses))
	for i, r := range responses {
		texts[i] = r.Text()
	}

	analysis := model.JobsAnalysis{
		Jobs:      []model.Job{},
		Situation: situationFor(result, len(responses)),
	}

	ranked := e.rankJobs(texts)
	if len(ranked) == 0 {
		ranked = e.fallbackJobs(texts)
		analysis.Fallback = true
	}

	for i, sj := range ranked {
		scope := texts
		if !analysis.Fallback {
			scope = e.textsMatching(texts, sj.def.Keywords)
		}
		analysis.Jobs = append(analysis.Jobs, model.Job{
			ID:                 sj.def.ID,
			Rank:               rankLabel(i),
			Title:              sj.def.Title,
			Description:        sj.def.Description,
			AdoptionPct:        sj.adoption,
			DesiredOutcomes:    e.rankPhrases(scope, sj.def.Outcomes),
			Frustrations:       e.rankPhrases(scope, sj.def.Frustrations),
			DesignImplications: append([]string{}, sj.def.DesignImplications...),
		})
	}

	if len(analysis.Jobs) > 0 {
		primary := analysis.Jobs[0]
		outcome := primary.Description
		if len(primary.DesiredOutcomes) > 0 {
			outcome = primary.DesiredOutcomes[0].Text
		}
		analysis.CanvasData = &model.CanvasData{
			Situation: analysis.Situation,
			Job:       primary.Title,
			Outcome:   outcome,
		}
	}
	return analysis
}

// rankJobs keeps the jobs at or above the adoption floor, highest first,
// taxonomy order on ties, capped at MaxJobs
func (e *Engine) rankJobs(texts []string) []scoredJob {
	lex := make(Lexicon, len(e.tables.Jobs))
	for i, def := range e.tables.Jobs {
		lex[i] = Category{Name: def.ID, Keywords: def.Keywords}
	}
	hits := CountKeywordHits(texts, lex, e.matcher)

	var kept []scoredJob
	for i, hit := range hits {
		adoption := Percent(hit.Count, len(texts))
		if adoption < AdoptionFloorPct {
			continue
		}
		kept = append(kept, scoredJob{def: e.tables.Jobs[i], adoption: adoption})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].adoption > kept[j].adoption
	})
	if len(kept) > MaxJobs {
		kept = kept[:MaxJobs]
	}
	return kept
}

// fallbackJobs returns the default jobs, each nudged up when any text
// mentions one of its broader keywords
func (e *Engine) fallbackJobs(texts []string) []scoredJob {
	var jobs []scoredJob
	for _, fb := range e.tables.JobFallback {
		def, ok := e.jobByID(fb.ID)
		if !ok {
			continue
		}
		adoption := fb.Adoption
		for _, text := range texts {
			if MatchesAny(text, fb.NudgeKeywords, e.matcher) {
				adoption += fb.Nudge
				break
			}
		}
		jobs = append(jobs, scoredJob{def: def, adoption: adoption})
	}
	if len(jobs) == 0 {
		// Tables without any usable fallback still yield one job.
		jobs = append(jobs, scoredJob{
			def: JobDefinition{
				ID:          "save_time",
				Title:       "Save time and get things done faster",
				Description: "Respondents want the choice to cut the time and effort a task takes.",
			},
			adoption: AdoptionFloorPct,
		})
	}
	return jobs
}

func (e *Engine) jobByID(id string) (JobDefinition, bool) {
	for _, def := range e.tables.Jobs {
		if def.ID == id {
			return def, true
		}
	}
	return JobDefinition{}, false
}

func (e *Engine) textsMatching(texts []string, keywords []string) []string {
	var out []string
	for _, t := range texts {
		if MatchesAny(t, keywords, e.matcher) {
			out = append(out, t)
		}
	}
	return out
}

// rankPhrases returns the top phrases by hit percentage over scope. When no
// phrase has a hit the first phrases of the table are returned at 0%.
func (e *Engine) rankPhrases(scope []string, lex Lexicon) []model.RankedPhrase {
	phrases := []model.RankedPhrase{}
	hits := CountKeywordHits(scope, lex, e.matcher)
	src := hits.NonZero()
	if len(src) == 0 {
		src = hits
	}
	for _, name := range src.Top(MaxEvidencePhrases) {
		phrases = append(phrases, model.RankedPhrase{
			Text: name,
			Pct:  Percent(hits.Count(name), len(scope)),
		})
	}
	return phrases
}

func rankLabel(i int) string {
	if i < len(jobRanks) {
		return jobRanks[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

func situationFor(result *model.SurveyResult, respondents int) string {
	var b strings.Builder
	if q := strings.TrimSpace(result.Question); q != "" {
		fmt.Fprintf(&b, "When deciding %q", q)
	} else {
		b.WriteString("When choosing between the options")
	}
	fmt.Fprintf(&b, ", %d respondents compared %d options", respondents, len(result.Options))
	if f, ok := result.TopDecisionFactor(); ok {
		fmt.Fprintf(&b, ", with %q weighing most", strings.TrimSpace(f.Factor))
	}
	b.WriteString(".")
	return b.String()
}
