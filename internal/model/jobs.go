package model

// RankedPhrase is a phrase with the share of responses that support it
type RankedPhrase struct {
	Text string  `json:"text"`
	Pct  float64 `json:"pct"`
}

// Job is a latent motivation inferred from reasoning text
type Job struct {
	ID                 string         `json:"id"`
	Rank               string         `json:"rank"` // Primary, Secondary, Tertiary
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	AdoptionPct        float64        `json:"adoptionPct"`
	DesiredOutcomes    []RankedPhrase `json:"desiredOutcomes"`
	Frustrations       []RankedPhrase `json:"frustrations"`
	DesignImplications []string       `json:"designImplications"`
}

// CanvasData is the one-line job story for the primary job
type CanvasData struct {
	Situation string `json:"situation"`
	Job       string `json:"job"`
	Outcome   string `json:"outcome"`
}

// JobsAnalysis is the Jobs-to-be-Done output
type JobsAnalysis struct {
	Jobs       []Job       `json:"jobs"`
	Situation  string      `json:"situation"`
	CanvasData *CanvasData `json:"canvasData,omitempty"`
	Fallback   bool        `json:"fallback"` // True when no job cleared the adoption floor
}
