package model

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// InsightReport bundles the three derived artifacts for one survey result
type InsightReport struct {
	Fingerprint string            `json:"fingerprint"` // engine signature + input fingerprint
	SurveyID    string            `json:"surveyId,omitempty"`
	Question    string            `json:"question"`
	Roadmap     Roadmap           `json:"roadmap"`
	Jobs        JobsAnalysis      `json:"jobs"`
	Campaign    CampaignMessaging `json:"campaign"`
}

// Validate rejects inputs the analyzers do not support
func (s *SurveyResult) Validate() error {
	if s == nil {
		return ErrNilSurveyResult
	}
	if len(s.Options) > MaxOptions {
		return fmt.Errorf("%d options (max %d): %w", len(s.Options), MaxOptions, ErrTooManyOptions)
	}
	return nil
}

// Fingerprint returns a structural hash of the survey result. Map keys are
// sorted by encoding/json, so equal inputs always hash the same.
func Fingerprint(s *SurveyResult) (string, error) {
	if s == nil {
		return "", ErrNilSurveyResult
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal survey result: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
