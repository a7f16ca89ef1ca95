package stdio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyinsights/internal/model"
)

const surveyJSON = `{
  "question": "Pick a plan",
  "options": ["Starter", "Pro"],
  "choiceDistribution": {"A": {"count": 2, "percentage": 66.7}},
  "responses": [{"agentId": "1", "platform": "TikTok", "choice": "A", "confidence": 0.8, "reasoning": "fast"}]
}`

const surveyYAML = `
question: Pick a plan
options: [Starter, Pro]
choiceDistribution:
  A: {count: 2, percentage: 66.7}
platformGroups:
  - platform: LinkedIn
    consensus: 0.5
    responses:
      - {agentId: "1", choice: B, confidence: 0.4, reasoning: cheap}
riskAnnotations:
  - {description: Pro needs billing, severity: High}
`

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("in/survey.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("survey.yml"))
	assert.Equal(t, FormatYAML, FormatFor("survey.yaml"))
	assert.Equal(t, FormatAuto, FormatFor("-"))
	assert.Equal(t, FormatAuto, FormatFor("survey.txt"))
}

func TestReadSurvey(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := ReadSurvey(strings.NewReader(surveyJSON), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, "Pick a plan", r.Question)
		assert.Equal(t, 66.7, r.ChoiceDistribution["A"].Percentage)
		require.Len(t, r.Responses, 1)
		assert.Equal(t, "TikTok", r.Responses[0].Platform)
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := ReadSurvey(strings.NewReader(surveyYAML), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, []string{"Starter", "Pro"}, r.Options)
		require.Len(t, r.PlatformGroups, 1)
		assert.Equal(t, 0.5, r.PlatformGroups[0].Consensus)
		assert.True(t, r.RiskAnnotations[0].Severity.IsHigh())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ReadSurvey(strings.NewReader("  "), FormatAuto)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))

		_, err = ReadSurvey(strings.NewReader("{not json"), FormatJSON)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = ReadSurvey(strings.NewReader("a: b"), Format("toml"))
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestReadSurveyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(surveyYAML), 0o600))

	r, err := ReadSurveyFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pick a plan", r.Question)

	r, err = ReadSurveyFile("-", strings.NewReader(surveyJSON))
	require.NoError(t, err)
	assert.Len(t, r.Responses, 1)

	_, err = ReadSurveyFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"a": 1}, false))
	assert.Equal(t, "{\"a\":1}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, map[string]int{"a": 1}, true))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteError(&buf, errors.New("boom")))
	assert.Equal(t, "{\"error\":\"boom\"}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteYAML(&buf, &model.SurveyResult{Question: "q", Options: []string{"x"}}))
	back, err := ReadSurvey(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "q", back.Question)
	assert.Equal(t, []string{"x"}, back.Options)
}
