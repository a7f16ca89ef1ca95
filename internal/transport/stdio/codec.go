package stdio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"surveyinsights/internal/model"
)

// Format is a survey input encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatAuto Format = ""
)

// FormatFor picks the format from a file extension. Unknown extensions and
// stdin ("-") are detected from content.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// ReadSurveyFile reads a survey result from a file, or from stdin when path
// is "-" or empty
func ReadSurveyFile(path string, stdin io.Reader) (*model.SurveyResult, error) {
	if path == "" || path == "-" {
		return ReadSurvey(stdin, FormatAuto)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ReadSurvey(f, FormatFor(path))
}

// ReadSurvey decodes a survey result. FormatAuto treats input starting with
// '{' as JSON and anything else as YAML.
func ReadSurvey(r io.Reader, format Format) (*model.SurveyResult, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty input: %w", model.ErrInvalidInput)
	}
	if format == FormatAuto {
		format = FormatYAML
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			format = FormatJSON
		}
	}

	var result model.SurveyResult
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &result)
	case FormatYAML:
		err = yaml.Unmarshal(data, &result)
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, model.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s survey result: %v: %w", format, err, model.ErrInvalidInput)
	}
	return &result, nil
}

// WriteJSON encodes v as JSON, indented when pretty is set
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// WriteError writes an error as a JSON object
func WriteError(w io.Writer, err error) error {
	return WriteJSON(w, map[string]string{"error": err.Error()}, false)
}

// WriteYAML encodes v as YAML
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
