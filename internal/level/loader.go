package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadRawLevel loads an untrusted level description from a JSON or YAML file
func LoadRawLevel(path string) (*RawLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return DecodeRawLevel(data, FormatForPath(path))
}

// DecodeRawLevel parses a level description. A document that decodes to
// nothing (for example "null") yields a nil level and no error; repair
// reports that case.
func DecodeRawLevel(data []byte, format Format) (*RawLevel, error) {
	var raw *RawLevel
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse level YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse level JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported level format %q", format)
	}
	return raw, nil
}
