package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// outputFormat selects the serialization for detail payloads. Listings and
// error messages are always plain text regardless of format.
type outputFormat string

const (
	formatJSON         outputFormat = "json"
	formatYAML         outputFormat = "yaml"
	formatJSONMinified outputFormat = "json-minified"
)

// listMIMEType is the MIME type for listings and error messages.
const listMIMEType = "text/plain"

// parseFormat validates a format name from a flag or environment variable.
func parseFormat(name string) (outputFormat, error) {
	switch outputFormat(strings.ToLower(strings.TrimSpace(name))) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML:
		return formatYAML, nil
	case formatJSONMinified:
		return formatJSONMinified, nil
	default:
		return "", fmt.Errorf("unknown output format %q; valid formats: json, yaml, json-minified", name)
	}
}

// mimeType returns the MIME type advertised for detail payloads.
func (f outputFormat) mimeType() string {
	if f == formatYAML {
		return "text/yaml"
	}
	return "application/json"
}

// marshal serializes a detail payload in the configured format.
func (f outputFormat) marshal(v any) (string, error) {
	switch f {
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatJSONMinified:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
