package parser

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceFormat identifies the serialization format of a loaded document.
type SourceFormat int

const (
	// SourceFormatUnknown means the format could not be determined.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON is a JSON-encoded document.
	SourceFormatJSON
	// SourceFormatYAML is a YAML-encoded document.
	SourceFormatYAML
)

// String returns the lowercase format name.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// detectFormatFromPath detects the source format from a file path extension.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from content bytes.
// JSON documents start with '{' or '[' after leading whitespace; anything
// else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromContentType maps an HTTP Content-Type header to a format.
func detectFormatFromContentType(contentType string) SourceFormat {
	if contentType == "" {
		return SourceFormatUnknown
	}
	contentType = strings.ToLower(contentType)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(contentType) {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// DetectFormat determines the source format from, in order of preference, the
// source path extension, the HTTP Content-Type header, and the content bytes.
func DetectFormat(source, contentType string, data []byte) SourceFormat {
	path := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" {
		path = u.Path
	}
	if f := detectFormatFromPath(path); f != SourceFormatUnknown {
		return f
	}
	if f := detectFormatFromContentType(contentType); f != SourceFormatUnknown {
		return f
	}
	return detectFormatFromContent(data)
}

// isURL determines if the given source is an http(s) URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
