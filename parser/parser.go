package parser

import (
	"fmt"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

// LoadResult is a loaded, dereferenced, format-tagged document.
type LoadResult struct {
	// Source is the file path or URL the document was loaded from.
	Source string
	// Format is the detected serialization format of the source bytes.
	Format SourceFormat
	// Document is the dereferenced document tree.
	Document *Document
}

// Load reads a document from a local file path or an http(s) URL,
// dereferences it, and builds the typed document tree. A failure is fatal to
// this document only; callers loading several specs continue with the rest.
func Load(source string) (*LoadResult, error) {
	var (
		data        []byte
		contentType string
		err         error
	)
	if isURL(source) {
		data, contentType, err = fetchURL(source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}
	return loadBytes(data, source, contentType)
}

// LoadBytes dereferences an in-memory document. The source string is used
// for format detection and error messages only.
func LoadBytes(data []byte, source string) (*LoadResult, error) {
	return loadBytes(data, source, "")
}

func loadBytes(data []byte, source, contentType string) (*LoadResult, error) {
	format := DetectFormat(source, contentType, data)

	// The YAML parser handles both YAML and JSON input.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &naverrors.TransformError{
			Source:  source,
			Message: "failed to parse document",
			Cause:   err,
		}
	}

	if err := Transform(SourceKindOpenAPI, raw, source); err != nil {
		return nil, err
	}

	doc := buildDocument(raw, scanKeyOrder(data))
	slog.Debug("loaded spec",
		"source", source,
		"format", format.String(),
		"title", doc.Info.Title,
		"paths", doc.Paths.Len())

	return &LoadResult{Source: source, Format: format, Document: doc}, nil
}

// readFile reads a local document enforcing the size cap.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("parser: file %s exceeds maximum size limit (%d bytes): file is %d bytes", path, maxDocumentSize, len(data))
	}
	return data, nil
}
