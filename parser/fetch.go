package parser

import (
	"fmt"
	"io"
	"net/http"
	"time"

	explorer "github.com/domaspe/mcp-openapi-schema-explorer"
)

// maxDocumentSize caps the size of a fetched or read document to prevent
// resource exhaustion from arbitrarily large inputs. 10MB is sufficient for
// even very large OpenAPI documents.
const maxDocumentSize = 10 * 1024 * 1024

// fetchURL fetches document bytes from a URL and returns them together with
// the Content-Type header. Startup-only I/O; the resolution core never
// touches the network.
func fetchURL(urlStr string) ([]byte, string, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", explorer.UserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to read response body: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, "", fmt.Errorf("parser: response from %s exceeds maximum size limit (%d bytes)", urlStr, maxDocumentSize)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
