package address

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

// NormalizePath returns the decoded canonical form of a path: a single
// leading slash, regardless of how many (or none) the input carries.
func NormalizePath(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

// EncodePath strips leading slashes from a path and percent-encodes the
// remainder as a single opaque path segment, so /users/{id} becomes
// users%2F%7Bid%7D. The encoded form never carries a leading %2F.
func EncodePath(path string) string {
	return url.PathEscape(strings.TrimLeft(path, "/"))
}

// DecodePath is the inverse of EncodePath: it percent-decodes an encoded
// segment and re-prefixes the single leading slash, recovering the
// normalized original path. DecodePath(EncodePath(p)) == NormalizePath(p)
// for all p.
func DecodePath(encoded string) (string, error) {
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path encoding %q: %v", naverrors.ErrAddress, encoded, err)
	}
	return NormalizePath(decoded), nil
}
