package explorer

import "fmt"

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string to use when fetching specs over HTTP
func UserAgent() string {
	return fmt.Sprintf("mcp-openapi-schema-explorer/%s", version)
}
