package recase

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the identifier recase logs when serving MCP.
func UserAgent() string {
	return fmt.Sprintf("recase/%s", version)
}
