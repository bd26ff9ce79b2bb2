// Package version reports build metadata stamped in at link time
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"stockcount-api"`
	Version string `json:"version" example:"v0.3.1"`
	Commit  string `json:"commit"  example:"9f2c1ab"`
	Date    string `json:"date"    example:"2025-09-03"`
}

// Info returns the build information
func Info() BuildInfo {
	// set via -ldflags "-X 'stockcount/internal/core/version.version=v0.3.1'
	// -X 'stockcount/internal/core/version.commit=9f2c1ab' -X 'stockcount/internal/core/version.date=2025-09-03'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	service = "stockcount-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
