// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// YTGrab is the canonical application identifier used for filesystem paths and CLI branding.
	YTGrab = "ytgrab"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to external services.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// WatchURLPrefix is the canonical watch-page URL prefix a video id is appended to.
	WatchURLPrefix = "https://www.youtube.com/watch?v="

	// CatalogBaseURL is the root endpoint of the remote catalog API.
	CatalogBaseURL = "https://www.googleapis.com/youtube/v3"
)

// Build metadata, overridden at link time by the release pipeline.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
