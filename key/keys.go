// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Remote Catalog Access - these keys govern how the catalog API is reached.
const (
	APIKey          = "api.key"
	CatalogPageSize = "catalog.page_size"
)

// Channel Selection - these keys hold the default publisher the session resolves.
const (
	ChannelDefault = "channel.default"
)

// Download Pipeline - these keys configure where and how media is materialized on disk.
const (
	DownloadPath       = "download.path"
	DownloadThumbnails = "download.thumbnails"
)

// Search Interaction - these keys define the UX parameters for channel discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
