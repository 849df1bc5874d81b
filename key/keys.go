// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Scanning - these keys govern which files feed the color registry and how it is flattened.
const (
	ScanMode       = "scan.mode"
	ScanCategories = "scan.categories"
	ScanIgnore     = "scan.ignore"
)

// Swatch Rendering - these keys configure the terminal color previews and their cache.
const (
	SwatchCacheSize = "swatch.cache_size"
	SwatchWidth     = "swatch.width"
)

// Watch Mode - these keys tune the live rebuild loop.
const (
	WatchDebounceMs = "watch.debounce_ms"
)

// History Tracking - these keys configure the persistence of per-workspace state.
const (
	HistoryRememberMode = "history.remember_mode"
)

// Search Interaction - these keys define suggestions for variable lookups.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Terminal Interface - these keys customize the interactive browser.
const (
	TUIItemSpacing  = "tui.item_spacing"
	TUIShowSwatches = "tui.show_swatches"
)
