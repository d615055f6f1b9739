// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table with the description and category columns.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// Preference subcommand actions.
const (
	ActionList   = "list"
	ActionToggle = "toggle"
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionClear  = "clear"
)
