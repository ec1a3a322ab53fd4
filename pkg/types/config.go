// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ColorMode controls whether console diagnostics are styled with ANSI colors.
type ColorMode string

const (
	// ColorAuto styles output only when the destination is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Valid reports whether m is one of the known color modes.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// ConsoleConfig holds presentation settings shared by both tools.
type ConsoleConfig struct {
	// Color selects auto, always, or never (default auto).
	Color ColorMode `json:"color" yaml:"color"`
}

// ExtractConfig holds settings for one extract invocation.
type ExtractConfig struct {
	// InputPath is the Markdown file containing the embedded JSON object.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where rendered Markdown is written. Empty means stdout.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Overwrite writes the rendered Markdown back to InputPath.
	// It takes precedence over OutputPath.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// Pretty echoes the parsed object before rendering.
	Pretty bool `json:"pretty" yaml:"pretty"`
}

// OrganizeConfig holds settings for one organize invocation.
type OrganizeConfig struct {
	// RootDir is the directory tree to scan.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// Extension is either a bare alphanumeric token ("jpg") or a regex
	// fragment matched against the file name suffix ("(jpg|png)").
	Extension string `json:"extension" yaml:"extension"`

	// Pattern is the keep filter, searched (unanchored) in each file's base name.
	Pattern string `json:"pattern" yaml:"pattern"`

	// DryRun reports planned moves without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ReportPath, when set, receives a YAML record of the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
