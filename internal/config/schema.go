package config

import "github.com/blackwell-systems/palctl/internal/view"

// Config is the top-level palctl configuration.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Editor   EditorConfig   `mapstructure:"editor"`
}

// DefaultsConfig seeds new palettes and the timeline.
type DefaultsConfig struct {
	// Version is written into palettes created by `palctl new`.
	Version string `mapstructure:"version"`
	// Shortcuts is the shortcuts string seeded into new palettes.
	Shortcuts string `mapstructure:"shortcuts"`
	// FrameCount is the timeline length offered for palettes that carry
	// no animation.
	FrameCount int `mapstructure:"frame_count"`
}

// EditorConfig holds default view settings for `palctl colors` and the
// TUI editor.
type EditorConfig struct {
	Sort          string `mapstructure:"sort"` // index, name or hue
	Descending    bool   `mapstructure:"descending"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
}

// SortOrder resolves the configured sort into a view.Sort, falling back
// to file order for unknown keys.
func (e EditorConfig) SortOrder() view.Sort {
	key, _ := view.ParseSortKey(e.Sort)
	return view.Sort{Key: key, Descending: e.Descending}
}
