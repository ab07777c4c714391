package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/palctl/internal/config"
	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/view"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Version != palette.DefaultVersion {
		t.Errorf("version = %q", cfg.Defaults.Version)
	}
	if cfg.Defaults.FrameCount != palette.DefaultFrameCount {
		t.Errorf("frame_count = %d", cfg.Defaults.FrameCount)
	}
	if cfg.Editor.Sort != "index" || cfg.Editor.Descending {
		t.Errorf("editor defaults = %+v", cfg.Editor)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("defaults:\n  version: \"80.1\"\neditor:\n  sort: hue\n  descending: true\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Version != "80.1" {
		t.Errorf("version = %q", cfg.Defaults.Version)
	}
	s := cfg.Editor.SortOrder()
	if s.Key != view.SortHue || !s.Descending {
		t.Errorf("sort = %+v", s)
	}
}

func TestSortOrder_UnknownKeyFallsBack(t *testing.T) {
	e := config.EditorConfig{Sort: "bogus"}
	if s := e.SortOrder(); s.Key != view.SortIndex {
		t.Errorf("sort key = %v", s.Key)
	}
}
