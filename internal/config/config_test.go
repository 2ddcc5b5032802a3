package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"frames": 10, "size": 128, "format": "tga", "seed": 99}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})

	if cfg.Frames != 10 || cfg.Size != 128 || cfg.Format != "tga" || cfg.Seed != 99 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Points != 800 || cfg.OutputDir != "frames" || cfg.Supersample != 2 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Workers < 1 {
		t.Fatalf("workers = %d", cfg.Workers)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{Frames: 10, Format: "tga"}
	cfg.Resolve(Flags{Frames: 5, Format: "webp", OutputDir: "out", Seed: 7})

	if cfg.Frames != 5 || cfg.Format != "webp" || cfg.OutputDir != "out" || cfg.Seed != 7 {
		t.Fatalf("flags did not win: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
