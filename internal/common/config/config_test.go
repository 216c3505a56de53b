package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != DefaultPort || cfg.Environment != "development" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.ReadTimeout != 10 || cfg.WriteTimeout != 10 || cfg.BodyLimit != DefaultBodyLimit {
		t.Errorf("unexpected server defaults %+v", cfg)
	}
	if cfg.ExtentConvention != "analyzed" || cfg.Strategy != "surface" || cfg.SkipInvalid {
		t.Errorf("unexpected builder defaults %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 0 {
		t.Errorf("expected no cors origins, got %q", cfg.CorsOrigins)
	}
	if cfg.Parallelism != DefaultParallelism {
		t.Errorf("expected parallelism %d, got %d", DefaultParallelism, cfg.Parallelism)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SKIP_INVALID", "true")
	t.Setenv("NEAREST_STRATEGY", "centroid")
	t.Setenv("ROOM_PARALLELISM", "not-a-number")
	t.Setenv("CORS_ORIGINS", "http://a.local, ,http://b.local")

	cfg := Load()

	if cfg.Port != "9000" || !cfg.SkipInvalid || cfg.Strategy != "centroid" {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 2 || cfg.CorsOrigins[1] != "http://b.local" {
		t.Errorf("unexpected cors origins %q", cfg.CorsOrigins)
	}
	if cfg.Parallelism != DefaultParallelism {
		t.Errorf("invalid parallelism should fall back to default, got %d", cfg.Parallelism)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigraph.yaml")
	data := "extent_convention: consistent\nroom_parallelism: 2\nport: \"4000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BIGRAPH_CONFIG", path)
	t.Setenv("PORT", "5000")

	cfg := Load()

	if cfg.ExtentConvention != "consistent" || cfg.Parallelism != 2 {
		t.Errorf("config file not merged: %+v", cfg)
	}
	if cfg.Port != "5000" {
		t.Errorf("environment should win over the file, got %s", cfg.Port)
	}
}

func TestLoad_ConfigFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigraph.toml")
	data := "nearest_strategy = \"centroid\"\nskip_invalid = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BIGRAPH_CONFIG", path)

	cfg := Load()

	if cfg.Strategy != "centroid" || !cfg.SkipInvalid {
		t.Errorf("format should follow the file extension: %+v", cfg)
	}
}
