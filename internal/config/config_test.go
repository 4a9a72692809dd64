package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Strategy != "semantic" {
		t.Errorf("expected default strategy semantic, got %q", cfg.Strategy)
	}
	if cfg.ChunkSize != 512 {
		t.Errorf("expected default chunk size 512, got %d", cfg.ChunkSize)
	}
	if cfg.OverlapRatio != 0.1 {
		t.Errorf("expected default overlap 0.1, got %v", cfg.OverlapRatio)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language en, got %q", cfg.Language)
	}
	if cfg.OutputFormat != "jsonl" {
		t.Errorf("expected default output format jsonl, got %q", cfg.OutputFormat)
	}
	if cfg.Concurrency <= 0 || cfg.Concurrency > maxConcurrency {
		t.Errorf("expected concurrency in (0, %d], got %d", maxConcurrency, cfg.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CHUNKLINK_STRATEGY", "fixed")
	t.Setenv("CHUNKLINK_CHUNK_SIZE", "256")
	t.Setenv("CHUNKLINK_OVERLAP_RATIO", "0.25")
	t.Setenv("CHUNKLINK_LANGUAGE", "hi")
	t.Setenv("CHUNKLINK_OUTPUT_FORMAT", "json")

	cfg := Load()
	if cfg.Strategy != "fixed" {
		t.Errorf("expected strategy fixed, got %q", cfg.Strategy)
	}
	if cfg.ChunkSize != 256 {
		t.Errorf("expected chunk size 256, got %d", cfg.ChunkSize)
	}
	if cfg.OverlapRatio != 0.25 {
		t.Errorf("expected overlap 0.25, got %v", cfg.OverlapRatio)
	}
	if cfg.Language != "hi" {
		t.Errorf("expected language hi, got %q", cfg.Language)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("expected output format json, got %q", cfg.OutputFormat)
	}
}

func TestLoad_ClampsBadValues(t *testing.T) {
	t.Setenv("CHUNKLINK_CHUNK_SIZE", "-10")
	t.Setenv("CHUNKLINK_CONCURRENCY", "1000")

	cfg := Load()
	if cfg.ChunkSize != 512 {
		t.Errorf("expected chunk size fallback 512, got %d", cfg.ChunkSize)
	}
	if cfg.Concurrency != maxConcurrency {
		t.Errorf("expected concurrency clamped to %d, got %d", maxConcurrency, cfg.Concurrency)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"unknown strategy", func(c *Config) { c.Strategy = "magic" }},
		{"overlap too high", func(c *Config) { c.OverlapRatio = 1.0 }},
		{"negative overlap", func(c *Config) { c.OverlapRatio = -0.1 }},
		{"unknown output format", func(c *Config) { c.OutputFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mod(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestChunkerConfig(t *testing.T) {
	t.Setenv("CHUNKLINK_STRATEGY", "layout")
	t.Setenv("CHUNKLINK_CHUNK_SIZE", "128")

	cfg := Load()
	cc := cfg.ChunkerConfig()
	if cc.Strategy.String() != "layout" {
		t.Errorf("expected layout strategy, got %v", cc.Strategy)
	}
	if cc.ChunkSize != 128 {
		t.Errorf("expected chunk size 128, got %d", cc.ChunkSize)
	}
	if err := cc.Validate(); err != nil {
		t.Errorf("expected valid chunker config, got %v", err)
	}
}
