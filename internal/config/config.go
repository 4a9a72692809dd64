package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/dgallion1/chunklink/internal/chunker"
)

const maxConcurrency = 8

type Config struct {
	// Chunking defaults
	Strategy     string
	ChunkSize    int
	OverlapRatio float64

	// Segmentation
	Language string

	// Batch processing
	Concurrency int

	// Output
	OutputFormat string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Strategy:     envOr("CHUNKLINK_STRATEGY", "semantic"),
		ChunkSize:    envInt("CHUNKLINK_CHUNK_SIZE", 512),
		OverlapRatio: envFloat("CHUNKLINK_OVERLAP_RATIO", 0.1),

		Language: envOr("CHUNKLINK_LANGUAGE", "en"),

		Concurrency: envInt("CHUNKLINK_CONCURRENCY", runtime.NumCPU()),

		OutputFormat: envOr("CHUNKLINK_OUTPUT_FORMAT", "jsonl"),

		PDFFallbackPdftotext: envBool("CHUNKLINK_PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 512
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	if cfg.Concurrency > maxConcurrency {
		cfg.Concurrency = maxConcurrency
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := chunker.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.OverlapRatio < 0 || c.OverlapRatio >= 1 {
		return fmt.Errorf("CHUNKLINK_OVERLAP_RATIO must be in [0, 1), got %v", c.OverlapRatio)
	}
	if c.OutputFormat != "json" && c.OutputFormat != "jsonl" {
		return fmt.Errorf("CHUNKLINK_OUTPUT_FORMAT must be json or jsonl, got %q", c.OutputFormat)
	}
	return nil
}

// ChunkerConfig materializes the chunking settings. Validate first.
func (c Config) ChunkerConfig() chunker.Config {
	strategy, _ := chunker.ParseStrategy(c.Strategy)
	return chunker.Config{
		Strategy:     strategy,
		ChunkSize:    c.ChunkSize,
		OverlapRatio: c.OverlapRatio,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
