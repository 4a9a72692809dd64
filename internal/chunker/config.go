package chunker

import (
	"fmt"

	"github.com/dgallion1/chunklink/internal/document"
)

// Strategy selects one of the three chunking algorithms. The set is closed:
// every strategy implements the same BuildChunks contract.
type Strategy int

const (
	// Semantic accumulates units up to the token budget and splits
	// oversized units at sentence boundaries.
	Semantic Strategy = iota
	// Fixed slides a token window with configurable overlap across the
	// concatenated unit stream.
	Fixed
	// Layout is semantic accumulation with headings as hard chunk-closers
	// and tables/figures emitted as standalone chunks.
	Layout
)

func (s Strategy) String() string {
	switch s {
	case Semantic:
		return "semantic"
	case Fixed:
		return "fixed"
	case Layout:
		return "layout"
	default:
		return "unknown"
	}
}

// ParseStrategy resolves a strategy name from configuration.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "semantic":
		return Semantic, nil
	case "fixed":
		return Fixed, nil
	case "layout":
		return Layout, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q: %w", name, document.ErrInvalidConfiguration)
	}
}

// Config controls chunking behavior.
type Config struct {
	Strategy     Strategy
	ChunkSize    int     // Target chunk size in tokens.
	OverlapRatio float64 // Fraction of chunk_size shared between consecutive fixed windows.
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:     Semantic,
		ChunkSize:    512,
		OverlapRatio: 0.1,
	}
}

// Validate rejects configurations before any processing happens.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d: %w", c.ChunkSize, document.ErrInvalidConfiguration)
	}
	if c.OverlapRatio < 0 || c.OverlapRatio >= 1 {
		return fmt.Errorf("overlap_ratio must be in [0,1), got %g: %w", c.OverlapRatio, document.ErrInvalidConfiguration)
	}
	switch c.Strategy {
	case Semantic, Fixed, Layout:
	default:
		return fmt.Errorf("unknown strategy %d: %w", c.Strategy, document.ErrInvalidConfiguration)
	}
	if c.Strategy == Fixed && c.strideTokens() <= 0 {
		// overlap_ratio close enough to 1 that the window would not
		// advance; rejected rather than looping forever.
		return fmt.Errorf("overlap_ratio %g leaves no stride at chunk_size %d: %w",
			c.OverlapRatio, c.ChunkSize, document.ErrInvalidConfiguration)
	}
	return nil
}

func (c Config) strideTokens() int {
	return int(float64(c.ChunkSize) * (1 - c.OverlapRatio))
}
