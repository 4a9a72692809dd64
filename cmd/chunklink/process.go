package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/chunklink/internal/blocksource"
	"github.com/dgallion1/chunklink/internal/config"
	"github.com/dgallion1/chunklink/internal/pipeline"
)

var (
	flagStrategy    string
	flagChunkSize   int
	flagOverlap     float64
	flagLang        string
	flagFormat      string
	flagOut         string
	flagConcurrency int
	flagQuiet       bool
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Chunk one or more documents and emit linked chunks",
	Long: `Process reads each input file, converts it to raw blocks, runs the
chunking pass, and writes one result per document. Documents are processed
in parallel; chunks within a document stay in reading order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := config.Load()
		applyFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		docs := make([]pipeline.Document, 0, len(args))
		for _, path := range args {
			doc, err := loadDocument(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs = append(docs, doc)
		}

		p := pipeline.New(cfg.ChunkerConfig(), cfg.Language, log)
		stats := pipeline.NewRunStats(time.Hour)

		start := time.Now()
		results, err := pipeline.RunBatch(ctx, p, docs, cfg.Concurrency, stats)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagOut != "" {
			f, err := os.Create(flagOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		if err := writeResults(out, results, cfg.OutputFormat); err != nil {
			return err
		}

		if !flagQuiet {
			printSummary(cmd.ErrOrStderr(), docs, results, stats.Snapshot(), time.Since(start))
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Chunking strategy (semantic, fixed, layout)")
	processCmd.Flags().IntVar(&flagChunkSize, "chunk-size", 0, "Target chunk size in tokens")
	processCmd.Flags().Float64Var(&flagOverlap, "overlap", -1, "Overlap ratio for the fixed strategy [0, 1)")
	processCmd.Flags().StringVar(&flagLang, "lang", "", "Document language code (en, hi, bn, ...)")
	processCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (json, jsonl)")
	processCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	processCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Number of documents processed in parallel")
	processCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress the run summary")

	rootCmd.AddCommand(processCmd)
}

// applyFlags overlays explicitly set flags onto the environment-derived
// configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = flagStrategy
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = flagChunkSize
	}
	if cmd.Flags().Changed("overlap") {
		cfg.OverlapRatio = flagOverlap
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = flagLang
	}
	if cmd.Flags().Changed("format") {
		cfg.OutputFormat = flagFormat
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
}

// loadDocument converts one input file into a pipeline document. The
// document ID derives from the filename so repeat runs produce identical
// output.
func loadDocument(path string, cfg config.Config) (pipeline.Document, error) {
	src, err := blocksource.ForFile(path)
	if err != nil {
		return pipeline.Document{}, err
	}
	if pdf, ok := src.(*blocksource.PDFSource); ok {
		pdf.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	f, err := os.Open(path)
	if err != nil {
		return pipeline.Document{}, err
	}
	defer f.Close()

	blocks, err := src.Blocks(f, filepath.Base(path))
	if err != nil {
		return pipeline.Document{}, err
	}

	return pipeline.Document{ID: documentID(path), Blocks: blocks}, nil
}

// documentID derives a stable ID from the file's base name.
func documentID(path string) string {
	name := sanitizeFilename(filepath.Base(path))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}

func writeResults(w io.Writer, results []*pipeline.Result, format string) error {
	if format == "json" {
		return pipeline.WriteJSON(w, results)
	}
	return pipeline.WriteJSONL(w, results)
}
