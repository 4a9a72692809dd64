package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "chunklink",
	Short: "Chunk documents into retrieval-ready, linked passages",
	Long: `chunklink splits documents into chunks suited for retrieval indexes.
Chunks carry their section hierarchy, continuation flags, and links to
their neighbors and section siblings, so a retriever can expand any hit
into its surrounding context without re-reading the source document.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the process logger. Structured JSON goes to stderr so
// stdout stays clean for chunk output.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
