package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/chunklink/internal/linker"
	"github.com/dgallion1/chunklink/internal/pipeline"
)

var (
	flagContextChunk  string
	flagContextWindow int
)

var contextCmd = &cobra.Command{
	Use:   "context <results-file>",
	Short: "Expand a chunk into its surrounding context",
	Long: `Context loads a results file produced by process, finds the requested
chunk, and prints it together with its neighbors in reading order. The
window is clipped at document boundaries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		results, err := pipeline.ReadResults(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		resolver := linker.NewResolver()
		for _, r := range results {
			if r != nil {
				resolver.Add(r.DocumentID, r.Chunks)
			}
		}

		// The chunk ID alone is ambiguous across documents, so try each
		// document until one resolves.
		for _, r := range results {
			if r == nil {
				continue
			}
			chunks, err := resolver.Context(r.DocumentID, flagContextChunk, flagContextWindow)
			if err != nil {
				continue
			}
			out := cmd.OutOrStdout()
			for _, c := range chunks {
				marker := " "
				if c.ID == flagContextChunk {
					marker = ">"
				}
				fmt.Fprintf(out, "%s %s [%s] %d tokens\n", marker, c.ID, c.ParentSection, c.TokenCount)
				fmt.Fprintf(out, "  %s\n\n", c.Content)
			}
			return nil
		}
		return fmt.Errorf("chunk %s not found in %s", flagContextChunk, args[0])
	},
}

func init() {
	contextCmd.Flags().StringVar(&flagContextChunk, "chunk", "", "Chunk ID to expand")
	contextCmd.Flags().IntVar(&flagContextWindow, "window", 1, "Neighbors to include on each side")
	contextCmd.MarkFlagRequired("chunk")
	rootCmd.AddCommand(contextCmd)
}
