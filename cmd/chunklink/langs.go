package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/chunklink/internal/segment"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List supported language codes and their segmentation status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s %-20s %-12s %s\n", "CODE", "NAME", "SCRIPT", "STATUS")
		for _, l := range segment.Languages() {
			status := l.Status
			if l.FallbackTo != "" {
				status = fmt.Sprintf("%s (falls back to %s)", l.Status, l.FallbackTo)
			}
			fmt.Fprintf(out, "%-6s %-20s %-12s %s\n", l.Code, l.Name, l.Script, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}
