package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/chunklink/internal/config"
	"github.com/dgallion1/chunklink/internal/normalize"
	"github.com/dgallion1/chunklink/internal/section"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the normalized units and section tree without chunking",
	Long: `Inspect runs only the normalization and hierarchy passes, then prints
the section tree and a per-type unit count. Useful for checking how a
document will be read before committing to a chunking strategy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("lang") {
			cfg.Language = flagInspectLang
		}

		doc, err := loadDocument(args[0], cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		units := normalize.Normalize(doc.Blocks, cfg.Language)
		ann := section.Build(units)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d blocks in, %d units kept\n\n", doc.ID, len(doc.Blocks), len(units))

		byType := map[string]int{}
		for _, u := range units {
			byType[u.Type.String()]++
		}
		for _, typ := range []string{"heading", "paragraph", "list_item", "table", "figure", "caption"} {
			if n := byType[typ]; n > 0 {
				fmt.Fprintf(out, "  %-10s %d\n", typ, n)
			}
		}

		fmt.Fprintln(out)
		printTree(cmd, ann.Tree(), 0, 0)
		return nil
	},
}

var flagInspectLang string

func init() {
	inspectCmd.Flags().StringVar(&flagInspectLang, "lang", "", "Document language code (en, hi, bn, ...)")
	rootCmd.AddCommand(inspectCmd)
}

func printTree(cmd *cobra.Command, t *section.Tree, idx, depth int) {
	node := t.Nodes[idx]
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", depth), node.Title)
	for _, child := range node.Children {
		printTree(cmd, t, child, depth+1)
	}
}
