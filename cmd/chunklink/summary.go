package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/chunklink/internal/pipeline"
)

var (
	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// valueStyle for figures
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// warnStyle for skipped documents
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the run summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// printSummary renders the run summary box to w.
func printSummary(w io.Writer, docs []pipeline.Document, results []*pipeline.Result, snap pipeline.StatsSnapshot, elapsed time.Duration) {
	var rows []string
	var chunks, tokens, skipped int
	for _, r := range results {
		if r == nil {
			skipped++
			continue
		}
		chunks += r.Stats.Chunks
		tokens += r.Stats.Tokens
		rows = append(rows, fmt.Sprintf("%s  %s chunks  %s tokens  %s",
			valueStyle.Render(r.DocumentID),
			dimStyle.Render(fmt.Sprintf("%d", r.Stats.Chunks)),
			dimStyle.Render(fmt.Sprintf("%d", r.Stats.Tokens)),
			dimStyle.Render(fmt.Sprintf("%dms", r.Stats.ElapsedMs))))
	}

	content := fmt.Sprintf("%s %s  %s %s  %s %s\n%s %s  %s %s  %s %s",
		dimStyle.Render("Documents:"), valueStyle.Render(fmt.Sprintf("%d", len(docs))),
		dimStyle.Render("Chunks:"), valueStyle.Render(fmt.Sprintf("%d", chunks)),
		dimStyle.Render("Tokens:"), valueStyle.Render(fmt.Sprintf("%d", tokens)),
		dimStyle.Render("Elapsed:"), valueStyle.Render(elapsed.Round(time.Millisecond).String()),
		dimStyle.Render("p50:"), valueStyle.Render(fmt.Sprintf("%.0fms", snap.P50Ms)),
		dimStyle.Render("p95:"), valueStyle.Render(fmt.Sprintf("%.0fms", snap.P95Ms)),
	)
	if skipped > 0 {
		content += "\n" + warnStyle.Render(fmt.Sprintf("Skipped %d empty document(s)", skipped))
	}

	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}
