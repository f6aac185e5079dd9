package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pigeonhole/internal/organizer"
)

var statusTitle = cases.Title(language.Und)

// StatusLabel turns an outcome status into its display form, e.g.
// "skipped_already_correct" becomes "Skipped Already Correct".
func StatusLabel(status organizer.Status) string {
	return statusTitle.String(strings.ReplaceAll(status.String(), "_", " "))
}

// Render produces the run summary table. Colors are applied only when the
// caller says the output is a terminal.
func (r *Report) Render(colorize bool) string {
	summary := r.Summarize()

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Files"})

	rows := []struct {
		status organizer.Status
		count  int
	}{
		{organizer.StatusMoved, summary.Moved},
		{organizer.StatusSkippedIdentical, summary.SkippedIdentical},
		{organizer.StatusSkippedAlreadyCorrect, summary.SkippedAlreadyCorrect},
		{organizer.StatusSkippedMissing, summary.SkippedMissing},
		{organizer.StatusFailed, summary.Failed},
	}
	for _, row := range rows {
		label := StatusLabel(row.status)
		if colorize {
			label = colorizeStatus(row.status, label)
		}
		tw.AppendRow(table.Row{label, row.count})
	}
	tw.AppendFooter(table.Row{"Total", summary.Total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	var b strings.Builder
	verb := "moved"
	if r.DryRun {
		verb = "would move"
	}
	fmt.Fprintf(&b, "Run %s on %s (%s time, %s)\n", r.RunID, r.Root, r.Attribute, r.Duration().Round(timePrecision))
	b.WriteString(tw.Render())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s across %d files", statusTitle.String(verb), humanize.Bytes(uint64(summary.MovedBytes)), summary.Moved)
	if summary.Degraded > 0 {
		fmt.Fprintf(&b, "; %d files classified with a fallback timestamp", summary.Degraded)
	}
	b.WriteByte('\n')
	return b.String()
}

func colorizeStatus(status organizer.Status, label string) string {
	switch status {
	case organizer.StatusMoved:
		return text.FgGreen.Sprint(label)
	case organizer.StatusFailed:
		return text.FgRed.Sprint(label)
	case organizer.StatusSkippedMissing:
		return text.FgYellow.Sprint(label)
	default:
		return label
	}
}
