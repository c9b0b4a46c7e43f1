package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
)

type historyColumn struct {
	header string
	right  bool
	cell   func(g model.GameAggregate) string
}

var historyColumns = []historyColumn{
	{header: "Ended", cell: func(g model.GameAggregate) string {
		return g.EndedAt.Local().Format("2006-01-02 15:04")
	}},
	{header: "Score", right: true, cell: func(g model.GameAggregate) string {
		return fmt.Sprintf("%d", g.Score)
	}},
	{header: "Accuracy", right: true, cell: func(g model.GameAggregate) string {
		return fmt.Sprintf("%.2f%%", game.Accuracy(g.Correct, g.Incorrect))
	}},
	{header: "Error Rate", right: true, cell: func(g model.GameAggregate) string {
		return fmt.Sprintf("%.2f%%", game.ErrorRate(g.Correct, g.Incorrect))
	}},
	{header: "Correct", right: true, cell: func(g model.GameAggregate) string {
		return fmt.Sprintf("%d", g.Correct)
	}},
	{header: "Incorrect", right: true, cell: func(g model.GameAggregate) string {
		return fmt.Sprintf("%d", g.Incorrect)
	}},
}

// RenderHistoryTable prints one aligned row per game of the report.
func RenderHistoryTable(w io.Writer, r Report) error {
	if len(r.Games) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	for _, line := range historyLines(historyColumns, r.Games) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// historyLines renders the header and one line per game, each column padded to its widest cell.
func historyLines(cols []historyColumn, games []model.GameAggregate) []string {
	cells := make([][]string, 0, len(games)+1)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.header
	}
	cells = append(cells, header)
	for _, g := range games {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.cell(g)
		}
		cells = append(cells, row)
	}

	widths := make([]int, len(cols))
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = pad(cell, widths[i], cols[i].right)
		}
		lines = append(lines, strings.Join(padded, " "))
	}
	return lines
}

func pad(value string, width int, right bool) string {
	gap := width - runewidth.StringWidth(value)
	if gap <= 0 {
		return value
	}
	if right {
		return strings.Repeat(" ", gap) + value
	}
	return value + strings.Repeat(" ", gap)
}
