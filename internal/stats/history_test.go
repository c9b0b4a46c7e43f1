package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
)

func TestHistoryLinesAlignColumns(t *testing.T) {
	cols := []historyColumn{
		{header: "Name", cell: func(g model.GameAggregate) string {
			if g.GameID == 1 {
				return "first game"
			}
			return "x"
		}},
		{header: "Score", right: true, cell: historyColumns[1].cell},
	}
	games := []model.GameAggregate{{GameID: 1, Score: 12}, {GameID: 2, Score: 3}}

	lines := historyLines(cols, games)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name       Score" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "first game    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "x              3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestPadWideRunes(t *testing.T) {
	if got := pad("スコア", 8, true); got != "  スコア" {
		t.Fatalf("unexpected padding: %q", got)
	}
	if got := pad("toolong", 3, false); got != "toolong" {
		t.Fatalf("expected overflowing value untouched, got %q", got)
	}
}

func TestRenderHistoryTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistoryTable(&buf, Report{}); err != nil {
		t.Fatalf("render table: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestRenderHistoryTableRows(t *testing.T) {
	games := []model.GameAggregate{
		{GameID: 1, EndedAt: time.Unix(0, 0), Score: 2, Correct: 9, Incorrect: 1},
	}
	var buf bytes.Buffer
	if err := RenderHistoryTable(&buf, Report{Games: games}); err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("expected title, header and one row, got %q", buf.String())
	}
	if !bytes.Contains(lines[2], []byte("90.00%")) || !bytes.Contains(lines[2], []byte("10.00%")) {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
