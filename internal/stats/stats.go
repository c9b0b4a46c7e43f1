// Package stats contains history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of games.
type Summary struct {
	Games        int
	BestScore    int
	AvgScore     float64
	AvgAccuracy  float64
	AvgErrorRate float64
}

// Summarize computes aggregate figures over games. Accuracy figures are
// per-game percentages averaged with equal weight.
func Summarize(games []model.GameAggregate) Summary {
	if len(games) == 0 {
		return Summary{}
	}
	var sum Summary
	var totalScore, totalAcc, totalErr float64
	for _, g := range games {
		totalScore += float64(g.Score)
		totalAcc += game.Accuracy(g.Correct, g.Incorrect)
		totalErr += game.ErrorRate(g.Correct, g.Incorrect)
		if g.Score > sum.BestScore {
			sum.BestScore = g.Score
		}
	}
	count := float64(len(games))
	sum.Games = len(games)
	sum.AvgScore = totalScore / count
	sum.AvgAccuracy = totalAcc / count
	sum.AvgErrorRate = totalErr / count
	return sum
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// ScoreSeries returns the scores of games in order.
func ScoreSeries(games []model.GameAggregate) []float64 {
	out := make([]float64, len(games))
	for i, g := range games {
		out[i] = float64(g.Score)
	}
	return out
}

// RenderSummary prints the summary block of a report.
func RenderSummary(w io.Writer, r Report) error {
	if len(r.Games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	sum := r.Summary
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", sum.Games); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Score: %d\n", sum.BestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Score: %.2f\n", sum.AvgScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", sum.AvgAccuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Error Rate: %.2f%%\n", sum.AvgErrorRate); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scores: %s\n", Sparkline(ScoreSeries(r.Games))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
