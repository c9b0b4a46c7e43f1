package game

import "math"

// Accuracy returns the percentage of keystrokes that extended the prefix,
// rounded to two decimals. It is 0 when nothing has been typed.
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return round2(float64(correct) / float64(total) * 100)
}

// ErrorRate returns 100 minus Accuracy, or 0 when nothing has been typed.
func ErrorRate(correct, incorrect int) float64 {
	if correct+incorrect == 0 {
		return 0
	}
	return round2(100 - Accuracy(correct, incorrect))
}

// Accuracy returns the session accuracy percentage.
func (s *Session) Accuracy() float64 {
	return Accuracy(s.correct, s.incorrect)
}

// ErrorRate returns the session error-rate percentage.
func (s *Session) ErrorRate() float64 {
	return ErrorRate(s.correct, s.incorrect)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
