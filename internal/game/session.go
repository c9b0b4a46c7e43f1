// Package game implements the countdown typing session state machine.
package game

import "strings"

// SessionSeconds is the fixed length of a session.
const SessionSeconds = 30

// MaxProgress caps rocket progress.
const MaxProgress = 100

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseIdle is the state before the first start.
	PhaseIdle Phase = iota
	// PhaseActive accepts ticks and keystrokes.
	PhaseActive
	// PhaseOver holds the final counters until the next start.
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// Picker chooses the next target word.
type Picker interface {
	Pick(words []string) string
}

// Session holds the state of one game. The zero value is not usable; use NewSession.
type Session struct {
	words  []string
	picker Picker

	phase            Phase
	target           string
	typed            string
	score            int
	secondsRemaining int
	correct          int
	incorrect        int
	progress         int
}

// NewSession returns an idle session drawing targets from words.
func NewSession(words []string, picker Picker) *Session {
	return &Session{words: words, picker: picker}
}

// Start resets all counters and begins a new active session.
func (s *Session) Start() {
	s.phase = PhaseActive
	s.score = 0
	s.secondsRemaining = SessionSeconds
	s.typed = ""
	s.correct = 0
	s.incorrect = 0
	s.progress = 0
	s.target = s.picker.Pick(s.words)
}

// Tick advances the clock by one second. It reports whether this tick ended the session.
func (s *Session) Tick() bool {
	if s.phase != PhaseActive {
		return false
	}
	if s.secondsRemaining > 0 {
		s.secondsRemaining--
	}
	if s.secondsRemaining == 0 {
		s.End()
		return true
	}
	return false
}

// End freezes the counters for display.
func (s *Session) End() {
	if s.phase != PhaseActive {
		return
	}
	s.phase = PhaseOver
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether the session accepts input.
func (s *Session) Active() bool { return s.phase == PhaseActive }

// Over reports whether the session has expired.
func (s *Session) Over() bool { return s.phase == PhaseOver }

// Target returns the word being typed.
func (s *Session) Target() string { return s.target }

// Typed returns the accepted prefix of the target.
func (s *Session) Typed() string { return s.typed }

// Score returns the number of completed words.
func (s *Session) Score() int { return s.score }

// SecondsRemaining returns the countdown value.
func (s *Session) SecondsRemaining() int { return s.secondsRemaining }

// Correct returns the number of keystrokes that extended the prefix.
func (s *Session) Correct() int { return s.correct }

// Incorrect returns the number of rejected keystrokes.
func (s *Session) Incorrect() int { return s.incorrect }

// Progress returns rocket progress in the range 0..MaxProgress.
func (s *Session) Progress() int { return s.progress }

func (s *Session) nextTarget() {
	s.target = s.picker.Pick(s.words)
	s.typed = ""
}

func isPrefix(prefix, word string) bool {
	return strings.HasPrefix(word, prefix)
}
