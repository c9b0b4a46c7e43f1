package game

// Outcome describes how a keystroke was handled.
type Outcome int

const (
	// Ignored means the session was not active.
	Ignored Outcome = iota
	// Correct means the character extended the prefix.
	Correct
	// Completed means the character finished the target word.
	Completed
	// Incorrect means the character was rejected.
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Completed:
		return "completed"
	case Incorrect:
		return "incorrect"
	default:
		return "ignored"
	}
}

// OnChar matches one typed character against the target word.
func (s *Session) OnChar(c rune) Outcome {
	if s.phase != PhaseActive {
		return Ignored
	}
	candidate := s.typed + string(c)
	if !isPrefix(candidate, s.target) {
		s.incorrect++
		return Incorrect
	}
	s.correct++
	if s.progress < MaxProgress {
		s.progress++
	}
	if candidate == s.target {
		s.score++
		s.nextTarget()
		return Completed
	}
	s.typed = candidate
	return Correct
}

// OnBackspace removes the last accepted character.
func (s *Session) OnBackspace() {
	if s.phase != PhaseActive || s.typed == "" {
		return
	}
	runes := []rune(s.typed)
	s.typed = string(runes[:len(runes)-1])
}
