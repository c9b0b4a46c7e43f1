// Package feedback plays the keystroke tones.
package feedback

import (
	"io"
	"strings"
)

// Waveform names the oscillator shape of a tone.
type Waveform string

const (
	// Sine is a pure tone.
	Sine Waveform = "sine"
	// Square is a harsher tone.
	Square Waveform = "square"
)

// Tone describes an audible cue.
type Tone struct {
	Name      string
	Frequency float64
	Waveform  Waveform
	// Bells is the number of terminal bells used to approximate the tone.
	Bells int
}

var (
	// CorrectTone plays on every accepted keystroke.
	CorrectTone = Tone{Name: "correct", Frequency: 440, Waveform: Sine, Bells: 1}
	// IncorrectTone plays on every rejected keystroke.
	IncorrectTone = Tone{Name: "incorrect", Frequency: 220, Waveform: Square, Bells: 2}
)

// Beeper plays tones.
type Beeper interface {
	Play(t Tone) error
}

// Bell writes BEL characters to a terminal.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play implements Beeper.
func (b *Bell) Play(t Tone) error {
	if t.Bells <= 0 {
		return nil
	}
	_, err := io.WriteString(b.w, strings.Repeat("\a", t.Bells))
	return err
}

// Nop discards tones.
type Nop struct{}

// Play implements Beeper.
func (Nop) Play(Tone) error { return nil }
