// Package generator picks target words.
package generator

import (
	"math/rand"
	"time"
)

// Generator picks words uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects one word uniformly. It returns "" for an empty list.
func (g *Generator) Pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[g.rnd.Intn(len(words))]
}
