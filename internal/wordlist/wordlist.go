// Package wordlist provides the target word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var defaultWords = []string{
	"react",
	"component",
	"typescript",
	"javascript",
	"tailwind",
	"nextjs",
	"vercel",
	"shadcn",
	"framer",
	"motion",
}

// Default returns a copy of the built-in word list.
func Default() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}

// LoadWords reads one word per line from the provided file path, keeping only typable words.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if !Typable(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
