package wordlist

// Typable reports whether every character of word can be entered as a game key.
func Typable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !IsKey(rune(word[i])) {
			return false
		}
	}
	return true
}

// IsKey reports whether r is an accepted game key.
func IsKey(r rune) bool {
	return r >= 'a' && r <= 'z'
}
