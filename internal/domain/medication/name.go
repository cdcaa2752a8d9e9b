package medication

import (
	"strings"
	"unicode/utf8"

	goaway "github.com/TwiN/go-away"
)

const (
	minNameLength = 3
	maxNameLength = 14
)

const namePunctuation = " -_.,'()/+&#%"

var nameEmoji = map[rune]bool{
	'💊': true, '💉': true, '🩹': true, '🩺': true, '🌡': true,
	'🧴': true, '🌿': true, '☀': true, '🌙': true, '⭐': true,
	'️': true, // emoji presentation selector, as in "☀️"
}

func allowedNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(namePunctuation, r):
		return true
	}
	return nameEmoji[r]
}

// IsValidName reports whether name may be stored as a medication name. The
// name must be 3 to 14 characters, must not contain "server" in any case, and
// must already be clean: stripping disallowed characters and masking
// profanity has to leave it unchanged.
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < minNameLength || n > maxNameLength {
		return false
	}
	if strings.Contains(strings.ToUpper(name), "SERVER") {
		return false
	}

	sanitized := strings.Map(func(r rune) rune {
		if allowedNameRune(r) {
			return r
		}
		return -1
	}, name)

	return goaway.Censor(sanitized) == name
}
