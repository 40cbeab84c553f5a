package command

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits line on runs of whitespace. Leading and trailing whitespace
// is discarded, so a blank line yields no tokens.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// StripPrefix removes a leading command sentinel (e.g. "!") from line.
// The second return value reports whether line started with the prefix.
// An empty prefix accepts every line unchanged.
func StripPrefix(line, prefix string) (string, bool) {
	if prefix == "" {
		return line, true
	}
	if !strings.HasPrefix(line, prefix) {
		return line, false
	}
	return line[len(prefix):], true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
