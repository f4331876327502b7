package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentences splits text into sentences. Every non-blank line is at least one
// sentence; inside a line a sentence ends at . ! or ? followed by whitespace
// and an uppercase letter.
func Sentences(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		start := 0
		for i := 0; i < len(line); i++ {
			if !strings.ContainsRune(".!?", rune(line[i])) {
				continue
			}
			j := i + 1
			for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
				j++
			}
			if j == i+1 || j >= len(line) {
				continue
			}
			r, _ := utf8.DecodeRuneInString(line[j:])
			if unicode.IsUpper(r) {
				out = append(out, strings.TrimSpace(line[start:i+1]))
				start = j
			}
		}
		if rest := strings.TrimSpace(line[start:]); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}
