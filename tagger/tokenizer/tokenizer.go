// Simplistic tokenizer for English meeting notes.

package tokenizer

import (
	"regexp"
	"strings"

	"github.com/golangast/standuptagger/tagger/tag"
)

var (
	// possessive clitic, numbers (70%, 9:01, 1,000), words with inner hyphens
	// or apostrophes (roll-out, O'Brien, can't), any other rune
	tokenRE   = regexp.MustCompile(`'s\b|’s\b|\d+(?:[.,:]\d+)*%?|[\p{L}\d]+(?:[-'’][\p{L}\d]+)*|\S`)
	numericRE = regexp.MustCompile(`^\d+(?:[.,:]\d+)*%?$`)
	clockRE   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// Tokenize splits s into tokens and returns the byte span of each one.
func Tokenize(s string) (tokens []string, spans []tag.Span) {
	locs := tokenRE.FindAllStringIndex(s, -1)
	tokens = make([]string, 0, len(locs))
	spans = make([]tag.Span, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		// Maya's -> Maya 's
		if n := clitic(s[start:end]); n > 0 && end-start > n {
			tokens = append(tokens, s[start:end-n])
			spans = append(spans, tag.Span{Start: start, End: end - n})
			start = end - n
		}
		tokens = append(tokens, s[start:end])
		spans = append(spans, tag.Span{Start: start, End: end})
	}
	return
}

// clitic returns the byte length of a trailing possessive 's, or 0.
func clitic(word string) int {
	for _, c := range []string{"'s", "’s"} {
		if strings.HasSuffix(word, c) {
			return len(c)
		}
	}
	return 0
}

// IsNumber reports whether token is a number, a percentage or a clock time.
func IsNumber(token string) bool {
	return numericRE.MatchString(token)
}

// IsClock reports whether token looks like H:MM.
func IsClock(token string) bool {
	return clockRE.MatchString(token)
}

// IsPossessive reports whether token is the 's clitic.
func IsPossessive(token string) bool {
	return token == "'s" || token == "’s"
}
