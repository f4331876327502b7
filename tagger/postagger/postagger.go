package postagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golangast/standuptagger/tagger/stem"
	"github.com/golangast/standuptagger/tagger/tag"
	"github.com/golangast/standuptagger/tagger/tokenizer"
)

// reading is the context free tag of a token plus what the context passes need to know.
type reading struct {
	tag       string
	baseVerb  bool // uninflected verb, may still be a noun
	dual      bool // -s form of a noun/verb word
	suffixAdj bool // adjective guessed from its ending
}

// IsAuxiliary reports whether word is a form of be, have or do, negated
// contractions included.
func IsAuxiliary(word string) bool {
	return auxiliaries[normalize(word)]
}

// Postagger fills t.PosTag from t.Tokens.
func Postagger(t tag.Tag) tag.Tag {
	t.PosTag = TagTokens(t.Tokens)
	return t
}

// TagTokens returns one Penn style tag per token.
func TagTokens(tokens []string) []string {
	readings := make([]reading, len(tokens))
	for i, token := range tokens {
		nextCapitalized := i+1 < len(tokens) && isCapitalized(tokens[i+1])
		readings[i] = lexical(token, clauseStart(tokens, i), nextCapitalized)
	}
	tags := make([]string, len(tokens))
	for i := range readings {
		tags[i] = readings[i].tag
	}
	tags = verbCheck(tokens, tags, readings)
	tags = nounCheck(tokens, tags, readings)
	return tags
}

func lexical(token string, first, nextCapitalized bool) reading {
	lower := normalize(token)
	switch {
	case tokenizer.IsPossessive(token):
		return reading{tag: "POS"}
	case tokenizer.IsNumber(token):
		return reading{tag: "CD"}
	case !hasLetter(token):
		if strings.ContainsAny(token, "%$#&+@") {
			return reading{tag: "SYM"}
		}
		return reading{tag: "PUNCT"}
	}
	if p, ok := closedClass[lower]; ok {
		return reading{tag: p}
	}
	if p, ok := irregularVerbs[lower]; ok {
		return reading{tag: p}
	}
	if calendar[lower] {
		return reading{tag: "NNP"}
	}
	if adjectives[lower] {
		return reading{tag: "JJ"}
	}
	if verbs[lower] {
		return reading{tag: "VB", baseVerb: true}
	}
	for _, in := range stem.Inflections(lower)[1:] {
		if !verbs[in.Lemma] {
			continue
		}
		switch in.Suffix {
		case "ed":
			return reading{tag: "VBD"}
		case "ing":
			return reading{tag: "VBG"}
		case "s":
			return reading{tag: "VBZ", dual: dualClass[in.Lemma]}
		}
	}
	if isCapitalized(token) && (!first || nextCapitalized || isAcronym(token)) {
		return reading{tag: "NNP"}
	}
	for _, suffix := range adjectiveSuffixes {
		if len(lower) > len(suffix)+3 && strings.HasSuffix(lower, suffix) {
			return reading{tag: "JJ", suffixAdj: true}
		}
	}
	if isPlural(lower) {
		return reading{tag: "NNS"}
	}
	return reading{tag: "NN"}
}

// verbCheck resolves base verbs, participles and -s forms using their neighbours.
func verbCheck(tokens, tags []string, readings []reading) []string {
	for i := range tokens {
		if !readings[i].baseVerb {
			continue
		}
		var prev, prevWord string
		if i > 0 {
			prev, prevWord = tags[i-1], normalize(tokens[i-1])
		}
		switch {
		case prev == "PRP":
			tags[i] = "VBP"
		case prev == "TO" || prev == "MD" || doSupport[prevWord]:
			tags[i] = "VB"
		case clauseStart(tokens, i) && !(i+1 < len(tags) && (tags[i+1] == "VBD" || tags[i+1] == "VBN")):
			// imperative: "Send migration schedule", but not "Review scheduled for Monday"
			tags[i] = "VB"
		default:
			tags[i] = "NN"
		}
	}

	for i := range tokens {
		if !readings[i].dual {
			continue
		}
		afterSubject := i > 0 && (isNounTag(tags[i-1]) || tags[i-1] == "PRP")
		beforeObject := i+1 < len(tags) && startsNounPhrase(tags[i+1])
		if !(afterSubject && beforeObject) {
			tags[i] = "NNS"
		}
	}

	for i := range tokens {
		if tags[i] != "VBD" || i == 0 || auxiliaries[normalize(tokens[i])] {
			continue
		}
		prev := normalize(tokens[i-1])
		if isNounTag(tags[i-1]) || prev == "by" || auxiliaries[prev] {
			tags[i] = "VBN"
		}
	}
	return tags
}

// nounCheck turns gerunds and guessed adjectives back into nouns where a noun phrase needs them.
func nounCheck(tokens, tags []string, readings []reading) []string {
	for i := range tokens {
		if tags[i] != "VBG" || i == 0 {
			continue
		}
		prev := tags[i-1]
		switch {
		case auxiliaries[normalize(tokens[i-1])], prev == "PRP", prev == "MD", prev == "TO":
		case prev == "DET", prev == "JJ", prev == "PRP$", prev == "POS", prev == "CD", isNounTag(prev), strings.HasPrefix(prev, "VB"):
			// "error handling implementation", "Initial testing", "Add monitoring"
			tags[i] = "NN"
		}
	}

	for i := range tokens {
		if !readings[i].suffixAdj {
			continue
		}
		if i+1 >= len(tags) || !(isNounTag(tags[i+1]) || tags[i+1] == "JJ") {
			tags[i] = "NN"
		}
	}
	return tags
}

// clauseStart reports whether token i opens a clause: sentence start or after a list or label marker.
func clauseStart(tokens []string, i int) bool {
	if i == 0 {
		return true
	}
	switch tokens[i-1] {
	case ":", "-", "–", "—", "(", "[", ";", "*", "•":
		return true
	}
	return false
}

// normalize lowercases token and folds the typographic apostrophe.
func normalize(token string) string {
	return strings.ReplaceAll(strings.ToLower(token), "’", "'")
}

func startsNounPhrase(p string) bool {
	switch p {
	case "DET", "CD", "JJ", "PRP$", "PRP", "SYM":
		return true
	}
	return isNounTag(p)
}

func isNounTag(p string) bool {
	return p == "NN" || p == "NNS" || p == "NNP" || p == "NNPS"
}

func isPlural(lower string) bool {
	if len(lower) < 4 || !strings.HasSuffix(lower, "s") {
		return false
	}
	for _, s := range []string{"ss", "us", "is", "ics"} {
		if strings.HasSuffix(lower, s) {
			return false
		}
	}
	return true
}

func isCapitalized(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsUpper(r)
}

func isAcronym(token string) bool {
	if len(token) < 2 {
		return false
	}
	for _, r := range token {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func hasLetter(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
