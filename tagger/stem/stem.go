package stem

import "strings"

// Inflection is one way of reading a word as Lemma plus a regular suffix.
type Inflection struct {
	Lemma  string
	Suffix string // "", "s", "ed" or "ing"
}

// Inflections returns the candidate readings of word, most literal first.
// Nothing is checked against a lexicon here, the caller picks the reading
// whose Lemma it knows.
func Inflections(word string) []Inflection {
	w := strings.ToLower(word)
	out := []Inflection{{Lemma: w}}
	if w == "" {
		return out
	}
	add := func(lemma, suffix string) {
		if len(lemma) < 2 {
			return
		}
		for _, in := range out {
			if in.Lemma == lemma && in.Suffix == suffix {
				return
			}
		}
		out = append(out, Inflection{Lemma: lemma, Suffix: suffix})
	}

	switch {
	case strings.HasSuffix(w, "ies"):
		add(w[:len(w)-3]+"y", "s")
	case strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "xes"):
		add(w[:len(w)-2], "s")
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us"):
		add(w[:len(w)-1], "s")
	}

	if strings.HasSuffix(w, "ed") {
		base := w[:len(w)-2]
		if strings.HasSuffix(w, "ied") {
			add(w[:len(w)-3]+"y", "ed")
		}
		add(base, "ed")
		add(w[:len(w)-1], "ed") // scheduled -> schedule
		if undoubled, ok := undouble(base); ok {
			add(undoubled, "ed") // planned -> plan
		}
	}

	if strings.HasSuffix(w, "ing") {
		base := w[:len(w)-3]
		add(base, "ing")
		add(base+"e", "ing") // scheduling -> schedule
		if undoubled, ok := undouble(base); ok {
			add(undoubled, "ing") // running -> run
		}
	}
	return out
}

// undouble strips a doubled final consonant (plann -> plan).
func undouble(s string) (string, bool) {
	n := len(s)
	if n < 3 || s[n-1] != s[n-2] {
		return "", false
	}
	if strings.IndexByte("aeiouy", s[n-1]) >= 0 {
		return "", false
	}
	return s[:n-1], true
}
