package nertagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golangast/standuptagger/tagger/tag"
	"github.com/golangast/standuptagger/tagger/tokenizer"
)

var months = map[string]bool{
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
}

var dayWords = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true,
	"saturday": true, "sunday": true, "today": true, "tomorrow": true, "yesterday": true,
	"tonight": true, "weekend": true,
}

// Nertagger fills t.NerTag. t.PosTag must already be set.
func Nertagger(t tag.Tag, g *Gazetteer) tag.Tag {
	t.NerTag = make([]string, len(t.Tokens))
	for i, token := range t.Tokens {
		lower := strings.ToLower(token)
		switch {
		case tokenizer.IsPossessive(token):
			t.NerTag[i] = tag.Outside
		case g.Contains(token) && isTitle(token):
			t.NerTag[i] = tag.Person
		case dayWords[lower]:
			t.NerTag[i] = tag.Date
		case months[lower] && (lower != "may" || isTitle(token)):
			// "may" is only a month when capitalised
			t.NerTag[i] = tag.Date
		case tokenizer.IsClock(token):
			t.NerTag[i] = tag.Time
		case strings.HasSuffix(token, "%") && tokenizer.IsNumber(token):
			t.NerTag[i] = tag.Percent
		case tokenizer.IsNumber(token):
			t.NerTag[i] = tag.Cardinal
		default:
			t.NerTag[i] = tag.Outside
		}
	}
	t = NerNounCheck(t)
	return t
}

// NerNounCheck widens entities using neighbouring tokens: surnames after a
// first name, day numbers and years next to a month, AM/PM after a time.
func NerNounCheck(t tag.Tag) tag.Tag {
	for i := 1; i < len(t.Tokens); i++ {
		token := t.Tokens[i]
		prev := t.NerTag[i-1]
		switch {
		case t.NerTag[i] == tag.Outside && prev == tag.Person && len(t.PosTag) > i && t.PosTag[i] == "NNP" && isTitle(token):
			t.NerTag[i] = tag.Person
		case t.NerTag[i] == tag.Cardinal && prev == tag.Date:
			// January 18
			t.NerTag[i] = tag.Date
		case t.NerTag[i] == tag.Cardinal && i > 1 && t.Tokens[i-1] == "," && t.NerTag[i-2] == tag.Date:
			// January 18, 2025
			t.NerTag[i] = tag.Date
		case prev == tag.Time && isMeridiem(token):
			t.NerTag[i] = tag.Time
		}
	}
	return t
}

func isMeridiem(token string) bool {
	switch strings.ToLower(token) {
	case "am", "pm", "a.m", "p.m":
		return true
	}
	return false
}

func isTitle(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsUpper(r)
}
