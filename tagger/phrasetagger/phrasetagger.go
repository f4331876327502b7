package phrasetagger

import (
	"github.com/golangast/standuptagger/tagger/tag"
)

// CheckPhrase finds the base noun phrases of t and records them in t.Chunks
// and as B-NP/I-NP/O in t.PhraseTag. t.PosTag must already be set.
func CheckPhrase(t tag.Tag) tag.Tag {
	n := len(t.Tokens)
	t.PhraseTag = make([]string, n)
	for i := range t.PhraseTag {
		t.PhraseTag[i] = tag.Outside
	}
	t.Chunks = nil

	for i := 0; i < n; {
		if t.PosTag[i] == "PRP" {
			// "Everyone completed quarterly goals"
			t = addChunk(t, i, i+1, i)
			i++
			continue
		}
		if !inNounPhrase(t.PosTag[i]) {
			i++
			continue
		}

		start, j, head := i, i, -1
		for ; j < n && inNounPhrase(t.PosTag[j]); j++ {
			if head >= 0 && opensNounPhrase(t.PosTag[j]) {
				break
			}
			if t.IsNoun(j) {
				head = j
			}
		}
		for start < j && (t.PosTag[start] == "POS" || t.PosTag[start] == "SYM") {
			start++
		}
		if head >= start {
			t = addChunk(t, start, head+1, head)
		}
		i = j
	}
	return t
}

func addChunk(t tag.Tag, start, end, head int) tag.Tag {
	t.Chunks = append(t.Chunks, tag.Chunk{
		Start: start,
		End:   end,
		Head:  head,
		Text:  t.SpanText(start, end),
	})
	t.PhraseTag[start] = tag.ChunkBegin
	for k := start + 1; k < end; k++ {
		t.PhraseTag[k] = tag.ChunkInside
	}
	return t
}

// tags that may sit inside a base noun phrase
func inNounPhrase(p string) bool {
	switch p {
	case "DET", "PRP$", "CD", "JJ", "POS", "SYM", "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// tags that start a new phrase when they follow a noun
func opensNounPhrase(p string) bool {
	switch p {
	case "DET", "PRP$", "CD", "JJ":
		return true
	}
	return false
}
