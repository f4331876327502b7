package tagger

import (
	"reflect"
	"testing"

	"github.com/golangast/standuptagger/tagger/nertagger"
	"github.com/golangast/standuptagger/tagger/tag"
)

func TestSentences(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "lines",
			text:     "Alex Kim\nCompleted error handling implementation\n\n  Review scheduled for Monday  \n",
			expected: []string{"Alex Kim", "Completed error handling implementation", "Review scheduled for Monday"},
		},
		{
			name:     "terminal punctuation inside a line",
			text:     "Shipped the fix. Next we test it! Done? yes",
			expected: []string{"Shipped the fix.", "Next we test it!", "Done? yes"},
		},
		{
			name:     "abbreviation without space is kept",
			text:     "Moved to v1.2 today",
			expected: []string{"Moved to v1.2 today"},
		},
		{
			name: "empty",
			text: " \n\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := Sentences(tc.text)
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("Sentences() = %q, expected %q", actual, tc.expected)
			}
		})
	}
}

func TestTagging(t *testing.T) {
	tg := Tagging("James: Send migration schedule to stakeholders [Due: Today]", nertagger.NewGazetteer())
	if tg.Len() != len(tg.PosTag) || tg.Len() != len(tg.NerTag) || tg.Len() != len(tg.PhraseTag) {
		t.Fatalf("tag slices out of step: %d tokens, %d pos, %d ner, %d phrase",
			tg.Len(), len(tg.PosTag), len(tg.NerTag), len(tg.PhraseTag))
	}
	if tg.NerTag[0] != tag.Person {
		t.Errorf("James = %s, expected PERSON", tg.NerTag[0])
	}
	if tg.Chunks[1].Text != "migration schedule" {
		t.Errorf("second chunk = %q, expected migration schedule", tg.Chunks[1].Text)
	}
}

func TestParse(t *testing.T) {
	doc := Parse("Riley Chen\nGot clarity on export requirements\n", nertagger.NewGazetteer())
	if len(doc.Sentences) != 2 {
		t.Fatalf("got %d sentences, expected 2", len(doc.Sentences))
	}
	if doc.Sentences[1].Sentence != "Got clarity on export requirements" {
		t.Errorf("sentence = %q", doc.Sentences[1].Sentence)
	}
}
