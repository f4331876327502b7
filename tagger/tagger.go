package tagger

import (
	"github.com/golangast/standuptagger/tagger/dependencyrelation"
	"github.com/golangast/standuptagger/tagger/nertagger"
	"github.com/golangast/standuptagger/tagger/phrasetagger"
	"github.com/golangast/standuptagger/tagger/postagger"
	"github.com/golangast/standuptagger/tagger/tag"
	"github.com/golangast/standuptagger/tagger/tokenizer"
)

// Tagging runs the full pipeline over a single sentence.
func Tagging(sentence string, g *nertagger.Gazetteer) tag.Tag {
	t := tag.Tag{Sentence: sentence}
	t.Tokens, t.Spans = tokenizer.Tokenize(sentence)

	t = postagger.Postagger(t)
	t = nertagger.Nertagger(t, g)
	t = phrasetagger.CheckPhrase(t)
	t = dependencyrelation.PredictDependencies(t)

	return t
}

// Parse splits text into sentences and tags each one on its own.
func Parse(text string, g *nertagger.Gazetteer) tag.Doc {
	doc := tag.Doc{Text: text}
	for _, s := range Sentences(text) {
		doc.Sentences = append(doc.Sentences, Tagging(s, g))
	}
	return doc
}
