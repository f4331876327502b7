// Package projects finds noun chunks that look like projects and groups
// their mentions by project and by person.
package projects

import (
	"strings"

	"github.com/golangast/standuptagger/tagger/dependencyrelation"
	"github.com/golangast/standuptagger/tagger/tag"
)

var (
	// DefaultIndicators are matched anywhere in a chunk.
	DefaultIndicators = []string{"implementation", "migration", "system", "feature", "plan", "requirements"}
	// DefaultPrefixes are matched at the start of a chunk.
	DefaultPrefixes = []string{"error", "performance", "batch", "export"}
)

// Matcher decides whether a noun chunk names a project.
type Matcher struct {
	Indicators []string
	Prefixes   []string
}

// DefaultMatcher returns a Matcher with the default keyword lists.
func DefaultMatcher() Matcher {
	return Matcher{
		Indicators: append([]string(nil), DefaultIndicators...),
		Prefixes:   append([]string(nil), DefaultPrefixes...),
	}
}

// IsLikelyProject reports whether chunk contains an indicator or starts with a
// prefix, ignoring case. Indicators match as substrings, so "plan" also
// matches "planning".
func (m Matcher) IsLikelyProject(chunk string) bool {
	text := strings.ToLower(chunk)
	for _, ind := range m.Indicators {
		if strings.Contains(text, strings.ToLower(ind)) {
			return true
		}
	}
	for _, prefix := range m.Prefixes {
		if strings.HasPrefix(text, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// Mention is one sentence naming a project. Empty Action or Person means none was found.
type Mention struct {
	Sentence string `json:"sentence" yaml:"sentence"`
	Action   string `json:"action,omitempty" yaml:"action,omitempty"`
	Person   string `json:"owner,omitempty" yaml:"owner,omitempty"`
}

// Projects maps project names to mentions in first-seen order.
type Projects struct {
	names    []string
	mentions map[string][]Mention
}

// NewProjects returns an empty set.
func NewProjects() *Projects {
	return &Projects{mentions: make(map[string][]Mention)}
}

// Add appends m under name.
func (p *Projects) Add(name string, m Mention) {
	if _, ok := p.mentions[name]; !ok {
		p.names = append(p.names, name)
	}
	p.mentions[name] = append(p.mentions[name], m)
}

// Names returns the project names in the order they were first seen.
func (p *Projects) Names() []string {
	return p.names
}

// Mentions returns the mentions recorded for name.
func (p *Projects) Mentions(name string) []Mention {
	return p.mentions[name]
}

// Len returns the number of projects.
func (p *Projects) Len() int {
	return len(p.names)
}

// Extract walks every sentence of doc and records a mention for each noun
// chunk the matcher accepts. The action is the sentence's main verb and the
// person the first token tagged PERSON.
func Extract(doc tag.Doc, m Matcher) *Projects {
	p := NewProjects()
	for _, sent := range doc.Sentences {
		action, _ := dependencyrelation.MainVerb(sent)
		person := firstPerson(sent)
		for _, chunk := range sent.Chunks {
			if !m.IsLikelyProject(chunk.Text) {
				continue
			}
			p.Add(chunk.Text, Mention{
				Sentence: sent.Sentence,
				Action:   action,
				Person:   person,
			})
		}
	}
	return p
}

func firstPerson(t tag.Tag) string {
	for i, label := range t.NerTag {
		if label == tag.Person {
			return t.Tokens[i]
		}
	}
	return ""
}
