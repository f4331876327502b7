package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangast/standuptagger/internal/sample"
	"github.com/golangast/standuptagger/tagger"
	"github.com/golangast/standuptagger/tagger/nertagger"
)

func TestIsLikelyProject(t *testing.T) {
	m := DefaultMatcher()
	testCases := []struct {
		chunk    string
		expected bool
	}{
		{"error handling implementation", true},
		{"Migration", true},
		{"batch operations", true},
		{"export requirements", true},
		{"Export", true},
		{"migration planning", true},
		{"70% performance improvement", false},
		{"Team lunch", false},
		{"quarterly goals", false},
		{"the performance review", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.chunk, func(t *testing.T) {
			assert.Equal(t, tc.expected, m.IsLikelyProject(tc.chunk))
		})
	}
}

func TestCustomMatcher(t *testing.T) {
	m := Matcher{Indicators: []string{"Dashboard"}, Prefixes: []string{"api"}}
	assert.True(t, m.IsLikelyProject("new dashboard"))
	assert.True(t, m.IsLikelyProject("API gateway"))
	assert.False(t, m.IsLikelyProject("error handling"))
}

func TestExtractSample(t *testing.T) {
	doc := tagger.Parse(sample.Standup(), nertagger.NewGazetteer("Alex Kim", "Maya Patel", "James Wilson", "Riley Chen"))
	p := Extract(doc, DefaultMatcher())

	require.Equal(t, []string{
		"error handling implementation",
		"batch operations",
		"Migration runbook",
		"migration day",
		"migration window",
		"export requirements",
		"CSV export implementation",
		"export feature",
		"Migration",
		"migration plan",
		"performance improvements",
		"migration schedule",
	}, p.Names())

	assert.Equal(t, []Mention{{
		Sentence: "Completed error handling implementation",
		Action:   "Completed",
	}}, p.Mentions("error handling implementation"))

	assert.Equal(t, []Mention{{
		Sentence: "Team: Final review of migration plan [Due: Tuesday]",
	}}, p.Mentions("migration plan"))

	assert.Equal(t, []Mention{{
		Sentence: "Maya: Document performance improvements [Due: Monday]",
		Action:   "Document",
		Person:   "Maya",
	}}, p.Mentions("performance improvements"))

	assert.Equal(t, []Mention{{
		Sentence: "James: Send migration schedule to stakeholders [Due: Today]",
		Action:   "Send",
		Person:   "James",
	}}, p.Mentions("migration schedule"))

	pp := ByPerson(p)
	require.Equal(t, []string{"Maya", "James"}, pp.Names())
	assert.Equal(t, []string{"performance improvements"}, pp.Projects("Maya"))
	assert.Equal(t, []string{"migration schedule"}, pp.Projects("James"))
}

func TestByPersonDeduplicates(t *testing.T) {
	p := NewProjects()
	p.Add("export feature", Mention{Sentence: "a", Person: "Riley"})
	p.Add("export feature", Mention{Sentence: "b", Person: "Riley"})
	p.Add("migration plan", Mention{Sentence: "c", Person: "Alex"})
	p.Add("migration plan", Mention{Sentence: "d"})
	p.Add("batch jobs", Mention{Sentence: "e", Person: "Riley"})

	pp := ByPerson(p)
	assert.Equal(t, []string{"Riley", "Alex"}, pp.Names())
	assert.Equal(t, []string{"export feature", "batch jobs"}, pp.Projects("Riley"))
	assert.Equal(t, 2, pp.Len())
	assert.Equal(t, 3, p.Len())
}

func TestExtractActionAndOwner(t *testing.T) {
	g := nertagger.NewGazetteer("Sean O'Brien")
	testCases := []struct {
		sentence string
		project  string
		action   string
		person   string
	}{
		{"The migration plan was approved by ops", "The migration plan", "approved", ""},
		{"Alex has finished the export feature", "the export feature", "finished", "Alex"},
		{"The export feature is ready", "The export feature", "", ""},
		{"We will finish the migration plan", "the migration plan", "finish", ""},
		{"O'Brien: Finish migration plan", "migration plan", "Finish", "O'Brien"},
		{"Sean O'Brien will review error handling", "error handling", "review", "Sean"},
	}
	for _, tc := range testCases {
		t.Run(tc.sentence, func(t *testing.T) {
			p := Extract(tagger.Parse(tc.sentence, g), DefaultMatcher())
			require.Equal(t, []string{tc.project}, p.Names())
			assert.Equal(t, []Mention{{
				Sentence: tc.sentence,
				Action:   tc.action,
				Person:   tc.person,
			}}, p.Mentions(tc.project))
		})
	}
}
