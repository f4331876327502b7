package analyze

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/golangast/standuptagger/internal/projects"
	"github.com/golangast/standuptagger/internal/sample"
	"github.com/golangast/standuptagger/internal/standup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newAnalyzer(workers int) *Analyzer {
	return New(Options{Matcher: projects.DefaultMatcher(), Workers: workers, Logger: zerolog.Nop()})
}

const twoDays = `Date: January 20, 2025
Attendees: Alex Kim, Maya Patel
Alex: Finish migration plan [Due: Friday]
---
Date: January 21, 2025
Attendees: Riley Chen
Started CSV export implementation
`

func TestDaySample(t *testing.T) {
	days := standup.SplitDays(sample.Standup())
	require.Len(t, days, 1)

	r := newAnalyzer(1).Day(days[0])
	assert.Equal(t, "January 18, 2025", r.Day.Date)
	assert.Equal(t, 12, r.Projects.Len())
	assert.Equal(t, "error handling implementation", r.Projects.Names()[0])

	res := r.Result()
	assert.Equal(t, "January 18, 2025", res.Date)
	require.Len(t, res.People, 2)
	assert.Equal(t, "Maya", res.People[0].Name)
	assert.Equal(t, []string{"performance improvements"}, res.People[0].Projects)
}

func TestDocumentKeepsOrder(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		results, err := newAnalyzer(workers).Document(context.Background(), twoDays)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "January 20, 2025", results[0].Day.Date)
		assert.Equal(t, "January 21, 2025", results[1].Day.Date)

		assert.Equal(t, []projects.Mention{{
			Sentence: "Alex: Finish migration plan [Due: Friday]",
			Action:   "Finish",
			Person:   "Alex",
		}}, results[0].Projects.Mentions("migration plan"))
		assert.Equal(t, []string{"CSV export implementation"}, results[1].Projects.Names())
	}
}

func TestDocumentWithoutDate(t *testing.T) {
	results, err := newAnalyzer(2).Document(context.Background(), "Started CSV export implementation\n")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Day.Date)
	assert.Equal(t, []string{"CSV export implementation"}, results[0].Projects.Names())
}

func TestDocumentEmpty(t *testing.T) {
	_, err := newAnalyzer(1).Document(context.Background(), " \n\t")
	assert.ErrorIs(t, err, standup.ErrNoDays)
}

func TestDocumentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newAnalyzer(2).Document(ctx, strings.Repeat(twoDays+"---\n", 3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtraPeople(t *testing.T) {
	a := New(Options{Matcher: projects.DefaultMatcher(), People: []string{"Dana"}, Logger: zerolog.Nop()})
	r := a.Day(standup.Day{Content: "Dana: Review export feature"})
	assert.Equal(t, "Dana", r.Projects.Mentions("export feature")[0].Person)
}

func TestDocumentXML(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, standup.EncodeXML(&buf, standup.SplitDays(twoDays)))

	results, err := newAnalyzer(2).Document(context.Background(), buf.String())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "January 21, 2025", results[1].Day.Date)
	assert.Equal(t, []string{"CSV export implementation"}, results[1].Projects.Names())

	_, err = newAnalyzer(1).Document(context.Background(), "<response></response>")
	assert.ErrorIs(t, err, standup.ErrNoDays)
}
