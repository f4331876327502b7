// Package analyze runs the tagging pipeline and project extraction over
// standup documents, one day at a time.
package analyze

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/golangast/standuptagger/internal/projects"
	"github.com/golangast/standuptagger/internal/report"
	"github.com/golangast/standuptagger/internal/standup"
	"github.com/golangast/standuptagger/tagger"
	"github.com/golangast/standuptagger/tagger/nertagger"
	"github.com/golangast/standuptagger/tagger/tag"
)

// Options configures an Analyzer.
type Options struct {
	Matcher projects.Matcher
	// People are extra person names on top of each day's attendee list.
	People  []string
	Workers int
	Logger  zerolog.Logger
}

// Analyzer extracts projects from standup notes.
type Analyzer struct {
	matcher projects.Matcher
	people  []string
	workers int
	logger  zerolog.Logger
}

// DayResult is the outcome for one day.
type DayResult struct {
	Day      standup.Day
	Doc      tag.Doc
	Projects *projects.Projects
}

// Result converts the day into its report form.
func (r DayResult) Result() report.Result {
	return report.NewResult(r.Day.Date, r.Projects)
}

// New returns an Analyzer. Zero Workers means one.
func New(opts Options) *Analyzer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Analyzer{
		matcher: opts.Matcher,
		people:  opts.People,
		workers: opts.Workers,
		logger:  opts.Logger,
	}
}

// Day analyzes a single day. Attendees listed in the notes are treated as
// person names for the whole day.
func (a *Analyzer) Day(d standup.Day) DayResult {
	attendees := standup.Attendees(d.Content)
	names := append(append([]string(nil), a.people...), attendees...)
	g := nertagger.NewGazetteer(names...)

	doc := tagger.Parse(d.Content, g)
	p := projects.Extract(doc, a.matcher)

	a.logger.Debug().
		Str("date", d.Date).
		Int("attendees", len(attendees)).
		Int("sentences", len(doc.Sentences)).
		Int("projects", p.Len()).
		Msg("analyzed day")

	return DayResult{Day: d, Doc: doc, Projects: p}
}

// Document reads the days of content, plain notes or standup XML, and
// analyzes them concurrently. Results come back in document order. Plain
// notes without any dated section are analyzed as one undated day.
func (a *Analyzer) Document(ctx context.Context, content string) ([]DayResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, standup.ErrNoDays
	}
	days, err := standup.ReadDays(content)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		days = []standup.Day{{Content: strings.TrimSpace(content)}}
	}
	a.logger.Info().Int("days", len(days)).Int("workers", a.workers).Msg("analyzing standup notes")

	results := make([]DayResult, len(days))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, d := range days {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Day(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
