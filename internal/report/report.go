// Package report renders project mentions as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/golangast/standuptagger/internal/projects"
)

// ErrUnknownFormat is returned by Render for a format it does not know.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "yaml"}

// Project is one project and its mentions.
type Project struct {
	Name     string             `json:"name" yaml:"name"`
	Mentions []projects.Mention `json:"mentions" yaml:"mentions"`
}

// Person is one person and the projects they are mentioned with.
type Person struct {
	Name     string   `json:"name" yaml:"name"`
	Projects []string `json:"projects" yaml:"projects"`
}

// Result is the serialisable form of one analyzed standup.
type Result struct {
	Date     string    `json:"date,omitempty" yaml:"date,omitempty"`
	Projects []Project `json:"projects" yaml:"projects"`
	People   []Person  `json:"people" yaml:"people"`
}

// NewResult flattens the ordered groupings into a Result.
func NewResult(date string, p *projects.Projects) Result {
	r := Result{Date: date, Projects: []Project{}, People: []Person{}}
	for _, name := range p.Names() {
		r.Projects = append(r.Projects, Project{Name: name, Mentions: p.Mentions(name)})
	}
	pp := projects.ByPerson(p)
	for _, name := range pp.Names() {
		r.People = append(r.People, Person{Name: name, Projects: pp.Projects(name)})
	}
	return r
}

// Render writes r to w in the given format.
func Render(w io.Writer, format string, r Result) error {
	switch format {
	case "", "text":
		return Text(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderAll writes several results. A single result is rendered exactly as
// Render would; otherwise text reports are each headed by "== <date> ==" and
// JSON or YAML output is a list.
func RenderAll(w io.Writer, format string, rs []Result) error {
	if len(rs) == 1 {
		return Render(w, format, rs[0])
	}
	switch format {
	case "", "text":
		for i, r := range rs {
			sep := ""
			if i > 0 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%s== %s ==\n", sep, r.Date); err != nil {
				return err
			}
			if err := Text(w, r); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text writes the two plain text reports: mentions grouped by project, then
// projects grouped by person.
func Text(w io.Writer, r Result) error {
	ew := &errWriter{w: w}
	ew.printf("Potential Projects and their mentions:\n")
	for _, p := range r.Projects {
		ew.printf("\n%s:\n", p.Name)
		for _, m := range p.Mentions {
			ew.printf("- %s\n", m.Sentence)
			if m.Person != "" {
				ew.printf("  Owner: %s\n", m.Person)
			}
			if m.Action != "" {
				ew.printf("  Action: %s\n", m.Action)
			}
		}
	}

	ew.printf("\n\nGrouped by Person:\n")
	for _, p := range r.People {
		ew.printf("\n%s:\n", p.Name)
		for _, proj := range p.Projects {
			ew.printf("- %s\n", proj)
		}
	}
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
