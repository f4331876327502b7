package nertagger

import "strings"

// first names recognised without any document context
var firstNames = []string{
	"Alex", "Amanda", "Andrew", "Ashley", "Brian", "Chris", "Christopher", "Daniel", "David",
	"Emily", "Emma", "James", "Jane", "Jessica", "John", "Justin", "Kevin", "Laura", "Lisa",
	"Maria", "Matthew", "Maya", "Melissa", "Michael", "Nicole", "Priya", "Rebecca", "Riley",
	"Sam", "Sarah", "Stephanie", "Tom",
}

// Gazetteer is a set of person name parts.
type Gazetteer struct {
	names map[string]struct{}
}

// NewGazetteer returns a gazetteer holding the built in first names plus every
// part of the given full names.
func NewGazetteer(names ...string) *Gazetteer {
	g := &Gazetteer{names: make(map[string]struct{})}
	g.Add(firstNames...)
	g.Add(names...)
	return g
}

// Add registers each full name and each whitespace separated part of it.
func (g *Gazetteer) Add(names ...string) {
	for _, name := range names {
		parts := strings.Fields(name)
		if len(parts) == 0 {
			continue
		}
		g.names[strings.Join(parts, " ")] = struct{}{}
		for _, part := range parts {
			g.names[strings.Trim(part, ".,;")] = struct{}{}
		}
	}
}

// Contains reports whether token is a known name part.
func (g *Gazetteer) Contains(token string) bool {
	if g == nil {
		return false
	}
	_, ok := g.names[token]
	return ok
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int {
	if g == nil {
		return 0
	}
	return len(g.names)
}
