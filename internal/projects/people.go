package projects

// People maps person names to the projects they are mentioned with. Both
// levels keep first-insertion order and projects are not repeated.
type People struct {
	names    []string
	projects map[string][]string
	seen     map[string]map[string]bool
}

// NewPeople returns an empty grouping.
func NewPeople() *People {
	return &People{
		projects: make(map[string][]string),
		seen:     make(map[string]map[string]bool),
	}
}

// Add records project for person once.
func (pp *People) Add(person, project string) {
	set, ok := pp.seen[person]
	if !ok {
		set = make(map[string]bool)
		pp.seen[person] = set
		pp.names = append(pp.names, person)
	}
	if set[project] {
		return
	}
	set[project] = true
	pp.projects[person] = append(pp.projects[person], project)
}

// Names returns persons in first-seen order.
func (pp *People) Names() []string {
	return pp.names
}

// Projects returns the projects recorded for person.
func (pp *People) Projects(person string) []string {
	return pp.projects[person]
}

// Len returns the number of persons.
func (pp *People) Len() int {
	return len(pp.names)
}

// ByPerson groups projects by the persons named in their mentions.
func ByPerson(p *Projects) *People {
	pp := NewPeople()
	for _, name := range p.Names() {
		for _, m := range p.Mentions(name) {
			if m.Person != "" {
				pp.Add(m.Person, name)
			}
		}
	}
	return pp
}
