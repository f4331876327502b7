package dependencyrelation

import (
	"github.com/golangast/standuptagger/tagger/postagger"
	"github.com/golangast/standuptagger/tagger/tag"
)

// PredictDependencies attaches the sentence's noun chunks to its main verb.
// The first verb that is not an auxiliary is the root; chunk heads before it
// are subjects, after it objects (pobj behind a preposition); a possessor
// hangs off the noun it owns.
// t.PosTag and t.Chunks must already be set.
func PredictDependencies(t tag.Tag) tag.Tag {
	var deps []tag.Dependency

	rootIndex := Root(t)
	if rootIndex != -1 {
		deps = append(deps, tag.Dependency{Head: -1, Dependent: rootIndex, Relation: "root"})
	}

	for _, c := range t.Chunks {
		if rootIndex != -1 && c.Head != rootIndex {
			relation := "dobj"
			switch {
			case c.Head < rootIndex:
				relation = "nsubj"
			case c.Start > 0 && (t.PosTag[c.Start-1] == "IN" || t.PosTag[c.Start-1] == "TO"):
				relation = "pobj"
			}
			deps = append(deps, tag.Dependency{Head: rootIndex, Dependent: c.Head, Relation: relation})
		}
		for k := c.Start + 1; k < c.End; k++ {
			if t.PosTag[k] == "POS" && k+1 < c.End {
				// Maya 's work: Maya is the possessor of the chunk head
				deps = append(deps, tag.Dependency{Head: c.Head, Dependent: k - 1, Relation: "poss"})
			}
		}
	}

	t.Dependencies = deps
	return t
}

// Root returns the index of the first verb that is not an auxiliary, or -1.
// "was approved" roots on approved; "is ready" has no root.
func Root(t tag.Tag) int {
	for i := range t.Tokens {
		if t.IsVerb(i) && !postagger.IsAuxiliary(t.Tokens[i]) {
			return i
		}
	}
	return -1
}

// MainVerb returns the text of the sentence's main verb.
func MainVerb(t tag.Tag) (string, bool) {
	for _, d := range t.Dependencies {
		if d.Relation == "root" {
			return t.Tokens[d.Dependent], true
		}
	}
	return "", false
}
