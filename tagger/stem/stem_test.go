package stem

import "testing"

func TestInflections(t *testing.T) {
	testCases := []struct {
		word   string
		lemma  string
		suffix string
	}{
		{"scheduled", "schedule", "ed"},
		{"implemented", "implement", "ed"},
		{"planned", "plan", "ed"},
		{"shows", "show", "s"},
		{"operations", "operation", "s"},
		{"scheduling", "schedule", "ing"},
		{"monitoring", "monitor", "ing"},
		{"Document", "document", ""},
		{"running", "run", "ing"},
		{"jumps", "jump", "s"},
		{"boxes", "box", "s"},
		{"studies", "study", "s"},
		{"Started", "start", "ed"},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			for _, in := range Inflections(tc.word) {
				if in.Lemma == tc.lemma && in.Suffix == tc.suffix {
					return
				}
			}
			t.Errorf("Inflections(%q) = %v; missing %s+%s", tc.word, Inflections(tc.word), tc.lemma, tc.suffix)
		})
	}
}
