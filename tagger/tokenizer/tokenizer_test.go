package tokenizer

import "testing"

func TestTokenize(t *testing.T) {
	for _, c := range [][]string{
		{"Initial testing shows 70% performance improvement",
			"Initial", "testing", "shows", "70%", "performance", "improvement"},
		{"Team lunch planned for Maya's work anniversary",
			"Team", "lunch", "planned", "for", "Maya", "'s", "work", "anniversary"},
		{"Time: 9:01 AM - 9:14 AM",
			"Time", ":", "9:01", "AM", "-", "9:14", "AM"},
		{"Team: Final review of migration plan [Due: Tuesday]",
			"Team", ":", "Final", "review", "of", "migration", "plan", "[", "Due", ":", "Tuesday", "]"},
		{"Date: January 18, 2025",
			"Date", ":", "January", "18", ",", "2025"},
		{"follow-up on the roll-out",
			"follow-up", "on", "the", "roll-out"},
		{"Sean O'Brien can't join",
			"Sean", "O'Brien", "can't", "join"},
		{"O'Brien's export plan",
			"O'Brien", "'s", "export", "plan"},
		{"Riley’s team doesn’t block",
			"Riley", "’s", "team", "doesn’t", "block"},
		{"the 'draft' label",
			"the", "'", "draft", "'", "label"},
	} {
		input, want := c[0], c[1:]
		got, spans := Tokenize(input)
		if len(got) != len(want) {
			t.Fatalf("len(Tokenize(%q)) = %d, want %d: %q", input, len(got), len(want), got)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%q != %q", got[i], want[i])
			}
			if input[spans[i].Start:spans[i].End] != got[i] {
				t.Errorf("span %v of %q does not cover %q", spans[i], input, got[i])
			}
		}
	}
}

func TestTokenClasses(t *testing.T) {
	testCases := []struct {
		token      string
		number     bool
		clock      bool
		possessive bool
	}{
		{"70%", true, false, false},
		{"2025", true, false, false},
		{"9:01", true, true, false},
		{"'s", false, false, true},
		{"’s", false, false, true},
		{"Maya", false, false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			if got := IsNumber(tc.token); got != tc.number {
				t.Errorf("IsNumber(%q) = %v; expected %v", tc.token, got, tc.number)
			}
			if got := IsClock(tc.token); got != tc.clock {
				t.Errorf("IsClock(%q) = %v; expected %v", tc.token, got, tc.clock)
			}
			if got := IsPossessive(tc.token); got != tc.possessive {
				t.Errorf("IsPossessive(%q) = %v; expected %v", tc.token, got, tc.possessive)
			}
		})
	}
}
