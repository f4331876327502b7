package tag

// entity labels assigned by the ner tagger
const (
	Outside  = "O"
	Person   = "PERSON"
	Date     = "DATE"
	Time     = "TIME"
	Percent  = "PERCENT"
	Cardinal = "CARDINAL"
)

// phrase labels assigned by the noun chunker
const (
	ChunkBegin  = "B-NP"
	ChunkInside = "I-NP"
)

// Span is a [Start, End) byte range inside a sentence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Chunk is a noun phrase covering tokens [Start, End).
type Chunk struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Head  int    `json:"head"`
	Text  string `json:"text"`
}

type Dependency struct {
	Dependent int    `json:"dependent"`
	Relation  string `json:"relation"`
	Head      int    `json:"head"`
}

// Tag holds one sentence and the parallel tag slices produced for its tokens.
type Tag struct {
	Sentence     string       `json:"sentence"`
	Tokens       []string     `json:"tokens"`
	Spans        []Span       `json:"spans"`
	PosTag       []string     `json:"pos"`
	NerTag       []string     `json:"ner"`
	PhraseTag    []string     `json:"phrase"`
	Chunks       []Chunk      `json:"chunks"`
	Dependencies []Dependency `json:"dependencies"`
}

// Doc is a tagged text split into sentences.
type Doc struct {
	Text      string `json:"text"`
	Sentences []Tag  `json:"sentences"`
}

// Len returns the number of tokens.
func (t Tag) Len() int {
	return len(t.Tokens)
}

// SpanText returns the sentence text covering tokens [start, end).
func (t Tag) SpanText(start, end int) string {
	if start < 0 || end > len(t.Spans) || start >= end {
		return ""
	}
	return t.Sentence[t.Spans[start].Start:t.Spans[end-1].End]
}

// IsNoun reports whether the POS tag at i is a noun tag.
func (t Tag) IsNoun(i int) bool {
	switch t.PosTag[i] {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// IsVerb reports whether the POS tag at i is a verb tag.
func (t Tag) IsVerb(i int) bool {
	p := t.PosTag[i]
	return len(p) >= 2 && p[:2] == "VB"
}
