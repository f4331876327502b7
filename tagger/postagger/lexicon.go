package postagger

// closed classes, looked up lowercased
var closedClass = map[string]string{
	"a": "DET", "an": "DET", "the": "DET", "this": "DET", "that": "DET", "these": "DET", "those": "DET",
	"each": "DET", "every": "DET", "some": "DET", "any": "DET", "no": "DET", "all": "DET", "both": "DET", "another": "DET",

	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$", "its": "PRP$", "our": "PRP$", "their": "PRP$",

	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP", "they": "PRP",
	"me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	"everyone": "PRP", "everybody": "PRP", "someone": "PRP", "somebody": "PRP", "anyone": "PRP", "nobody": "PRP",

	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN", "from": "IN", "with": "IN",
	"through": "IN", "over": "IN", "under": "IN", "around": "IN", "between": "IN", "among": "IN", "across": "IN",
	"near": "IN", "behind": "IN", "beside": "IN", "against": "IN", "along": "IN", "into": "IN", "onto": "IN",
	"about": "IN", "after": "IN", "before": "IN", "during": "IN", "without": "IN", "within": "IN", "via": "IN",
	"per": "IN", "until": "IN", "while": "IN", "if": "IN", "because": "IN",

	"to": "TO",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC", "so": "CC",

	"will": "MD", "would": "MD", "should": "MD", "could": "MD", "might": "MD", "must": "MD",
	"can": "MD", "may": "MD", "shall": "MD",

	"not": "RB", "also": "RB", "already": "RB", "still": "RB", "just": "RB", "very": "RB",
	"now": "RB", "then": "RB", "soon": "RB", "again": "RB", "only": "RB", "too": "RB",

	"is": "VBZ", "are": "VBP", "am": "VBP", "was": "VBD", "were": "VBD", "be": "VB", "been": "VBN", "being": "VBG",
	"has": "VBZ", "have": "VBP", "had": "VBD", "does": "VBZ", "do": "VBP", "did": "VBD",

	"can't": "MD", "won't": "MD", "wouldn't": "MD", "shouldn't": "MD", "couldn't": "MD", "mustn't": "MD",
	"isn't": "VBZ", "aren't": "VBP", "wasn't": "VBD", "weren't": "VBD",
	"hasn't": "VBZ", "haven't": "VBP", "hadn't": "VBD",
	"doesn't": "VBZ", "don't": "VBP", "didn't": "VBD",
}

// auxiliaries keep a following participle or gerund verbal and are never a sentence's main verb
var auxiliaries = map[string]bool{
	"is": true, "are": true, "am": true, "was": true, "were": true, "be": true, "been": true, "being": true,
	"has": true, "have": true, "had": true,
	"do": true, "does": true, "did": true,
	"isn't": true, "aren't": true, "wasn't": true, "weren't": true,
	"hasn't": true, "haven't": true, "hadn't": true,
	"doesn't": true, "don't": true, "didn't": true,
}

// do support: the verb after these keeps its base form
var doSupport = map[string]bool{
	"do": true, "does": true, "did": true, "don't": true, "doesn't": true, "didn't": true,
}

// base forms of verbs
var verbs = map[string]bool{
	"add": true, "agree": true, "approve": true, "assign": true, "begin": true, "block": true, "build": true,
	"celebrate": true, "change": true, "check": true, "close": true, "complete": true, "configure": true,
	"continue": true, "create": true, "decide": true, "demo": true, "deploy": true, "design": true,
	"develop": true, "discuss": true, "document": true, "draft": true, "export": true, "finalize": true,
	"finish": true, "fix": true, "follow": true, "get": true, "handle": true, "help": true, "implement": true,
	"import": true, "improve": true, "install": true, "integrate": true, "investigate": true, "keep": true,
	"launch": true, "look": true, "make": true, "meet": true, "merge": true, "migrate": true, "monitor": true,
	"move": true, "need": true, "open": true, "optimize": true, "pair": true, "plan": true, "prepare": true,
	"present": true, "publish": true, "refactor": true, "release": true, "resolve": true, "review": true,
	"run": true, "schedule": true, "send": true, "set": true, "share": true, "ship": true, "show": true,
	"sign": true, "start": true, "support": true, "sync": true, "test": true, "track": true, "update": true,
	"upgrade": true, "validate": true, "verify": true, "wait": true, "work": true, "write": true,
}

// words that read as nouns as often as verbs; their -s form needs context
var dualClass = map[string]bool{
	"block": true, "change": true, "check": true, "demo": true, "design": true, "document": true,
	"draft": true, "export": true, "fix": true, "import": true, "plan": true, "release": true,
	"review": true, "schedule": true, "start": true, "support": true, "test": true, "update": true,
	"upgrade": true, "work": true,
}

// irregular past forms
var irregularVerbs = map[string]string{
	"got": "VBD", "began": "VBD", "sent": "VBD", "made": "VBD", "built": "VBD", "wrote": "VBD",
	"met": "VBD", "ran": "VBD", "took": "VBD", "found": "VBD", "gave": "VBD", "held": "VBD",
	"led": "VBD", "kept": "VBD", "left": "VBD", "saw": "VBD", "told": "VBD", "thought": "VBD",
	"brought": "VBD", "bought": "VBD", "went": "VBD", "came": "VBD", "said": "VBD",
	"shown": "VBN", "done": "VBN", "written": "VBN", "taken": "VBN", "begun": "VBN",
	"gotten": "VBN", "given": "VBN", "gone": "VBN", "seen": "VBN",
}

var adjectives = map[string]bool{
	"initial": true, "final": true, "next": true, "new": true, "quarterly": true, "daily": true,
	"weekly": true, "monthly": true, "individual": true, "notable": true, "good": true, "great": true,
	"clear": true, "ready": true, "first": true, "last": true, "main": true, "early": true, "late": true,
	"current": true, "small": true, "large": true, "big": true, "old": true, "full": true, "high": true,
	"low": true, "key": true, "major": true, "minor": true, "remaining": true, "critical": true,
}

var adjectiveSuffixes = []string{"al", "ive", "ous", "ful", "able", "ible"}

// calendar words are proper nouns wherever they appear
var calendar = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true,
	"saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true, "june": true, "july": true,
	"august": true, "september": true, "october": true, "november": true, "december": true,
}
