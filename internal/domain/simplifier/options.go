package simplifier

// Defaults tuned for Indonesian.
const (
	DefaultMinPrefixWordLength = 6
	DefaultSplitThreshold      = 15
	DefaultMidpointThreshold   = 20
	DefaultPunctuation         = ".,/#!$%^&*;:{}=-_`~()\"'?"
)

// DefaultConjunctions are tried in this order when a long sentence is split.
var DefaultConjunctions = []string{"dan", "atau", "tetapi", "namun", "karena", "sehingga", "yaitu", "yang"}

// Option mutates a Simplifier under construction.
type Option func(*Simplifier)

// WithMinPrefixWordLength sets the cleaned length a word must exceed before the
// prefix table is consulted.
func WithMinPrefixWordLength(n int) Option {
	return func(s *Simplifier) { s.minPrefixWordLength = n }
}

// WithSplitThreshold sets the sentence length above which conjunction splitting
// is attempted.
func WithSplitThreshold(n int) Option {
	return func(s *Simplifier) { s.splitThreshold = n }
}

// WithMidpointThreshold sets the sentence length above which a sentence with no
// conjunction is split at its middle.
func WithMidpointThreshold(n int) Option {
	return func(s *Simplifier) { s.midpointThreshold = n }
}

// WithConjunctions replaces the ordered conjunction list. An empty list disables
// conjunction splitting.
func WithConjunctions(conjunctions ...string) Option {
	return func(s *Simplifier) { s.conjunctions = append([]string(nil), conjunctions...) }
}

// WithPunctuation replaces the set of characters stripped from a token before
// lookup.
func WithPunctuation(chars string) Option {
	return func(s *Simplifier) { s.punctuation = chars }
}
