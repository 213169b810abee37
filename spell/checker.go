package spell

import (
	"strings"
	"unicode"
)

// Checker answers spelling questions against a Dictionary.
// It holds no mutable state and is safe for concurrent use whenever the
// Dictionary is.
type Checker struct {
	dict Dictionary
	opts Options
}

// NewChecker binds a Checker to dict. Returns ErrNilDictionary if dict is nil.
func NewChecker(dict Dictionary, opts ...Option) (*Checker, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Checker{dict: dict, opts: o}, nil
}

// Check reports whether word is spelled correctly.
func (c *Checker) Check(word string) bool {
	return c.dict.Search(word)
}

// Suggest returns up to MaxSuggestions dictionary words one edit away from
// word, in Candidates order. The lookup key comes from the configured
// normalizer, lower case by default, so that it lines up with a lowercase
// alphabet. A case-sensitive dictionary needs WithNormalizer to be reachable.
func (c *Checker) Suggest(word string) []string {
	key := c.opts.Normalize(word)
	out := make([]string, 0, c.opts.MaxSuggestions)
	if key == "" {
		return out
	}
	for _, cand := range Candidates(key, c.opts.Alphabet) {
		if !c.dict.Search(cand) {
			continue
		}
		out = append(out, cand)
		if len(out) == c.opts.MaxSuggestions {
			break
		}
	}

	return out
}

// CheckText splits text on white space, strips every non-letter rune from
// each token, drops tokens left empty, and checks the rest in order.
func (c *Checker) CheckText(text string) []Result {
	fields := strings.Fields(text)
	results := make([]Result, 0, len(fields))
	for _, f := range fields {
		w := lettersOnly(f)
		if w == "" {
			continue
		}
		r := Result{Word: w, Correct: c.Check(w)}
		if !r.Correct {
			r.Suggestions = c.Suggest(w)
		}
		results = append(results, r)
	}

	return results
}

// lettersOnly drops every rune that is not a Unicode letter.
func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}
