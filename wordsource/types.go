// Package wordsource declares word producers, their options and sentinel
// errors.
package wordsource

import (
	"context"
	"errors"

	"golang.org/x/text/encoding"
)

// Sentinel errors for loading.
var (
	// ErrNilSource is returned when Load receives a nil Source.
	ErrNilSource = errors.New("wordsource: source is nil")

	// ErrNilDestination is returned when Load receives a nil Inserter.
	ErrNilDestination = errors.New("wordsource: destination is nil")

	// ErrNilDB is reported by a Rows source built over a nil *sql.DB.
	ErrNilDB = errors.New("wordsource: database handle is nil")
)

// Source produces words. Words calls yield for each word in order and
// stops early when yield returns false. It returns the first read error,
// or ctx.Err() when ctx ends first.
type Source interface {
	Words(ctx context.Context, yield func(word string) bool) error
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, yield func(word string) bool) error

// Words calls f.
func (f SourceFunc) Words(ctx context.Context, yield func(word string) bool) error {
	return f(ctx, yield)
}

// Inserter receives words; *trie.Trie and *trie.Concurrent satisfy it.
type Inserter interface {
	Insert(word string)
}

// DefaultMaxTokenSize bounds a single scanned line.
const DefaultMaxTokenSize = 10 * 1024 * 1024

// Option configures a line-oriented Source.
type Option func(*LineOptions)

// LineOptions holds the parsing parameters of Lines.
type LineOptions struct {
	// Encoding decodes the input before scanning. Nil means UTF-8.
	Encoding encoding.Encoding

	// SplitWords splits each line on white space instead of taking the
	// trimmed line as one word.
	SplitWords bool

	// AlphaOnly drops tokens that contain any non-letter rune.
	AlphaOnly bool

	// MaxTokenSize bounds the scanner buffer.
	MaxTokenSize int
}

// DefaultLineOptions returns LineOptions with:
//   - UTF-8 input (no decoder)
//   - one word per line
//   - no alphabetic filter
//   - DefaultMaxTokenSize
func DefaultLineOptions() LineOptions {
	return LineOptions{MaxTokenSize: DefaultMaxTokenSize}
}

// WithEncoding decodes input with enc, e.g. charmap.ISO8859_1.
// Nil keeps UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *LineOptions) { o.Encoding = enc }
}

// WithSplitWords treats every white-space separated token as a word.
func WithSplitWords() Option {
	return func(o *LineOptions) { o.SplitWords = true }
}

// WithAlphaOnly keeps only tokens made entirely of letters.
func WithAlphaOnly() Option {
	return func(o *LineOptions) { o.AlphaOnly = true }
}

// WithMaxTokenSize bounds a single line; non-positive values are ignored.
func WithMaxTokenSize(n int) Option {
	return func(o *LineOptions) {
		if n > 0 {
			o.MaxTokenSize = n
		}
	}
}
