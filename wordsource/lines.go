package wordsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// lineSource scans words out of a reader.
type lineSource struct {
	r    io.Reader
	opts LineOptions
}

// Lines returns a Source reading words from r, one per line by default.
// Blank lines are skipped and surrounding white space is trimmed. Tokens that
// are not valid UTF-8 after decoding are skipped with a warning.
// The reader is consumed by the first call to Words.
func Lines(r io.Reader, opts ...Option) Source {
	o := DefaultLineOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &lineSource{r: r, opts: o}
}

// Words scans the reader, yielding accepted tokens.
func (s *lineSource) Words(ctx context.Context, yield func(string) bool) error {
	if s.r == nil {
		return nil
	}
	r := s.r
	if s.opts.Encoding != nil {
		r = s.opts.Encoding.NewDecoder().Reader(r)
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, min(1024, s.opts.MaxTokenSize))
	scanner.Buffer(buf, s.opts.MaxTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		tokens := []string{text}
		if s.opts.SplitWords {
			tokens = strings.Fields(text)
		}
		for _, tok := range tokens {
			if !utf8.ValidString(tok) {
				logger.Warningf("wordsource: line %d: skipping invalid UTF-8 %q (set an encoding)", line, tok)
				continue
			}
			if s.opts.AlphaOnly && !IsAlpha(tok) {
				logger.Debugf("wordsource: line %d: skipping non-alphabetic %q", line, tok)
				continue
			}
			if !yield(tok) {
				return nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wordsource: scan line %d: %w", line+1, err)
	}

	return nil
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// EncodingByName maps a user-facing name to a decoder for Lines.
// "", "utf-8" and "utf8" return nil (no decoding).
func EncodingByName(name string) (Option, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return WithEncoding(nil), nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return WithEncoding(charmap.ISO8859_1), nil
	case "latin9", "iso-8859-15":
		return WithEncoding(charmap.ISO8859_15), nil
	case "cp1252", "windows-1252":
		return WithEncoding(charmap.Windows1252), nil
	default:
		return nil, fmt.Errorf("wordsource: unknown encoding %q", name)
	}
}
