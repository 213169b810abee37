package wordsource

import (
	"context"
	"fmt"
)

// Slice returns a Source over a fixed list of words.
func Slice(words ...string) Source {
	return SourceFunc(func(ctx context.Context, yield func(string) bool) error {
		for _, w := range words {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !yield(w) {
				return nil
			}
		}
		return nil
	})
}

// Filter returns a Source yielding only the words of src for which keep
// returns true.
func Filter(src Source, keep func(string) bool) Source {
	return SourceFunc(func(ctx context.Context, yield func(string) bool) error {
		return src.Words(ctx, func(w string) bool {
			if !keep(w) {
				logger.Debugf("wordsource: filtered out %q", w)
				return true
			}
			return yield(w)
		})
	})
}

// Load drains src into dst and returns how many words were fed.
// Cancellation of ctx is checked before every insert; on cancellation the
// words fed so far stay in dst and ctx.Err() is returned wrapped.
// A nil ctx means context.Background().
func Load(ctx context.Context, dst Inserter, src Source) (int, error) {
	// 1. Validate input
	if src == nil {
		return 0, ErrNilSource
	}
	if dst == nil {
		return 0, ErrNilDestination
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2. Drain
	fed := 0
	err := src.Words(ctx, func(w string) bool {
		if ctx.Err() != nil {
			return false
		}
		dst.Insert(w)
		fed++
		return true
	})

	// 3. Report
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		logger.Warningf("wordsource: load stopped after %d words: %s", fed, err)
		return fed, fmt.Errorf("wordsource: load: %w", err)
	}
	logger.Infof("wordsource: loaded %d words", fed)

	return fed, nil
}
