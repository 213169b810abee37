package wordsource

import (
	"io"

	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
)

var logger *golog.Logger

func init() {
	// Set a default null logger
	logger = nullLogger()
}

func nullLogger() *golog.Logger {
	return golog.New(io.Discard, log.Debug)
}

// SetLogger routes package log lines to l. A nil l restores the null logger.
// Call it before loading starts; it is not synchronized.
func SetLogger(l *golog.Logger) {
	if l == nil {
		l = nullLogger()
	}
	logger = l
}
