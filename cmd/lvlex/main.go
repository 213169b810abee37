// Command lvlex loads a word list into a prefix tree and answers one-shot
// dictionary queries: membership, prefix counts, completions, deletion,
// statistics and spelling.
//
//	lvlex --words /usr/share/dict/words complete -n 5 prog
//	lvlex --sqlite words.db --query 'SELECT word FROM words' prefix ca co
//	LVLEX_WORDS=words.txt lvlex spell "Helo wrold"
//
// Settings may also come from a .env file in the working directory.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/lvlex/trie"
	"github.com/katalvlaran/lvlex/wordsource"
)

// Version of the binary, assigned during build.
var Version string = "dev"

// Options contains the global flag options.
type Options struct {
	Verbose         []bool `short:"v" long:"verbose" description:"Show verbose logging."`
	Words           string `short:"w" long:"words" env:"LVLEX_WORDS" description:"Word list file, one word per line."`
	Encoding        string `long:"encoding" env:"LVLEX_ENCODING" default:"utf-8" description:"Word list encoding: utf-8, latin1, latin9 or cp1252."`
	Split           bool   `long:"split" description:"Split word list lines on white space."`
	AlphaOnly       bool   `long:"alpha-only" description:"Skip tokens containing non-letters."`
	SQLite          string `long:"sqlite" env:"LVLEX_SQLITE" description:"SQLite database to load words from."`
	Query           string `long:"query" env:"LVLEX_QUERY" default:"SELECT word FROM words" description:"Query whose first column yields words."`
	Fold            bool   `long:"fold" description:"Use full Unicode case folding instead of lower-casing."`
	ReferenceCounts bool   `long:"reference-counts" description:"Keep prefix counts on duplicate inserts and deletes."`
}

var logLevels = []log.Level{
	log.Warning,
	log.Info,
	log.Debug,
}

// errNoSource is returned when neither a word file nor a database is set.
var errNoSource = errors.New("no word source: set --words or --sqlite")

// app carries parsed options and output streams into the commands.
type app struct {
	Options
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	logger *golog.Logger
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fail(2, "Failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		stop()
		fail(1, "%v\n", err)
	}
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{ctx: ctx, stdout: stdout, stderr: stderr}
	parser := flags.NewParser(&a.Options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "lvlex"
	if err := addCommands(parser, a); err != nil {
		return err
	}
	_, err := parser.ParseArgs(args)

	return err
}

// setupLogging maps the -v count to a level and wires package loggers.
func (a *app) setupLogging() {
	numVerbose := len(a.Verbose)
	if numVerbose >= len(logLevels) {
		numVerbose = len(logLevels) - 1
	}
	a.logger = golog.New(a.stderr, logLevels[numVerbose])
	wordsource.SetLogger(a.logger)
}

// dictionary builds a trie from the configured sources.
func (a *app) dictionary() (*trie.Trie, error) {
	a.setupLogging()

	if a.Words == "" && a.SQLite == "" {
		return nil, errNoSource
	}

	opts := []trie.Option{}
	if a.Fold {
		opts = append(opts, trie.WithNormalizer(trie.FoldCase))
	}
	if a.ReferenceCounts {
		opts = append(opts, trie.WithCountPolicy(trie.ReferenceCounts))
	}
	t := trie.New(opts...)

	if a.Words != "" {
		if err := a.loadFile(t); err != nil {
			return nil, err
		}
	}
	if a.SQLite != "" {
		if err := a.loadSQLite(t); err != nil {
			return nil, err
		}
	}
	a.logger.Infof("dictionary ready: %d words (%s counts)", t.TotalWords(), t.CountPolicy())

	return t, nil
}

func (a *app) loadFile(t *trie.Trie) error {
	enc, err := wordsource.EncodingByName(a.Encoding)
	if err != nil {
		return err
	}
	lineOpts := []wordsource.Option{enc}
	if a.Split {
		lineOpts = append(lineOpts, wordsource.WithSplitWords())
	}
	if a.AlphaOnly {
		lineOpts = append(lineOpts, wordsource.WithAlphaOnly())
	}

	f, err := os.Open(a.Words)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	n, err := wordsource.Load(a.ctx, t, wordsource.Lines(f, lineOpts...))
	if err != nil {
		return err
	}
	a.logger.Debugf("read %d words from %s", n, a.Words)

	return nil
}

func (a *app) loadSQLite(t *trie.Trie) error {
	db, err := sql.Open("sqlite3", a.SQLite)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	var src wordsource.Source = wordsource.Rows(db, a.Query)
	if a.AlphaOnly {
		src = wordsource.Filter(src, wordsource.IsAlpha)
	}
	n, err := wordsource.Load(a.ctx, t, src)
	if err != nil {
		return err
	}
	a.logger.Debugf("read %d words from %s", n, a.SQLite)

	return nil
}
