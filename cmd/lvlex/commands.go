package main

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/katalvlaran/lvlex/spell"
)

// errNoArgs is returned by commands that need at least one argument.
var errNoArgs = errors.New("at least one argument is required")

// topRunes caps the first-rune histogram printed by stats.
const topRunes = 10

type searchCommand struct{ a *app }

func (c *searchCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errNoArgs
	}
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	for _, w := range args {
		fmt.Fprintf(c.a.stdout, "%s\t%t\n", w, t.Search(w))
	}

	return nil
}

type prefixCommand struct{ a *app }

func (c *prefixCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errNoArgs
	}
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	for _, p := range args {
		fmt.Fprintf(c.a.stdout, "%s\t%t\t%d\n", p, t.StartsWith(p), t.CountWordsWithPrefix(p))
	}

	return nil
}

type completeCommand struct {
	Limit int `short:"n" long:"limit" default:"10" description:"Maximum number of completions."`

	a *app
}

func (c *completeCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("complete takes exactly one prefix")
	}
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	for _, w := range t.Autocomplete(args[0], c.Limit) {
		fmt.Fprintln(c.a.stdout, w)
	}

	return nil
}

type listCommand struct{ a *app }

func (c *listCommand) Execute(args []string) error {
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	for w := range t.All() {
		fmt.Fprintln(c.a.stdout, w)
	}

	return nil
}

type deleteCommand struct{ a *app }

func (c *deleteCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errNoArgs
	}
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	before := t.TotalWords()
	for _, w := range args {
		fmt.Fprintf(c.a.stdout, "%s\t%t\n", w, t.Delete(w))
	}
	fmt.Fprintf(c.a.stdout, "words: %d -> %d\n", before, t.TotalWords())

	return nil
}

type statsCommand struct{ a *app }

func (c *statsCommand) Execute(args []string) error {
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	s := t.Stats()
	fmt.Fprintf(c.a.stdout, "words:\t%d\n", s.Words)
	fmt.Fprintf(c.a.stdout, "nodes:\t%d\n", s.Nodes)
	fmt.Fprintf(c.a.stdout, "max depth:\t%d\n", s.MaxDepth)
	fmt.Fprintf(c.a.stdout, "avg length:\t%.2f\n", s.AvgWordLen)

	// Most frequent first runes, ties broken by rune order.
	runes := slices.SortedFunc(maps.Keys(s.ByFirstRune), func(x, y rune) int {
		if d := cmp.Compare(s.ByFirstRune[y], s.ByFirstRune[x]); d != 0 {
			return d
		}
		return cmp.Compare(x, y)
	})
	if len(runes) > topRunes {
		runes = runes[:topRunes]
	}
	for _, r := range runes {
		fmt.Fprintf(c.a.stdout, "%c\t%d\n", r, s.ByFirstRune[r])
	}

	return nil
}

type spellCommand struct {
	Max      int    `short:"n" long:"max" default:"5" description:"Maximum suggestions per word."`
	Alphabet string `long:"alphabet" description:"Runes tried for insertions and substitutions (default a-z)."`

	a *app
}

func (c *spellCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errNoArgs
	}
	t, err := c.a.dictionary()
	if err != nil {
		return err
	}
	checker, err := spell.NewChecker(t, spell.WithMaxSuggestions(c.Max), spell.WithAlphabet(c.Alphabet))
	if err != nil {
		return err
	}
	for _, r := range checker.CheckText(strings.Join(args, " ")) {
		if r.Correct {
			fmt.Fprintf(c.a.stdout, "%s\tok\n", r.Word)
			continue
		}
		fmt.Fprintf(c.a.stdout, "%s\t%s\n", r.Word, strings.Join(r.Suggestions, " "))
	}

	return nil
}

type versionCommand struct{ a *app }

func (c *versionCommand) Execute(args []string) error {
	fmt.Fprintf(c.a.stdout, "lvlex %s\n", Version)

	return nil
}

// addCommands registers every subcommand on parser.
func addCommands(parser *flags.Parser, a *app) error {
	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"search", "Report whether words are stored", "Prints each word followed by true or false.", &searchCommand{a: a}},
		{"prefix", "Report prefix presence and counts", "Prints each prefix, whether any word starts with it, and how many do.", &prefixCommand{a: a}},
		{"complete", "List completions of a prefix", "Prints up to --limit stored words starting with the prefix, in lexicographic order.", &completeCommand{a: a}},
		{"list", "List every stored word", "Prints all stored words in lexicographic order.", &listCommand{a: a}},
		{"delete", "Delete words and report the result", "Loads the dictionary, deletes each word, and prints per-word results and the word totals.", &deleteCommand{a: a}},
		{"stats", "Print dictionary statistics", "Prints word and node counts, depth, mean word length and the most common first letters.", &statsCommand{a: a}},
		{"spell", "Check spelling of text", "Checks every word of the arguments and prints suggestions one edit away for unknown words.", &spellCommand{a: a}},
		{"version", "Print the version", "Prints the version and exits.", &versionCommand{a: a}},
	}
	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data); err != nil {
			return fmt.Errorf("register %s: %w", cmd.name, err)
		}
	}

	return nil
}
