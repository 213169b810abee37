package wordsource_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlex/trie"
	"github.com/katalvlaran/lvlex/wordsource"
)

// RowsSuite loads words from an in-memory SQLite table.
type RowsSuite struct {
	suite.Suite
	db *sql.DB
}

func (s *RowsSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	db.SetMaxOpenConns(1) // one connection keeps the in-memory database alive

	_, err = db.Exec(`CREATE TABLE words (word TEXT, lang TEXT);
		INSERT INTO words VALUES ('hello','en'), ('Help','en'), (NULL,'en'), ('','en'), ('hallo','de');`)
	s.Require().NoError(err)
	s.db = db
}

func (s *RowsSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

// TestLoadAll skips NULL and empty rows.
func (s *RowsSuite) TestLoadAll() {
	tr := trie.New()
	n, err := wordsource.Load(context.Background(), tr, wordsource.Rows(s.db, "SELECT word FROM words ORDER BY rowid"))
	s.Require().NoError(err)
	s.Equal(3, n)
	s.Equal([]string{"hallo", "hello", "help"}, tr.AllWords())
}

// TestQueryArgs passes bind parameters through.
func (s *RowsSuite) TestQueryArgs() {
	tr := trie.New()
	_, err := wordsource.Load(context.Background(), tr, wordsource.Rows(s.db, "SELECT word FROM words WHERE lang = ?", "de"))
	s.Require().NoError(err)
	s.Equal([]string{"hallo"}, tr.AllWords())
}

// TestBadQuery wraps the driver error.
func (s *RowsSuite) TestBadQuery() {
	_, err := wordsource.Load(context.Background(), trie.New(), wordsource.Rows(s.db, "SELECT nope FROM missing"))
	s.Require().Error(err)
	s.Contains(err.Error(), "wordsource: query")
}

// TestSkipsInvalidUTF8 drops rows holding raw Latin-1 bytes.
func (s *RowsSuite) TestSkipsInvalidUTF8() {
	_, err := s.db.Exec(`INSERT INTO words VALUES (CAST(x'636166e9' AS TEXT), 'fr'), ('café', 'fr')`)
	s.Require().NoError(err)

	tr := trie.New()
	n, err := wordsource.Load(context.Background(), tr, wordsource.Rows(s.db, "SELECT word FROM words WHERE lang = 'fr'"))
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal([]string{"café"}, tr.AllWords())
}

func TestRowsSuite(t *testing.T) {
	suite.Run(t, new(RowsSuite))
}

func TestRows_NilDB(t *testing.T) {
	_, err := wordsource.Load(context.Background(), trie.New(), wordsource.Rows(nil, "SELECT 1"))
	require.ErrorIs(t, err, wordsource.ErrNilDB)
	assert.Contains(t, err.Error(), "load")
}
