package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jonbodner/proteus"
	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/kalexmills/pronouncing/src/pronouncing"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one stored dictionary line. Position preserves the source order.
type Entry struct {
	Position int    `prof:"position"`
	Word     string `prof:"word"`
	Phones   string `prof:"phones"`
}

var EntryDAO EntryDaoImpl

type EntryDaoImpl struct {
	Insert     func(ctx context.Context, e proteus.ContextExecutor, position int, word string, phones string) (int64, error) `proq:"q:insert" prop:"position,word,phones"`
	DeleteAll  func(ctx context.Context, e proteus.ContextExecutor) (int64, error)                                        `proq:"q:deleteAll"`
	All        func(ctx context.Context, q proteus.ContextQuerier) ([]Entry, error)                                       `proq:"q:all"`
	FindByWord func(ctx context.Context, q proteus.ContextQuerier, word string) ([]Entry, error)                          `proq:"q:findByWord" prop:"word"`
	Count      func(ctx context.Context, q proteus.ContextQuerier) (int64, error)                                         `proq:"q:count"`
}

func init() {
	m := proteus.MapMapper{
		"insert":     `INSERT INTO entry (position, word, phones) VALUES (:position:, :word:, :phones:)`,
		"deleteAll":  `DELETE FROM entry`,
		"all":        `SELECT position, word, phones FROM entry ORDER BY position`,
		"findByWord": `SELECT position, word, phones FROM entry WHERE word = :word: ORDER BY position`,
		"count":      `SELECT COUNT(*) FROM entry`,
	}
	err := proteus.ShouldBuild(context.Background(), &EntryDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// SaveEntries replaces the stored entries with entries, in one transaction.
func SaveEntries(ctx context.Context, sqlDB *sql.DB, entries []dict.Entry) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	if _, err := EntryDAO.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("could not clear entries: %w", err)
	}
	for i, e := range entries {
		if _, err := EntryDAO.Insert(ctx, tx, i, e.Word, e.Phones); err != nil {
			return fmt.Errorf("could not store entry %d (%s): %w", i, e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit entries: %w", err)
	}
	log.Info("stored dictionary entries", "count", len(entries))
	return nil
}

// LoadEntries returns every stored entry in its original order.
func LoadEntries(ctx context.Context, q proteus.ContextQuerier) ([]dict.Entry, error) {
	rows, err := EntryDAO.All(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("could not read entries: %w", err)
	}
	entries := make([]dict.Entry, len(rows))
	for i, r := range rows {
		entries[i] = dict.Entry{Word: r.Word, Phones: r.Phones}
	}
	return entries, nil
}

// LoadDictionary builds a Dictionary from the entries stored in the database at path.
func LoadDictionary(ctx context.Context, path string) (*pronouncing.Dictionary, error) {
	sqlDB, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	entries, err := LoadEntries(ctx, sqlDB)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("database %s has no entries", path)
	}
	log.Debug("loaded dictionary from database", "path", path, "entries", len(entries))
	return pronouncing.New(entries), nil
}
