// Package db stores dictionary entries in SQLite, so a parsed dictionary can be exported
// once and loaded back without reparsing the source file.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"path"

	"github.com/charmbracelet/log"
)

//go:embed scripts/*.sql
var bootstrapScripts embed.FS

// BootstrapDB executes every embedded .sql script against db, in alphabetical order by
// filename. If no scripts are found, an error is returned.
func BootstrapDB(db *sql.DB) error {
	foundSQLFile := false
	scripts, err := bootstrapScripts.ReadDir("scripts")
	if err != nil {
		return err
	}
	for _, finfo := range scripts {
		if finfo.IsDir() || path.Ext(finfo.Name()) != ".sql" {
			continue
		}
		foundSQLFile = true

		script, err := bootstrapScripts.ReadFile("scripts/" + finfo.Name())
		if err != nil {
			return err
		}
		if _, err = db.Exec(string(script)); err != nil {
			log.Error("could not execute bootstrap script", "script", finfo.Name(), "err", err)
			return fmt.Errorf("bootstrap script %s: %w", finfo.Name(), err)
		}
		log.Debug("executed bootstrap script", "script", finfo.Name())
	}
	if !foundSQLFile {
		return fmt.Errorf("could not find any *.sql files in schema folder scripts")
	}
	return nil
}

// Open opens the SQLite database at path and bootstraps its schema.
func Open(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}
	if err := BootstrapDB(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
