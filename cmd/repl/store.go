package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var errSnippetNotFound = errors.New("snippet not found")

// snippetStore persists named drafts (fragment and argument lists) in a
// local sqlite database.
type snippetStore struct {
	db *sql.DB
}

func openStore(path string) (*snippetStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS snippets (
		name       TEXT PRIMARY KEY,
		parts      TEXT NOT NULL,
		args       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &snippetStore{db: db}, nil
}

func (st *snippetStore) close() error {
	return st.db.Close()
}

func (st *snippetStore) save(name string, parts []string, args []draftArg) error {
	partsJSON, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("encode fragments: %w", err)
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	_, err = st.db.Exec(`INSERT INTO snippets (name, parts, args, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET parts = excluded.parts, args = excluded.args, updated_at = excluded.updated_at`,
		name, string(partsJSON), string(argsJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save snippet: %w", err)
	}
	return nil
}

func (st *snippetStore) load(name string) ([]string, []draftArg, error) {
	var partsJSON, argsJSON string
	err := st.db.QueryRow(`SELECT parts, args FROM snippets WHERE name = ?`, name).
		Scan(&partsJSON, &argsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: %s", errSnippetNotFound, name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load snippet: %w", err)
	}
	var parts []string
	if err := json.Unmarshal([]byte(partsJSON), &parts); err != nil {
		return nil, nil, fmt.Errorf("decode fragments: %w", err)
	}
	var args []draftArg
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, nil, fmt.Errorf("decode arguments: %w", err)
	}
	if len(parts) != len(args)+1 {
		return nil, nil, fmt.Errorf("snippet %q is corrupt: %d fragments for %d arguments", name, len(parts), len(args))
	}
	return parts, args, nil
}

func (st *snippetStore) list() ([]string, error) {
	rows, err := st.db.Query(`SELECT name FROM snippets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (st *snippetStore) remove(name string) error {
	res, err := st.db.Exec(`DELETE FROM snippets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("drop snippet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", errSnippetNotFound, name)
	}
	return nil
}
