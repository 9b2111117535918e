// REPL binary for interactively composing parameterized AQL queries.
//
// Configuration (env vars):
//
//	GOAQL_HOME=<dir>  (optional, defaults to ~/.goaql; holds history and snippets)
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "goaql> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	sess := NewSession(rl)

	home := replHome()
	if home != "" {
		store, err := openStore(filepath.Join(home, "snippets.db"))
		if err != nil {
			// Non-fatal: the builder works without persistence.
			fmt.Fprintf(os.Stderr, "  Note: snippet store unavailable: %v\n", err)
		} else {
			sess.store = store
		}
	}

	comp := &replCompleter{sess: sess}
	_ = rl.SetConfig(&readline.Config{
		Prompt:          "goaql> ",
		HistoryFile:     historyPath(home),
		HistoryLimit:    500,
		AutoComplete:    comp,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	fmt.Println()
	fmt.Println("Goaql REPL — type 'help' for commands, 'exit' to quit")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if sess.store != nil {
		_ = sess.store.close()
	}
	fmt.Println()
}

// replHome resolves the directory for history and snippets, creating it if
// needed. Returns "" when no usable directory exists.
func replHome() string {
	dir := os.Getenv("GOAQL_HOME")
	if dir == "" {
		usr, err := user.Current()
		if err != nil {
			return ""
		}
		dir = filepath.Join(usr.HomeDir, ".goaql")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return dir
}

func historyPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, "history")
}
