package main

import (
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bawdo/goaql/aql"
)

// newTestSession creates a session writing to a discarded output.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess := NewSession(nil)
	sess.out = io.Discard
	return sess
}

// newTestStore opens a snippet store in a per-test temp directory.
func newTestStore(t *testing.T) *snippetStore {
	t.Helper()
	st, err := openStore(filepath.Join(t.TempDir(), "snippets.db"))
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	t.Cleanup(func() { _ = st.close() })
	return st
}

// exec runs commands, failing the test on the first error.
func exec(t *testing.T, sess *Session, commands ...string) {
	t.Helper()
	for _, cmd := range commands {
		if err := sess.Execute(cmd); err != nil {
			t.Fatalf("command %q failed: %v", cmd, err)
		}
	}
}

func buildQuery(t *testing.T, sess *Session) *aql.GeneratedQuery {
	t.Helper()
	q, err := sess.BuildQuery()
	if err != nil {
		t.Fatalf("BuildQuery failed: %v", err)
	}
	return q
}

func assertQuery(t *testing.T, q *aql.GeneratedQuery, text string, bindVars map[string]any) {
	t.Helper()
	if q.Query != text {
		t.Errorf("query: expected:\n  %s\ngot:\n  %s", text, q.Query)
	}
	if !reflect.DeepEqual(q.BindVars, bindVars) {
		t.Errorf("bindVars: expected %#v, got %#v", bindVars, q.BindVars)
	}
}

// --- Draft building ---

func TestTextAndBind(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess,
		"text FOR d IN docs",
		"text FILTER d.x ==",
		"bind 5",
		"text RETURN d",
	)
	assertQuery(t, buildQuery(t, sess),
		"FOR d IN docs FILTER d.x == @value0 RETURN d",
		map[string]any{"value0": float64(5)})
}

func TestCollectionInterpolation(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text FOR u IN", "collection users", "text RETURN u")
	assertQuery(t, buildQuery(t, sess),
		"FOR u IN @@value0 RETURN u",
		map[string]any{"@value0": "users"})
}

func TestRepeatedCollectionSharesBind(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess,
		"text FOR u IN", "collection users",
		"text FOR v IN", "collection users",
		"text RETURN [u, v]",
	)
	assertQuery(t, buildQuery(t, sess),
		"FOR u IN @@value0 FOR v IN @@value0 RETURN [u, v]",
		map[string]any{"@value0": "users"})
}

func TestResourceKindsByCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		command string
		name    string
	}{
		{"collection people", "people"},
		{"edges knows", "knows"},
		{"graph social", "social"},
		{"view search", "search"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()
			sess := newTestSession(t)
			exec(t, sess, tt.command)
			assertQuery(t, buildQuery(t, sess), "@@value0", map[string]any{"@value0": tt.name})
		})
	}
}

func TestBindValueShapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"number", "5", float64(5)},
		{"string", `"alice"`, "alice"},
		{"null", "null", nil},
		{"bool", "true", true},
		{"object", `{"x": 1}`, map[string]any{"x": float64(1)}},
		{"array", "[1, 2]", []any{float64(1), float64(2)}},
		{"bare text falls back to string", "hello world", "hello world"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sess := newTestSession(t)
			exec(t, sess, "bind "+tt.input)
			q := buildQuery(t, sess)
			if !reflect.DeepEqual(q.BindVars["value0"], tt.want) {
				t.Errorf("expected bound %#v, got %#v", tt.want, q.BindVars["value0"])
			}
		})
	}
}

func TestIdenticalBindsShareParameter(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text FILTER d.a ==", "bind 7", "text || d.b ==", "bind 7")
	assertQuery(t, buildQuery(t, sess),
		"FILTER d.a == @value0 || d.b == @value0",
		map[string]any{"value0": float64(7)})
}

func TestLiteralCommand(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text SORT d.name", "literal DESC", "text LIMIT", "bind 10")
	assertQuery(t, buildQuery(t, sess),
		"SORT d.name DESC LIMIT @value0",
		map[string]any{"value0": float64(10)})
}

func TestIdentCommand(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text FOR d IN", "ident my coll")
	assertQuery(t, buildQuery(t, sess), "FOR d IN `my coll`", map[string]any{})
}

func TestSkipCommand(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text FOR d IN docs", "skip", "text RETURN d")
	assertQuery(t, buildQuery(t, sess), "FOR d IN docs  RETURN d", map[string]any{})
}

func TestGlueCommand(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text RETURN LENGTH(", "glue docs", "glue )")
	assertQuery(t, buildQuery(t, sess), "RETURN LENGTH(docs)", map[string]any{})
}

// --- Errors ---

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	if err := sess.Execute("frobnicate"); err == nil {
		t.Fatal("expected an error for unknown command")
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	for _, cmd := range []string{"text", "glue", "bind", "collection", "edges", "graph", "view", "literal", "ident", "use", "save", "load", "drop"} {
		if err := sess.Execute(cmd); err == nil {
			t.Errorf("expected usage error for bare %q", cmd)
		}
	}
}

func TestEmptyDraft(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	if _, err := sess.BuildQuery(); !errors.Is(err, errEmptyDraft) {
		t.Fatalf("expected errEmptyDraft, got %v", err)
	}
	if err := sess.Execute("show"); !errors.Is(err, errEmptyDraft) {
		t.Fatalf("expected errEmptyDraft from show, got %v", err)
	}
}

func TestClearResetsDraft(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text RETURN 1", "clear")
	if _, err := sess.BuildQuery(); !errors.Is(err, errEmptyDraft) {
		t.Fatalf("expected errEmptyDraft after clear, got %v", err)
	}
}

func TestSnippetCommandsWithoutStore(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	exec(t, sess, "text RETURN 1")
	for _, cmd := range []string{"save x", "load x", "use x", "drop x", "snippets"} {
		if err := sess.Execute(cmd); !errors.Is(err, errNoStore) {
			t.Errorf("%q: expected errNoStore, got %v", cmd, err)
		}
	}
}

// --- Snippet composition ---

func TestSaveAndNestSnippet(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	sess.store = newTestStore(t)
	exec(t, sess,
		"text FILTER d.age >",
		"bind 21",
		"save adult",
		"clear",
		"text FOR d IN",
		"collection users",
		"use adult",
		"text RETURN d",
	)
	assertQuery(t, buildQuery(t, sess),
		"FOR d IN @@value0 FILTER d.age > @value1 RETURN d",
		map[string]any{"@value0": "users", "value1": float64(21)})
}

func TestLoadReplacesDraft(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	sess.store = newTestStore(t)
	exec(t, sess, "text RETURN 1", "save one", "clear", "text RETURN 2", "load one")
	assertQuery(t, buildQuery(t, sess), "RETURN 1", map[string]any{})
}

func TestSnippetRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	sess := newTestSession(t)
	sess.store = st
	exec(t, sess,
		"text FOR d IN",
		"collection docs",
		"skip",
		"text SORT d.rank",
		"literal DESC",
		"text LIMIT",
		"bind 25",
		"text RETURN d",
		"save ranked",
	)
	want := buildQuery(t, sess)

	fresh := newTestSession(t)
	fresh.store = st
	exec(t, fresh, "load ranked")
	got := buildQuery(t, fresh)

	assertQuery(t, got, want.Query, want.BindVars)
}

func TestNestedSnippetSharesResourceBind(t *testing.T) {
	t.Parallel()
	sess := newTestSession(t)
	sess.store = newTestStore(t)
	exec(t, sess,
		"text FILTER LENGTH(",
		"collection users",
		"text ) > 0",
		"save nonempty",
		"clear",
		"text FOR u IN",
		"collection users",
		"use nonempty",
		"text RETURN u",
	)
	assertQuery(t, buildQuery(t, sess),
		"FOR u IN @@value0 FILTER LENGTH( @@value0 ) > 0 RETURN u",
		map[string]any{"@value0": "users"})
}
