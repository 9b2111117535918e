package testutil

import (
	"reflect"
	"testing"

	"github.com/bawdo/goaql/aql"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertQuery checks a generated query's text and bind parameters.
func AssertQuery(t *testing.T, q *aql.GeneratedQuery, text string, bindVars map[string]any) {
	t.Helper()
	if q.Query != text {
		t.Errorf("query: expected:\n  %s\ngot:\n  %s", text, q.Query)
	}
	if !reflect.DeepEqual(q.BindVars, bindVars) {
		t.Errorf("bindVars: expected:\n  %#v\ngot:\n  %#v", bindVars, q.BindVars)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}
