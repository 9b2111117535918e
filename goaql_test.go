package goaql_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/bawdo/goaql"
)

// TestConvenienceImportStyle demonstrates using the root package alone.
func TestConvenienceImportStyle(t *testing.T) {
	t.Parallel()
	users := goaql.Collection("users")

	q := goaql.AQL(
		[]string{"FOR u IN ", " FILTER u.age >= ", " SORT u.name ", " RETURN u"},
		users, 18, goaql.Lit("ASC"),
	)

	expected := "FOR u IN @@value0 FILTER u.age >= @value1 SORT u.name ASC RETURN u"
	if q.Query != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, q.Query)
	}
	want := map[string]any{"@value0": "users", "value1": 18}
	if !reflect.DeepEqual(q.BindVars, want) {
		t.Errorf("expected bindVars %#v, got %#v", want, q.BindVars)
	}
}

// TestComposedFilters demonstrates nesting and Join through the facade.
func TestComposedFilters(t *testing.T) {
	t.Parallel()
	filters := goaql.Join([]any{
		goaql.AQL([]string{"FILTER d.active == ", ""}, true),
		goaql.AQL([]string{"FILTER d.age > ", ""}, 21),
	}, " ")

	q := goaql.AQL([]string{"FOR d IN ", " ", " RETURN d"}, goaql.Collection("users"), filters)

	expected := "FOR d IN @@value0 FILTER d.active == @value1 FILTER d.age > @value2 RETURN d"
	if q.Query != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, q.Query)
	}
}

// TestOptionalClause demonstrates Omit collapsing an absent clause.
func TestOptionalClause(t *testing.T) {
	t.Parallel()
	q := goaql.AQL([]string{"FOR d IN docs ", "RETURN d"}, goaql.Omit)
	if q.Query != "FOR d IN docs RETURN d" {
		t.Errorf("unexpected query: %q", q.Query)
	}
	if len(q.BindVars) != 0 {
		t.Errorf("expected no bindVars, got %#v", q.BindVars)
	}
}

// TestWireFormat checks the serialized boundary record: exactly the
// query and bindVars fields.
func TestWireFormat(t *testing.T) {
	t.Parallel()
	q := goaql.AQL([]string{"FOR d IN ", " RETURN d"}, goaql.View("search"))

	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected exactly query and bindVars fields, got %v", decoded)
	}
	if decoded["query"] != "FOR d IN @@value0 RETURN d" {
		t.Errorf("unexpected query field: %v", decoded["query"])
	}
	bindVars, ok := decoded["bindVars"].(map[string]any)
	if !ok || bindVars["@value0"] != "search" {
		t.Errorf("unexpected bindVars field: %v", decoded["bindVars"])
	}
}
