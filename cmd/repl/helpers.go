package main

import (
	"encoding/json"
	"fmt"

	"github.com/bawdo/goaql/aql"
)

// printQuery renders the boundary record: the query text plus its bind
// parameters as JSON.
func (s *Session) printQuery(q *aql.GeneratedQuery) error {
	_, _ = fmt.Fprintf(s.out, "  Query:\n    %s\n", q.Query)
	bindJSON, err := json.MarshalIndent(q.BindVars, "    ", "  ")
	if err != nil {
		return fmt.Errorf("encode bindVars: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  BindVars:\n    %s\n", bindJSON)
	return nil
}

func (s *Session) cmdHelp() {
	help := `  Draft building:
    text <fragment>     append query text (space-separated)
    glue <fragment>     append query text with no separator
    bind <json value>   interpolate a bind parameter (@valueN)
    skip                interpolate an absent slot (contributes nothing)

  Resource interpolation (binds the name as @@valueN):
    collection <name>   document collection
    edges <name>        edge collection
    graph <name>        named graph
    view <name>         view

  Raw text interpolation (never bound — trusted input only):
    literal <text>      inline text verbatim
    ident <name>        inline a backtick-quoted identifier

  Display:
    show                print the assembled query and bindVars
    parts               list the draft's fragments and argument slots
    clear               discard the draft

  Snippets:
    save <name>         save the draft
    load <name>         replace the draft with a saved snippet
    use <name>          nest a saved snippet into the draft
    snippets            list saved snippets
    drop <name>         delete a saved snippet

  exit | quit           leave the REPL`
	_, _ = fmt.Fprintln(s.out, help)
}
