package main

import (
	"sort"
	"strings"
)

// completionContext describes what kind of completion is appropriate.
type completionContext int

const (
	contextNone    completionContext = iota // no arg completion
	contextCommand                          // start of line or partial command
	contextSnippet                          // after use/load/drop
)

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of chars from end of line[:pos] that form the prefix
// being completed; newLine contains the suffixes to append per candidate.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	ctx, prefix := c.parseContext(lineStr)

	var candidates []string
	switch ctx {
	case contextCommand:
		candidates = filterPrefix(c.sess.commandNames(), prefix)
	case contextSnippet:
		candidates = filterPrefix(c.snippetNames(), prefix)
	}

	for _, cand := range candidates {
		suffix := cand[len(prefix):]
		// Add trailing space for convenience.
		newLine = append(newLine, []rune(suffix+" "))
	}
	length = len([]rune(prefix))
	return
}

// parseContext examines the line up to the cursor and determines what kind
// of completion applies.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	trimmed := strings.TrimLeft(line, " ")
	i := strings.IndexByte(trimmed, ' ')
	if i < 0 {
		return contextCommand, strings.ToLower(trimmed)
	}
	word := strings.ToLower(trimmed[:i])
	rest := strings.TrimLeft(trimmed[i+1:], " ")
	for _, cmd := range c.sess.commands {
		if strings.TrimSpace(cmd.prefix) == word && cmd.completer != contextNone {
			return cmd.completer, rest
		}
	}
	return contextNone, ""
}

func (c *replCompleter) snippetNames() []string {
	if c.sess.store == nil {
		return nil
	}
	names, err := c.sess.store.list()
	if err != nil {
		return nil
	}
	return names
}

// filterPrefix returns the sorted subset of items starting with prefix.
func filterPrefix(items []string, prefix string) []string {
	var out []string
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}
