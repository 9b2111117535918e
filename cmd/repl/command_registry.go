package main

import (
	"sort"
	"strings"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer completionContext // context for arg completion (contextNone = none)
	hidden    bool              // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length
// descending so longer prefixes win.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- draft building ---
		{prefix: "text ", handler: s.cmdText},
		{prefix: "text", handler: s.cmdText, hidden: true},
		{prefix: "glue ", handler: s.cmdGlue},
		{prefix: "glue", handler: s.cmdGlue, hidden: true},
		{prefix: "bind ", handler: s.cmdBind},
		{prefix: "bind", handler: s.cmdBind, hidden: true},
		{prefix: "skip", handler: s.cmdSkip},

		// --- resource interpolation ---
		{prefix: "collection ", handler: func(a string) error { return s.cmdResource(argCollection, a) }},
		{prefix: "collection", handler: func(a string) error { return s.cmdResource(argCollection, a) }, hidden: true},
		{prefix: "edges ", handler: func(a string) error { return s.cmdResource(argEdges, a) }},
		{prefix: "edges", handler: func(a string) error { return s.cmdResource(argEdges, a) }, hidden: true},
		{prefix: "graph ", handler: func(a string) error { return s.cmdResource(argGraph, a) }},
		{prefix: "graph", handler: func(a string) error { return s.cmdResource(argGraph, a) }, hidden: true},
		{prefix: "view ", handler: func(a string) error { return s.cmdResource(argView, a) }},
		{prefix: "view", handler: func(a string) error { return s.cmdResource(argView, a) }, hidden: true},

		// --- raw text interpolation ---
		{prefix: "literal ", handler: s.cmdLiteral},
		{prefix: "literal", handler: s.cmdLiteral, hidden: true},
		{prefix: "ident ", handler: s.cmdIdent},
		{prefix: "ident", handler: s.cmdIdent, hidden: true},

		// --- display ---
		{prefix: "show", handler: s.cmdShow},
		{prefix: "parts", handler: s.cmdParts},
		{prefix: "clear", handler: s.cmdClear},
		{prefix: "reset", handler: s.cmdClear, hidden: true},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},

		// --- snippet store ---
		{prefix: "use ", handler: s.cmdUse, completer: contextSnippet},
		{prefix: "use", handler: s.cmdUse, hidden: true},
		{prefix: "save ", handler: s.cmdSave},
		{prefix: "save", handler: s.cmdSave, hidden: true},
		{prefix: "load ", handler: s.cmdLoad, completer: contextSnippet},
		{prefix: "load", handler: s.cmdLoad, hidden: true},
		{prefix: "snippets", handler: s.cmdSnippets},
		{prefix: "drop ", handler: s.cmdDrop, completer: contextSnippet},
		{prefix: "drop", handler: s.cmdDrop, hidden: true},
	}

	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames returns the visible command words for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		name := strings.TrimSpace(cmd.prefix)
		if cmd.hidden || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	names = append(names, "exit")
	sort.Strings(names)
	return names
}
