package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bawdo/goaql/aql"
	"github.com/bawdo/goaql/internal/quoting"
	"github.com/ergochat/readline"
)

var (
	errEmptyDraft = errors.New("empty draft (use 'text' or 'bind' first)")
	errNoStore    = errors.New("snippet store unavailable")
)

// Session holds the REPL state: the draft under construction, the snippet
// store, and the command registry.
type Session struct {
	parts    []string
	args     []draftArg
	store    *snippetStore // nil when persistence is unavailable
	commands []commandEntry
	rl       *readline.Instance
	out      io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates an empty composition session.
func NewSession(rl *readline.Instance) *Session {
	s := &Session{rl: rl, out: os.Stdout}
	s.reset()
	s.initCommands()
	return s
}

func (s *Session) reset() {
	s.parts = []string{""}
	s.args = nil
}

// empty reports whether nothing has been added to the draft yet.
func (s *Session) empty() bool {
	return len(s.args) == 0 && len(s.parts) == 1 && s.parts[0] == ""
}

// appendText joins fragment text onto the draft, separating tokens with a
// single space.
func (s *Session) appendText(text string) {
	last := len(s.parts) - 1
	if !s.empty() {
		s.parts[last] += " "
	}
	s.parts[last] += text
}

// appendGlue appends fragment text with no separating space.
func (s *Session) appendGlue(text string) {
	s.parts[len(s.parts)-1] += text
}

// interpolate adds one argument slot to the draft, keeping the invariant
// len(parts) == len(args)+1.
func (s *Session) interpolate(arg draftArg) {
	if !s.empty() {
		s.parts[len(s.parts)-1] += " "
	}
	s.args = append(s.args, arg)
	s.parts = append(s.parts, "")
}

// BuildQuery assembles the current draft into a generated query.
func (s *Session) BuildQuery() (*aql.GeneratedQuery, error) {
	if s.empty() {
		return nil, errEmptyDraft
	}
	return buildDraft(s.parts, s.args, make(handleCache))
}

// buildDraft resolves tagged draft arguments and runs the builder. The
// handle cache is shared across nesting levels so repeated references to
// the same resource deduplicate into one bind parameter.
func buildDraft(parts []string, args []draftArg, cache handleCache) (*aql.GeneratedQuery, error) {
	values := make([]any, len(args))
	for i, d := range args {
		v, err := d.value(cache)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return aql.Build(append([]string(nil), parts...), values...), nil
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(strings.TrimSpace(line[len(cmd.prefix):]))
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Command handlers ---

func (s *Session) cmdText(args string) error {
	if args == "" {
		return errors.New("usage: text <fragment>")
	}
	s.appendText(args)
	_, _ = fmt.Fprintf(s.out, "  Appended %q\n", args)
	return nil
}

func (s *Session) cmdGlue(args string) error {
	if args == "" {
		return errors.New("usage: glue <fragment>")
	}
	s.appendGlue(args)
	_, _ = fmt.Fprintf(s.out, "  Glued %q\n", args)
	return nil
}

func (s *Session) cmdBind(args string) error {
	if args == "" {
		return errors.New("usage: bind <json value>")
	}
	arg, err := bindArg(args)
	if err != nil {
		return err
	}
	s.interpolate(arg)
	_, _ = fmt.Fprintf(s.out, "  Bound %s\n", arg.summary())
	return nil
}

func (s *Session) cmdResource(kind, args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return fmt.Errorf("usage: %s <name>", kind)
	}
	s.interpolate(draftArg{Kind: kind, Text: name})
	_, _ = fmt.Fprintf(s.out, "  Interpolated %s %q\n", kind, name)
	return nil
}

func (s *Session) cmdLiteral(args string) error {
	if args == "" {
		return errors.New("usage: literal <text>")
	}
	s.interpolate(draftArg{Kind: argLiteral, Text: args})
	_, _ = fmt.Fprintf(s.out, "  Interpolated literal %q\n", args)
	return nil
}

func (s *Session) cmdIdent(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: ident <identifier>")
	}
	quoted := quoting.QuoteIdent(name)
	s.interpolate(draftArg{Kind: argLiteral, Text: quoted})
	_, _ = fmt.Fprintf(s.out, "  Interpolated identifier %s\n", quoted)
	return nil
}

func (s *Session) cmdSkip(_ string) error {
	s.interpolate(draftArg{Kind: argSkip})
	_, _ = fmt.Fprintln(s.out, "  Interpolated absent slot")
	return nil
}

func (s *Session) cmdUse(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: use <snippet>")
	}
	if s.store == nil {
		return errNoStore
	}
	parts, snippetArgs, err := s.store.load(name)
	if err != nil {
		return err
	}
	s.interpolate(draftArg{Kind: argQuery, Parts: parts, Args: snippetArgs})
	_, _ = fmt.Fprintf(s.out, "  Nested snippet %q\n", name)
	return nil
}

func (s *Session) cmdShow(_ string) error {
	q, err := s.BuildQuery()
	if err != nil {
		return err
	}
	return s.printQuery(q)
}

func (s *Session) cmdParts(_ string) error {
	if s.empty() {
		return errEmptyDraft
	}
	for i, p := range s.parts {
		_, _ = fmt.Fprintf(s.out, "  FRAG[%d]: %q\n", i, p)
		if i < len(s.args) {
			_, _ = fmt.Fprintf(s.out, "  ARG[%d]:  %s\n", i, s.args[i].summary())
		}
	}
	return nil
}

func (s *Session) cmdClear(_ string) error {
	s.reset()
	_, _ = fmt.Fprintln(s.out, "  Draft cleared")
	return nil
}

func (s *Session) cmdSave(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: save <name>")
	}
	if s.store == nil {
		return errNoStore
	}
	if s.empty() {
		return errEmptyDraft
	}
	if err := s.store.save(name, s.parts, s.args); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Saved snippet %q\n", name)
	return nil
}

func (s *Session) cmdLoad(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: load <name>")
	}
	if s.store == nil {
		return errNoStore
	}
	parts, snippetArgs, err := s.store.load(name)
	if err != nil {
		return err
	}
	s.parts = parts
	s.args = snippetArgs
	_, _ = fmt.Fprintf(s.out, "  Loaded snippet %q\n", name)
	return nil
}

func (s *Session) cmdSnippets(_ string) error {
	if s.store == nil {
		return errNoStore
	}
	names, err := s.store.list()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No snippets saved")
		return nil
	}
	for _, name := range names {
		_, _ = fmt.Fprintf(s.out, "  %s\n", name)
	}
	return nil
}

func (s *Session) cmdDrop(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: drop <name>")
	}
	if s.store == nil {
		return errNoStore
	}
	if err := s.store.remove(name); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Dropped snippet %q\n", name)
	return nil
}
