package repl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp/syntax"
	"slices"
	"strings"

	"github.com/ardnew/ars/filter"
	"github.com/ardnew/ars/grammar"
	"github.com/ardnew/ars/lexer"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/pretty"
	"github.com/ardnew/ars/token"
)

// session is the state a REPL line is evaluated against.
type session struct {
	grammar  *grammar.Grammar
	printer  *pretty.Printer
	logger   log.Logger
	where    *filter.Filter
	keepSkip bool
}

func newSession(gram *grammar.Grammar, printer *pretty.Printer, logger log.Logger) *session {
	return &session{grammar: gram, printer: printer, logger: logger}
}

// lex tokenizes line and renders the selected tokens.
func (s *session) lex(ctx context.Context, line string) (string, error) {
	lx := s.grammar.Lexer(lexer.WithLogger(s.logger))
	lx.Begin(line)

	tokens, err := lx.All()
	if err != nil {
		return "", err
	}

	if !s.keepSkip {
		skip := s.grammar.Skip()
		tokens = slices.DeleteFunc(tokens, func(d token.Data) bool {
			return skip.Contains(d.Kind)
		})
	}

	if s.where != nil {
		if tokens, err = s.where.Select(tokens); err != nil {
			return "", err
		}
	}

	s.logger.TraceContext(ctx, "repl lex",
		slog.String("input", line),
		slog.Int("tokens", len(tokens)),
	)

	if len(tokens) == 0 {
		return "(no tokens)", nil
	}

	return strings.TrimSuffix(s.printer.Tokens(tokens), "\n"), nil
}

// command executes a control-mode line. It reports whether the REPL should
// exit.
func (s *session) command(line string) (out string, quit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit", "exit":
		return "", true, nil

	case "h", "help":
		return helpMessage(), false, nil

	case "p", "patterns":
		return s.patterns(), false, nil

	case "s", "skip":
		s.keepSkip = !s.keepSkip

		return fmt.Sprintf("skip tokens %s", shownOrHidden(s.keepSkip)), false, nil

	case "w", "where":
		if arg == "" {
			s.where = nil

			return "filter cleared", false, nil
		}

		f, err := filter.Compile(arg, s.grammar.Kinds(), filter.WithLogger(s.logger))
		if err != nil {
			return "", false, err
		}

		s.where = f

		return "filter: " + f.String(), false, nil

	default:
		return "", false, fmt.Errorf("%w: %s (try 'help')", ErrUnknownCommand, name)
	}
}

func (s *session) patterns() string {
	var sb strings.Builder

	for _, p := range s.grammar.Patterns() {
		sb.WriteString(s.printer.Pattern(p))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// lexCandidates returns the completions offered while typing input: the
// word-like literals of the grammar, including the alternatives of regular
// expressions such as "(imm|store)\b".
func (s *session) lexCandidates() []string {
	var names []string

	add := func(words ...string) {
		for _, w := range words {
			if isWordLike(w) && !slices.Contains(names, w) {
				names = append(names, w)
			}
		}
	}

	for _, p := range s.grammar.Patterns() {
		switch m := p.Matcher.(type) {
		case token.Literal:
			add(string(m))
		case token.Regex:
			if re, err := syntax.Parse(m.Expr(), syntax.Perl); err == nil {
				add(literals(re)...)
			}
		}
	}

	return names
}

// literals returns the strings matched by re if it matches only a finite
// set of literal strings, ignoring zero-width assertions.
func literals(re *syntax.Regexp) []string {
	switch re.Op {
	case syntax.OpLiteral:
		return []string{string(re.Rune)}

	case syntax.OpCapture:
		return literals(re.Sub[0])

	case syntax.OpAlternate:
		var out []string

		for _, sub := range re.Sub {
			words := literals(sub)
			if words == nil {
				return nil
			}

			out = append(out, words...)
		}

		return out

	case syntax.OpConcat:
		subs := slices.DeleteFunc(slices.Clone(re.Sub), isAssertion)
		if len(subs) == 1 {
			return literals(subs[0])
		}
	}

	return nil
}

func isAssertion(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText,
		syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary,
		syntax.OpEmptyMatch:
		return true
	}

	return false
}

// whereCandidates returns the completions offered in a filter expression:
// kind names and the fields of a token.
func (s *session) whereCandidates() []string {
	names := []string{"text", "label", "kind", "line", "column", "start", "end"}

	for _, name := range s.grammar.Kinds().All() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}

func isWordLike(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return isWordBoundary(r) || r == '#'
	})
}

func shownOrHidden(shown bool) string {
	if shown {
		return "shown"
	}

	return "hidden"
}
