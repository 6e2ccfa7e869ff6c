package grammar

import (
	"bytes"
	"context"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/lexer"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

// Rule is the document form of a single token pattern.
type Rule struct {
	Label   string   `yaml:"label"`
	Kind    *uint32  `yaml:"kind,omitempty"`
	Literal *string  `yaml:"literal,omitempty"`
	Range   []string `yaml:"range,omitempty,flow"`
	Regex   *string  `yaml:"regex,omitempty"`
	Bytes   *string  `yaml:"bytes,omitempty"`
}

// Document is the YAML form of a grammar.
type Document struct {
	Name     string   `yaml:"name,omitempty"`
	Skip     []string `yaml:"skip,omitempty,flow"`
	Patterns []Rule   `yaml:"patterns"`
}

// Grammar is an ordered pattern table together with the kinds a parser
// should skip.
type Grammar struct {
	name     string
	patterns []token.Pattern
	skip     kind.Set
	kinds    *kind.Table
}

// New returns a Grammar for patterns. skip names the labels of trivia
// patterns.
func New(name string, patterns []token.Pattern, skip ...string) (*Grammar, error) {
	g := &Grammar{
		name:     name,
		patterns: slices.Clone(patterns),
	}

	return g, g.index(skip)
}

// Parse decodes a grammar document.
func Parse(ctx context.Context, data []byte) (*Grammar, error) {
	return Load(ctx, bytes.NewReader(data))
}

// Load decodes a grammar document from r. Unknown fields are rejected.
func Load(ctx context.Context, r io.Reader) (*Grammar, error) {
	var doc Document

	err := yaml.NewDecoder(r, yaml.Strict()).DecodeContext(ctx, &doc)
	if err != nil {
		return nil, pkg.ErrGrammar.Wrap(err)
	}

	return FromDocument(doc)
}

// LoadFile decodes the grammar document at path.
func LoadFile(ctx context.Context, path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	g, err := Load(ctx, f)
	if err != nil {
		return nil, err
	}

	if g.name == "" {
		g.name = path
	}

	return g, nil
}

// FromDocument compiles a decoded document into a Grammar.
func FromDocument(doc Document) (*Grammar, error) {
	if len(doc.Patterns) == 0 {
		return nil, pkg.ErrGrammar.Wrapf("no patterns")
	}

	patterns := make([]token.Pattern, 0, len(doc.Patterns))
	assigned := make(map[string]kind.Kind, len(doc.Patterns))

	for i, rule := range doc.Patterns {
		k, ok := assigned[rule.Label]
		if rule.Kind != nil {
			k = kind.Kind(*rule.Kind)
		} else if !ok {
			k = kind.Kind(i)
		}

		if _, ok := assigned[rule.Label]; !ok {
			assigned[rule.Label] = k
		}

		p, err := rule.compile(k)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, p)
	}

	return New(doc.Name, patterns, doc.Skip...)
}

// Document returns the document form of g. Explicit kinds are recorded only
// where a pattern's kind differs from its position.
func (g *Grammar) Document() Document {
	doc := Document{
		Name:     g.name,
		Patterns: make([]Rule, 0, len(g.patterns)),
	}

	for _, k := range g.skip {
		doc.Skip = append(doc.Skip, g.kinds.Name(k))
	}

	seen := make(map[string]kind.Kind, len(g.patterns))

	for i, p := range g.patterns {
		rule := Rule{Label: p.Label}

		implied, ok := seen[p.Label]
		if !ok {
			implied = kind.Kind(i)
			seen[p.Label] = p.Kind
		}

		if p.Kind != implied {
			k := uint32(p.Kind)
			rule.Kind = &k
		}

		switch m := p.Matcher.(type) {
		case token.Literal:
			s := string(m)
			rule.Literal = &s
		case token.Range:
			rule.Range = []string{string(m.Lo), string(m.Hi)}
		case token.Regex:
			s := m.Expr()
			rule.Regex = &s
		case token.Bytes:
			s := m.Expr()
			rule.Bytes = &s
		}

		doc.Patterns = append(doc.Patterns, rule)
	}

	return doc
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (g *Grammar) MarshalYAML() (any, error) {
	return g.Document(), nil
}

// Name returns the grammar's name.
func (g *Grammar) Name() string { return g.name }

// Patterns returns a copy of the pattern table in lexing order.
func (g *Grammar) Patterns() []token.Pattern { return slices.Clone(g.patterns) }

// Skip returns the kinds of the trivia patterns.
func (g *Grammar) Skip() kind.Set { return slices.Clone(g.skip) }

// Kinds returns a table naming each kind by the label of the first pattern
// that produces it.
func (g *Grammar) Kinds() *kind.Table { return g.kinds }

// Lexer returns a new lexer over g's patterns.
func (g *Grammar) Lexer(opts ...lexer.Option) *lexer.Lexer {
	return lexer.New(g.patterns, opts...)
}

// MaxKinds bounds the kinds of a grammar's patterns, which must be less than
// MaxKinds. The kind table is dense, so its size is the largest kind plus one.
const MaxKinds = 1 << 16

func (g *Grammar) index(skip []string) error {
	var size int

	for _, p := range g.patterns {
		if p.Kind >= MaxKinds {
			return pkg.ErrGrammar.Wrapf("pattern %q: kind %d exceeds limit %d",
				p.Label, p.Kind, MaxKinds-1)
		}

		size = max(size, int(p.Kind)+1)
	}

	names := make([]string, size)
	for _, p := range g.patterns {
		if names[p.Kind] == "" {
			names[p.Kind] = p.Label
		}
	}

	g.kinds = kind.NewTable(names...)

	for _, label := range skip {
		k, ok := g.kinds.Kind(label)
		if !ok || label == "" {
			return pkg.ErrGrammar.Wrapf("skip: unknown pattern %q", label)
		}

		if !g.skip.Contains(k) {
			g.skip = append(g.skip, k)
		}
	}

	return nil
}

func (r Rule) compile(k kind.Kind) (token.Pattern, error) {
	if r.Label == "" {
		return token.Pattern{}, pkg.ErrGrammar.Wrapf("pattern %d: missing label", k)
	}

	var set int

	for _, present := range []bool{
		r.Literal != nil, r.Range != nil, r.Regex != nil, r.Bytes != nil,
	} {
		if present {
			set++
		}
	}

	if set != 1 {
		return token.Pattern{}, pkg.ErrGrammar.Wrapf(
			"pattern %q: want exactly one of literal, range, regex, bytes; got %d",
			r.Label, set,
		)
	}

	switch {
	case r.Literal != nil:
		if *r.Literal == "" {
			return token.Pattern{}, pkg.ErrGrammar.Wrapf(
				"pattern %q: empty literal", r.Label,
			)
		}

		return token.NewLiteral(r.Label, k, *r.Literal), nil

	case r.Range != nil:
		lo, hi, err := r.bounds()
		if err != nil {
			return token.Pattern{}, err
		}

		return token.NewRange(r.Label, k, lo, hi), nil

	case r.Regex != nil:
		return token.CompileRegex(r.Label, k, *r.Regex)

	default:
		return token.CompileBytes(r.Label, k, *r.Bytes)
	}
}

func (r Rule) bounds() (lo, hi rune, err error) {
	if len(r.Range) != 2 {
		return 0, 0, pkg.ErrGrammar.Wrapf(
			"pattern %q: range needs 2 bounds, got %d", r.Label, len(r.Range),
		)
	}

	var b [2]rune

	for i, s := range r.Range {
		c, n := utf8.DecodeRuneInString(s)
		if c == utf8.RuneError || n != len(s) {
			return 0, 0, pkg.ErrGrammar.Wrapf(
				"pattern %q: range bound %q is not a single character", r.Label, s,
			)
		}

		b[i] = c
	}

	if b[0] > b[1] {
		return 0, 0, pkg.ErrGrammar.Wrapf(
			"pattern %q: range %q-%q is empty", r.Label, b[0], b[1],
		)
	}

	return b[0], b[1], nil
}
