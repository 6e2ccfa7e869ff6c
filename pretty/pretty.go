package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/token"
	"github.com/ardnew/ars/visitor"
)

// Printer renders values as trees.
type Printer struct {
	renderer *lipgloss.Renderer
	names    *kind.Table
	color    bool

	label, field, text, number, none, line lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor enables or disables styling. Disabled output is plain text.
func WithColor(enable bool) Option {
	return func(p *Printer) {
		p.color = enable
	}
}

// WithRenderer sets the lipgloss renderer used to detect the color profile of
// the output.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(p *Printer) {
		if r != nil {
			p.renderer = r
		}
	}
}

// WithNames sets the table used to name kinds.
func WithNames(names *kind.Table) Option {
	return func(p *Printer) {
		p.names = names
	}
}

// New returns a Printer using the default renderer with color enabled.
func New(opts ...Option) *Printer {
	p := &Printer{
		renderer: lipgloss.DefaultRenderer(),
		color:    true,
	}

	for _, opt := range opts {
		opt(p)
	}

	r := p.renderer
	p.label = r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	p.field = r.NewStyle().Foreground(lipgloss.Color("8"))
	p.text = r.NewStyle().Foreground(lipgloss.Color("2"))
	p.number = r.NewStyle().Foreground(lipgloss.Color("3"))
	p.none = r.NewStyle().Foreground(lipgloss.Color("1"))
	p.line = r.NewStyle().Foreground(lipgloss.Color("8"))

	return p
}

// Pattern renders a token pattern.
func (p *Printer) Pattern(pt token.Pattern) string {
	t := branch{text: p.paint(p.label, pt.Label)}
	t.add(p.kv("kind", p.kindOf(pt.Kind)))

	switch m := pt.Matcher.(type) {
	case token.Literal:
		t.add(p.kv("literal", p.quote(string(m))))
	case token.Range:
		t.add(branch{
			text: p.paint(p.field, "range"),
			kids: []branch{
				p.kv("start", p.paint(p.text, strconv.QuoteRune(m.Lo))),
				p.kv("end", p.paint(p.text, strconv.QuoteRune(m.Hi))),
			},
		})
	case token.Regex:
		t.add(p.kv("regex", p.paint(p.text, m.Expr())))
	case token.Bytes:
		t.add(p.kv("bytes", p.paint(p.text, m.Expr())))
	default:
		t.add(p.kv("matcher", p.paint(p.none, "none")))
	}

	return t.render(p)
}

// Token renders a single token.
func (p *Printer) Token(d token.Data) string {
	t := branch{text: p.paint(p.label, d.Label)}
	t.add(
		p.kv("kind", p.kindOf(d.Kind)),
		p.kv("text", p.quote(d.Text)),
		branch{
			text: p.paint(p.field, "location"),
			kids: []branch{
				p.kv("line", p.integer(d.Pos.Line)),
				p.kv("column", p.integer(d.Pos.Column)),
			},
		},
		branch{
			text: p.paint(p.field, "span"),
			kids: []branch{
				p.kv("start", p.integer(d.Span.Start)),
				p.kv("end", p.integer(d.Span.End)),
			},
		},
	)

	return t.render(p)
}

// Tokens renders a token stream one token per line.
func (p *Printer) Tokens(tokens []token.Data) string {
	var sb strings.Builder

	for _, d := range tokens {
		sb.WriteString(p.paint(p.number, d.Pos.String()))
		sb.WriteByte(' ')
		sb.WriteString(p.paint(p.label, d.Label))
		sb.WriteByte(' ')
		sb.WriteString(p.kindOf(d.Kind))
		sb.WriteByte(' ')
		sb.WriteString(p.quote(d.Text))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Node renders a syntax tree.
func (p *Printer) Node(n *ast.Node) string {
	return p.node(n).render(p)
}

func (p *Printer) node(n *ast.Node) branch {
	if n == nil {
		return branch{text: p.paint(p.none, "nil")}
	}

	text := p.paint(p.label, n.Label) + p.paint(p.number, "("+n.Kind.String()+")")
	if s, ok := n.Value.Text(); ok {
		text += p.paint(p.field, ":") + " " + p.quote(s)
	}

	t := branch{text: text}
	for _, child := range n.Children {
		t.add(p.node(child))
	}

	return t
}

// Result renders a visitor result.
func (p *Printer) Result(r visitor.Result) string {
	return p.result(r).render(p)
}

func (p *Printer) result(r visitor.Result) branch {
	switch r.Shape() {
	case visitor.ShapeCompound:
		t := branch{text: p.paint(p.label, "compound")}
		for _, child := range r.Children() {
			t.add(p.result(child))
		}

		return t

	case visitor.ShapeString:
		s, _ := r.Text()

		return p.kv("string", p.quote(s))

	case visitor.ShapeInteger:
		n, _ := r.Integer()

		return p.kv("integer", p.paint(p.number, strconv.FormatUint(n, 10)))

	case visitor.ShapeNumber:
		f, _ := r.Number()

		return p.kv("number",
			p.paint(p.number, strconv.FormatFloat(f, 'g', -1, 64)))

	case visitor.ShapeTagged:
		label, inner, _ := r.Tag()

		return branch{
			text: p.paint(p.label, label),
			kids: []branch{p.result(inner)},
		}

	default:
		return branch{text: p.paint(p.none, "none")}
	}
}

func (p *Printer) kv(key, value string) branch {
	return branch{text: p.paint(p.field, key+":") + " " + value}
}

func (p *Printer) kindOf(k kind.Kind) string {
	if p.names != nil {
		if name := p.names.Name(k); name != "" {
			return p.paint(p.number, name+"("+k.String()+")")
		}
	}

	return p.paint(p.number, k.String())
}

func (p *Printer) integer(n int) string {
	return p.paint(p.number, strconv.Itoa(n))
}

func (p *Printer) quote(s string) string {
	return p.paint(p.text, strconv.Quote(s))
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}

	return style.Render(s)
}

// branch is one line of a rendered tree and the lines nested beneath it.
type branch struct {
	text string
	kids []branch
}

func (b *branch) add(kids ...branch) {
	b.kids = append(b.kids, kids...)
}

func (b branch) render(p *Printer) string {
	var sb strings.Builder

	sb.WriteString(b.text)
	sb.WriteByte('\n')
	b.writeKids(&sb, p, "")

	return sb.String()
}

func (b branch) writeKids(sb *strings.Builder, p *Printer, prefix string) {
	for i, kid := range b.kids {
		glyph, indent := "├─ ", "│  "
		if i == len(b.kids)-1 {
			glyph, indent = "└─ ", "   "
		}

		sb.WriteString(prefix)
		sb.WriteString(p.paint(p.line, glyph))
		sb.WriteString(kid.text)
		sb.WriteByte('\n')
		kid.writeKids(sb, p, prefix+p.paint(p.line, indent))
	}
}
