package token

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/pkg"
)

// Matcher decides how many leading bytes of some text it accepts.
// The set of matchers is closed: [Literal], [Range], [Regex], and [Bytes].
type Matcher interface {
	// match returns the byte length of the anchored match, or 0 if there is
	// none.
	match(text string) int

	String() string
}

// Literal matches exactly its own text.
type Literal string

func (l Literal) match(text string) int {
	if l == "" || !strings.HasPrefix(text, string(l)) {
		return 0
	}

	return len(l)
}

// String returns the literal quoted.
func (l Literal) String() string { return "lit " + strconv.Quote(string(l)) }

// Range matches a run of one or more runes each within [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

func (r Range) match(text string) int {
	n := 0

	for n < len(text) {
		c, size := utf8.DecodeRuneInString(text[n:])
		if c < r.Lo || c > r.Hi {
			break
		}

		n += size
	}

	return n
}

// String returns the range bounds quoted.
func (r Range) String() string {
	return "range " + strconv.QuoteRune(r.Lo) + "-" + strconv.QuoteRune(r.Hi)
}

// Regex matches a text regular expression anchored at the start of input.
// The match length is that of the expression's own leftmost match, so an
// expression compiled with [regexp.CompilePOSIX] or [regexp.Regexp.Longest]
// keeps its leftmost-longest semantics.
type Regex struct {
	anchored
}

// NewRegexMatcher returns a Regex matcher for re.
func NewRegexMatcher(re *regexp.Regexp) Regex {
	return Regex{newAnchored(re)}
}

// String returns the expression source.
func (r Regex) String() string { return "regex " + r.re.String() }

// Bytes matches a regular expression like [Regex]; only its rendering
// differs. Go's regexp decodes UTF-8 for byte and string input alike: each
// invalid byte matches as U+FFFD, and a class such as [\xff] matches the
// rune U+00FF rather than the byte 0xFF. Raw-byte classes are not supported.
type Bytes struct {
	anchored
}

// NewBytesMatcher returns a Bytes matcher for re.
func NewBytesMatcher(re *regexp.Regexp) Bytes {
	return Bytes{newAnchored(re)}
}

// String returns the expression source.
func (b Bytes) String() string { return "bytes " + b.re.String() }

// anchored matches re only at the start of input. prefix, an anchored copy
// of re, rejects input with no match at offset 0 without scanning the rest
// of it; re itself then measures the match so its matching mode is kept.
type anchored struct {
	re     *regexp.Regexp
	prefix *regexp.Regexp
}

func newAnchored(re *regexp.Regexp) anchored {
	// A nil prefix only costs speed: match still requires offset 0.
	prefix, err := regexp.Compile(`^(?:` + re.String() + `)`)
	if err != nil {
		prefix = nil
	}

	return anchored{re: re, prefix: prefix}
}

func (a anchored) match(text string) int {
	if a.prefix != nil && !a.prefix.MatchString(text) {
		return 0
	}

	loc := a.re.FindStringIndex(text)
	if loc == nil || loc[0] != 0 {
		return 0
	}

	return loc[1]
}

// Expr returns the source of the regular expression.
func (a anchored) Expr() string { return a.re.String() }

// Pattern is a named matcher with a numeric kind. Patterns are immutable once
// constructed and safe for concurrent use.
type Pattern struct {
	Label   string
	Kind    kind.Kind
	Matcher Matcher
}

// New returns a Pattern for an arbitrary matcher.
func New(label string, k kind.Kind, m Matcher) Pattern {
	return Pattern{Label: label, Kind: k, Matcher: m}
}

// NewLiteral returns a Pattern matching the literal text lit.
func NewLiteral(label string, k kind.Kind, lit string) Pattern {
	return New(label, k, Literal(lit))
}

// NewRange returns a Pattern matching runs of runes in [lo, hi].
func NewRange(label string, k kind.Kind, lo, hi rune) Pattern {
	return New(label, k, Range{Lo: lo, Hi: hi})
}

// NewRegex returns a Pattern matching the text regular expression re.
func NewRegex(label string, k kind.Kind, re *regexp.Regexp) Pattern {
	return New(label, k, NewRegexMatcher(re))
}

// NewBytes returns a Pattern matching the byte regular expression re.
func NewBytes(label string, k kind.Kind, re *regexp.Regexp) Pattern {
	return New(label, k, NewBytesMatcher(re))
}

// CompileRegex compiles expr and returns a Pattern matching it as text.
func CompileRegex(label string, k kind.Kind, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, pkg.ErrGrammar.Wrapf("pattern %q", label).Wrap(err)
	}

	return NewRegex(label, k, re), nil
}

// CompileBytes compiles expr and returns a Pattern matching it as bytes.
func CompileBytes(label string, k kind.Kind, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, pkg.ErrGrammar.Wrapf("pattern %q", label).Wrap(err)
	}

	return NewBytes(label, k, re), nil
}

// MustRegex is like [CompileRegex] but panics if expr does not compile.
func MustRegex(label string, k kind.Kind, expr string) Pattern {
	return NewRegex(label, k, regexp.MustCompile(expr))
}

// MustBytes is like [CompileBytes] but panics if expr does not compile.
func MustBytes(label string, k kind.Kind, expr string) Pattern {
	return NewBytes(label, k, regexp.MustCompile(expr))
}

// Match reports whether p matches a prefix of text and, if so, the byte
// length of that prefix. The length is always at least 1 when ok is true.
func (p Pattern) Match(text string) (n int, ok bool) {
	if text == "" || p.Matcher == nil {
		return 0, false
	}

	n = p.Matcher.match(text)

	return n, n > 0
}

// String returns a one-line description of p.
func (p Pattern) String() string {
	m := "<nil>"
	if p.Matcher != nil {
		m = p.Matcher.String()
	}

	return p.Label + "(" + p.Kind.String() + ") " + m
}
