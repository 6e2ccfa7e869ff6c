package token

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/ardnew/ars/pkg"
)

type matchCase struct {
	name  string
	input string
	want  int // 0 means no match
}

func runMatchCases(t *testing.T, p Pattern, tests []matchCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := p.Match(tt.input)
			if ok != (tt.want > 0) {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.input, ok, tt.want > 0)
			}

			if n != tt.want {
				t.Errorf("Match(%q) = %d, want %d", tt.input, n, tt.want)
			}
		})
	}
}

func TestPattern_Match_Literal(t *testing.T) {
	runMatchCases(t, NewLiteral("test", 0, "test"), []matchCase{
		{"exact", "test", 4},
		{"prefix of longer", "test1", 4},
		{"repeated", "testtest", 4},
		{"not at start", "1test", 0},
		{"shorter input", "tes", 0},
		{"empty input", "", 0},
	})
}

func TestPattern_Match_EmptyLiteralNeverMatches(t *testing.T) {
	if _, ok := NewLiteral("empty", 0, "").Match("anything"); ok {
		t.Error("empty literal matched")
	}
}

func TestPattern_Match_Range(t *testing.T) {
	runMatchCases(t, NewRange("lower", 0, 'a', 'z'), []matchCase{
		{"stops at space", "hello world", 5},
		{"stops at digit", "test1", 4},
		{"whole input", "testtest", 8},
		{"leading digit", "1test", 0},
		{"inclusive bounds", "az", 2},
	})
}

func TestPattern_Match_RangeCountsBytesOfRunes(t *testing.T) {
	// Greek lowercase letters are two bytes each in UTF-8.
	runMatchCases(t, NewRange("greek", 0, 'α', 'ω'), []matchCase{
		{"three letters", "αβγ!", 6},
		{"ascii", "abc", 0},
	})
}

func TestPattern_Match_Regex(t *testing.T) {
	tests := []struct {
		expr string
		matchCase
	}{
		{`\d+`, matchCase{"digits", "1234", 4}},
		{`[a-z]+`, matchCase{"letters before digit", "test1", 4}},
		{`[\w|-]+`, matchCase{"word and dash", "test-test", 9}},
		{`2`, matchCase{"later match rejected", "1test2", 0}},
		{`x*`, matchCase{"zero length rejected", "abc", 0}},
		{`\d+(\.\d+)?`, matchCase{"decimal", "10.5 rest", 4}},
	}

	for _, tt := range tests {
		runMatchCases(t, MustRegex("test", 0, tt.expr), []matchCase{tt.matchCase})
	}
}

func TestPattern_Match_RegexAlternationIsAnchoredAsAWhole(t *testing.T) {
	// Without grouping, "^a|b" would let "b" match anywhere.
	p := MustRegex("alt", 0, `a|b`)

	if _, ok := p.Match("xb"); ok {
		t.Error("alternation matched past the start of input")
	}

	if n, ok := p.Match("bx"); !ok || n != 1 {
		t.Errorf("Match(bx) = %d, %v", n, ok)
	}
}

func TestPattern_Match_Bytes(t *testing.T) {
	tests := []struct {
		expr string
		matchCase
	}{
		{`🙂+`, matchCase{"emoji run", "🙂🙂🙂", 12}},
		{`\)+`, matchCase{"parens", ")))", 3}},
		{"[\U0001F600-\U0001F64F]+", matchCase{"emoticon block", "😀😁😂", 12}},
		{"[\U0001F680-\U0001F6FF]+", matchCase{"transport block", "🚀🚐🚑", 12}},
		{`\)`, matchCase{"later match rejected", "x)", 0}},
	}

	for _, tt := range tests {
		runMatchCases(t, MustBytes("test", 0, tt.expr), []matchCase{tt.matchCase})
	}
}

func TestPattern_Match_LeftmostLongest(t *testing.T) {
	longest := regexp.MustCompile(`a|ab`)
	longest.Longest()

	tests := []struct {
		name string
		re   *regexp.Regexp
		want int
	}{
		{"posix", regexp.MustCompilePOSIX(`a|ab`), 2},
		{"longest", longest, 2},
		{"leftmost first", regexp.MustCompile(`a|ab`), 1},
	}

	for _, tt := range tests {
		for _, p := range []Pattern{NewRegex("re", 0, tt.re), NewBytes("re", 0, tt.re)} {
			runMatchCases(t, p, []matchCase{{tt.name, "ab", tt.want}})
		}
	}
}

func TestPattern_Match_BytesDecodesUTF8(t *testing.T) {
	runMatchCases(t, MustBytes("latin", 0, `[\xff]`), []matchCase{
		{"rune U+00FF", "\u00ffx", 2},
		{"raw byte 0xFF", "\xffx", 0},
	})

	runMatchCases(t, MustBytes("invalid", 0, "\uFFFD"), []matchCase{
		{"invalid byte as U+FFFD", "\xffx", 1},
	})
}

func TestPattern_Match_LongInputNotCopied(t *testing.T) {
	// Matching against a long remainder must not depend on its length.
	p := MustBytes("a", 0, `a`)
	text := strings.Repeat("a", 1<<20)

	result := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			if n, ok := p.Match(text); !ok || n != 1 {
				b.Fatalf("Match() = %d, %v", n, ok)
			}
		}
	})

	if got := result.AllocedBytesPerOp(); got > 4096 {
		t.Errorf("Match() allocated %d bytes per call on %d bytes of input", got, len(text))
	}
}

func TestPattern_Match_NilMatcher(t *testing.T) {
	if _, ok := (Pattern{Label: "nil"}).Match("x"); ok {
		t.Error("pattern without matcher matched")
	}
}

func TestCompileRegex_InvalidExpression(t *testing.T) {
	_, err := CompileRegex("broken", 3, `(`)
	if !errors.Is(err, pkg.ErrGrammar) {
		t.Fatalf("expected ErrGrammar, got %v", err)
	}

	_, err = CompileBytes("broken", 3, `[`)
	if !errors.Is(err, pkg.ErrGrammar) {
		t.Fatalf("expected ErrGrammar, got %v", err)
	}
}

func TestPattern_String(t *testing.T) {
	tests := []struct {
		p    Pattern
		want string
	}{
		{NewLiteral("let", 1, "let"), `let(1) lit "let"`},
		{NewRange("digit", 2, '0', '9'), `digit(2) range '0'-'9'`},
		{MustRegex("ident", 3, `[a-z]+`), `ident(3) regex [a-z]+`},
		{MustBytes("paren", 4, `\)`), `paren(4) bytes \)`},
		{Pattern{Label: "none"}, `none(0) <nil>`},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
