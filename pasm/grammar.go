package pasm

import (
	"github.com/ardnew/ars/grammar"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/token"
)

// Token kinds.
var Tokens = kind.NewTable(
	"whitespace",
	"instruction",
	"ident",
	"colon",
	"comma",
	"percent",
	"number",
	"hashtag",
)

var (
	KindWhitespace  = Tokens.MustKind("whitespace")
	KindInstruction = Tokens.MustKind("instruction")
	KindIdent       = Tokens.MustKind("ident")
	KindColon       = Tokens.MustKind("colon")
	KindComma       = Tokens.MustKind("comma")
	KindPercent     = Tokens.MustKind("percent")
	KindNumber      = Tokens.MustKind("number")
	KindHashtag     = Tokens.MustKind("hashtag")
)

// Node kinds.
var Nodes = kind.NewTable(
	"Program",
	"Label",
	"Instruction",
	"Register",
	"Constant",
	"Ident",
)

var (
	NodeProgram     = Nodes.MustKind("Program")
	NodeLabel       = Nodes.MustKind("Label")
	NodeInstruction = Nodes.MustKind("Instruction")
	NodeRegister    = Nodes.MustKind("Register")
	NodeConstant    = Nodes.MustKind("Constant")
	NodeIdent       = Nodes.MustKind("Ident")
)

// Patterns returns the token patterns of the language in lexing order.
// Mnemonics precede identifiers so that "imm" is never lexed as an ident.
func Patterns() []token.Pattern {
	return []token.Pattern{
		token.MustRegex("whitespace", KindWhitespace, `\s+`),
		token.NewLiteral("colon", KindColon, ":"),
		token.NewLiteral("comma", KindComma, ","),
		token.NewLiteral("percent", KindPercent, "%"),
		token.NewLiteral("hashtag", KindHashtag, "#"),
		token.MustRegex("instruction", KindInstruction, `(imm|store)\b`),
		token.MustRegex("ident", KindIdent, `[a-zA-Z_][a-zA-Z0-9_]*`),
		token.MustRegex("number", KindNumber, `\d+(\.\d+)?`),
	}
}

// Grammar returns the language as a [grammar.Grammar] that skips whitespace.
func Grammar() *grammar.Grammar {
	g, err := grammar.New("pasm", Patterns(), "whitespace")
	if err != nil {
		panic(err)
	}

	return g
}
