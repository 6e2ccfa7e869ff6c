// Package lexer converts input text into a stream of tokens by repeatedly
// trying an ordered list of token patterns at the current position.
//
// The first pattern that matches wins, even when a later pattern would match
// more of the input. Grammar authors control disambiguation purely by the
// order in which they supply patterns, e.g. keywords before identifiers:
//
//	lx := lexer.New([]token.Pattern{
//		token.MustRegex("whitespace", 0, `\s+`),
//		token.NewLiteral("let", 1, "let"),
//		token.MustRegex("ident", 2, `[a-zA-Z_][a-zA-Z0-9_]*`),
//	})
//	lx.Begin("let x")
//	tokens, err := lx.All()
//
// When no pattern matches and input remains, lexing stops with an [*Error]
// naming the offending character and its position. There is no recovery.
package lexer
