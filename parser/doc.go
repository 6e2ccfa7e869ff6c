// Package parser implements the backtracking-free parser state that
// recursive-descent parsing units run against.
//
// A [State] wraps an immutable token sequence and a cursor. Units inspect
// and consume tokens with [State.Peek], [State.Eat], [State.Require],
// [State.Is], and [State.SkipWhile], and compose by calling [State.Parse]
// on other units.
//
// # Commit and abort
//
// [State.Parse] runs a unit against an isolated copy of the state that
// shares the token sequence but owns its cursor. Trivia kinds configured with
// [WithSkip] are skipped on the copy first. If the unit returns normally the
// copy's cursor is committed to the caller; if it returns an error the
// caller's cursor is left untouched and the error is returned unchanged.
// Nothing catches the error to try another unit: grammars choose between
// alternatives by peeking ahead before calling Parse.
//
//	unit := parser.UnitFunc(func(s *parser.State) (*ast.Node, error) {
//		tok, err := s.Require(kindIdent)
//		if err != nil {
//			return nil, err
//		}
//		return ast.New(kindIdent, "Ident", ast.String(tok.Text)), nil
//	})
//	node, err := parser.New(tokens, parser.WithSkip(kindWS)).Parse(unit)
package parser
