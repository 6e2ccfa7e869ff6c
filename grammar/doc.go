// Package grammar loads token pattern tables from YAML documents.
//
// A grammar document names its patterns in lexing order and lists the labels
// of the trivia patterns a parser should skip:
//
//	name: variables
//	skip: [whitespace]
//	patterns:
//	  - label: whitespace
//	    regex: '\s+'
//	  - label: let
//	    literal: let
//	  - label: ident
//	    regex: '[a-zA-Z_][a-zA-Z0-9_]*'
//	  - label: digit
//	    range: ["0", "9"]
//	  - label: raw
//	    kind: 9
//	    bytes: '\x00+'
//
// Each pattern carries exactly one of literal, range, regex, or bytes. A
// pattern without an explicit kind takes its position in the list. Patterns
// sharing a label share the kind of the first of them unless a kind is given.
package grammar
