// Package pretty renders patterns, tokens, syntax trees, and visitor results
// as indented trees for terminals.
//
//	let
//	├─ kind: 1
//	├─ text: "let"
//	├─ location
//	│  ├─ line: 1
//	│  └─ column: 1
//	└─ span
//	   ├─ start: 0
//	   └─ end: 3
//
// Output is styled with lipgloss. Color follows the capabilities of the
// renderer's output unless disabled with [WithColor].
package pretty
