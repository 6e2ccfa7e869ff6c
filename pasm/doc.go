// Package pasm is a small pseudo-assembly language built with the lexer,
// parser, and visitor packages.
//
// A program is a sequence of labels and instructions:
//
//	start:
//	    imm %a, #10
//	    imm %b, #32
//	    store %a, %b
//
// Operands are registers (%name), constants (#number), or bare identifiers.
// [Program] parses a whole token stream into a tree, and [NewEmitter] returns
// a visitor that writes the tree back out as canonical source.
package pasm
