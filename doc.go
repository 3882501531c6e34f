// Package cmdline declares typed command-line options, arguments and
// operands, parses an argument vector into a validated value store, and
// renders auto-generated, column-aligned documentation.
//
// Malformed input produces a positioned diagnostic: the reconstructed
// command line with a caret under the offending byte. The documentation
// renderer word-wraps UTF-8 text with embedded bold/underline attribute
// markers, soft hyphens and non-breaking spaces into weighted columns.
package cmdline

//go:generate gomarkdoc ./ -o docs/cmdline.md
