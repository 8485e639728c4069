// Package rules contains the built-in pattern library: one rule per
// issue kind, each pairing a lexical detector with an idempotent text
// rewrite. Rules register themselves with check.DefaultRegistry via
// init(); importing this package for side effects is enough to make
// the full rule set available.
//
// All matching is lexical. The rules repair previously observed
// corruption shapes in BUILD.bazel files; they do not parse Starlark
// and never build a syntax tree.
package rules
