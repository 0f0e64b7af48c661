// Package token implements the template token engine used to generate
// note names and vault paths.
//
// A template is a plain string containing ${tokenName} or
// ${tokenName:formatSpecifier} placeholders. Each token name resolves,
// case-insensitively, to a Formatter in a Registry. Filling a template
// is a single left-to-right pass: every placeholder is replaced by its
// formatter's output, and replacement text is never rescanned for
// further tokens.
//
// The package also provides filename and path validation that
// understands token syntax, so templated names can be checked before
// any formatter runs.
package token
