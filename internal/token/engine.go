package token

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// placeholderRe matches ${name} and ${name:format}. The name is the
// shortest run up to an optional colon; the format is everything up to
// the closing brace, passed to the formatter verbatim.
var placeholderRe = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// Engine fills templates against a registry.
type Engine struct {
	registry *Registry
	host     Host
}

// NewEngine creates an engine resolving tokens through reg and giving
// formatters access to host.
func NewEngine(reg *Registry, host Host) *Engine {
	return &Engine{registry: reg, host: host}
}

// Registry returns the registry the engine resolves tokens through.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Fill resolves every ${name} and ${name:format} placeholder in
// template and returns the resulting string.
//
// Placeholders are resolved in their order of appearance. The first
// unregistered name aborts the call with *UnknownTokenError, and a
// cancelled prompt aborts it with ErrPromptCancelled; in both cases no
// partial result is returned. Replacement text is spliced in during a
// single pass and never rescanned for further tokens.
func (e *Engine) Fill(ctx context.Context, sub Substitution, template string) (string, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := template[m[2]:m[3]]
		format := ""
		if m[4] >= 0 {
			format = template[m[4]:m[5]]
		}

		formatter, ok := e.registry.Lookup(name)
		if !ok {
			return "", &UnknownTokenError{Name: name}
		}

		resolved, err := formatter.Format(ctx, sub, e.host, format)
		if err != nil {
			return "", fmt.Errorf("resolving token %q: %w", name, err)
		}

		b.WriteString(template[last:m[0]])
		b.WriteString(resolved)
		last = m[1]
	}
	b.WriteString(template[last:])

	return b.String(), nil
}
