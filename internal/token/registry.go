package token

import (
	"context"
	"strings"
	"time"
)

// Host exposes the collaborators a Formatter may consult while
// resolving a token. Formatters that need neither ignore it.
type Host interface {
	// Now returns the current local time.
	Now() time.Time

	// Prompt asks the user for a string. validate receives each
	// candidate value and returns a reason string ("" means valid).
	// A cancelled prompt returns ErrPromptCancelled.
	Prompt(ctx context.Context, title, defaultValue string, validate func(string) string) (string, error)
}

// Formatter produces the replacement text for one token occurrence.
//
// format is the optional `:formatSpecifier` portion of the placeholder,
// passed verbatim and empty when absent. Formatters that take no format
// ignore it. A Formatter may block (interactive prompts, clock reads);
// ctx bounds that work.
type Formatter interface {
	Format(ctx context.Context, sub Substitution, host Host, format string) (string, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(ctx context.Context, sub Substitution, host Host, format string) (string, error)

func (f FormatterFunc) Format(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
	return f(ctx, sub, host, format)
}

// Registry maps token names to formatters. Names are case-insensitive.
// Registries are plain values; construct one per engine (tests may hold
// several independent registries). There is no removal operation.
type Registry struct {
	formatters map[string]Formatter
	// display keeps the spelling each name was registered under.
	display map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
		display:    make(map[string]string),
	}
}

// Register adds a formatter under name. Registering an existing name
// overwrites the previous formatter.
func (r *Registry) Register(name string, f Formatter) {
	key := strings.ToLower(name)
	r.formatters[key] = f
	r.display[key] = name
}

// IsRegistered reports whether name resolves to a formatter.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.formatters[strings.ToLower(name)]
	return ok
}

// Lookup returns the formatter for name.
func (r *Registry) Lookup(name string) (Formatter, bool) {
	f, ok := r.formatters[strings.ToLower(name)]
	return f, ok
}

// Names returns the registered token names, in their registered
// spelling, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.display))
	for _, name := range r.display {
		names = append(names, name)
	}
	return names
}
