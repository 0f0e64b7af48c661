package commands

import (
	"context"
	"errors"
	"time"

	"github.com/inkwell-md/inkwell/internal/input"
	"github.com/inkwell-md/inkwell/internal/token"
)

// cliHost wires the token formatters to the real clock and the
// interactive prompt service.
type cliHost struct {
	prompter *input.Prompter
}

func (h *cliHost) Now() time.Time {
	return time.Now()
}

func (h *cliHost) Prompt(ctx context.Context, title, defaultValue string, validate func(string) string) (string, error) {
	value, err := h.prompter.Ask(ctx, title, defaultValue, validate)
	if errors.Is(err, input.ErrCancelled) {
		return "", token.ErrPromptCancelled
	}
	return value, err
}

// newEngine builds the token engine every command shares: the default
// catalog, with the date token re-registered when the configured
// default layout differs.
func newEngine(cfg Config, prompter *input.Prompter) *token.Engine {
	reg := token.DefaultRegistry()

	if cfg.DateLayout != "" && cfg.DateLayout != token.DefaultDateLayout {
		layout := cfg.DateLayout
		reg.Register("date", token.FormatterFunc(func(ctx context.Context, sub token.Substitution, host token.Host, format string) (string, error) {
			if format == "" {
				format = layout
			}
			return host.Now().Format(format), nil
		}))
	}

	return token.NewEngine(reg, &cliHost{prompter: prompter})
}
