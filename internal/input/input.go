// Package input provides the interactive prompt service. Prompts run
// as a small bubbletea text-input program on a terminal and fall back
// to plain line reading otherwise, so scripted use keeps working.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrCancelled signals that the user aborted a prompt.
var ErrCancelled = errors.New("cancelled")

// Validator checks a candidate value and returns the reason it is
// rejected, or "" when it is acceptable.
type Validator func(value string) string

// Prompter asks the user for values.
type Prompter struct {
	// In and Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	// ForcePlain skips the bubbletea UI even on a terminal. Tests and
	// the --no-input flag use it.
	ForcePlain bool
}

// Ask requests a string from the user. defaultValue is returned for
// empty input; validate rejects values with a reason shown inline and
// the prompt repeats until a valid value is entered or the user
// cancels.
func (p *Prompter) Ask(ctx context.Context, title, defaultValue string, validate Validator) (string, error) {
	if validate == nil {
		validate = func(string) string { return "" }
	}

	if p.interactive() {
		return p.askTea(ctx, title, defaultValue, validate)
	}
	return p.askPlain(title, defaultValue, validate)
}

func (p *Prompter) interactive() bool {
	if p.ForcePlain || p.In != nil {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (p *Prompter) in() io.Reader {
	if p.In != nil {
		return p.In
	}
	return os.Stdin
}

func (p *Prompter) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// askPlain reads lines until one validates. EOF counts as
// cancellation.
func (p *Prompter) askPlain(title, defaultValue string, validate Validator) (string, error) {
	reader := bufio.NewReader(p.in())
	for {
		if defaultValue != "" {
			fmt.Fprintf(p.out(), "%s (%s): ", title, defaultValue)
		} else {
			fmt.Fprintf(p.out(), "%s: ", title)
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return "", ErrCancelled
			}
			return "", err
		}

		value := strings.TrimSpace(line)
		if value == "" {
			value = defaultValue
		}
		if reason := validate(value); reason != "" {
			fmt.Fprintf(p.out(), "invalid: %s\n", reason)
			continue
		}
		return value, nil
	}
}

// askTea runs the text-input program.
func (p *Prompter) askTea(ctx context.Context, title, defaultValue string, validate Validator) (string, error) {
	model := newPromptModel(title, defaultValue, validate)
	prog := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result := final.(promptModel)
	if result.cancelled {
		return "", ErrCancelled
	}
	return result.value(), nil
}
