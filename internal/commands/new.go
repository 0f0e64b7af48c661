package commands

import (
	"fmt"
	"os"
	"path"

	"github.com/inkwell-md/inkwell/internal/input"
	"github.com/inkwell-md/inkwell/internal/output"
	"github.com/inkwell-md/inkwell/internal/token"
	"github.com/inkwell-md/inkwell/internal/vault"
	"github.com/spf13/cobra"
)

// NewCmd creates the 'new' command: create a note at a templated path.
func NewCmd() *cobra.Command {
	var contentTemplate, from string
	var noInput bool

	cmd := &cobra.Command{
		Use:   "new <path-template>",
		Short: "Create a note at a templated vault path",
		Long: `Create a note whose path is produced by filling a template.

The path template is validated (token syntax aware) before any token
resolves, so an invalid name fails fast instead of mid-prompt. Parent
folders are created as needed. With --template, the file's content is
rendered from the given template file against the same naming facts.

Examples:
  inkwell new 'journal/${date:2006/01}/${date}.md'
  inkwell new 'inbox/${prompt:Note title}.md' --template skeleton.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			prompter := &input.Prompter{ForcePlain: noInput}
			engine := newEngine(cfg, prompter)

			pathTemplate := args[0]
			if reason := token.ValidatePath(engine.Registry(), pathTemplate); reason != "" {
				return fmt.Errorf("invalid path template: %s", reason)
			}

			sub := token.NewSubstitution(token.NormalizeTokens(pathTemplate), from)
			target, err := engine.Fill(cmd.Context(), sub, pathTemplate)
			if err != nil {
				return err
			}
			if reason := token.ValidatePath(engine.Registry(), target); reason != "" {
				return fmt.Errorf("invalid path %q: %s", target, reason)
			}

			content := ""
			if contentTemplate != "" {
				raw, err := os.ReadFile(contentTemplate)
				if err != nil {
					return fmt.Errorf("reading content template: %w", err)
				}
				content, err = engine.Fill(cmd.Context(), token.NewSubstitution(target, from), string(raw))
				if err != nil {
					return err
				}
			}

			store := vault.NewFileStore(cfg.Vault)
			if dir := path.Dir(target); dir != "." {
				if err := store.Mkdir(cmd.Context(), dir); err != nil {
					return err
				}
			}
			if err := store.Create(cmd.Context(), target, content); err != nil {
				return err
			}

			output.Success("Created " + target)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentTemplate, "template", "", "Template file rendered as the note's content")
	cmd.Flags().StringVar(&from, "from", "", "Original copied file name")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Answer prompts from stdin instead of the interactive UI")

	return cmd
}
