package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/inkwell-md/inkwell/internal/output"
	"github.com/inkwell-md/inkwell/internal/patch"
	"github.com/inkwell-md/inkwell/internal/vault"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// changeFile is the YAML description of a patch batch.
type changeFile struct {
	Document string `yaml:"document"`
	Changes  []struct {
		Start int    `yaml:"start"`
		End   int    `yaml:"end"`
		Old   string `yaml:"old"`
		New   string `yaml:"new"`
	} `yaml:"changes"`
}

// ApplyCmd creates the 'apply' command: merge a batch of anchored
// edits into a note.
func ApplyCmd() *cobra.Command {
	var budget time.Duration

	cmd := &cobra.Command{
		Use:   "apply <changes.yml>",
		Short: "Apply a batch of anchored edits to a note",
		Long: `Apply a set of offset-anchored text changes to a vault note.

The change file names the document and lists changes with byte
offsets, the text expected there, and the replacement. The batch is
all-or-nothing: a mismatch or overlap means nothing is written, and
the whole cycle retries with a fresh snapshot while the note is being
modified elsewhere, up to the retry budget.

Example change file:
  document: notes/index.md
  changes:
    - {start: 120, end: 141, old: "[[drafts/plan]]", new: "[[archive/plan]]"}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("budget") {
				budget = cfg.RetryBudget
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading change file: %w", err)
			}
			var cf changeFile
			if err := yaml.Unmarshal(data, &cf); err != nil {
				return fmt.Errorf("parsing change file: %w", err)
			}
			if cf.Document == "" {
				return fmt.Errorf("change file names no document")
			}

			changes := make([]patch.Change, len(cf.Changes))
			for i, c := range cf.Changes {
				changes[i] = patch.Change{Start: c.Start, End: c.End, OldText: c.Old, NewText: c.New}
			}

			store := vault.NewFileStore(cfg.Vault)
			patcher := patch.NewPatcher(store).WithBudget(budget)

			err = patcher.Apply(cmd.Context(), cf.Document, func(ctx context.Context, snapshot string) ([]patch.Change, error) {
				return changes, nil
			})
			if err != nil {
				return err
			}

			output.Success(fmt.Sprintf("Applied %d change(s) to %s", len(changes), cf.Document))
			return nil
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", patch.DefaultBudget, "Retry budget for conflicting edits")

	return cmd
}
