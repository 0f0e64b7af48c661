package commands

import (
	"fmt"

	"github.com/inkwell-md/inkwell/internal/input"
	"github.com/inkwell-md/inkwell/internal/token"
	"github.com/spf13/cobra"
)

// RenderCmd creates the 'render' command: fill a template and print
// the result without touching the vault.
func RenderCmd() *cobra.Command {
	var targetPath, from string
	var noInput bool

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Fill a template and print the result",
		Long: `Fill a template string and print the result.

Templates contain ${token} or ${token:format} placeholders. The
--path and --from flags supply the naming facts the file and folder
tokens draw from.

Examples:
  inkwell render '${date:2006-01-02} ${prompt:Title}'
  inkwell render 'attachments/${fileName}/${originalCopiedFileName}.${originalCopiedFileExtension}' \
      --path notes/report.md --from chart.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			engine := newEngine(cfg, &input.Prompter{ForcePlain: noInput})
			sub := token.NewSubstitution(targetPath, from)

			result, err := engine.Fill(cmd.Context(), sub, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", "", "Target file path the file/folder tokens describe")
	cmd.Flags().StringVar(&from, "from", "", "Original copied file name")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Answer prompts from stdin instead of the interactive UI")

	return cmd
}
