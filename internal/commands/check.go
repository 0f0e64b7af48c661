package commands

import (
	"fmt"

	"github.com/inkwell-md/inkwell/internal/output"
	"github.com/inkwell-md/inkwell/internal/token"
	"github.com/spf13/cobra"
)

// CheckCmd creates the 'check' command: validate a name or path.
func CheckCmd() *cobra.Command {
	var filename, noTokens bool

	cmd := &cobra.Command{
		Use:   "check <name-or-path>",
		Short: "Validate a templated name or vault path",
		Long: `Validate a name or path against the filename rules, with token
syntax allowed unless --no-tokens is given. Prints ok, or the reason
the name is rejected.

Examples:
  inkwell check 'notes/${date}/draft.md'
  inkwell check --filename 'report:v2'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := token.DefaultRegistry()

			var reason string
			if filename {
				reason = token.ValidateFilename(reg, args[0], !noTokens)
			} else {
				reason = token.ValidatePath(reg, args[0])
			}

			if reason != "" {
				output.Error(reason)
				return fmt.Errorf("invalid: %s", reason)
			}
			output.Success("ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&filename, "filename", false, "Check a single name segment instead of a path")
	cmd.Flags().BoolVar(&noTokens, "no-tokens", false, "Reject token syntax")

	return cmd
}
