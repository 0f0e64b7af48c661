package commands

import (
	"fmt"
	"sort"

	"github.com/inkwell-md/inkwell/internal/token"
	"github.com/spf13/cobra"
)

// TokensCmd creates the 'tokens' command: list the registered tokens.
func TokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the registered template tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := token.DefaultRegistry().Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
