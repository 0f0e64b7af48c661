package commands

import (
	"fmt"

	"github.com/inkwell-md/inkwell/internal/output"
	"github.com/inkwell-md/inkwell/internal/vault"
	"github.com/spf13/cobra"
)

// CleanupCmd creates the 'cleanup' command: remove a folder while
// keeping notes other notes still link to.
func CleanupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cleanup <folder>",
		Short: "Remove a folder, keeping notes that are still referenced",
		Long: `Remove a vault folder recursively. A note that other notes outside
the folder still link to is kept, and the folders above it stay in
place; everything else is removed. With --force, backlinks are
ignored and the whole folder goes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			store := vault.NewFileStore(cfg.Vault)

			var index *vault.Index
			if !force {
				index, err = vault.BuildIndex(cmd.Context(), store)
				if err != nil {
					return err
				}
			}

			removed, err := vault.NewCleanup(store, index).RemoveFolder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				output.Warn(fmt.Sprintf("Folder %s partially removed: some notes are still referenced", args[0]))
				return nil
			}

			output.Success("Removed " + args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore backlinks and remove everything")

	return cmd
}
