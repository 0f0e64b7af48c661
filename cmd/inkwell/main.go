package main

import (
	"os"

	"github.com/inkwell-md/inkwell/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.RenderCmd())
	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.ApplyCmd())
	rootCmd.AddCommand(commands.CleanupCmd())
	rootCmd.AddCommand(commands.TokensCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
