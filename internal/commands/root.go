package commands

import (
	"time"

	"github.com/inkwell-md/inkwell/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped by the release build.
var Version = "dev"

// RootCmd creates and returns the root command for the inkwell CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Templated naming and safe link rewriting for markdown vaults",
		Long: `Inkwell generates note names and paths from templates with dynamic
tokens (dates, prompts, random strings, source-file metadata) and
applies batches of anchored text edits to vault notes with optimistic
concurrency, retrying while the note is being modified elsewhere.

Configuration is read from inkwell.yml in the working directory.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("vault", ".", "Vault root directory")

	return cmd
}

// Config holds the settings every command draws from, read from
// inkwell.yml when present and falling back to defaults.
type Config struct {
	Vault       string
	RetryBudget time.Duration
	DateLayout  string
}

// LoadConfig reads inkwell.yml from the working directory. A missing
// file is not an error; defaults apply.
func LoadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetConfigName("inkwell")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("vault", ".")
	v.SetDefault("retry_budget", "60s")
	v.SetDefault("date_layout", "2006-01-02")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	budget, err := time.ParseDuration(v.GetString("retry_budget"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Vault:       v.GetString("vault"),
		RetryBudget: budget,
		DateLayout:  v.GetString("date_layout"),
	}

	// The --vault flag wins over the config file.
	if cmd != nil && cmd.Flags().Changed("vault") {
		cfg.Vault, _ = cmd.Flags().GetString("vault")
	}
	return cfg, nil
}
