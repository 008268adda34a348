package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docqa/internal/config"
)

var (
	cfgFile       string
	currentConfig *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:          "docqa",
	Short:        "docqa answers questions from a single document by keyword matching",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var (
			cfg *config.AppConfig
			err error
		)
		if cfgFile == "" {
			cfg, _, err = config.LoadDefault()
		} else {
			cfg, err = config.Load(cfgFile)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		currentConfig = cfg
		return nil
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./config.yaml or ~/.config/docqa/config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("segmentation", "", "segmentation policy: paragraph or sentence")
	flags.Int("top-k", 0, "number of passages to return")
	flags.Bool("highlight", false, "mark matched keywords in answers")
	flags.String("match", "", "match policy: substring or word")
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.AppConfig) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("segmentation") {
		cfg.Engine.Segmentation, _ = flags.GetString("segmentation")
	}
	if flags.Changed("top-k") {
		cfg.Engine.TopK, _ = flags.GetInt("top-k")
	}
	if flags.Changed("highlight") {
		cfg.Engine.Highlight, _ = flags.GetBool("highlight")
	}
	if flags.Changed("match") {
		cfg.Engine.Match, _ = flags.GetString("match")
	}
}
