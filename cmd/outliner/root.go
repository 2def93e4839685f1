package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/version"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Infer document structure from PDF files",
	Long: `Outliner reads a PDF and infers its structure from layout alone:
the document title and a hierarchical outline of H1/H2/H3 headings with
page numbers. It works from font statistics and text positioning, so it
needs no embedded bookmarks or tagged structure.

The pipeline includes:
  - Font statistics profiling to find the body text size
  - Multi-tier heading classification (numbered, typographic, structural)
  - Form detection so fillable documents yield no false outline
  - Title selection scored by prominence and position`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./outliner.yaml or ~/.outliner/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		setupLogger()
		return nil
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires viper: defaults, OUTLINER_ environment variables, and
// an optional config file.
func initConfig() error {
	viper.SetDefault("pretty", false)
	viper.SetDefault("patterns", "")

	viper.SetEnvPrefix("OUTLINER")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outliner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.outliner")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
