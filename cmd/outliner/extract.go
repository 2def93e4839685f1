package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner"
)

var (
	extractOutput   string
	extractPretty   bool
	extractPatterns string
)

var extractCmd = &cobra.Command{
	Use:   "extract <input.pdf>",
	Short: "Extract the title and heading outline from a PDF",
	Long: `Extract reads a PDF, infers its title and heading outline, and writes
the result as JSON.

The output path defaults to the input path with a .json extension, so
report.pdf produces report.json. Nothing is written when extraction
fails.

Examples:
  outliner extract report.pdf                  # writes report.json
  outliner extract report.pdf -o out.json      # explicit output path
  outliner extract report.pdf --pretty         # indented JSON
  outliner extract report.pdf --patterns p.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		outPath := extractOutput
		if outPath == "" {
			outPath = derivedOutputPath(input)
		}

		e := outliner.Open(input)
		if patterns := patternsPath(); patterns != "" {
			data, err := os.ReadFile(patterns)
			if err != nil {
				return err
			}
			e = e.WithPatternFile(data)
		}

		result, err := e.Extract()
		if err != nil {
			return err
		}

		var out []byte
		if extractPretty || viper.GetBool("pretty") {
			out, err = json.MarshalIndent(result, "", "  ")
		} else {
			out, err = json.Marshal(result)
		}
		if err != nil {
			return err
		}
		out = append(out, '\n')

		if err := os.WriteFile(outPath, out, 0644); err != nil {
			return err
		}

		slog.Info("extraction complete",
			"input", input,
			"output", outPath,
			"title", result.Title,
			"headings", len(result.Outline),
		)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: input path with .json extension)")
	extractCmd.Flags().BoolVarP(&extractPretty, "pretty", "p", false, "indent the JSON output")
	extractCmd.Flags().StringVar(&extractPatterns, "patterns", "", "YAML file with additional ignore/field/title patterns")
}

// patternsPath resolves the pattern file from the flag or configuration
func patternsPath() string {
	if extractPatterns != "" {
		return extractPatterns
	}
	return viper.GetString("patterns")
}

// derivedOutputPath swaps the input's extension for .json
func derivedOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}
