// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tasksift/internal/enrich"
	"github.com/pdiddy/tasksift/internal/extract"
	"github.com/pdiddy/tasksift/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract task candidates from a text file or stdin",
	Long: `Parse reads plain text from a file (or stdin when no file is given),
runs the extraction pipeline, and prints the ranked task candidates.

A structured-rows file (YAML or JSON array of {title, source, due_date,
assignee, priority, row_number} objects) can be supplied with --rows;
rows bypass text extraction and join the candidates directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	rowsFile, _ := cmd.Flags().GetString("rows")
	var rows []types.Row
	if rowsFile != "" {
		rows, err = loadRows(rowsFile)
		if err != nil {
			return err
		}
	}

	cfg := parserConfig()

	opts := []extract.Option{}
	if enabled, _ := cmd.Flags().GetBool("enrich"); enabled {
		ecfg := enrichmentConfig()
		ecfg.Enabled = true
		opts = append(opts, extract.WithEnricher(enrich.NewRegexExtractor(), ecfg))
	}

	parser := extract.New(cfg, opts...)
	candidates := parser.Parse(text, rows)

	format, _ := cmd.Flags().GetString("format")
	return writeCandidates(os.Stdout, candidates, format)
}

// readInput returns the contents of the named file, or stdin when no
// argument was given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// loadRows reads a structured-rows file. JSON is detected by extension;
// everything else parses as YAML (which accepts JSON anyway).
func loadRows(path string) ([]types.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file %s: %w", path, err)
	}

	var rows []types.Row
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("parsing rows file %s: %w", path, err)
		}
		return rows, nil
	}
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing rows file %s: %w", path, err)
	}
	return rows, nil
}

// parserConfig builds the engine config from the loaded viper config.
// Missing keys fall back to the canonical defaults via Normalize.
func parserConfig() types.ParserConfig {
	var cfg types.ParserConfig
	if err := viper.UnmarshalKey("parser", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring invalid parser config: %v\n", err)
		return types.ParserConfig{}
	}
	return cfg
}

// enrichmentConfig builds the enrichment config from the loaded viper
// config. The --enrich flag decides whether the stage runs; the config
// only tunes it.
func enrichmentConfig() types.EnrichmentConfig {
	var cfg types.EnrichmentConfig
	if err := viper.UnmarshalKey("enrichment", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring invalid enrichment config: %v\n", err)
		return types.EnrichmentConfig{}
	}
	return cfg
}

func init() {
	parseCmd.Flags().String("rows", "", "structured rows file (YAML or JSON)")
	parseCmd.Flags().Bool("enrich", true, "run the entity-enrichment stage")
	parseCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(parseCmd)
}
