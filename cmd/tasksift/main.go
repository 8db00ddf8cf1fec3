// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tasksift CLI, a thin driver
// around the extraction engine: it reads text the way an ingestion layer
// would, runs a parse, and prints the candidates. The engine itself
// performs no I/O.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tasksift CLI.
var rootCmd = &cobra.Command{
	Use:   "tasksift",
	Short: "Extract actionable task candidates from unstructured text",
	Long: `tasksift scans email bodies and converted documents for actionable
tasks. The extraction engine segments text into sections, matches
sentences and list items against a pattern library, resolves deadline
expressions, classifies priority, and returns scored, deduplicated
candidates.

Structured rows (pre-parsed spreadsheet tables) can be supplied alongside
the text and enter the same scoring and ranking stages.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tasksift.yaml or ~/.config/tasksift/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tasksift")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tasksift"))
		}
	}

	viper.SetEnvPrefix("TASKSIFT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
