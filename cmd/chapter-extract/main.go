// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chapter-extract CLI.
// It scans a markdown document for "# Chapter" headings and prints
// the chapter titles in document order.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chapter-extract/internal/chapters"
	"github.com/pdiddy/chapter-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultInputPath is the document scanned when no path is given.
const defaultInputPath = "public/decks/aws-cloud-practicioner/book-data.md"

// newRootCmd builds the root command. Each command gets its own viper
// instance so repeated runs do not share configuration.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "chapter-extract [path]",
		Short: "List the chapter headings of a markdown document",
		Long: `chapter-extract scans a markdown document line by line and prints every
heading of the form "# Chapter ..." with the leading marker removed.

The document path is taken from the positional argument, the --input flag,
or input_path in the config file, in that order. Without any of them the
default deck document is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, v, args)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chapter-extract.yaml or ~/.config/chapter-extract/config.yaml)")
	rootCmd.Flags().String("input", defaultInputPath, "markdown document to scan")
	_ = v.BindPFlag("input_path", rootCmd.Flags().Lookup("input"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("chapter-extract")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "chapter-extract"))
		}
	}

	// Stdout carries only the chapter listing and stderr only read
	// failures, so a loaded config file is not announced.
	if err := v.ReadInConfig(); err != nil && cfgFile != "" {
		return fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
	return nil
}

func runExtract(cmd *cobra.Command, v *viper.Viper, args []string) error {
	var cfg types.ExtractorConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	out := cmd.OutOrStdout()
	titles, err := chapters.Extract(cfg.InputPath, out)
	if err != nil {
		return err
	}

	if len(titles) == 0 {
		fmt.Fprintln(out, "No chapters found.")
		return nil
	}
	for _, title := range titles {
		fmt.Fprintln(out, title)
	}
	return nil
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
