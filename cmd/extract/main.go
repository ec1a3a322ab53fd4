// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract CLI, which turns a JSON
// object written into a Markdown file back into Markdown chapters.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdtidy/internal/config"
	"github.com/pdiddy/mdtidy/internal/console"
	"github.com/pdiddy/mdtidy/internal/unjson"
	"github.com/pdiddy/mdtidy/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the extract command. Settings resolve through v;
// Markdown goes to stdout and diagnostics to stderr.
func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <input_file>",
		Short: "Extract JSON from Markdown and format as Markdown",
		Long: `Extract finds the JSON object mistakenly written into a Markdown file,
reads its "text" array of sections, and writes each section back out as a
"# Chapter N" block with its paragraphs.

The object is taken from the first "{" to the last "}" in the file. By
default the Markdown goes to standard output; use --output to write a file
or --overwrite to replace the input.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(v, cfgFile, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			pretty, _ := cmd.Flags().GetBool("pretty")

			cfg := types.ExtractConfig{
				InputPath:  args[0],
				OutputPath: output,
				Overwrite:  overwrite,
				Pretty:     pretty,
			}
			return unjson.Run(cfg, stdout, console.New(stderr, config.Color(v)))
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./mdtidy.yaml or ~/.config/mdtidy/mdtidy.yaml)")
	cmd.PersistentFlags().String("color", string(types.ColorAuto), "color diagnostics: auto, always, or never")
	v.BindPFlag(config.KeyColor, cmd.PersistentFlags().Lookup("color"))

	cmd.Flags().StringP("output", "o", "", "output Markdown file (default: stdout)")
	cmd.Flags().BoolP("overwrite", "w", false, "overwrite the input file with the extracted Markdown")
	cmd.Flags().BoolP("pretty", "p", false, "pretty print the JSON before processing (for debugging)")

	return cmd
}

func main() {
	v := viper.GetViper()
	if err := newRootCmd(v, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, unjson.ErrExit) {
			console.New(os.Stderr, config.Color(v)).Errorf("%v", err)
		}
		os.Exit(1)
	}
}
