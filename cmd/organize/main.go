// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the organize CLI, which moves files
// that do not match a keep pattern into an _other directory.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdtidy/internal/config"
	"github.com/pdiddy/mdtidy/internal/console"
	"github.com/pdiddy/mdtidy/internal/organize"
	"github.com/pdiddy/mdtidy/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the organize command. Settings resolve through v;
// progress goes to stdout and diagnostics to stderr.
func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <root_dir> <extension>",
		Short: "Move files not matching a keep pattern into _other",
		Long: `Organize scans root_dir recursively for files with the given extension.
Files whose name matches --pattern stay where they are; every other match is
moved into root_dir/_other. Name collisions in _other get a _1, _2, ...
suffix before the extension.

The extension is either a plain token such as "jpg" (lowercase and uppercase
suffixes are searched separately) or a regular expression fragment such as
"(jpg|png)", matched case-insensitively at the end of the file name.

A root_dir that does not exist is created, unless --dry-run is given.`,
		Example: `  organize ~/Pictures jpg --pattern '^IMG_\d+' --dry-run
  organize ./scans '(tif|png)' --pattern final --report moves.yaml`,
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(v, cfgFile, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, args, v, stdout, stderr)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./mdtidy.yaml or ~/.config/mdtidy/mdtidy.yaml)")
	cmd.PersistentFlags().String("color", string(types.ColorAuto), "color diagnostics: auto, always, or never")
	v.BindPFlag(config.KeyColor, cmd.PersistentFlags().Lookup("color"))

	cmd.Flags().String("pattern", "", "regular expression matching file names to keep (required)")
	cmd.Flags().Bool("dry-run", false, "show what would be moved without actually moving")
	cmd.Flags().String("report", "", "write a YAML record of kept and moved files to this path")
	v.BindPFlag(config.KeyOrganizePattern, cmd.Flags().Lookup("pattern"))
	v.BindPFlag(config.KeyOrganizeReport, cmd.Flags().Lookup("report"))

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string, v *viper.Viper, stdout, stderr io.Writer) error {
	// The keep pattern may come from the flag, the config file, or
	// MDTIDY_ORGANIZE_PATTERN, so cobra's MarkFlagRequired cannot be used.
	if !v.IsSet(config.KeyOrganizePattern) {
		return errors.New(`required flag "pattern" not set`)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	cfg := types.OrganizeConfig{
		RootDir:    args[0],
		Extension:  args[1],
		Pattern:    v.GetString(config.KeyOrganizePattern),
		DryRun:     dryRun,
		ReportPath: v.GetString(config.KeyOrganizeReport),
	}
	c := console.New(stderr, config.Color(v))

	summary, err := organize.Organize(cfg, stdout, c)
	if cfg.ReportPath != "" && summary.Root != "" {
		if rerr := organize.WriteReport(cfg.ReportPath, organize.NewReport(summary, err == nil)); rerr != nil {
			if err == nil {
				return rerr
			}
			c.Errorf("%v", rerr)
		} else {
			c.Successf("Report written to %s", cfg.ReportPath)
		}
	}
	return err
}

func main() {
	v := viper.GetViper()
	if err := newRootCmd(v, os.Stdout, os.Stderr).Execute(); err != nil {
		console.New(os.Stderr, config.Color(v)).Errorf("%v", err)
		os.Exit(1)
	}
}
