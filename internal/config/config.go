// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads optional settings shared by the mdtidy commands from
// a YAML file and MDTIDY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/mdtidy/pkg/types"
)

const (
	// KeyColor selects console styling: auto, always, or never.
	KeyColor = "color"
	// KeyOrganizePattern supplies a default keep pattern for organize.
	KeyOrganizePattern = "organize.pattern"
	// KeyOrganizeReport supplies a default report path for organize.
	KeyOrganizeReport = "organize.report"

	envPrefix  = "MDTIDY"
	configName = "mdtidy"
)

// envReplacer maps nested keys to variable names: organize.pattern -> MDTIDY_ORGANIZE_PATTERN.
var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// Init reads cfgFile when set, otherwise looks for mdtidy.yaml in the
// working directory and in ~/.config/mdtidy. A missing file is not an error.
// The file in use is announced on w.
func Init(v *viper.Viper, cfgFile string, w io.Writer) error {
	v.SetDefault(KeyColor, string(types.ColorAuto))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(w, "Using config file:", v.ConfigFileUsed())
	return nil
}

// Color returns the configured color mode, falling back to auto for
// unknown values.
func Color(v *viper.Viper) types.ColorMode {
	m := types.ColorMode(v.GetString(KeyColor))
	if !m.Valid() {
		return types.ColorAuto
	}
	return m
}
