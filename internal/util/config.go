/**
 * Copyright (c) 2024 The qsubmit Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package util

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	TemplatePath string `mapstructure:"TemplatePath"`
	OutputPath   string `mapstructure:"OutputPath"`
	QsubBin      string `mapstructure:"QsubBin"`
	Marker       string `mapstructure:"Marker"`
	ArrayName    string `mapstructure:"ArrayName"`

	LogLevel string `mapstructure:"LogLevel"`
	LogPath  string `mapstructure:"LogPath"`
}

var DefaultConfigPath string

func init() {
	DefaultConfigPath = filepath.Join(HomeDir(), ".config", "qsubmit", "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		TemplatePath: filepath.Join(HomeDir(), "qsub_template.sh"),
		OutputPath:   filepath.Join(HomeDir(), "qsub.sh"),
		QsubBin:      "qsub",
		Marker:       "###CMD###",
		ArrayName:    "cmd",
		LogLevel:     "info",
	}
}

// ParseConfig loads the configuration file at path, falling back to
// defaults when the file does not exist. Environment variables prefixed
// with QSUBMIT_ override file values.
func ParseConfig(path string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("QSUBMIT")
	v.AutomaticEnv()

	v.SetDefault("TemplatePath", config.TemplatePath)
	v.SetDefault("OutputPath", config.OutputPath)
	v.SetDefault("QsubBin", config.QsubBin)
	v.SetDefault("Marker", config.Marker)
	v.SetDefault("ArrayName", config.ArrayName)
	v.SetDefault("LogLevel", config.LogLevel)
	v.SetDefault("LogPath", config.LogPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.TemplatePath = ExpandHome(config.TemplatePath)
	config.OutputPath = ExpandHome(config.OutputPath)
	config.LogPath = ExpandHome(config.LogPath)

	return config, nil
}
