// Package config loads the optional dseq defaults file.
//
// A defaults file lets a user set a house style (header row, output
// pattern) once instead of repeating flags. Explicit flags always win over
// the file; DSEQ_-prefixed environment variables sit between the two.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the loadable defaults.
type Config struct {
	// DateFormat is the default strftime output pattern.
	DateFormat string

	// Header is the default header row.
	Header string
}

// Load reads the defaults. With an explicit path the file must exist and
// parse. With an empty path the standard locations are searched
// ($XDG_CONFIG_HOME/dseq and the working directory) and a missing file
// yields an empty config; only a malformed one is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DSEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else {
		v.SetConfigName("dseq")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "dseq"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Config{
		DateFormat: v.GetString("date-format"),
		Header:     v.GetString("header"),
	}, nil
}
