// config.go
// Copyright (C) 2026 The tileplay authors

// This file contains the configuration of the move service and
// command line tool, read from the environment, optional .env
// files and an optional tileplay.yaml file, as well as the
// logging setup

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package tileplay

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the settings of the service and the command line tool
type Config struct {
	Port           string
	AccessKey      string
	AllowedOrigins string
	DictionaryPath string
	LogLevel       string
	Workers        int
	MaxAnchors     int
	CrossCacheSize int
}

// Configuration keys, which are also the (upper cased)
// names of the corresponding environment variables
const (
	keyPort           = "port"
	keyAccessKey      = "access_key"
	keyAllowedOrigins = "allowed_origins"
	keyDictionaryPath = "dictionary_path"
	keyLogLevel       = "log_level"
	keyWorkers        = "workers"
	keyMaxAnchors     = "max_anchors"
	keyCrossCacheSize = "cross_cache_size"
)

// LoadConfig reads the configuration. The given .env files are loaded
// into the environment first, if they exist; variables that are already
// set are not overridden. Environment variables take precedence over
// values from a tileplay.yaml file in the working directory, which in
// turn take precedence over the defaults.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyAccessKey, "")
	v.SetDefault(keyAllowedOrigins, "*")
	v.SetDefault(keyDictionaryPath, "words.txt")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(keyMaxAnchors, 0)
	v.SetDefault(keyCrossCacheSize, DefaultCrossCacheSize)
	v.AutomaticEnv()

	v.SetConfigName("tileplay")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:           v.GetString(keyPort),
		AccessKey:      v.GetString(keyAccessKey),
		AllowedOrigins: v.GetString(keyAllowedOrigins),
		DictionaryPath: v.GetString(keyDictionaryPath),
		LogLevel:       v.GetString(keyLogLevel),
		Workers:        v.GetInt(keyWorkers),
		MaxAnchors:     v.GetInt(keyMaxAnchors),
		CrossCacheSize: v.GetInt(keyCrossCacheSize),
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("invalid number of workers: %v", cfg.Workers)
	}
	return cfg, nil
}

// GeneratorOptions returns the Generator options given by the configuration
func (cfg *Config) GeneratorOptions() []GeneratorOption {
	return []GeneratorOption{
		WithWorkers(cfg.Workers),
		WithMaxAnchors(cfg.MaxAnchors),
	}
}

// SetupLogging sets the global log level and directs log output
// to the given writer. If console is true, human-readable console
// output is produced instead of JSON.
func SetupLogging(level string, w io.Writer, console bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if w == nil {
		w = os.Stderr
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
