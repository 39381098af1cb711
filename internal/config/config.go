// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the commands, backed
// by Viper. Settings come from defaults, an optional config file, and
// SERIESPLOT_* environment variables, in increasing priority.
// Command-line flags override all of them.
package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// settings. For example, SERIESPLOT_LOGGING_LEVEL sets logging.level.
const EnvPrefix = "SERIESPLOT"

// Config manages command configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault("logging.level", "info")

	v.SetDefault("grouping.sep", "_")
	v.SetDefault("grouping.match", "exact")
	v.SetDefault("grouping.order", "first")

	v.SetDefault("chart.width_in", 10.0)
	v.SetDefault("chart.height_in", 6.0)
	v.SetDefault("chart.dpi", 100)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.formats", "png")
	v.SetDefault("output.html", false)

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "seriesplot.db")

	v.SetDefault("gcs.credentials", "")

	v.SetDefault("experiment.seed", 0)
	v.SetDefault("experiment.repeat", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file. The format is taken
// from the file extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

func (c *Config) Sep() string   { return c.v.GetString("grouping.sep") }
func (c *Config) Match() string { return c.v.GetString("grouping.match") }
func (c *Config) Order() string { return c.v.GetString("grouping.order") }

func (c *Config) ChartWidthIn() float64  { return c.v.GetFloat64("chart.width_in") }
func (c *Config) ChartHeightIn() float64 { return c.v.GetFloat64("chart.height_in") }
func (c *Config) ChartDPI() int          { return c.v.GetInt("chart.dpi") }

func (c *Config) OutputDir() string     { return c.v.GetString("output.dir") }
func (c *Config) OutputFormats() string { return c.v.GetString("output.formats") }
func (c *Config) OutputHTML() bool      { return c.v.GetBool("output.html") }

func (c *Config) DBDriver() string { return c.v.GetString("db.driver") }
func (c *Config) DBDSN() string    { return c.v.GetString("db.dsn") }

func (c *Config) GCSCredentials() string { return c.v.GetString("gcs.credentials") }

func (c *Config) Seed() uint64 { return c.v.GetUint64("experiment.seed") }
func (c *Config) Repeat() int  { return c.v.GetInt("experiment.repeat") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger writing human-readable lines
// to w at the configured level. An unknown level means info.
func (c *Config) CreateLogger(w io.Writer, command string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("cmd", command).Logger()
}
