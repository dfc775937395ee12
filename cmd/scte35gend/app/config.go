// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/spf13/pflag"

	"github.com/Dash-Industry-Forum/livesim2/pkg/logging"
)

// ServerConfig configures the scte35gend daemon: its debug/metrics HTTP
// surface and the Generator's emission cadence.
type ServerConfig struct {
	LogFormat string `json:"logformat"`
	LogLevel  string `json:"loglevel"`
	Addr      string `json:"addr"`
	// IntervalMS is the minimum repetition interval between emitted
	// sections, in milliseconds; converted to 27MHz host-clock ticks
	// before being handed to the Generator.
	IntervalMS int `json:"intervalms"`
}

var DefaultConfig = ServerConfig{
	LogFormat:  logging.LogJSON,
	LogLevel:   "info",
	Addr:       ":8553",
	IntervalMS: 50,
}

// LoadConfig loads defaults, an optional config file, the command line,
// and finally environment variables prefixed SCTE35GEN_, in that order
// of increasing precedence.
func LoadConfig(args []string) (*ServerConfig, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig, "json"), nil); err != nil {
		return nil, err
	}

	f := pflag.NewFlagSet("scte35gend", pflag.ContinueOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Run as scte35gend [options]:\n")
		f.PrintDefaults()
	}
	cfgFile := f.String("cfg", "", "path to a JSON config file")
	f.String("addr", k.String("addr"), "listen address for the debug/metrics HTTP server")
	lf := strings.Join(logging.LogFormats, ", ")
	f.String("logformat", k.String("logformat"), fmt.Sprintf("log format [%s]", lf))
	ll := strings.Join(logging.LogLevels, ", ")
	f.String("loglevel", k.String("loglevel"), fmt.Sprintf("log level [%s]", ll))
	f.Int("intervalms", k.Int("intervalms"), "minimum repetition interval between emitted sections (ms)")
	if err := f.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("command line parse: %w", err)
	}

	if *cfgFile != "" {
		if err := k.Load(file.Provider(*cfgFile), json.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("parsing cli: %w", err)
	}
	if err := k.Load(env.Provider("SCTE35GEN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SCTE35GEN_")), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg ServerConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
