// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitZerolog initializes the global zerolog logger.
//
// level and logFormat determine where the logs go and what format is used.
func InitZerolog(level string, logFormat string) (*Logger, error) {
	if !isValidLogFormat(logFormat) {
		return nil, fmt.Errorf("unknown log format: %q", logFormat)
	}

	switch logFormat {
	case LogJSON:
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	case LogConsolePretty:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	case LogJournald:
		return nil, errors.New("journald logging not wired in this build")
	case LogDiscard:
		log.Logger = zerolog.New(io.Discard)
	default:
		return nil, fmt.Errorf("logFormat %q not known", logFormat)
	}

	if err := SetLogLevel(level); err != nil {
		return nil, err
	}
	return &log.Logger, nil
}
