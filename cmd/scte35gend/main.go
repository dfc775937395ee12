// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Dash-Industry-Forum/livesim2/cmd/scte35gend/app"
	"github.com/Dash-Industry-Forum/livesim2/internal"
	"github.com/Dash-Industry-Forum/livesim2/pkg/logging"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	cfg, err := app.LoadConfig(os.Args)
	if err != nil {
		if strings.Contains(err.Error(), "help requested") {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error loading config: %s\n", err.Error())
		return 1
	}

	logger, err := logging.InitZerolog(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logging: %s\n", err.Error())
		return 1
	}

	srv, err := app.SetupServer(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up server")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go srv.Drive(ctx)

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Router}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	logger.Info().Str("addr", cfg.Addr).Str("version", internal.GetVersion()).Msg("scte35gend listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server error")
		return 1
	}
	return 0
}
