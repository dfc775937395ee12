// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Dash-Industry-Forum/livesim2/internal"
	"github.com/Dash-Industry-Forum/livesim2/pkg/logging"
	"github.com/Dash-Industry-Forum/livesim2/pkg/scte35"
)

// Server wires a scte35.Generator to a debug HTTP surface exposing
// Prometheus metrics, a health check, and runtime log-level control.
type Server struct {
	Router    chi.Router
	Cfg       *ServerConfig
	Generator *scte35.Generator
	logger    *zerolog.Logger
}

// SetupServer constructs the router and the Generator, and configures
// the Generator's flow definition and emission interval.
func SetupServer(cfg *ServerConfig, logger *zerolog.Logger) (*Server, error) {
	alloc := newPoolBufferProvider(scte35BufferCapacity)
	emitter := loggingEmitter{lg: logging.SubLoggerWithTopic(logger, "emit")}
	genLogger := zerologAdapter{lg: logging.SubLoggerWithTopic(logger, "generator")}
	metrics := scte35.NewMetrics()

	gen := scte35.NewGenerator(alloc, emitter, genLogger, metrics)
	if err := gen.SetFlowDef(scte35.FlowDef{Format: scte35.InputFlowFormat}); err != nil {
		return nil, fmt.Errorf("set flow def: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.ZerologMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Mount("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("SCTE35GEND-Version", internal.GetVersion())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	for _, route := range logging.LogRoutes {
		r.MethodFunc(route.Method, route.Path, route.Handler)
	}

	s := &Server{
		Router:    r,
		Cfg:       cfg,
		Generator: gen,
		logger:    logger,
	}
	return s, nil
}

// scte35BufferCapacity mirrors the core's fixed per-section allocation
// size (PSI_MAX_SIZE + header). Declared here, not imported, because the
// core keeps it unexported: callers only ever allocate this one size.
const scte35BufferCapacity = 1021 + 3
