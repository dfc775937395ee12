package app

import (
	"github.com/rs/zerolog"

	"github.com/Dash-Industry-Forum/livesim2/pkg/scte35"
)

// zerologAdapter satisfies scte35.Logger over a topic-scoped zerolog
// sub-logger, so the Generator's warn-level diagnostics flow through the
// same structured logging the rest of the daemon uses.
type zerologAdapter struct {
	lg *zerolog.Logger
}

var _ scte35.Logger = zerologAdapter{}

func (a zerologAdapter) Warnf(format string, args ...interface{}) {
	a.lg.Warn().Msgf(format, args...)
}
