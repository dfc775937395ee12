package app

import (
	"context"
	"time"

	"github.com/Dash-Industry-Forum/livesim2/pkg/scte35"
)

// Drive runs the Generator's clock loop until ctx is canceled: it
// converts wall-clock elapsed time into 27MHz host-clock ticks and
// calls Tick at twice the configured interval's rate, matching the
// "mux drives the tick" model described in spec section 1.
func (s *Server) Drive(ctx context.Context) {
	intervalTicks := uint64(s.Cfg.IntervalMS) * scte35.UclockFreq / 1000
	if ofd := s.Generator.SetInterval(intervalTicks); ofd != nil {
		s.logger.Info().
			Uint64("psi_section_interval", ofd.PSISectionInterval).
			Uint64("octet_rate", ofd.OctetRate).
			Uint64("tb_rate", ofd.TbRate).
			Msg("output flow definition published")
	}

	tickEvery := time.Duration(s.Cfg.IntervalMS) * time.Millisecond / 2
	if tickEvery <= 0 {
		tickEvery = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.Generator.Teardown()
			return
		case now := <-ticker.C:
			crSys := uint64(now.Sub(start)) * scte35.UclockFreq / uint64(time.Second)
			if err := s.Generator.Tick(crSys, 0); err != nil {
				s.logger.Error().Err(err).Msg("tick failed")
			}
		}
	}
}
