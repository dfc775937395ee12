package app

import (
	"github.com/rs/zerolog"

	"github.com/Dash-Industry-Forum/livesim2/pkg/scte35"
)

// loggingEmitter is a stand-in Emitter collaborator: it logs every
// output record at debug level instead of handing it to a real TS
// packetizer, which lives outside this core (see spec non-goals).
type loggingEmitter struct {
	lg *zerolog.Logger
}

var _ scte35.Emitter = loggingEmitter{}

func (e loggingEmitter) Emit(rec scte35.OutputRecord) error {
	e.lg.Debug().
		Uint64("cr_sys", rec.CrSys).
		Int("bytes", len(rec.Bytes)).
		Bool("start", rec.Start).
		Bool("end", rec.End).
		Hex("section", rec.Bytes).
		Msg("emit section")
	return nil
}
