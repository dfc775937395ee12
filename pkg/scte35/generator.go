package scte35

import "fmt"

// Generator is the Splice-Info Generator: it owns the reassembly buffer,
// the pending-sections queue, and the emission scheduler, and exposes
// the external control surface described in spec section 6. It is
// single-threaded and cooperative: every method runs to completion with
// no internal concurrency, matching the surrounding pipeline's
// serialized-entry guarantee.
type Generator struct {
	alloc   BufferProvider
	emitter Emitter
	logger  Logger
	metrics *Metrics

	flowDef       *FlowDef
	interval      uint64
	lastEmitCrSys uint64
	nullSection   []byte

	reassembly *reassemblyBuffer
	pending    *pendingQueue

	disabled bool
}

// NewGenerator constructs a Generator with no flow definition and a
// zero (disabled) interval. logger may be nil, in which case diagnostics
// are discarded. metrics may be nil, in which case activity is not
// recorded.
func NewGenerator(alloc BufferProvider, emitter Emitter, logger Logger, metrics *Metrics) *Generator {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Generator{
		alloc:      alloc,
		emitter:    emitter,
		logger:     logger,
		metrics:    metrics,
		reassembly: newReassemblyBuffer(),
		pending:    newPendingQueue(),
	}
}

func (g *Generator) warnf(format string, args ...interface{}) {
	g.logger.Warnf(format, args...)
}

// SetFlowDef accepts the input flow definition, rebuilding the cached
// null section. It must be called at least once before Tick will
// produce any output.
func (g *Generator) SetFlowDef(fd FlowDef) error {
	if fd.Format != InputFlowFormat {
		return fmt.Errorf("scte35: unsupported flow format %q", fd.Format)
	}
	section, err := buildNullSection(g.alloc)
	if err != nil {
		return err
	}
	g.flowDef = &fd
	g.nullSection = section
	return nil
}

// SetInterval sets the minimum emission period, in 27MHz host-clock
// ticks. Zero disables emission. A transition to a non-zero value
// returns the output flow definition the caller should republish; a
// transition to zero or a no-op value returns nil.
func (g *Generator) SetInterval(v uint64) *OutputFlowDef {
	prev := g.interval
	g.interval = v
	if v == 0 || v == prev {
		return nil
	}
	ofd := newOutputFlowDef(v)
	return &ofd
}

// GetInterval returns the currently configured emission period.
func (g *Generator) GetInterval() uint64 { return g.interval }

// PushEvent feeds one reassembly fragment into the generator. Forced
// flushes and fragment completion are handled internally; any event(s)
// thereby produced are synthesized and queued immediately, resetting
// lastEmitCrSys so the next Tick emits without waiting. A non-nil error
// indicates either a malformed/unsupported fragment (logged, not fatal
// to the generator) or an allocation failure during synthesis (fatal,
// surfaced to the caller).
func (g *Generator) PushEvent(in PushInput) error {
	if g.disabled {
		return ErrDisabled
	}
	events, pushErr := g.reassembly.push(in, g.warnf)
	if pushErr != nil {
		g.metrics.observeReassemblyWarning(pushErr.Error())
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		msg, err := synthesize(ev, g.alloc, g.warnf)
		if err != nil {
			g.metrics.observeSynthesisFailure(ev.CommandType)
			return err
		}
		g.pending.push(msg)
		g.lastEmitCrSys = 0
		g.metrics.setPendingDepth(g.pending.len())
	}
	return pushErr
}

// ClearScheduled drops the scheduled form of every pending Message. It
// replaces the "push an empty/null event" overload from the original
// design with an explicit operation (see spec section 9, Design Notes).
func (g *Generator) ClearScheduled() {
	g.pending.clearScheduled()
}

// Tick drives the emission scheduler for the current system-clock value.
// latency is accepted for parity with the surrounding pipeline's
// PREPARE control command; the decision itself depends only on crSys.
func (g *Generator) Tick(crSys, latency uint64) error {
	return g.tick(crSys, latency)
}

// Teardown frees all pending Messages, the null section, the
// in-progress reassembly accumulator, and the cached flow definition,
// and stops accepting further events.
func (g *Generator) Teardown() {
	g.pending.drain()
	g.nullSection = nil
	g.reassembly.reset()
	g.flowDef = nil
	g.disabled = true
	g.metrics.setPendingDepth(0)
}
