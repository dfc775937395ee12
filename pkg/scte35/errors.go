package scte35

import (
	"errors"
	"fmt"
)

// Sentinel errors. The buffer under/overflow pair is reported by the
// bitstream reader behind the test-only decoder; the rest are returned by
// the generator and its reassembly buffer. Mirrors the sentinel +
// typed-error split used throughout the teacher's cmd/livesim2/app package.
var (
	errBufferUnderflow = errors.New("scte35: buffer underflow")
	errBufferOverflow  = errors.New("scte35: buffer overflow")

	// ErrDisabled is returned by PushEvent when the generator has been torn
	// down via Teardown and is no longer accepting events.
	ErrDisabled = errors.New("scte35: generator is disabled")

	// ErrNilCommand is returned by synthesis when it produced neither a
	// scheduled nor an immediate form for an Event. An unrecognized
	// CommandType is reported as errUnsupportedCommand instead.
	ErrNilCommand = errors.New("scte35: nil splice command")

	// errMissingCommandType is returned when the first fragment of a new
	// accumulation has no command type at all.
	errMissingCommandType = errors.New("scte35: missing command type")
)

// errUnsupportedCommand reports a syntactically valid but unimplemented
// splice_command_type, e.g. a reserved value forwarded by a future
// reassembly source.
type errUnsupportedCommand struct {
	commandType CommandType
}

func (e *errUnsupportedCommand) Error() string {
	return fmt.Sprintf("scte35: unsupported splice command type %s", e.commandType)
}

// errAllocation wraps a failure from the BufferProvider collaborator.
type errAllocation struct {
	size int
	err  error
}

func (e *errAllocation) Error() string {
	return fmt.Sprintf("scte35: allocate %d bytes: %v", e.size, e.err)
}

func (e *errAllocation) Unwrap() error { return e.err }
