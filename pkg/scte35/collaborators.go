package scte35

// BufferProvider supplies owned byte blocks for synthesized sections.
// Every request asks for bufferCapacity bytes (PSI_MAX_SIZE + header);
// the synthesizer trims the returned slice to the section's actual
// length once the CRC is known.
type BufferProvider interface {
	Allocate(size int) ([]byte, error)
}

// Emitter hands a finished output record to the surrounding multiplexer.
type Emitter interface {
	Emit(rec OutputRecord) error
}

// Logger receives warn-level diagnostics for non-fatal conditions:
// malformed input, unsupported command types, descriptor export
// failures, forced flushes. Nothing the generator does is fatal through
// this interface.
type Logger interface {
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...interface{}) {}

// OutputRecord is a single, complete PSI section ready for
// packetization by the surrounding pipeline.
type OutputRecord struct {
	Bytes []byte
	CrSys uint64
	Start bool
	End   bool
}

// FlowDef is the input flow definition accepted by SetFlowDef. Format
// must be InputFlowFormat; anything else is rejected.
type FlowDef struct {
	Format string
}

// InputFlowFormat is the only flow-definition format SetFlowDef accepts.
const InputFlowFormat = "void.scte35."

// OutputFlowFormat tags the output flow definition republished whenever
// the emission interval becomes non-zero.
const OutputFlowFormat = "block.mpegtspsi.mpegtsscte35."

// OutputFlowDef describes the generator's output cadence to the
// surrounding pipeline so it can budget transport-buffer occupancy.
type OutputFlowDef struct {
	Format             string
	PSISectionInterval uint64
	OctetRate          uint64
	TbRate             uint64
}

const (
	// tsPayloadPerPacket is a 188-byte TS packet minus its 4-byte header
	// and 1-byte pointer_field: 184 - 1 = 183.
	tsPayloadPerPacket = 183
	// tbRateBytesPerSec is the T-STD transport-buffer fill rate for PSI.
	tbRateBytesPerSec = 125_000

	psiMaxSize     = 1021
	psiHeaderSize  = 3
	bufferCapacity = psiMaxSize + psiHeaderSize
)

func newOutputFlowDef(interval uint64) OutputFlowDef {
	return OutputFlowDef{
		Format:             OutputFlowFormat,
		PSISectionInterval: interval,
		OctetRate:          tsPayloadPerPacket * UclockFreq / interval,
		TbRate:             tbRateBytesPerSec,
	}
}
