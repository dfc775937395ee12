package scte35

// PushInput is one fragment of a splice event as delivered by the
// reassembly source. CommandType is required on the first fragment of a
// new accumulation (Start=true or an empty accumulator); nil means "not
// supplied" and is treated as malformed input. Descriptor carries an
// opaque splice_descriptor() fragment on continuation inputs and is
// ignored for every command type except TimeSignal.
type PushInput struct {
	CommandType *CommandType
	Start       bool
	End         bool

	EventID         uint32
	UniqueProgramID uint16
	AvailNum        uint8
	AvailsExpected  uint8

	Cancel       bool
	OutOfNetwork bool
	AutoReturn   bool

	PTSProg  *uint64
	Duration *uint64
	// PTSSys is the host-clock announce time of the event. It becomes
	// Event.CrSys only when PTSProg is absent; otherwise PTSProg is the
	// deadline (see finalize).
	PTSSys uint64

	Descriptor DescriptorFragment
}

// reassemblyBuffer accumulates fragments of one in-progress splice event
// until a terminator (End) arrives, per spec section 4.1.
type reassemblyBuffer struct {
	active bool

	commandType     CommandType
	eventID         uint32
	uniqueProgramID uint16
	availNum        uint8
	availsExpected  uint8

	cancel       bool
	outOfNetwork bool
	autoReturn   bool

	ptsProg  *uint64
	duration *uint64
	ptsSys   uint64

	descriptors []DescriptorFragment
}

func newReassemblyBuffer() *reassemblyBuffer {
	return &reassemblyBuffer{}
}

func (b *reassemblyBuffer) reset() {
	*b = reassemblyBuffer{}
}

// push feeds one fragment into the accumulator. It can return up to two
// finalized events: first, a best-effort flush of a prior in-progress
// accumulation forced out by an overlapping start; second, the event
// this fragment itself completes, if End is set. A non-nil error
// reports a malformed or unsupported first fragment; the accumulator is
// dropped (not fatal) and the caller should log it and move on.
func (b *reassemblyBuffer) push(in PushInput, warnf func(string, ...interface{})) ([]*Event, error) {
	var out []*Event

	if in.Start && b.active {
		warnf("scte35: forced flush: overlapping start on event_id=%d", b.eventID)
		out = append(out, b.finalize())
	}

	if !b.active {
		if in.CommandType == nil {
			warnf("scte35: dropping accumulator: missing command type")
			b.reset()
			return out, errMissingCommandType
		}
		if !in.CommandType.Supported() {
			warnf("scte35: dropping accumulator: unsupported command type %s", *in.CommandType)
			b.reset()
			return out, &errUnsupportedCommand{commandType: *in.CommandType}
		}
		b.active = true
		b.commandType = *in.CommandType
		b.eventID = in.EventID
		b.uniqueProgramID = in.UniqueProgramID
		b.availNum = in.AvailNum
		b.availsExpected = in.AvailsExpected
		b.cancel = in.Cancel
		b.outOfNetwork = in.OutOfNetwork
		b.autoReturn = in.AutoReturn
		b.ptsProg = in.PTSProg
		b.duration = in.Duration
		b.ptsSys = in.PTSSys
	}

	if in.Descriptor != nil {
		b.descriptors = append(b.descriptors, in.Descriptor)
	}

	if in.End {
		out = append(out, b.finalize())
	}
	return out, nil
}

func (b *reassemblyBuffer) finalize() *Event {
	// The Message deadline the scheduler compares against is the splice
	// point itself (pts_prog) when one is known, since that is the
	// instant the scheduled form stops being useful and the immediate
	// form should take over; an event with no pts_prog (splice_immediate)
	// has no such point, so its deadline is the announce time, pts_sys.
	crSys := b.ptsSys
	if b.ptsProg != nil {
		crSys = *b.ptsProg
	}
	ev := &Event{
		CommandType:     b.commandType,
		EventID:         b.eventID,
		UniqueProgramID: b.uniqueProgramID,
		AvailNum:        b.availNum,
		AvailsExpected:  b.availsExpected,
		Cancel:          b.cancel,
		OutOfNetwork:    b.outOfNetwork,
		AutoReturn:      b.autoReturn,
		PTSProg:         b.ptsProg,
		Duration:        b.duration,
		CrSys:           crSys,
		Descriptors:     append([]DescriptorFragment(nil), b.descriptors...),
	}
	b.reset()
	return ev
}
