package scte35

// Command synthesis: builds PSI section byte blocks for the three
// supported splice commands, per spec section 4.2 and the on-wire
// layout in section 6. Every section has its field lengths computed
// before any bits are written, so splice_command_length and
// section_length are always exact, never back-patched.

const (
	tableID = 0xFC
	tier    = 0x0FFF

	// fixedHeaderBytes is every byte before the command body: table_id
	// (1) + section_syntax/private/reserved/section_length (2) +
	// protocol_version (1) + encrypted_packet/encryption_algorithm/
	// pts_adjustment (5) + cw_index (1) + tier/splice_command_length (3)
	// + splice_command_type (1).
	fixedHeaderBytes = 14
	// crcBytes is the trailing CRC-32/MPEG-2.
	crcBytes = 4
	// descriptorLoopLenBytes is the descriptor_loop_length field itself.
	descriptorLoopLenBytes = 2
)

// sectionTotalLength returns the full byte count of a section with a
// cmdLen-byte command body and a descLen-byte descriptor loop.
func sectionTotalLength(cmdLen, descLen int) int {
	return fixedHeaderBytes + cmdLen + descriptorLoopLenBytes + descLen + crcBytes
}

// sectionLengthField is the value written into the 12-bit section_length
// field: everything from protocol_version through the CRC, i.e. the
// total minus table_id and the 2 bytes the field itself occupies.
func sectionLengthField(cmdLen, descLen int) int {
	return sectionTotalLength(cmdLen, descLen) - 3
}

// buildSection allocates a buffer, writes the common PSI framing plus a
// pre-encoded command body and descriptor loop, and stamps the trailing
// CRC-32/MPEG-2. It returns the section trimmed to its actual length.
func buildSection(alloc BufferProvider, commandType CommandType, cmdLen int, writeCmd func(w *sectionWriter), descriptors []byte) ([]byte, error) {
	total := sectionTotalLength(cmdLen, len(descriptors))
	buf, err := alloc.Allocate(bufferCapacity)
	if err != nil {
		return nil, &errAllocation{size: bufferCapacity, err: err}
	}

	w := newSectionWriter(buf)
	w.u32(8, tableID)
	w.bit(false) // section_syntax_indicator
	w.bit(false) // private_indicator
	w.u32(2, 0b11)
	w.u32(12, uint32(sectionLengthField(cmdLen, len(descriptors))))
	w.u32(8, 0) // protocol_version
	w.bit(false) // encrypted_packet
	w.u32(6, 0)  // encryption_algorithm
	w.u64(33, 0) // pts_adjustment
	w.u32(8, 0)  // cw_index
	w.u32(12, tier)
	w.u32(12, uint32(cmdLen))
	w.u32(8, uint32(commandType))

	writeCmd(w)

	w.u32(16, uint32(len(descriptors)))
	w.raw(descriptors)

	bodyBits := (total - crcBytes) * 8
	if err := w.finish(bodyBits); err != nil {
		return nil, err
	}

	crc := crc32MPEG2(buf[:total-crcBytes])
	buf[total-4] = byte(crc >> 24)
	buf[total-3] = byte(crc >> 16)
	buf[total-2] = byte(crc >> 8)
	buf[total-1] = byte(crc)

	return buf[:total], nil
}

// buildNullSection synthesizes the static splice_null section cached on
// the generator and re-emitted as filler by the scheduler.
func buildNullSection(alloc BufferProvider) ([]byte, error) {
	return buildSection(alloc, SpliceNull, 0, func(*sectionWriter) {}, nil)
}

// insertBodyLength computes the splice_insert() command body length
// without writing it. forceImmediate simulates the immediate form: the
// PTS is treated as absent regardless of ev.PTSProg.
func insertBodyLength(ev *Event, forceImmediate bool) int {
	n := 5 // splice_event_id(4) + cancel_indicator/reserved(1)
	if ev.Cancel {
		return n
	}
	n++ // out_of_network/program_splice/duration/immediate/reserved
	if !forceImmediate && ev.PTSProg != nil {
		n += 5 // splice_time(): time_specified_flag/reserved/pts_time
	}
	if ev.Duration != nil {
		n += 5 // break_duration(): auto_return/reserved/duration
	}
	n += 4 // unique_program_id(2) + avail_num(1) + avails_expected(1)
	return n
}

func writeInsertBody(w *sectionWriter, ev *Event, forceImmediate bool) {
	w.u32(32, ev.EventID)
	w.bit(ev.Cancel)
	w.reserved(7)
	if ev.Cancel {
		return
	}

	ptsPresent := !forceImmediate && ev.PTSProg != nil
	durationFlag := ev.Duration != nil
	immediateFlag := !ptsPresent

	w.bit(ev.OutOfNetwork)
	w.bit(true) // program_splice_flag
	w.bit(durationFlag)
	w.bit(immediateFlag)
	w.reserved(4)

	if ptsPresent {
		w.bit(true) // time_specified_flag
		w.reserved(6)
		w.u64(33, uint64(toPTS(*ev.PTSProg)))
	}
	if durationFlag {
		w.bit(ev.AutoReturn)
		w.reserved(6)
		w.u64(33, uint64(toPTS(*ev.Duration)))
	}

	w.u32(16, uint32(ev.UniqueProgramID))
	w.u32(8, uint32(ev.AvailNum))
	w.u32(8, uint32(ev.AvailsExpected))
}

func buildInsertSection(alloc BufferProvider, ev *Event, forceImmediate bool) ([]byte, error) {
	cmdLen := insertBodyLength(ev, forceImmediate)
	return buildSection(alloc, SpliceInsert, cmdLen, func(w *sectionWriter) {
		writeInsertBody(w, ev, forceImmediate)
	}, nil)
}

// timeSignalBodyLength mirrors writeTimeSignalBody's field plan.
func timeSignalBodyLength(ev *Event, forceImmediate bool) int {
	if !forceImmediate && ev.PTSProg != nil {
		return 5
	}
	return 1
}

func writeTimeSignalBody(w *sectionWriter, ev *Event, forceImmediate bool) {
	ptsPresent := !forceImmediate && ev.PTSProg != nil
	w.bit(ptsPresent)
	if ptsPresent {
		w.reserved(6)
		w.u64(33, uint64(toPTS(*ev.PTSProg)))
	} else {
		w.reserved(7)
	}
}

func buildTimeSignalSection(alloc BufferProvider, ev *Event, forceImmediate bool, descriptors []byte) ([]byte, error) {
	cmdLen := timeSignalBodyLength(ev, forceImmediate)
	return buildSection(alloc, TimeSignal, cmdLen, func(w *sectionWriter) {
		writeTimeSignalBody(w, ev, forceImmediate)
	}, descriptors)
}

// synthesize turns a reassembled Event into a Message carrying one or
// both wire forms, per spec section 4.2's two-form output rule.
func synthesize(ev *Event, alloc BufferProvider, warnf func(string, ...interface{})) (*Message, error) {
	msg := &Message{CrSys: ev.CrSys, CommandType: ev.CommandType}

	switch ev.CommandType {
	case SpliceInsert:
		if ev.PTSProg != nil {
			scheduled, err := buildInsertSection(alloc, ev, false)
			if err != nil {
				return nil, err
			}
			msg.ScheduledBytes = scheduled
		}
		immediate, err := buildInsertSection(alloc, ev, true)
		if err != nil {
			return nil, err
		}
		msg.ImmediateBytes = immediate

	case TimeSignal:
		descriptors := exportDescriptors(ev.Descriptors, warnf)
		if ev.PTSProg != nil {
			scheduled, err := buildTimeSignalSection(alloc, ev, false, descriptors)
			if err != nil {
				return nil, err
			}
			msg.ScheduledBytes = scheduled
		}
		immediate, err := buildTimeSignalSection(alloc, ev, true, descriptors)
		if err != nil {
			return nil, err
		}
		msg.ImmediateBytes = immediate

	case SpliceNull:
		section, err := buildNullSection(alloc)
		if err != nil {
			return nil, err
		}
		msg.ImmediateBytes = section

	default:
		return nil, &errUnsupportedCommand{commandType: ev.CommandType}
	}

	if msg.ScheduledBytes == nil && msg.ImmediateBytes == nil {
		return nil, ErrNilCommand
	}
	return msg, nil
}
