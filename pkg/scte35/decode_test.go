package scte35

// Test-only round-trip decoder. Production code never decodes SCTE-35
// (see spec non-goals); this exists solely so tests can verify the
// encoder against its own output rather than transcribing brittle
// literal byte sequences for every field combination.

type decodedSection struct {
	TableID       uint8
	SectionLength int
	Tier          uint16
	CommandType   CommandType
	CommandLength int
	Body          []byte
	Descriptors   []byte
	CRC           uint32
}

func decodeSection(buf []byte) (*decodedSection, error) {
	r := newSectionReader(buf)

	d := &decodedSection{}
	d.TableID = uint8(r.u32(8))
	r.bit()    // section_syntax_indicator
	r.bit()    // private_indicator
	r.skip(2)  // reserved
	d.SectionLength = int(r.u32(12))
	r.u32(8) // protocol_version
	r.bit()  // encrypted_packet
	r.skip(6) // encryption_algorithm
	r.u64(33) // pts_adjustment
	r.u32(8)  // cw_index
	d.Tier = uint16(r.u32(12))
	d.CommandLength = int(r.u32(12))
	d.CommandType = CommandType(r.u32(8))
	d.Body = r.bytes(d.CommandLength)
	descLoopLen := int(r.u32(16))
	d.Descriptors = r.bytes(descLoopLen)
	d.CRC = r.u32(32)

	if err := r.err(); err != nil {
		return nil, err
	}
	return d, nil
}

type decodedInsert struct {
	EventID         uint32
	Cancel          bool
	OutOfNetwork    bool
	PTSTime         *uint64
	AutoReturn      bool
	Duration        *uint64
	UniqueProgramID uint16
	AvailNum        uint8
	AvailsExpected  uint8
}

func decodeInsertBody(body []byte) (*decodedInsert, error) {
	r := newSectionReader(body)
	f := &decodedInsert{}
	f.EventID = r.u32(32)
	f.Cancel = r.bit()
	r.skip(7)
	if !f.Cancel {
		f.OutOfNetwork = r.bit()
		r.skip(1) // program_splice_flag
		durationFlag := r.bit()
		immediateFlag := r.bit()
		r.skip(4)
		if !immediateFlag {
			r.skip(1) // time_specified_flag
			r.skip(6)
			pts := r.u64(33)
			f.PTSTime = &pts
		}
		if durationFlag {
			f.AutoReturn = r.bit()
			r.skip(6)
			dur := r.u64(33)
			f.Duration = &dur
		}
		f.UniqueProgramID = uint16(r.u32(16))
		f.AvailNum = uint8(r.u32(8))
		f.AvailsExpected = uint8(r.u32(8))
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return f, nil
}

type decodedTimeSignal struct {
	PTSTime *uint64
}

func decodeTimeSignalBody(body []byte) (*decodedTimeSignal, error) {
	r := newSectionReader(body)
	f := &decodedTimeSignal{}
	if r.bit() {
		r.skip(6)
		pts := r.u64(33)
		f.PTSTime = &pts
	} else {
		r.skip(7)
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return f, nil
}
