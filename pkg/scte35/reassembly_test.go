package scte35

import "testing"

func TestReassemblyMissingCommandType(t *testing.T) {
	b := newReassemblyBuffer()
	var warnings []string
	warnf := func(format string, args ...interface{}) { warnings = append(warnings, format) }

	events, err := b.push(PushInput{Start: true, End: true}, warnf)
	if err != errMissingCommandType {
		t.Fatalf("err = %v, want errMissingCommandType", err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0", len(events))
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a warning, got none")
	}
	if b.active {
		t.Fatalf("accumulator left active after a dropped fragment")
	}
}

func TestReassemblyUnsupportedCommandType(t *testing.T) {
	b := newReassemblyBuffer()
	unsupported := CommandType(0x04)
	var warnings []string
	warnf := func(format string, args ...interface{}) { warnings = append(warnings, format) }

	_, err := b.push(PushInput{CommandType: &unsupported, Start: true}, warnf)
	if ue, ok := err.(*errUnsupportedCommand); !ok || ue.commandType != unsupported {
		t.Fatalf("err = %v (%T), want *errUnsupportedCommand{%v}", err, err, unsupported)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a warning, got none")
	}
}

func TestReassemblyDescriptorAccumulation(t *testing.T) {
	b := newReassemblyBuffer()
	cmdType := TimeSignal
	warnf := func(string, ...interface{}) {}

	d1 := DescriptorFragment([]byte{0x00, 0x01, 0xAA})
	d2 := DescriptorFragment([]byte{0x00, 0x02, 0xBB, 0xCC})

	if _, err := b.push(PushInput{CommandType: &cmdType, Start: true, Descriptor: d1}, warnf); err != nil {
		t.Fatalf("push 1: %v", err)
	}
	if _, err := b.push(PushInput{Descriptor: d2}, warnf); err != nil {
		t.Fatalf("push 2: %v", err)
	}
	events, err := b.push(PushInput{End: true}, warnf)
	if err != nil {
		t.Fatalf("push 3: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if len(ev.Descriptors) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(ev.Descriptors))
	}
	if string(ev.Descriptors[0]) != string(d1) || string(ev.Descriptors[1]) != string(d2) {
		t.Fatalf("descriptors not preserved in order: %v", ev.Descriptors)
	}
}

func TestReassemblyForcedFlush(t *testing.T) {
	b := newReassemblyBuffer()
	cmdType := SpliceInsert
	var warnings []string
	warnf := func(format string, args ...interface{}) { warnings = append(warnings, format) }

	if _, err := b.push(PushInput{CommandType: &cmdType, Start: true, EventID: 1, PTSSys: 1000}, warnf); err != nil {
		t.Fatalf("push 1: %v", err)
	}

	events, err := b.push(PushInput{CommandType: &cmdType, Start: true, EventID: 2, PTSSys: 2000}, warnf)
	if err != nil {
		t.Fatalf("push 2: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a forced-flush warning, got none")
	}
	if len(events) != 1 {
		t.Fatalf("got %d events from forced flush, want 1", len(events))
	}
	if events[0].EventID != 1 {
		t.Fatalf("flushed event id = %d, want 1 (the prior accumulation)", events[0].EventID)
	}
	if !b.active || b.eventID != 2 {
		t.Fatalf("accumulator did not adopt event 2 after flush")
	}
}

func TestReassemblyEmptyAccumulatorNotFlushedOnStart(t *testing.T) {
	b := newReassemblyBuffer()
	cmdType := SpliceInsert
	warnf := func(string, ...interface{}) {}

	events, err := b.push(PushInput{CommandType: &cmdType, Start: true, EventID: 1, PTSSys: 1000}, warnf)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events on the very first start, want 0 (nothing to flush)", len(events))
	}
}

func TestReassemblyDeadlineUsesPTSProgWhenPresent(t *testing.T) {
	b := newReassemblyBuffer()
	cmdType := SpliceInsert
	warnf := func(string, ...interface{}) {}
	prog := uint64(9_000_000)

	events, err := b.push(PushInput{
		CommandType: &cmdType,
		Start:       true,
		End:         true,
		PTSProg:     &prog,
		PTSSys:      5_000_000,
	}, warnf)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].CrSys != prog {
		t.Fatalf("CrSys = %d, want %d (pts_prog, not pts_sys)", events[0].CrSys, prog)
	}
}

func TestReassemblyDeadlineFallsBackToPTSSys(t *testing.T) {
	b := newReassemblyBuffer()
	cmdType := SpliceInsert
	warnf := func(string, ...interface{}) {}

	events, err := b.push(PushInput{
		CommandType: &cmdType,
		Start:       true,
		End:         true,
		PTSSys:      5_000_000,
	}, warnf)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].CrSys != 5_000_000 {
		t.Fatalf("CrSys = %d, want 5000000 (pts_sys, no pts_prog present)", events[0].CrSys)
	}
}
