package scte35

// tick implements the emission-scheduler decision algorithm of spec
// section 4.4, executed once per qualifying clock tick.
func (g *Generator) tick(crSys, latency uint64) error {
	_ = latency // reserved for consumer alignment; unused by this core

	if g.flowDef == nil || g.nullSection == nil || g.interval == 0 {
		return nil
	}
	if g.lastEmitCrSys != 0 && crSys < g.lastEmitCrSys+g.interval {
		return nil
	}

	handled := false
	var tickErr error

	g.pending.each(func(m *Message) bool {
		if tickErr != nil {
			return false
		}
		if m.CrSys < crSys {
			if m.ImmediateBytes != nil {
				if err := g.emit(m.ImmediateBytes, crSys, m.CommandType, "immediate"); err != nil {
					tickErr = err
					return false
				}
				handled = true
			}
			return true
		}

		if m.ScheduledBytes != nil {
			if err := g.emit(m.ScheduledBytes, crSys, m.CommandType, "scheduled"); err != nil {
				tickErr = err
				return false
			}
			handled = true
		}
		return false
	})

	if tickErr != nil {
		return tickErr
	}
	if !handled {
		if err := g.emit(g.nullSection, crSys, SpliceNull, "null"); err != nil {
			return err
		}
	}
	g.lastEmitCrSys = crSys
	g.metrics.setPendingDepth(g.pending.len())
	return nil
}

// emit duplicates section and hands it to the Emitter collaborator as a
// single-section, start=end=true output record.
func (g *Generator) emit(section []byte, crSys uint64, command CommandType, form string) error {
	dup := make([]byte, len(section))
	copy(dup, section)
	if err := g.emitter.Emit(OutputRecord{
		Bytes: dup,
		CrSys: crSys,
		Start: true,
		End:   true,
	}); err != nil {
		return err
	}
	g.metrics.observeEmit(command, form)
	return nil
}
