package scte35

// exportDescriptors concatenates the splice_descriptor() fragments
// carried by a TimeSignal event into a single descriptor-loop byte run,
// skipping and warning about any fragment whose declared
// descriptor_length disagrees with its actual payload size. Export
// failures are not fatal to the containing event, per spec section 4.2.
func exportDescriptors(frags []DescriptorFragment, warnf func(string, ...interface{})) []byte {
	var loop []byte
	for i, f := range frags {
		if !f.valid() {
			warnf("scte35: descriptor %d: declared length disagrees with payload, skipping", i)
			continue
		}
		loop = append(loop, f...)
	}
	return loop
}
