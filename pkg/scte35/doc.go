// Package scte35 generates ANSI/SCTE 35 Splice Information Table sections
// for insertion into an MPEG-2 Transport Stream.
//
// It is the core of a splice-info generator embedded in a larger
// multiplexer pipeline: splice-event descriptions arrive, possibly split
// across several calls to PushEvent, are reassembled into a coherent
// Event, synthesized into one or two wire-format PSI sections, and
// queued for emission. A driving clock ticks the Generator with the
// current system time; the Generator decides what, if anything, to hand
// to its Emitter collaborator on that tick.
//
// The package does not open sockets, read files, or packetize sections
// into 188-byte TS packets; it obtains section buffers from the
// BufferProvider and hands finished section byte slices to the Emitter,
// both supplied at construction, and lets the surrounding pipeline do the
// rest.
package scte35
