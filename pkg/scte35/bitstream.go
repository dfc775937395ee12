package scte35

import (
	"errors"
	"fmt"

	"github.com/bamiaux/iobit"
)

// reservedBits is the conventional all-ones fill for reserved fields.
const reservedBits = 0xFFFFFFFF

// sectionWriter wraps iobit.Writer for building a PSI section. Every
// field write goes through one of its typed methods so that a mismatch
// between a pre-computed length and the bytes actually produced is
// caught at finish() rather than silently corrupting section_length.
type sectionWriter struct {
	w iobit.Writer
}

func newSectionWriter(buf []byte) *sectionWriter {
	return &sectionWriter{w: iobit.NewWriter(buf)}
}

func (w *sectionWriter) bit(v bool)              { w.w.PutBit(v) }
func (w *sectionWriter) reserved(bits uint)       { w.w.PutUint32(bits, reservedBits) }
func (w *sectionWriter) u32(bits uint, v uint32)  { w.w.PutUint32(bits, v) }
func (w *sectionWriter) u64(bits uint, v uint64)  { w.w.PutUint64(bits, v) }
func (w *sectionWriter) raw(b []byte)             { _, _ = w.w.Write(b) }

// bitPos returns the writer's current cursor position, in bits.
func (w *sectionWriter) bitPos() int { return w.w.Index() }

// finish flushes the writer, asserting that exactly wantBits were
// written. A mismatch means the caller's size calculation and its
// field-by-field write have drifted apart.
func (w *sectionWriter) finish(wantBits int) error {
	if got := w.w.Index(); got != wantBits {
		return fmt.Errorf("scte35: wrote %d bits, expected %d", got, wantBits)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("scte35: flush: %w", err)
	}
	return nil
}

// sectionReader wraps iobit.Reader. It backs this package's test-only
// round-trip decoder (see *_test.go) used to verify encoder correctness.
type sectionReader struct {
	r iobit.Reader
}

func newSectionReader(buf []byte) *sectionReader {
	return &sectionReader{r: iobit.NewReader(buf)}
}

func (r *sectionReader) skip(bits uint)       { r.r.Skip(bits) }
func (r *sectionReader) bit() bool            { return r.r.Bit() }
func (r *sectionReader) u32(bits uint) uint32 { return r.r.Uint32(bits) }
func (r *sectionReader) u64(bits uint) uint64 { return r.r.Uint64(bits) }
func (r *sectionReader) bytes(n int) []byte   { return r.r.Bytes(n) }
func (r *sectionReader) leftBits() uint       { return r.r.LeftBits() }

// err reports whether the reader over- or under-consumed its buffer.
func (r *sectionReader) err() error {
	if r.r.LeftBits() > 0 {
		return errBufferUnderflow
	}
	if errors.Is(r.r.Error(), iobit.ErrOverflow) {
		return errBufferOverflow
	}
	return nil
}
