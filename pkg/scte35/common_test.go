package scte35

import "fmt"

// fakeBufferProvider allocates plain heap slices; no pooling needed for
// unit tests.
type fakeBufferProvider struct {
	failNext bool
}

func (p *fakeBufferProvider) Allocate(size int) ([]byte, error) {
	if p.failNext {
		p.failNext = false
		return nil, errBufferOverflow
	}
	return make([]byte, size), nil
}

// fakeEmitter collects every OutputRecord handed to it, in order.
type fakeEmitter struct {
	records []OutputRecord
}

func (e *fakeEmitter) Emit(rec OutputRecord) error {
	e.records = append(e.records, rec)
	return nil
}

// fakeLogger collects warnings instead of discarding them, so tests can
// assert on the non-fatal diagnostics spec section 7 calls for.
type fakeLogger struct {
	warnings []string
}

func (l *fakeLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
