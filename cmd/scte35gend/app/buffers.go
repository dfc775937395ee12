package app

import (
	"fmt"
	"sync"

	"github.com/Dash-Industry-Forum/livesim2/pkg/scte35"
)

// poolBufferProvider hands out byte blocks backed by a sync.Pool of
// fixed-capacity slices, matching the Generator's single allocation
// size (bufferCapacity bytes per section). Blocks returned by Allocate
// are never put back on the pool automatically: ownership passes to the
// caller, per the core's single-owner byte-block discipline, and
// scte35.BufferProvider has no Release call the caller could use to
// return one. The pool is therefore deliberately GC-backed rather than
// truly recycling: it still batches allocations of the one fixed size
// this daemon ever requests, but every call is effectively a fresh
// make([]byte, size) under the covers. A real recycling path would need
// a Release/Put addition to the core's BufferProvider interface, which
// is out of scope here.
type poolBufferProvider struct {
	size int
	pool sync.Pool
}

var _ scte35.BufferProvider = (*poolBufferProvider)(nil)

// newPoolBufferProvider constructs a BufferProvider whose pool slabs are
// exactly size bytes.
func newPoolBufferProvider(size int) *poolBufferProvider {
	p := &poolBufferProvider{size: size}
	p.pool.New = func() interface{} {
		return make([]byte, size)
	}
	return p
}

func (p *poolBufferProvider) Allocate(size int) ([]byte, error) {
	if size != p.size {
		return nil, fmt.Errorf("scte35gend: requested %d bytes, pool serves %d", size, p.size)
	}
	buf := p.pool.Get().([]byte)
	clear(buf)
	return buf, nil
}
