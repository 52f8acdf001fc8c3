// Package io provides small io.Writer/io.Reader helpers used by the
// protocol codecs, distinct from the standard library's io package.
package io

import stdio "io"

// RingBuffer is a fixed-size io.Writer that retains only the most recently
// written bytes, used to snapshot a bounded tail of a response body for
// diagnostics when a streaming decode fails partway through.
type RingBuffer struct {
	buf   []byte
	start int
	len   int
}

// NewRingBuffer returns a RingBuffer writing into buf's capacity. buf is not
// copied; its contents are overwritten as bytes are written.
func NewRingBuffer(buf []byte) *RingBuffer {
	return &RingBuffer{buf: buf}
}

// Write implements io.Writer, always reporting success: once the ring
// buffer's capacity is exceeded, the oldest bytes are discarded.
func (r *RingBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if cap := len(r.buf); cap == 0 {
		return n, nil
	}
	if n >= len(r.buf) {
		copy(r.buf, p[n-len(r.buf):])
		r.start = 0
		r.len = len(r.buf)
		return n, nil
	}
	for _, b := range p {
		idx := (r.start + r.len) % len(r.buf)
		r.buf[idx] = b
		if r.len < len(r.buf) {
			r.len++
		} else {
			r.start = (r.start + 1) % len(r.buf)
		}
	}
	return n, nil
}

// Read implements io.Reader, draining the buffered tail in write order and
// then returning io.EOF.
func (r *RingBuffer) Read(p []byte) (int, error) {
	if r.len == 0 {
		return 0, stdio.EOF
	}
	n := 0
	for n < len(p) && r.len > 0 {
		p[n] = r.buf[r.start]
		r.start = (r.start + 1) % len(r.buf)
		r.len--
		n++
	}
	return n, nil
}
