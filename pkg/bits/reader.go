package bits

import (
	"errors"
	"io"
)

// ErrExhausted - the source has no more bytes, or failed to produce them.
// Both cases collapse into the one signal. Use Reader.SourceErr if the
// difference matters.
var ErrExhausted = errors.New("bits: stream exhausted")

// Reader - MSB-first bit reader with descriptor primitives over any
// sequential byte source. Reads one byte at a time, no buffering, no seek.
type Reader struct {
	src io.Reader
	err error // source error from the failed refill

	byte byte // current byte
	bits byte // bits left in byte
	pos  uint64

	b [1]byte
}

func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// Pos - total bits consumed since construction. Pos()%8 == 0 means the
// reader is at a byte boundary.
func (r *Reader) Pos() uint64 {
	return r.pos
}

// SourceErr - the source's own error after a read returned ErrExhausted.
// Usually io.EOF for a clean end of stream.
func (r *Reader) SourceErr() error {
	return r.err
}

func (r *Reader) ReadBit() (byte, error) {
	if r.bits == 0 {
		n, err := r.src.Read(r.b[:])
		if n == 0 {
			if err == nil {
				err = io.EOF
			}
			r.err = err
			return 0, ErrExhausted
		}
		if n != 1 {
			panic("bits: source returned more than one byte")
		}
		r.byte = r.b[0]
		r.bits = 8
	}
	r.bits--
	r.pos++
	return (r.byte >> r.bits) & 0b1, nil
}

func (r *Reader) Skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.ReadBit(); err != nil {
			return err
		}
	}
	return nil
}

// F - f(n) descriptor, n-bit unsigned value, n <= 32.
func (r *Reader) F(n int) (uint32, error) {
	if n > 32 {
		panic("bits: f(n) with n > 32")
	}
	var x uint32
	for i := 0; i < n; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		x = x<<1 | uint32(b)
	}
	return x, nil
}

// Su - su(n) descriptor, two's-complement signed n-bit value, n >= 1.
func (r *Reader) Su(n int) (int32, error) {
	v, err := r.F(n)
	if err != nil {
		return 0, err
	}
	value := int64(v)
	if value&(1<<(n-1)) != 0 {
		value -= 1 << n
	}
	return int32(value), nil
}

// Ns - ns(n) descriptor, truncated binary code for a value in [0,n), n >= 1.
// Short values take floorLog2(n) bits, the rest one bit more.
func (r *Reader) Ns(n uint32) (uint32, error) {
	if n == 0 {
		panic("bits: ns(0)")
	}
	w := floorLog2(n) + 1
	m := uint32(1)<<w - n
	v, err := r.F(int(w - 1))
	if err != nil {
		return 0, err
	}
	if v < m {
		return v, nil
	}
	extra, err := r.F(1)
	if err != nil {
		return 0, err
	}
	return v<<1 - m + extra, nil
}

// Uvlc - uvlc() descriptor, exponential variable length code. Codes with
// 32 or more leading zeros saturate to 1<<32-1.
func (r *Reader) Uvlc() (uint64, error) {
	var leadingZeros int
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			break
		}
		leadingZeros++
	}

	if leadingZeros >= 32 {
		return 1<<32 - 1, nil
	}

	value, err := r.F(leadingZeros)
	if err != nil {
		return 0, err
	}
	return uint64(value) + 1<<leadingZeros - 1, nil
}

// Le - le(n) descriptor, little-endian value from n whole bytes, n <= 4.
func (r *Reader) Le(n int) (uint32, error) {
	if n > 4 {
		panic("bits: le(n) with n > 4")
	}
	var t uint32
	for i := 0; i < n; i++ {
		b, err := r.F(8)
		if err != nil {
			return 0, err
		}
		t += b << (i * 8)
	}
	return t, nil
}

// floorLog2 - largest s with 1<<s <= x, for x >= 1
func floorLog2(x uint32) uint32 {
	var s uint32
	for x != 0 {
		x >>= 1
		s++
	}
	return s - 1
}
