package lztok

import "strings"

// bitWriter packs values into a stream of 6-bit alphabet symbols.
//
// Values go in least significant bit first; within each 6-bit symbol
// the bits are assembled most significant first. This ordering is the
// core bit-exactness contract of the wire format and must match the
// reader below and every deployed decoder.
type bitWriter struct {
	out     strings.Builder
	buf     int // partial symbol, high bits first
	pending int // bits accumulated in buf, 0..5
}

// writeBits appends the low count bits of value.
func (w *bitWriter) writeBits(value, count int) {
	for i := 0; i < count; i++ {
		w.buf = w.buf<<1 | value&1
		value >>= 1
		w.pending++
		if w.pending == symbolBits {
			w.out.WriteByte(SymbolChar(w.buf))
			w.buf = 0
			w.pending = 0
		}
	}
}

// flush shifts zero bits into the buffer until a fresh 6-bit group
// completes and emits it. The final group is always emitted, even
// when the stream already sits on a symbol boundary; decoders stop at
// the end-of-stream marker and never read the padding.
func (w *bitWriter) flush() {
	for {
		w.buf <<= 1
		w.pending++
		if w.pending == symbolBits {
			w.out.WriteByte(SymbolChar(w.buf))
			w.buf = 0
			w.pending = 0
			return
		}
	}
}

// String returns the accumulated symbol string.
func (w *bitWriter) String() string {
	return w.out.String()
}

// bitReader walks a symbol string one bit at a time. The position
// mask starts at the symbol's high bit and halves after every read;
// when it reaches zero the next symbol is loaded.
type bitReader struct {
	input string
	index int // next symbol to load
	val   int // currently loaded symbol value
	mask  int // single-bit read position within val
}

// readBit returns the next bit of the stream. It fails with
// *StreamExhaustedError when no symbol remains and with
// *InvalidSymbolError when the input leaves the alphabet.
func (r *bitReader) readBit() (bool, error) {
	if r.mask == 0 {
		if r.index >= len(r.input) {
			return false, &StreamExhaustedError{Offset: r.index}
		}
		ch := r.input[r.index]
		idx, ok := SymbolIndex(ch)
		if !ok {
			return false, &InvalidSymbolError{Char: ch, Offset: r.index}
		}
		r.val = idx
		r.mask = 1 << (symbolBits - 1)
		r.index++
	}
	bit := r.val&r.mask != 0
	r.mask >>= 1
	return bit, nil
}

// readBits reads count bits and assembles them least significant bit
// first, mirroring writeBits.
func (r *bitReader) readBits(count int) (int, error) {
	value := 0
	for i := 0; i < count; i++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			value |= 1 << i
		}
	}
	return value, nil
}
