package lztok

import "unicode/utf16"

// Reserved wire codes. Dictionary entries proper start at
// firstDictCode; the reserved values never name a dictionary entry.
const (
	codeLiteral8  = 0 // next 8 bits are a raw character value
	codeLiteral16 = 1 // next 16 bits are a raw character value
	codeEOS       = 2 // end of stream
	firstDictCode = 3
)

// unitKey encodes a single UTF-16 unit as a fixed two-byte map key.
// Keys are byte pairs rather than rune strings so that lone surrogate
// units stay distinct; string(rune) would fold them into U+FFFD.
func unitKey(u uint16) string {
	return string([]byte{byte(u), byte(u >> 8)})
}

// keyUnit recovers the first UTF-16 unit of a byte-pair key.
func keyUnit(key string) uint16 {
	return uint16(key[0]) | uint16(key[1])<<8
}

// Compress encodes s into a symbol string over Alphabet. The empty
// string encodes to the empty token. Compression has no failure
// modes; callers that place the token in a URL should bound the input
// length themselves.
func Compress(s string) string {
	if s == "" {
		return ""
	}
	return CompressUTF16(utf16.Encode([]rune(s)))
}

// CompressUTF16 encodes a sequence of UTF-16 code units. This is the
// core operation; Compress is a convenience wrapper around it.
func CompressUTF16(units []uint16) string {
	if len(units) == 0 {
		return ""
	}

	e := encoder{
		dict:      make(map[string]int),
		pending:   make(map[string]struct{}),
		dictSize:  firstDictCode,
		numBits:   2,
		enlargeIn: 2,
	}

	// w is the longest dictionary match ending at the previous unit,
	// as a byte-pair key.
	w := ""
	for _, unit := range units {
		c := unitKey(unit)
		if _, ok := e.dict[c]; !ok {
			e.dict[c] = e.dictSize
			e.dictSize++
			e.pending[c] = struct{}{}
		}

		wc := w + c
		if _, ok := e.dict[wc]; ok {
			w = wc
			continue
		}

		e.emit(w)
		e.dict[wc] = e.dictSize
		e.dictSize++
		w = c
	}
	if w != "" {
		e.emit(w)
	}

	e.bits.writeBits(codeEOS, e.numBits)
	e.bits.flush()
	return e.bits.String()
}

// encoder holds per-call compression state. A fresh encoder is built
// for every CompressUTF16 invocation and discarded at the end.
type encoder struct {
	dict      map[string]int      // match key -> dictionary code
	pending   map[string]struct{} // single units never yet emitted as literals
	dictSize  int                 // next code to assign
	numBits   int                 // current code width on the wire
	enlargeIn int                 // insertions left before numBits grows
	bits      bitWriter
}

// grow applies one step of the growth schedule. The decoder runs the
// same schedule from its own offsets; the two must stay in lockstep.
func (e *encoder) grow() {
	e.enlargeIn--
	if e.enlargeIn == 0 {
		e.enlargeIn = 1 << e.numBits
		e.numBits++
	}
}

// emit writes the wire representation of the matched prefix w: a
// literal escape on its first occurrence, its dictionary code after
// that. The pending branch runs the growth schedule once on its own
// and once more below; the decoder decrements twice for a literal as
// well, so collapsing the two would shift every later code width.
func (e *encoder) emit(w string) {
	if _, fresh := e.pending[w]; fresh {
		unit := keyUnit(w)
		if unit < 256 {
			e.bits.writeBits(codeLiteral8, e.numBits)
			e.bits.writeBits(int(unit), 8)
		} else {
			e.bits.writeBits(codeLiteral16, e.numBits)
			e.bits.writeBits(int(unit), 16)
		}
		e.grow()
		delete(e.pending, w)
	} else {
		e.bits.writeBits(e.dict[w], e.numBits)
	}
	e.grow()
}
