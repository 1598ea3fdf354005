// Package lztok implements LZTOK, a compact URL-safe text codec.
//
// LZTOK compresses short, human-authored text into a token built from
// a 64-symbol URL-safe alphabet. The encoder and decoder run in
// separate deployments with no shared state: each side re-derives the
// full dictionary from scratch, so the token is a wire protocol and
// every bit-level detail below is a compatibility contract.
//
// # Wire Format
//
// Alphabet (fixed order, 6-bit indices):
//
//	A-Z a-z 0-9 + - $
//
// Reserved codes:
//
//	0  literal escape, next 8 bits are a raw character value
//	1  literal escape, next 16 bits are a raw character value
//	2  end of stream
//
// Dictionary codes proper start at 3. Values are written least
// significant bit first; within each 6-bit output symbol, bits are
// assembled most significant first. The encoder starts with
// dictSize=3, numBits=2, enlargeIn=2; the decoder starts with
// dictSize=4, numBits=3, enlargeIn=4 (it materializes the first
// literal before entering its main loop).
//
// # Compression Model
//
// Classic LZ78 dictionary growth with literal-escape bootstrapping:
// the first occurrence of any character is escaped as a raw value,
// every later repeat of a seen substring is replaced by a dictionary
// code. The dictionary never shrinks within a call and both sides
// grow it in lockstep, one entry per processed token.
//
// Input is modeled as UTF-16 code units. Surrogate pairs round-trip
// as two independent units; the codec is not codepoint-aware.
//
// # Usage
//
//	token := lztok.Compress("hello hello hello")
//	text, err := lztok.Decompress(token)
//
// Both operations are pure and allocate all state per call, so
// concurrent use needs no locking. Decode failures are typed
// (*StreamExhaustedError, *UnresolvedCodeError, *InvalidMarkerError,
// *InvalidSymbolError) so callers can tell "source was empty" apart
// from "token is corrupt".
//
// The package has no dependencies: it is the single source of truth
// for the wire format, and foreign implementations are conformance
// test targets, not second codebases.
package lztok
