package lztok

import "fmt"

// StreamExhaustedError is returned when the bit cursor runs out of
// symbols before an end-of-stream marker is read. A truncated token
// fails with this error rather than returning partial output.
type StreamExhaustedError struct {
	Offset int // symbol index at which the cursor ran out
}

func (e *StreamExhaustedError) Error() string {
	return fmt.Sprintf("lztok: stream exhausted at symbol %d before end-of-stream marker", e.Offset)
}

// UnresolvedCodeError is returned when a token references a dictionary
// code that has not been defined and is not the self-referential next
// index. This means the token is corrupt or was produced by an
// incompatible encoder.
type UnresolvedCodeError struct {
	Code     int // the code that was read
	NextCode int // the next code the dictionary would have assigned
}

func (e *UnresolvedCodeError) Error() string {
	return fmt.Sprintf("lztok: unresolved dictionary code %d (next unassigned code is %d)", e.Code, e.NextCode)
}

// InvalidMarkerError is returned when the leading 2-bit marker of a
// token is neither a literal escape (0, 1) nor end of stream (2).
type InvalidMarkerError struct {
	Marker int
}

func (e *InvalidMarkerError) Error() string {
	return fmt.Sprintf("lztok: invalid initial marker %d (want 0, 1 or 2)", e.Marker)
}

// InvalidSymbolError is returned when a token contains a character
// outside the 64-symbol alphabet, typically the result of a transport
// layer mangling the token.
type InvalidSymbolError struct {
	Char   byte
	Offset int // byte offset of the character within the token
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("lztok: invalid symbol %q at offset %d", e.Char, e.Offset)
}
