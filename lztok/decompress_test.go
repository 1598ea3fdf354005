package lztok

import (
	"errors"
	"testing"
)

func TestDecompressEmpty(t *testing.T) {
	got, err := Decompress("")
	if err != nil {
		t.Fatalf("Decompress(\"\"): %v", err)
	}
	if got != "" {
		t.Errorf("Decompress(\"\") = %q, want empty", got)
	}

	units, err := DecompressUTF16("")
	if err != nil {
		t.Fatalf("DecompressUTF16(\"\"): %v", err)
	}
	if len(units) != 0 {
		t.Errorf("DecompressUTF16(\"\") = %v, want none", units)
	}
}

func TestDecompressTruncated(t *testing.T) {
	// Every proper prefix of a valid token must fail loudly: the
	// end-of-stream marker is the only delimiter, so a cut token can
	// never be mistaken for a complete one.
	texts := []string{
		"A", "BB", "hello", "the cat sat on the mat, the cat sat on the mat",
		"日本語のテキスト", "aaaa",
	}
	for _, text := range texts {
		token := Compress(text)
		for cut := 1; cut < len(token); cut++ {
			prefix := token[:cut]
			got, err := Decompress(prefix)
			if err == nil {
				// Dropping only the final symbol can leave the token
				// complete when that symbol was pure flush padding.
				// That decode is whole, not silently wrong.
				if cut == len(token)-1 && got == text {
					continue
				}
				t.Errorf("Decompress(%q) (prefix of %q) = %q, want error", prefix, token, got)
				continue
			}
			var exhausted *StreamExhaustedError
			if !errors.As(err, &exhausted) {
				t.Errorf("Decompress(%q) = %v, want *StreamExhaustedError", prefix, err)
			}
		}
	}
}

func TestDecompressInvalidMarker(t *testing.T) {
	// '$' is symbol 63 (0b111111) and 'z' is 51 (0b110011): both open
	// with two set bits, an initial marker of 3.
	for _, token := range []string{"$AA", "zzz", "$"} {
		_, err := Decompress(token)
		var invalid *InvalidMarkerError
		if !errors.As(err, &invalid) {
			t.Fatalf("Decompress(%q) = %v, want *InvalidMarkerError", token, err)
		}
		if invalid.Marker != 3 {
			t.Errorf("marker = %d, want 3", invalid.Marker)
		}
	}
}

func TestDecompressInvalidSymbol(t *testing.T) {
	for _, token := range []string{"I~A", "IJ A", "%2B", "IJ\x00"} {
		_, err := Decompress(token)
		var invalid *InvalidSymbolError
		if !errors.As(err, &invalid) {
			t.Fatalf("Decompress(%q) = %v, want *InvalidSymbolError", token, err)
		}
	}
}

func TestDecompressUnresolvedCode(t *testing.T) {
	// Craft a stream by hand: a literal 'A', then code 7 at the
	// then-current 3-bit width. After the bootstrap the dictionary
	// holds indices 0..3 and the next assignable index is 4, so 7 is
	// neither defined nor self-referential.
	var w bitWriter
	w.writeBits(codeLiteral8, 2)
	w.writeBits('A', 8)
	w.writeBits(7, 3)
	w.flush()

	_, err := Decompress(w.String())
	var unresolved *UnresolvedCodeError
	if !errors.As(err, &unresolved) {
		t.Fatalf("Decompress = %v, want *UnresolvedCodeError", err)
	}
	if unresolved.Code != 7 || unresolved.NextCode != 4 {
		t.Errorf("got code %d next %d, want 7 and 4", unresolved.Code, unresolved.NextCode)
	}
}

func TestDecompressSelfReferentialByHand(t *testing.T) {
	// The complementary case to TestDecompressUnresolvedCode: code 4
	// at the same point is exactly the next assignable index, the
	// self-referential LZ78 edge, and resolves to w + w[0].
	var w bitWriter
	w.writeBits(codeLiteral8, 2)
	w.writeBits('A', 8)
	w.writeBits(4, 3)
	w.writeBits(codeEOS, 3) // enlargeIn is 3 after the insert, width unchanged
	w.flush()

	got, err := Decompress(w.String())
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if got != "AAA" {
		t.Errorf("Decompress = %q, want %q", got, "AAA")
	}
}

func TestDecodeErrorsAreDistinguishable(t *testing.T) {
	// Callers must be able to tell "the source was the empty string"
	// apart from "the token is corrupt": empty input is a nil-error
	// empty result, every failure is a typed error.
	cases := []struct {
		token string
		want  error
	}{
		{"I", &StreamExhaustedError{}},
		{"$AA", &InvalidMarkerError{}},
		{"I~", &InvalidSymbolError{}},
	}
	for _, c := range cases {
		_, err := Decompress(c.token)
		if err == nil {
			t.Fatalf("Decompress(%q) succeeded, want failure", c.token)
		}
		switch c.want.(type) {
		case *StreamExhaustedError:
			var e *StreamExhaustedError
			if !errors.As(err, &e) {
				t.Errorf("Decompress(%q) = %T, want %T", c.token, err, c.want)
			}
		case *InvalidMarkerError:
			var e *InvalidMarkerError
			if !errors.As(err, &e) {
				t.Errorf("Decompress(%q) = %T, want %T", c.token, err, c.want)
			}
		case *InvalidSymbolError:
			var e *InvalidSymbolError
			if !errors.As(err, &e) {
				t.Errorf("Decompress(%q) = %T, want %T", c.token, err, c.want)
			}
		}
	}
}
