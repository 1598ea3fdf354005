package lztok

import "unicode/utf16"

// Decompress decodes a symbol string produced by Compress back into
// the original text. The empty token decodes to the empty string.
// Corrupt or truncated tokens fail with a typed error; partial output
// is never returned.
func Decompress(token string) (string, error) {
	units, err := DecompressUTF16(token)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// DecompressUTF16 decodes a symbol string into UTF-16 code units.
// This is the core operation; Decompress is a convenience wrapper
// around it.
func DecompressUTF16(token string) ([]uint16, error) {
	if token == "" {
		return nil, nil
	}

	r := bitReader{input: token}

	// Bootstrap: the first token is always a literal escape (or the
	// end-of-stream marker for a token that encodes the empty
	// string), read at the fixed initial width of 2 bits.
	marker, err := r.readBits(2)
	if err != nil {
		return nil, err
	}
	var first uint16
	switch marker {
	case codeLiteral8:
		v, err := r.readBits(8)
		if err != nil {
			return nil, err
		}
		first = uint16(v)
	case codeLiteral16:
		v, err := r.readBits(16)
		if err != nil {
			return nil, err
		}
		first = uint16(v)
	case codeEOS:
		return nil, nil
	default:
		return nil, &InvalidMarkerError{Marker: marker}
	}

	// The decoder's schedule starts one step ahead of the encoder's
	// (dictSize=4, numBits=3, enlargeIn=4) because the first literal
	// above is already materialized at index 3.
	dictionary := [][]uint16{nil, nil, nil, {first}}
	numBits := 3
	enlargeIn := 4

	w := dictionary[firstDictCode]
	result := append([]uint16(nil), first)

	for {
		code, err := r.readBits(numBits)
		if err != nil {
			return nil, err
		}

		c := code
		switch code {
		case codeLiteral8, codeLiteral16:
			width := 8
			if code == codeLiteral16 {
				width = 16
			}
			v, err := r.readBits(width)
			if err != nil {
				return nil, err
			}
			dictionary = append(dictionary, []uint16{uint16(v)})
			c = len(dictionary) - 1
			enlargeIn--
			if enlargeIn == 0 {
				enlargeIn = 1 << numBits
				numBits++
			}
		case codeEOS:
			return result, nil
		}

		var entry []uint16
		switch {
		case c < len(dictionary):
			entry = dictionary[c]
		case c == len(dictionary):
			// Self-referential code: the entry being defined by this
			// very token. Produced when a matched string is
			// immediately followed by itself.
			entry = appendUnit(w, w[0])
		default:
			return nil, &UnresolvedCodeError{Code: c, NextCode: len(dictionary)}
		}

		result = append(result, entry...)
		dictionary = append(dictionary, appendUnit(w, entry[0]))
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
		w = entry
	}
}

// appendUnit returns a fresh slice holding w followed by u.
// Dictionary entries alias each other's backing arrays only if copied
// carelessly; a fresh allocation keeps them immutable.
func appendUnit(w []uint16, u uint16) []uint16 {
	out := make([]uint16, len(w)+1)
	copy(out, w)
	out[len(w)] = u
	return out
}
