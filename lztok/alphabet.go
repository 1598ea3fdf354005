package lztok

// Alphabet is the 64-symbol output alphabet in wire order: uppercase,
// lowercase, digits, then '+', '-', '$'. Symbol order is a protocol
// constant; encoder and decoder must use the identical table or every
// token is garbage.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

// symbolBits is the width of one alphabet symbol on the wire.
const symbolBits = 6

// invalidSymbol marks bytes outside the alphabet in the reverse table.
const invalidSymbol = 0xff

// reverse maps a byte to its 6-bit alphabet index. Built once at
// package init and never mutated; there is no lazy cache to share.
var reverse = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}
	return table
}()

// SymbolChar returns the alphabet character for a 6-bit index.
// The index must be in 0..63.
func SymbolChar(index int) byte {
	return Alphabet[index]
}

// SymbolIndex returns the 6-bit index of an alphabet character and
// whether the character belongs to the alphabet.
func SymbolIndex(ch byte) (int, bool) {
	idx := reverse[ch]
	if idx == invalidSymbol {
		return 0, false
	}
	return int(idx), true
}
