// Package base62 implements positional encoding of non-negative
// integers over a caller-supplied alphabet. The alphabet's order
// defines the digit values: alphabet[0] is zero.
package base62

// Alphabet is the default 62-character set used for short codes.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Encode returns n written most significant digit first in the given
// alphabet.
func Encode(n uint64, alphabet string) string {
	if n == 0 {
		return string(alphabet[0])
	}

	base := uint64(len(alphabet))
	buf := make([]byte, 0, 11)

	for n > 0 {
		buf = append(buf, alphabet[n%base])
		n /= base
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// EncodePadded encodes n and left-pads the result with alphabet[0] up
// to width characters. Values too large to fit are returned unpadded.
func EncodePadded(n uint64, width int, alphabet string) string {
	s := Encode(n, alphabet)
	if len(s) >= width {
		return s
	}

	buf := make([]byte, width-len(s), width)
	for i := range buf {
		buf[i] = alphabet[0]
	}

	return string(append(buf, s...))
}
