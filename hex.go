package serial

import "fmt"

const hexUpper = "0123456789ABCDEF"

// hexValue maps an ASCII byte to its hex digit value, or -1 if it is not a hex digit.
var hexValue = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = int8(c - 'a' + 10)
		t[c-'a'+'A'] = int8(c - 'a' + 10)
	}
	return t
}()

// HexDigit reports the value of the hex digit c.
func HexDigit(c byte) (int, bool) {
	v := hexValue[c]
	return int(v), v >= 0
}

// DecodeHex decodes pairs of hex digits into bytes. Each digit may be upper
// or lower case. An empty string decodes to zero bytes.
func DecodeHex(digits string) ([]byte, error) {
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d digits", ErrOddHexLength, len(digits))
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		hi, lo := hexValue[digits[i]], hexValue[digits[i+1]]
		if hi < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidHexDigit, digits[i], i)
		}
		if lo < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidHexDigit, digits[i+1], i+1)
		}
		out[i/2] = byte(hi)<<4 | byte(lo)
	}
	return out, nil
}

// AppendHex appends each byte of p as two uppercase hex digits followed by a space.
// The last byte keeps its trailing space.
func AppendHex(dst, p []byte) []byte {
	for _, b := range p {
		dst = append(dst, hexUpper[b>>4], hexUpper[b&0x0F], ' ')
	}
	return dst
}

// AppendHexEscape appends each byte of p as \xHH with uppercase digits.
func AppendHexEscape(dst, p []byte) []byte {
	for _, b := range p {
		dst = append(dst, '\\', 'x', hexUpper[b>>4], hexUpper[b&0x0F])
	}
	return dst
}
