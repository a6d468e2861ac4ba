package serial

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ForByte writes the single byte b.
func ForByte(b byte) Serializable {
	return Literal{b}
}

// ForChar writes the lowest 8 bits of c. Characters above 0xFF are truncated.
func ForChar(c rune) Serializable {
	return Literal{byte(c)}
}

// ForBytes writes b exactly. The bytes are copied, so later changes to b do
// not affect the result.
func ForBytes(b ...byte) Serializable {
	l := make(Literal, len(b))
	copy(l, b)
	return l
}

// ForString writes the UTF-8 bytes of str.
func ForString(str string) Serializable {
	return Literal(str)
}

// ForBool writes '1' for true and '0' for false.
func ForBool(b bool) Serializable {
	if b {
		return ForChar('1')
	}
	return ForChar('0')
}

// ForInt writes n in base 10 with no padding and a leading '-' when negative.
func ForInt[T constraints.Integer](n T) Serializable {
	return Literal(appendInt(nil, n))
}

func appendInt[T constraints.Integer](dst []byte, n T) []byte {
	if n < 0 {
		return strconv.AppendInt(dst, int64(n), 10)
	}
	return strconv.AppendUint(dst, uint64(n), 10)
}

// ForIntAsString writes n in base 10, left-padded with zeros to exactly
// digits characters. The minus sign of a negative value counts towards the
// width. It fails with ErrTooManyDigits when n does not fit.
func ForIntAsString[T constraints.Integer](digits int, n T) (Serializable, error) {
	if digits < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, digits)
	}
	str := appendInt(nil, n)
	if len(str) > digits {
		return nil, fmt.Errorf("%w: %s needs more than %d digits", ErrTooManyDigits, str, digits)
	}
	out := make(Literal, digits)
	sign := 0
	if str[0] == '-' {
		out[0] = '-'
		sign = 1
	}
	pad := digits - len(str)
	for i := sign; i < sign+pad; i++ {
		out[i] = '0'
	}
	copy(out[sign+pad:], str[sign:])
	return out, nil
}

// ForHexString decodes pairs of hex digits and writes the resulting bytes.
// Decoding happens here, so malformed input is reported before any write.
func ForHexString(digits string) (Serializable, error) {
	b, err := DecodeHex(digits)
	if err != nil {
		return nil, err
	}
	return Literal(b), nil
}

// LittleEndian2ByteInt writes the low 16 bits of n, low byte first.
// Higher bits are ignored.
func LittleEndian2ByteInt[T constraints.Integer](n T) Serializable {
	u := uint64(n)
	return Join(ForByte(byte(u)), ForByte(byte(u>>8)))
}

// ForUint16 writes v as two bytes in the given order.
func ForUint16(order ByteOrder, v uint16) Serializable {
	return Literal(order.AppendUint16(nil, v))
}

// ForUint32 writes v as four bytes in the given order.
func ForUint32(order ByteOrder, v uint32) Serializable {
	return Literal(order.AppendUint32(nil, v))
}

// ForUint64 writes v as eight bytes in the given order.
func ForUint64(order ByteOrder, v uint64) Serializable {
	return Literal(order.AppendUint64(nil, v))
}
