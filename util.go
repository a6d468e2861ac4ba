package serial

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// ByteOrder is a binary.ByteOrder that can also append.
// binary.BigEndian and binary.LittleEndian satisfy it.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the byte order used by ForFixed.
	Order ByteOrder = LE
)

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
