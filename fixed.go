package serial

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in `binary.Size` on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// FixedSize returns the binary size of a fixed-size type, or -1 if the type
// contains variable-size fields such as slices, maps or strings.
func FixedSize[Payload any]() int {
	t := reflect.TypeFor[Payload]()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	var zero Payload
	size := binary.Size(&zero)
	sizeCache.Store(t, size)
	return size
}

// ForFixed encodes a value composed only of fixed-size fields in the default
// byte Order and writes the result. The encoding happens here, so a payload
// with variable-size fields fails with ErrEncode before any write.
func ForFixed[Payload any](v Payload) (Serializable, error) {
	size := FixedSize[Payload]()
	if size < 0 {
		return nil, fmt.Errorf("%w: %T is not fixed-size", ErrEncode, v)
	}
	b, err := binary.Append(make([]byte, 0, size), Order, &v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return Literal(b), nil
}
