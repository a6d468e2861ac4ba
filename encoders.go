package serial

import (
	"encoding"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// ForMarshaler writes the output of m.MarshalBinary.
func ForMarshaler(m encoding.BinaryMarshaler) (Serializable, error) {
	b, err := m.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return Literal(b), nil
}

// ForMsgpack writes the MessagePack encoding of v.
func ForMsgpack(v any) (Serializable, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: msgpack: %w", ErrEncode, err)
	}
	return Literal(b), nil
}

// ForJSON writes the JSON encoding of v, without a trailing newline.
func ForJSON(v any) (Serializable, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrEncode, err)
	}
	return Literal(b), nil
}
