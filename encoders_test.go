package serial

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// A simple fixed-size struct for testing ForFixed.
type mockPayload struct {
	ID   uint32
	Data [4]byte
}

type varPayload struct {
	Name string
}

type mockMarshaler struct {
	b   []byte
	err error
}

func (m mockMarshaler) MarshalBinary() ([]byte, error) { return m.b, m.err }

type record struct {
	Name string `json:"name" msgpack:"name"`
	Age  int    `json:"age" msgpack:"age"`
}

func TestForFixed(t *testing.T) {
	t.Run("EncodesInDefaultOrder", func(t *testing.T) {
		v, err := ForFixed(mockPayload{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4}, mustBytes(t, v))
	})

	t.Run("SizeIsCached", func(t *testing.T) {
		assert.Equal(t, 8, FixedSize[mockPayload]())
		assert.Equal(t, 8, FixedSize[mockPayload]())
		_, ok := sizeCache.Load(reflect.TypeFor[mockPayload]())
		assert.True(t, ok)
	})

	t.Run("RejectsVariableSize", func(t *testing.T) {
		assert.Equal(t, -1, FixedSize[varPayload]())
		_, err := ForFixed(varPayload{Name: "x"})
		assert.ErrorIs(t, err, ErrEncode)

		_, err = ForFixed(42) // int has no fixed size
		assert.ErrorIs(t, err, ErrEncode)
	})
}

func TestForMarshaler(t *testing.T) {
	v, err := ForMarshaler(mockMarshaler{b: []byte{7, 8}})
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 8}, mustBytes(t, v))

	cause := errors.New("nope")
	_, err = ForMarshaler(mockMarshaler{err: cause})
	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorIs(t, err, cause)
}

func TestForMsgpack(t *testing.T) {
	in := record{Name: "ada", Age: 36}
	v, err := ForMsgpack(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, msgpack.Unmarshal(mustBytes(t, v), &out))
	assert.Equal(t, in, out)

	_, err = ForMsgpack(make(chan int))
	assert.ErrorIs(t, err, ErrEncode)
}

func TestForJSON(t *testing.T) {
	v, err := ForJSON(record{Name: "ada", Age: 36})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada","age":36}`, string(mustBytes(t, v)))

	var out record
	require.NoError(t, json.Unmarshal(mustBytes(t, v), &out))
	assert.Equal(t, "ada", out.Name)

	_, err = ForJSON(make(chan int))
	assert.ErrorIs(t, err, ErrEncode)
}

func TestEncodersCompose(t *testing.T) {
	header, err := ForFixed(struct {
		Magic   [2]byte
		Version uint8
	}{Magic: [2]byte{'S', 'R'}, Version: 1})
	require.NoError(t, err)
	body, err := ForJSON([]int{1, 2})
	require.NoError(t, err)

	v := Of(header, LittleEndian2ByteInt(len("[1,2]")), body)
	assert.Equal(t, append([]byte{'S', 'R', 1, 5, 0}, "[1,2]"...), mustBytes(t, v))
}
