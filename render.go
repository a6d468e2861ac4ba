package serial

import (
	"bytes"
	"io"
)

// Renderer runs Serializables to completion and returns concrete results.
//
// The text renderings go through a BufferSink borrowed from the pool, so
// their output is limited to the pool's sink capacity and fails with
// ErrSinkOverflow beyond it. Bytes has no such limit.
type Renderer struct {
	pool *SinkPool
}

// NewRenderer creates a Renderer borrowing its sinks from pool.
func NewRenderer(pool *SinkPool) *Renderer {
	return &Renderer{pool: pool}
}

// render writes v into a pooled sink and hands the flipped sink to extract.
func render[R any](p *SinkPool, v Serializable, extract func(*BufferSink) R) (R, error) {
	return WithSink(p, func(s *BufferSink) (R, error) {
		v.WriteInto(s)
		if err := s.Err(); err != nil {
			var zero R
			return zero, err
		}
		s.Flip()
		return extract(s), nil
	})
}

// String writes v and returns the written bytes as a string. The bytes are
// not validated or transcoded.
func (r *Renderer) String(v Serializable) (string, error) {
	return render(r.pool, v, func(s *BufferSink) string {
		return string(s.Bytes())
	})
}

// HexString writes v and renders every byte as two uppercase hex digits and a
// space, e.g. "0A FF 00 ". The last byte keeps its trailing space.
func (r *Renderer) HexString(v Serializable) (string, error) {
	return render(r.pool, v, func(s *BufferSink) string {
		return string(AppendHex(make([]byte, 0, 3*s.Remaining()), s.Bytes()))
	})
}

// HexEscapeString writes v and renders every byte as \xHH, e.g. "\x0A\xFF\x00".
func (r *Renderer) HexEscapeString(v Serializable) (string, error) {
	return render(r.pool, v, func(s *BufferSink) string {
		return string(AppendHexEscape(make([]byte, 0, 4*s.Remaining()), s.Bytes()))
	})
}

// Bytes writes v and returns a copy of everything written. It is the same as
// the package-level Bytes.
func (r *Renderer) Bytes(v Serializable) ([]byte, error) {
	return Bytes(v)
}

// Bytes writes v into a growable buffer through a StreamSink and returns
// exactly the bytes written.
func Bytes(v Serializable) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, v); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}

// WriteTo streams v into w and returns the number of bytes written. If w
// buffers (for example a *bufio.Writer), it is flushed.
func WriteTo(w io.Writer, v Serializable) (int64, error) {
	s, err := NewStreamSink(w)
	if err != nil {
		return 0, err
	}
	v.WriteInto(s)
	return s.Result()
}
