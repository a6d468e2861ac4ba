package serial

import (
	"fmt"
	"io"
)

// DefaultSinkCapacity is the capacity of a BufferSink created with a non-positive size.
const DefaultSinkCapacity = 1 << 12

// BufferSink is a Sink that writes into a pre-allocated byte slice.
// It never grows: a write that does not fit fails with ErrSinkOverflow and
// leaves nothing of that write behind.
//
// A BufferSink starts in write mode. Flip switches it to read mode, where
// Read, ReadByte and Bytes expose the written region; Reset switches it back
// to write mode at position zero without clearing the backing bytes.
type BufferSink struct {
	B   []byte // backing storage, len(B) is the capacity
	N   int    // write position, or the end of valid data once flipped
	r   int    // read position in read mode
	rd  bool   // true once flipped
	err error
}

var (
	_ Sink          = (*BufferSink)(nil)
	_ io.Reader     = (*BufferSink)(nil)
	_ io.ByteReader = (*BufferSink)(nil)
)

// NewBufferSink creates a BufferSink with the given capacity.
func NewBufferSink(capacity int) *BufferSink {
	if capacity <= 0 {
		capacity = DefaultSinkCapacity
	}
	return &BufferSink{B: make([]byte, capacity)}
}

// NewBufferSinkFrom creates a BufferSink over p. The full capacity of p is used.
func NewBufferSinkFrom(p []byte) *BufferSink {
	return &BufferSink{B: p[:cap(p)]}
}

// reserve checks that n more bytes fit and latches an error if not.
func (s *BufferSink) reserve(n int) bool {
	if s.err != nil {
		return false
	}
	if s.rd {
		s.err = ErrSinkFlipped
		return false
	}
	if n > len(s.B)-s.N {
		s.err = fmt.Errorf("%w: %d bytes at position %d, capacity %d", ErrSinkOverflow, n, s.N, len(s.B))
		return false
	}
	return true
}

// Write implements the io.Writer interface.
func (s *BufferSink) Write(p []byte) (int, error) {
	if !s.reserve(len(p)) {
		return 0, s.err
	}
	s.N += copy(s.B[s.N:], p)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface.
func (s *BufferSink) WriteString(str string) (int, error) {
	if !s.reserve(len(str)) {
		return 0, s.err
	}
	s.N += copy(s.B[s.N:], str)
	return len(str), nil
}

// WriteByte implements the io.ByteWriter interface.
func (s *BufferSink) WriteByte(c byte) error {
	if !s.reserve(1) {
		return s.err
	}
	s.B[s.N] = c
	s.N++
	return nil
}

func (s *BufferSink) Put(p ...byte) Sink {
	_, _ = s.Write(p)
	return s
}

func (s *BufferSink) PutByte(c byte) Sink {
	_ = s.WriteByte(c)
	return s
}

func (s *BufferSink) PutString(str string) Sink {
	_, _ = s.WriteString(str)
	return s
}

func (s *BufferSink) PutSerializable(v Serializable) Sink {
	v.WriteInto(s)
	return s
}

func (s *BufferSink) Err() error { return s.err }

// Flip switches the sink from write mode to read mode. Reads start at the
// beginning of the written region. Flipping twice is a no-op.
func (s *BufferSink) Flip() {
	if !s.rd {
		s.rd = true
		s.r = 0
	}
}

// Flipped reports whether the sink is in read mode.
func (s *BufferSink) Flipped() bool { return s.rd }

// Read implements the io.Reader interface over the written region.
// It reads nothing until the sink has been flipped.
func (s *BufferSink) Read(p []byte) (int, error) {
	if !s.rd || s.r >= s.N {
		return 0, io.EOF
	}
	n := copy(p, s.B[s.r:s.N])
	s.r += n
	return n, nil
}

// ReadByte implements the io.ByteReader interface over the written region.
func (s *BufferSink) ReadByte() (byte, error) {
	if !s.rd || s.r >= s.N {
		return 0, io.EOF
	}
	c := s.B[s.r]
	s.r++
	return c, nil
}

// Remaining returns the number of unread bytes in read mode.
func (s *BufferSink) Remaining() int {
	if !s.rd {
		return 0
	}
	return s.N - s.r
}

// Reset rewinds the sink to write mode at position zero and clears any
// latched error. The backing bytes are left as they are.
func (s *BufferSink) Reset() {
	s.N, s.r, s.rd, s.err = 0, 0, false, nil
}

// Len returns the number of bytes written.
func (s *BufferSink) Len() int { return s.N }

// Cap returns the fixed capacity of the sink.
func (s *BufferSink) Cap() int { return len(s.B) }

// Available returns the number of bytes that can still be written.
func (s *BufferSink) Available() int { return len(s.B) - s.N }

// Bytes returns a view of the written region. The view aliases the sink's
// storage and is only valid until the sink is reset.
func (s *BufferSink) Bytes() []byte { return s.B[:s.N] }
