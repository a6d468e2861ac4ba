package serial

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// StreamSink is a Sink that forwards every put to an io.Writer as it happens.
// It owns no buffer of its own. The first failure of the destination is
// wrapped in ErrSinkIO and latched; the write is not retried and later puts
// become no-ops.
type StreamSink struct {
	w     io.Writer
	bw    io.ByteWriter   // set when w has an efficient WriteByte
	sw    io.StringWriter // set when w has an efficient WriteString
	count int64           // total bytes accepted by w
	err   error           // first error encountered
}

var _ Sink = (*StreamSink)(nil)

// NewStreamSink creates a StreamSink over w.
func NewStreamSink(w io.Writer) (*StreamSink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	s := &StreamSink{w: w}
	s.bw, _ = w.(io.ByteWriter)
	s.sw, _ = w.(io.StringWriter)
	return s, nil
}

// setError records the first non-nil error.
func (s *StreamSink) setError(err error) {
	if s.err == nil && err != nil {
		s.err = fmt.Errorf("%w: %w", ErrSinkIO, err)
	}
}

// account checks the result of a write of want bytes and updates the count.
func (s *StreamSink) account(n, want int, err error) (int, error) {
	if n < 0 {
		s.setError(ErrInvalidWrite)
		return 0, s.err
	}
	s.count += int64(n)
	if err == nil && n < want {
		err = io.ErrShortWrite
	}
	s.setError(err)
	return n, s.err
}

// Write implements the io.Writer interface.
func (s *StreamSink) Write(p []byte) (int, error) {
	if len(p) == 0 || s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	return s.account(n, len(p), err)
}

// WriteString implements the io.StringWriter interface.
func (s *StreamSink) WriteString(str string) (int, error) {
	if str == "" || s.err != nil {
		return 0, s.err
	}
	if s.sw == nil {
		return s.Write([]byte(str))
	}
	n, err := s.sw.WriteString(str)
	return s.account(n, len(str), err)
}

// WriteByte implements the io.ByteWriter interface.
func (s *StreamSink) WriteByte(c byte) error {
	if s.err != nil {
		return s.err
	}
	if s.bw == nil {
		_, err := s.Write([]byte{c})
		return err
	}
	if err := s.bw.WriteByte(c); err != nil {
		s.setError(err)
		return s.err
	}
	s.count++
	return nil
}

func (s *StreamSink) Put(p ...byte) Sink {
	_, _ = s.Write(p)
	return s
}

func (s *StreamSink) PutByte(c byte) Sink {
	_ = s.WriteByte(c)
	return s
}

func (s *StreamSink) PutString(str string) Sink {
	_, _ = s.WriteString(str)
	return s
}

func (s *StreamSink) PutSerializable(v Serializable) Sink {
	v.WriteInto(s)
	return s
}

func (s *StreamSink) Err() error   { return s.err }
func (s *StreamSink) Count() int64 { return s.count }

// Flush flushes the destination if it buffers (for example a *bufio.Writer).
func (s *StreamSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if f, ok := s.w.(flusher); ok {
		s.setError(f.Flush())
	}
	return s.err
}

// Result flushes the destination and returns the final count and error state.
func (s *StreamSink) Result() (int64, error) {
	_ = s.Flush()
	return s.count, s.err
}
