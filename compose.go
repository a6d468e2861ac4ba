package serial

// Join returns a Serializable that writes first and then second into the same sink.
func Join(first, second Serializable) Serializable {
	return Concat{First: first, Second: second}
}

// Of returns a Serializable that writes each child in order. It is equivalent
// to joining the children left to right; no children writes nothing.
func Of(children ...Serializable) Sequence {
	seq := make(Sequence, len(children))
	copy(seq, children)
	return seq
}

// Padded writes v followed by as many zero bytes as needed to make the
// written length a multiple of align. An align of 0 or 1 means no padding.
func Padded(align int, v Serializable) Serializable {
	if align <= 1 {
		return v
	}
	return Func(func(s Sink) {
		cs := &countingSink{Sink: s}
		v.WriteInto(cs)
		putZeros(s, Roundup(cs.n, align)-cs.n)
	})
}

// AlignedOf is like Of but pads every child except the last to a multiple of
// align. Common values are 4 or 8.
func AlignedOf(align int, children ...Serializable) Sequence {
	seq := make(Sequence, len(children))
	for i, c := range children {
		if i < len(children)-1 {
			c = Padded(align, c)
		}
		seq[i] = c
	}
	return seq
}

// putZeros writes n zero bytes without allocating for common padding sizes.
func putZeros(s Sink, n int) {
	for n > 0 && s.Err() == nil {
		chunk := min(n, BUFFER_SIZE)
		s.Put(empty[:chunk]...)
		n -= chunk
	}
}

// countingSink counts the bytes that pass through it on their way to Sink.
type countingSink struct {
	Sink
	n int
}

func (c *countingSink) Write(p []byte) (int, error) {
	n, err := c.Sink.Write(p)
	c.n += n
	return n, err
}

func (c *countingSink) WriteByte(b byte) error {
	err := c.Sink.WriteByte(b)
	if err == nil {
		c.n++
	}
	return err
}

func (c *countingSink) WriteString(str string) (int, error) {
	n, err := c.Sink.WriteString(str)
	c.n += n
	return n, err
}

func (c *countingSink) Put(p ...byte) Sink {
	_, _ = c.Write(p)
	return c
}

func (c *countingSink) PutByte(b byte) Sink {
	_ = c.WriteByte(b)
	return c
}

func (c *countingSink) PutString(str string) Sink {
	_, _ = c.WriteString(str)
	return c
}

func (c *countingSink) PutSerializable(v Serializable) Sink {
	v.WriteInto(c)
	return c
}
