package serial

// Serializable describes how to write a value as bytes, independent of where
// the bytes end up. WriteInto appends the encoded bytes to s, in order, and
// must not keep a reference to s after it returns.
//
// Implementations are immutable values: writing the same Serializable into
// any number of sinks produces the same bytes each time.
type Serializable interface {
	WriteInto(s Sink)
}

// Sink is a single-owner write cursor over a destination.
//
// Failures are fatal to the write in progress: the first error is latched,
// every later put becomes a no-op and Err reports it. A sink that failed has
// undefined content and must not be reused without a reset.
type Sink interface {
	// io.Writer, io.ByteWriter and io.StringWriter let standard encoders write
	// straight into a sink.
	Write(p []byte) (int, error)
	WriteByte(c byte) error
	WriteString(s string) (int, error)

	// Put appends p and returns the sink for chaining.
	Put(p ...byte) Sink
	// PutByte appends a single byte.
	PutByte(c byte) Sink
	// PutString appends the bytes of str.
	PutString(str string) Sink
	// PutSerializable writes v into the sink.
	PutSerializable(v Serializable) Sink

	// Err returns the first error encountered by the sink, if any.
	Err() error
}

// Func adapts an ordinary function to the Serializable interface.
type Func func(s Sink)

func (f Func) WriteInto(s Sink) { f(s) }

// Literal writes a fixed byte sequence.
type Literal []byte

func (l Literal) WriteInto(s Sink) { s.Put(l...) }

// Concat writes First and then Second, with nothing in between.
type Concat struct {
	First  Serializable
	Second Serializable
}

func (c Concat) WriteInto(s Sink) {
	c.First.WriteInto(s)
	c.Second.WriteInto(s)
}

// Sequence writes each of its elements in order. An empty Sequence writes nothing.
type Sequence []Serializable

func (q Sequence) WriteInto(s Sink) {
	for _, v := range q {
		if s.Err() != nil {
			return
		}
		v.WriteInto(s)
	}
}

// Statically assert that the variants implement Serializable.
var (
	_ Serializable = Func(nil)
	_ Serializable = Literal(nil)
	_ Serializable = Concat{}
	_ Serializable = Sequence(nil)
)
