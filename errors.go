package serial

import "errors"

var (
	// ErrOddHexLength indicates that ForHexString was given an odd number of hex digits.
	ErrOddHexLength = errors.New("serial: odd number of hex digits")

	// ErrInvalidHexDigit indicates that ForHexString was given a character outside 0-9, a-f, A-F.
	ErrInvalidHexDigit = errors.New("serial: invalid hex digit")

	// ErrTooManyDigits indicates that a value's decimal form is wider than the requested digit count.
	ErrTooManyDigits = errors.New("serial: value longer than digit count")

	// ErrInvalidWidth indicates a non-positive digit count.
	ErrInvalidWidth = errors.New("serial: digit count must be positive")

	// ErrEncode wraps failures of the structured encoders (msgpack, json, BinaryMarshaler, fixed).
	ErrEncode = errors.New("serial: encode failed")

	// ErrSinkOverflow indicates a write past the fixed capacity of a BufferSink.
	// The buffer is never grown; the sink must be discarded or reset.
	ErrSinkOverflow = errors.New("serial: buffer sink capacity exceeded")

	// ErrSinkFlipped indicates a write into a BufferSink that was flipped to read mode and not reset.
	ErrSinkFlipped = errors.New("serial: write to flipped buffer sink")

	// ErrSinkIO wraps an error returned by the destination of a StreamSink.
	ErrSinkIO = errors.New("serial: stream sink write failed")

	// ErrNilWriter indicates that NewStreamSink or WriteTo was called with a nil io.Writer.
	ErrNilWriter = errors.New("serial: nil io.Writer")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("serial: writer returned invalid count from Write")
)
