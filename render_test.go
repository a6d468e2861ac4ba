package serial

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RendererTestSuite struct {
	suite.Suite
	pool *SinkPool
	r    *Renderer
}

func (s *RendererTestSuite) SetupTest() {
	s.pool = NewSinkPool(DefaultSinkCapacity)
	s.r = NewRenderer(s.pool)
}

func (s *RendererTestSuite) TestString() {
	str, err := s.r.String(Of(ForString("id="), ForInt(42), ForChar(';'), ForBool(true)))
	s.Require().NoError(err)
	s.Assert().Equal("id=42;1", str)

	str, err = s.r.String(ForBool(false))
	s.Require().NoError(err)
	s.Assert().Equal("0", str)
}

func (s *RendererTestSuite) TestHexString() {
	str, err := s.r.HexString(ForBytes(0x0A, 0xFF, 0x00))
	s.Require().NoError(err)
	s.Assert().Equal("0A FF 00 ", str)

	str, err = s.r.HexString(ForBytes(0x0A, 0xFF))
	s.Require().NoError(err)
	s.Assert().Equal("0A FF ", str)

	str, err = s.r.HexString(Of())
	s.Require().NoError(err)
	s.Assert().Empty(str)
}

func (s *RendererTestSuite) TestHexEscapeString() {
	str, err := s.r.HexEscapeString(ForBytes(0x0A, 0xFF, 0x00))
	s.Require().NoError(err)
	s.Assert().Equal(`\x0A\xFF\x00`, str)

	str, err = s.r.HexEscapeString(ForBytes(0x0A, 0xFF))
	s.Require().NoError(err)
	s.Assert().Equal(`\x0A\xFF`, str)
}

func (s *RendererTestSuite) TestBytes() {
	b, err := s.r.Bytes(LittleEndian2ByteInt(0x1234))
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x34, 0x12}, b)
}

func (s *RendererTestSuite) TestReturnsSinkToPool() {
	for i := 0; i < 5; i++ {
		_, err := s.r.HexString(ForBytes(1, 2, 3))
		s.Require().NoError(err)
	}
	_, err := s.r.String(ForBytes(make([]byte, DefaultSinkCapacity+1)...))
	s.Require().Error(err)

	st := s.pool.Stats()
	s.Assert().EqualValues(1, st.Created)
	s.Assert().EqualValues(5, st.Reused)
}

func (s *RendererTestSuite) TestPooledOutputIsBoundedButBytesIsNot() {
	big := ForBytes(bytes.Repeat([]byte{0x5A}, DefaultSinkCapacity+1)...)

	_, err := s.r.String(big)
	s.Assert().ErrorIs(err, ErrSinkOverflow)
	_, err = s.r.HexString(big)
	s.Assert().ErrorIs(err, ErrSinkOverflow)
	_, err = s.r.HexEscapeString(big)
	s.Assert().ErrorIs(err, ErrSinkOverflow)

	b, err := s.r.Bytes(big)
	s.Require().NoError(err)
	s.Assert().Len(b, DefaultSinkCapacity+1)
}

func (s *RendererTestSuite) TestResultsDoNotAliasPooledSink() {
	first, err := s.r.String(ForString("first"))
	s.Require().NoError(err)
	_, err = s.r.String(ForString("XXXXX"))
	s.Require().NoError(err)
	s.Assert().Equal("first", first)
}

func (s *RendererTestSuite) TestConcurrentRendering() {
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := ForIntAsString(6, i*1000+j)
				if err != nil {
					errs <- err
					return
				}
				str, err := s.r.String(v)
				if err != nil {
					errs <- err
					return
				}
				if want := fmt.Sprintf("%06d", i*1000+j); str != want {
					errs <- fmt.Errorf("got %q, want %q", str, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Fail(err.Error())
	}
}

func TestRenderer(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func TestWriteTo(t *testing.T) {
	t.Run("Streams", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := WriteTo(&buf, Of(ForString("ab"), ForByte('c')))
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
		assert.Equal(t, "abc", buf.String())
	})

	t.Run("NilWriter", func(t *testing.T) {
		_, err := WriteTo(nil, ForByte(1))
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("IOFailure", func(t *testing.T) {
		cause := errors.New("broken pipe")
		_, err := WriteTo(&failingWriter{limit: 1, err: cause}, ForBytes(1, 2))
		assert.ErrorIs(t, err, ErrSinkIO)
		assert.ErrorIs(t, err, cause)
	})
}

func TestHexHelpers(t *testing.T) {
	assert.Equal(t, "00 7F 80 FF ", string(AppendHex(nil, []byte{0x00, 0x7F, 0x80, 0xFF})))
	assert.Equal(t, `\x00\x7F\x80\xFF`, string(AppendHexEscape(nil, []byte{0x00, 0x7F, 0x80, 0xFF})))

	for _, c := range []byte("0123456789abcdefABCDEF") {
		_, ok := HexDigit(c)
		assert.True(t, ok, "%q", c)
	}
	v, ok := HexDigit('e')
	assert.True(t, ok)
	assert.Equal(t, 14, v)
	_, ok = HexDigit('g')
	assert.False(t, ok)
}
