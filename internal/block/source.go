package block

import (
	"errors"
	"io"
)

// Source is the Byte Source contract of spec.md §4.1/§6: positioned reads
// of raw bytes, ASCII strings, and little-endian integers over an
// underlying readable stream, plus skip and a running position counter.
//
// Every read of length n advances Pos() by exactly n; a partial read fails
// with ErrIO and leaves the position unspecified (the decode is aborted on
// any Source error, per spec.md §7, so callers never resume after one).
type Source interface {
	ReadBytes(n int) ([]byte, error)
	ReadString(n int) (string, error)
	ReadU16LE() (uint16, error)
	ReadU8() (byte, error)
	SkipBytes(n int) error
	Pos() uint64
}

// readerSource adapts an io.Reader to Source. It does not require io.Seeker:
// SkipBytes seeks forward when the reader implements io.Seeker and
// otherwise reads and discards, matching spec.md §4.1's "seeking where
// possible".
type readerSource struct {
	r   io.Reader
	pos uint64
}

// NewSource wraps r as a Source. r is consumed sequentially; nothing is
// buffered beyond what a single read requires.
func NewSource(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, ioError(err)
	}
	s.pos += uint64(n)
	return buf, nil
}

func (s *readerSource) ReadString(n int) (string, error) {
	b, err := s.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *readerSource) ReadU16LE() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (s *readerSource) ReadU8() (byte, error) {
	b, err := s.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *readerSource) SkipBytes(n int) error {
	if n <= 0 {
		return nil
	}
	if seeker, ok := s.r.(io.Seeker); ok {
		if _, err := seeker.Seek(int64(n), io.SeekCurrent); err != nil {
			return ioError(err)
		}
		s.pos += uint64(n)
		return nil
	}
	if _, err := io.CopyN(io.Discard, s.r, int64(n)); err != nil {
		return ioError(err)
	}
	s.pos += uint64(n)
	return nil
}

func (s *readerSource) Pos() uint64 { return s.pos }

// ioError wraps any underlying read failure, including io.EOF and
// io.ErrUnexpectedEOF mid-field, as ErrIO per spec.md §7.
func ioError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrIO
	}
	return errors.Join(ErrIO, err)
}
