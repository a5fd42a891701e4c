package gif

import (
	"errors"
	"fmt"

	"github.com/gifstream/gif/internal/block"
	"github.com/gifstream/gif/internal/compositor"
)

// Sentinel errors matching the spec.md §7 taxonomy, re-exported from the
// internal packages that actually detect them so callers never need to
// import internal/block or internal/compositor to use errors.Is.
var (
	ErrIO                      = block.ErrIO
	ErrNoGIFHeader             = block.ErrNoGIFHeader
	ErrUnsupportedVersion      = block.ErrUnsupportedVersion
	ErrUnexpectedLength        = block.ErrUnexpectedLength
	ErrExpectedBlockTerminator = block.ErrExpectedBlockTerminator
	ErrUnrecognizedExtension   = block.ErrUnrecognizedExtension

	ErrNoColorTable  = compositor.ErrNoColorTable
	ErrInvalidColor  = compositor.ErrInvalidColor
	ErrTooMuchPixels = compositor.ErrTooMuchPixels

	ErrUnrecognizedBlock = errors.New("gif: unrecognized top-level block")
)

// UnrecognizedBlockError reports a top-level tag byte that is none of
// Image Descriptor (0x2C), Extension Introducer (0x21), or Trailer
// (0x3B), along with the byte offset it was read at (spec.md §4.7, §7).
type UnrecognizedBlockError struct {
	Code     byte
	Position uint64
}

func (e *UnrecognizedBlockError) Error() string {
	return fmt.Sprintf("gif: unrecognized block 0x%02x at offset %d", e.Code, e.Position)
}

func (e *UnrecognizedBlockError) Unwrap() error { return ErrUnrecognizedBlock }
