// Package gif decodes the GIF87a/89a image format: a block-oriented
// container, a variable-width LZW decompressor, and a frame compositor
// that applies disposal, interlace, and transparency rules to produce a
// sequence of full-screen RGB rasters (spec.md §1).
//
// The streaming core is Decode, which pushes frames to a caller-supplied
// Sink as they are produced. DecodeAll and GetFeatures are convenience
// wrappers for callers that don't need streaming.
package gif

import (
	"io"

	"github.com/gifstream/gif/internal/block"
)

// Decoded is the result of a full, buffered decode (DecodeAll).
type Decoded struct {
	Frames    []Frame
	LoopCount *uint16 // nil if no NETSCAPE2.0 looping extension was present
}

// DecodeAll runs Decode to completion and collects every frame and the
// loop count into memory (spec.md §11: a convenience wrapper around the
// unchanged streaming core, not a second decode path).
func DecodeAll(r io.Reader) (*Decoded, error) {
	var cs collectSink
	if err := Decode(r, &cs); err != nil {
		return nil, err
	}
	return &Decoded{Frames: cs.frames, LoopCount: cs.loopCount}, nil
}

// collectSink is the Sink DecodeAll drives Decode with.
type collectSink struct {
	frames    []Frame
	loopCount *uint16
}

func (c *collectSink) Frame(f Frame) error {
	c.frames = append(c.frames, f)
	return nil
}

func (c *collectSink) LoopingInfo(loopCount *uint16) error {
	c.loopCount = loopCount
	return nil
}

func (c *collectSink) FrameEnd() error { return nil }

// Features is the cheap, header-only introspection result of GetFeatures.
type Features struct {
	Width, Height       int
	HasGlobalColorTable bool
}

// GetFeatures reads only the Logical Screen Descriptor (and, if present,
// the Global Color Table bytes, to leave r correctly positioned) without
// decoding any image data (spec.md §11).
func GetFeatures(r io.Reader) (*Features, error) {
	hdr, err := block.ReadHeader(block.NewSource(r))
	if err != nil {
		return nil, err
	}
	return &Features{
		Width:               int(hdr.Width),
		Height:              int(hdr.Height),
		HasGlobalColorTable: hdr.GlobalColorTable != nil,
	}, nil
}
