package gif

import (
	"io"

	"github.com/gifstream/gif/internal/block"
	"github.com/gifstream/gif/internal/compositor"
	"github.com/gifstream/gif/internal/pool"
)

// state is the persistent, cross-image state a decode threads between
// block-tag dispatches (spec.md §3 "Persistent state kept across frames
// by the driver").
type state struct {
	lastGCE            *block.GraphicControl
	nextBase           []byte
	foundLoopAttribute bool
}

// Decode drives one complete GIF87a/89a decode: it reads src's header and
// then dispatches on top-level block tags until the Trailer, pushing
// composited frames, looping info, and an end signal to sink in file
// order (spec.md §4.7). Any error from src or sink aborts the decode
// immediately; Decode never partial-emits a frame.
func Decode(r io.Reader, sink Sink) error {
	src := block.NewSource(r)

	hdr, err := block.ReadHeader(src)
	if err != nil {
		return err
	}

	background := resolveScreenBackground(hdr)
	screenWidth, screenHeight := int(hdr.Width), int(hdr.Height)

	st := &state{}

	for {
		tag, err := src.ReadU8()
		if err != nil {
			return err
		}

		switch tag {
		case block.TagImageDescriptor:
			if err := decodeImage(src, hdr, st, sink, screenWidth, screenHeight, background); err != nil {
				return err
			}

		case block.TagExtension:
			label, err := src.ReadU8()
			if err != nil {
				return err
			}
			if err := dispatchExtension(src, label, st, sink); err != nil {
				return err
			}

		case block.TagTrailer:
			if !st.foundLoopAttribute {
				if err := sink.LoopingInfo(nil); err != nil {
					return err
				}
			}
			return sink.FrameEnd()

		default:
			return &UnrecognizedBlockError{Code: tag, Position: src.Pos()}
		}
	}
}

// resolveScreenBackground resolves the Logical Screen Descriptor's
// background color index against the Global Color Table, per spec.md
// §7's tolerance rule: an out-of-range index is a silent warning, and
// the background is treated as absent.
func resolveScreenBackground(hdr *block.Header) *block.RGB {
	if hdr.GlobalColorTable == nil || int(hdr.BackgroundColorIndex) >= len(hdr.GlobalColorTable) {
		return nil
	}
	bg := hdr.GlobalColorTable[hdr.BackgroundColorIndex]
	return &bg
}

// dispatchExtension handles one Extension Introducer payload, given its
// label byte (spec.md §4.5, §4.7).
func dispatchExtension(src block.Source, label byte, st *state, sink Sink) error {
	switch label {
	case block.LabelGraphicControl:
		gce, err := block.ReadGraphicControl(src)
		if err != nil {
			return err
		}
		st.lastGCE = gce
		return nil

	case block.LabelApplication:
		app, err := block.ReadApplicationExtension(src)
		if err != nil {
			return err
		}
		if app.Recognized {
			st.foundLoopAttribute = true
			loopCount := app.LoopCount
			return sink.LoopingInfo(&loopCount)
		}
		return nil

	case block.LabelComment:
		return block.SkipCommentExtension(src)

	case block.LabelPlainText:
		return block.SkipPlainTextExtension(src)

	default:
		return &block.UnrecognizedExtensionError{Label: label}
	}
}

// decodeImage composites one Image Descriptor block (spec.md §4.6) and
// threads the disposal-dependent persistent base raster for the image
// that follows (spec.md §4.7).
func decodeImage(src block.Source, hdr *block.Header, st *state, sink Sink, screenWidth, screenHeight int, background *block.RGB) error {
	var delay *uint16
	var transparentIndex *byte
	disposal := block.NoDisposalSpecified

	if st.lastGCE != nil {
		d := st.lastGCE.Delay
		delay = &d
		transparentIndex = st.lastGCE.TransparentColorIndex
		disposal = st.lastGCE.Disposal
	}
	st.lastGCE = nil

	// prevBase is the raster this image composites onto; it is always
	// superseded by the time this function returns (replaced by a fresh
	// clone, handed off as priorBase, or dropped), so it is returned to
	// the pool once Composite has copied out of it.
	prevBase := st.nextBase

	// Snapshot the base this image starts from before it is overwritten
	// below; RestoreToPrevious hands this exact raster to the NEXT image
	// rather than the one this image just produced (spec.md §4.7, tested
	// by the RestoreToPrevious scenario of §8).
	var priorBase []byte
	if disposal == block.RestoreToPrevious {
		priorBase = pool.Clone(prevBase)
	}

	pix, err := compositor.Composite(src, hdr.GlobalColorTable, prevBase, screenWidth, screenHeight, background, transparentIndex)
	if prevBase != nil {
		pool.Put(prevBase)
	}
	if err != nil {
		return err
	}

	if err := sink.Frame(Frame{Pix: pix, Delay: delay}); err != nil {
		return err
	}

	switch disposal {
	case block.DoNotDispose, block.NoDisposalSpecified:
		st.nextBase = pool.Clone(pix)
	case block.RestoreToPrevious:
		st.nextBase = priorBase
	case block.RestoreToBackgroundColor:
		st.nextBase = nil
	default:
		st.nextBase = nil
	}
	return nil
}
