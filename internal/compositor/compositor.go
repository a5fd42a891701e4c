// Package compositor turns one Image Descriptor block plus its LZW image
// data into a full-screen RGB raster, applying the color table selection,
// interlace row order, and transparency rules of spec.md §4.6. It is the
// only package that depends on both internal/block (for Source, color
// tables, and the descriptor layout) and internal/lzw.
package compositor

import (
	"github.com/gifstream/gif/internal/block"
	"github.com/gifstream/gif/internal/lzw"
)

// defaultBackground is used whenever no background color is supplied and
// none is otherwise implied; spec.md §9 standardizes the ambiguous
// original default on opaque white.
var defaultBackground = block.RGB{R: 0xFF, G: 0xFF, B: 0xFF}

// interlacePass is one of the four row-visiting passes of spec.md §4.6.
type interlacePass struct {
	startOffset int
	step        int
}

var interlacePasses = [4]interlacePass{
	{startOffset: 0, step: 8},
	{startOffset: 4, step: 8},
	{startOffset: 2, step: 4},
	{startOffset: 1, step: 2},
}

// Composite reads one Image Descriptor (src is positioned immediately
// after the 0x2C tag byte), its optional Local Color Table, and its LZW
// image data, and returns the resulting screen-sized RGB raster.
//
// gct is the Global Color Table, if any. base is the starting raster
// (screenWidth*screenHeight*3 bytes) to composite onto, or nil; a nil base
// starts from a canvas filled with the background color (white when
// background is nil), not from a zeroed one. background is the Logical
// Screen Descriptor's background color, if resolvable. transparentIndex is the transparent
// color index carried by the Graphic Control Extension in effect for
// this image, if any.
func Composite(
	src block.Source,
	gct block.ColorTable,
	base []byte,
	screenWidth, screenHeight int,
	background *block.RGB,
	transparentIndex *byte,
) ([]byte, error) {
	desc, err := block.ReadImageDescriptor(src)
	if err != nil {
		return nil, err
	}

	var lct block.ColorTable
	if desc.HasLocalColorTable {
		lct, err = block.ReadColorTable(src, block.TableSize(desc.LocalColorTableSizeBits))
		if err != nil {
			return nil, err
		}
	}

	colorTable := lct
	if colorTable == nil {
		colorTable = gct
	}

	minCodeSize, err := src.ReadU8()
	if err != nil {
		return nil, err
	}

	// Color-table resolution is unconditional: a degenerate rect with no
	// color table still errors rather than silently filling background.
	if colorTable == nil {
		return nil, &NoColorTableError{}
	}

	if desc.Width == 0 || desc.Height == 0 {
		if err := block.SkipSubBlocks(src); err != nil {
			return nil, err
		}
		return solidRaster(screenWidth, screenHeight, background), nil
	}

	payload, err := block.ReadSubBlocks(src)
	if err != nil {
		return nil, err
	}

	decoder := lzw.NewDecoder(int(minCodeSize))
	indices, err := decoder.Decode(payload)
	if err != nil {
		return nil, err
	}

	raster := newRaster(base, screenWidth, screenHeight, background)

	rows := rowOrder(int(desc.Top), int(desc.Height), desc.HasInterlacing)
	left := int(desc.Left)
	width := int(desc.Width)

	pos := 0
	for _, y := range rows {
		for x := left; x < left+width; x++ {
			if pos >= len(indices) {
				return raster, nil
			}
			idx := indices[pos]
			pos++
			if err := writePixel(raster, screenWidth, screenHeight, x, y, idx, colorTable, transparentIndex); err != nil {
				return nil, err
			}
		}
	}
	return raster, nil
}

// rowOrder returns the sequence of absolute y coordinates to visit, in
// visiting order, for an image of the given top and height. Interlaced
// images visit rows across four passes (spec.md §4.6); non-interlaced
// images visit rows top-to-bottom.
func rowOrder(top, height int, interlaced bool) []int {
	bottom := top + height - 1
	rows := make([]int, 0, height)
	if !interlaced {
		for y := top; y <= bottom; y++ {
			rows = append(rows, y)
		}
		return rows
	}
	for _, pass := range interlacePasses {
		for y := top + pass.startOffset; y <= bottom; y += pass.step {
			rows = append(rows, y)
		}
	}
	return rows
}

// newRaster allocates a screenWidth*screenHeight*3 raster, either copied
// from base or filled with the resolved background color.
func newRaster(base []byte, screenWidth, screenHeight int, background *block.RGB) []byte {
	raster := make([]byte, screenWidth*screenHeight*3)
	if base != nil {
		copy(raster, base)
		return raster
	}
	fill(raster, resolveBackground(background))
	return raster
}

// solidRaster returns a screen-sized raster entirely filled with the
// background color, used for the degenerate zero-width/zero-height image
// case (spec.md §4.6), independent of any base buffer.
func solidRaster(screenWidth, screenHeight int, background *block.RGB) []byte {
	raster := make([]byte, screenWidth*screenHeight*3)
	fill(raster, resolveBackground(background))
	return raster
}

func resolveBackground(background *block.RGB) block.RGB {
	if background != nil {
		return *background
	}
	return defaultBackground
}

func fill(raster []byte, c block.RGB) {
	for i := 0; i+3 <= len(raster); i += 3 {
		raster[i], raster[i+1], raster[i+2] = c.R, c.G, c.B
	}
}

// writePixel applies one decoded index to (x, y), honoring transparency
// and enforcing the two bounds checks of spec.md §4.6/§7.
func writePixel(
	raster []byte,
	screenWidth, screenHeight int,
	x, y int,
	idx byte,
	colorTable block.ColorTable,
	transparentIndex *byte,
) error {
	if int(idx) >= len(colorTable) {
		return &InvalidColorError{Index: idx, TableLen: len(colorTable)}
	}
	if x < 0 || y < 0 || x >= screenWidth || y >= screenHeight {
		return &TooMuchPixelsError{X: x, Y: y}
	}
	pos := (y*screenWidth + x) * 3
	if pos+3 > len(raster) {
		return &TooMuchPixelsError{X: x, Y: y}
	}

	if transparentIndex != nil && idx == *transparentIndex {
		// With a base buffer, the existing pixel shows through; without
		// one, the raster was already initialized to the background
		// color, so leaving it untouched has the same effect.
		return nil
	}

	c := colorTable[idx]
	raster[pos], raster[pos+1], raster[pos+2] = c.R, c.G, c.B
	return nil
}
