// Package lzw implements the variable-width LZW decompressor used by GIF
// image data (spec.md §4.4). Unlike compress/lzw, code widths grow with a
// GIF-specific (not TIFF-style deferred) increment rule, codes are
// LSB-first, and the decoder must accept compressed bytes in successive
// chunks that split the bitstream at arbitrary bit offsets — GIF sub-block
// boundaries do not align with code boundaries.
package lzw

import "errors"

// ErrFatal reports LZW stream corruption: a self-referential code with no
// preceding sequence, or a code larger than the next code to be assigned
// (spec.md §4.4).
var ErrFatal = errors.New("lzw: corrupt code stream")

const maxCodeSize = 12

// entry is one dictionary slot. Sentinel slots (Clear, Stop) carry no
// sequence; value slots hold an append-only byte sequence built by
// extending a previous entry with one byte, following the prefix/suffix
// shape common to from-scratch GIF/TIFF LZW implementations in this
// retrieval pack.
type entry struct {
	seq   []byte
	valid bool
}

// Decoder is a stateful LZW decompressor. It accepts successive compressed
// sub-block payloads via Decode, each call returning the bytes that call
// decoded; the bit reader and dictionary persist between calls
// (spec.md §4.4, §9).
type Decoder struct {
	minCodeSize     int
	currentCodeSize int
	clearCode       int
	stopCode        int

	dict []entry
	next int // next code to be assigned

	prevSequence []byte

	// LSB-first bit accumulator, persisted across Decode calls.
	acc  uint32
	bits uint

	done bool
}

// NewDecoder creates a Decoder for an image whose initial LZW code size is
// minCodeSize (spec.md §4.4; the GIF minimum is 2, the maximum is 8).
func NewDecoder(minCodeSize int) *Decoder {
	d := &Decoder{minCodeSize: minCodeSize}
	d.reset()
	return d
}

// reset rebuilds the dictionary to roots + Clear + Stop and restores the
// initial code size, per the Clear-code handling rule (spec.md §4.4).
func (d *Decoder) reset() {
	rootCount := 1 << d.minCodeSize
	d.clearCode = rootCount
	d.stopCode = rootCount + 1
	d.currentCodeSize = d.minCodeSize + 1

	d.dict = make([]entry, rootCount+2, 4096)
	for c := 0; c < rootCount; c++ {
		d.dict[c] = entry{seq: []byte{byte(c)}, valid: true}
	}
	d.dict[d.clearCode] = entry{valid: true} // sentinel, no sequence
	d.dict[d.stopCode] = entry{valid: true}  // sentinel, no sequence
	d.next = rootCount + 2
	d.prevSequence = nil
}

// Done reports whether a Stop code has been consumed. Once Done, further
// Decode calls return no additional bytes.
func (d *Decoder) Done() bool { return d.done }

// Decode consumes as many complete codes as can be read from the
// concatenation of previously unconsumed bits and the freshly supplied
// input, and returns the newly produced output bytes. Any bits left over
// after the last complete code — including a wholly unconsumed input when
// too few bits are available — are preserved for the next call
// (spec.md §4.4's bit reader contract).
func (d *Decoder) Decode(input []byte) ([]byte, error) {
	if d.done {
		return nil, nil
	}

	var out []byte
	pos := 0

	for {
		code, ok := d.readCode(input, &pos)
		if !ok {
			return out, nil
		}

		switch {
		case code == d.clearCode:
			d.reset()
			continue

		case code == d.stopCode:
			d.done = true
			return out, nil

		case code < len(d.dict) && d.dict[code].valid && d.dict[code].seq != nil:
			seq := d.dict[code].seq
			out = append(out, seq...)
			if len(d.prevSequence) > 0 {
				d.pushEntry(append(append([]byte(nil), d.prevSequence...), seq[0]))
			}
			d.prevSequence = seq

		case code == d.next:
			if len(d.prevSequence) == 0 {
				return nil, ErrFatal
			}
			seq := append(append([]byte(nil), d.prevSequence...), d.prevSequence[0])
			out = append(out, seq...)
			d.pushEntry(seq)
			d.prevSequence = seq

		default:
			return nil, ErrFatal
		}
	}
}

// pushEntry appends a new dictionary entry and grows the code size when
// the number of assigned codes reaches the current width, clamped at 12
// bits (spec.md §4.4's growth rule).
func (d *Decoder) pushEntry(seq []byte) {
	if d.next < len(d.dict) {
		d.dict[d.next] = entry{seq: seq, valid: true}
	} else {
		d.dict = append(d.dict, entry{seq: seq, valid: true})
	}
	d.next++
	if d.next == 1<<uint(d.currentCodeSize) && d.currentCodeSize < maxCodeSize {
		d.currentCodeSize++
	}
}

// readCode reads one current_code_size-wide, LSB-first code from the
// pending accumulator plus input starting at *pos, advancing *pos by
// however many whole bytes it consumed. It reports ok=false when input is
// exhausted before a full code is available; the bytes it did consume stay
// in the accumulator, and no bits are taken from it, so the partial code
// completes on the next call (spec.md §4.4's bit-reader contract).
func (d *Decoder) readCode(input []byte, pos *int) (int, bool) {
	size := uint(d.currentCodeSize)
	for d.bits < size {
		if *pos >= len(input) {
			return 0, false
		}
		d.acc |= uint32(input[*pos]) << d.bits
		d.bits += 8
		*pos++
	}
	code := d.acc & ((1 << size) - 1)
	d.acc >>= size
	d.bits -= size
	return int(code), true
}
