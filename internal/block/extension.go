package block

// GraphicControl is the decoded Graphic Control Extension (spec.md §3, §4.5).
// At most one applies to the immediately following image; a new one
// replaces any previous one — that threading is the driver's job
// (spec.md §4.7), not this parser's.
type GraphicControl struct {
	Disposal                DisposalMethod
	UserInput               bool
	TransparentColorIndex   *byte // nil if the flag bit is clear
	Delay                   uint16 // hundredths of a second
}

// ReadGraphicControl reads label 0xF9's payload: a fixed block size of 4,
// the packed disposal/user-input/transparency byte, the delay, the
// conditional transparent color index, and the terminator byte
// (spec.md §4.5).
func ReadGraphicControl(src Source) (*GraphicControl, error) {
	size, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	if size != graphicControlBlockSize {
		return nil, &UnexpectedLengthError{BlockName: "GraphicControl", Expected: graphicControlBlockSize, Got: int(size)}
	}

	packed, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	delay, err := src.ReadU16LE()
	if err != nil {
		return nil, err
	}

	gce := &GraphicControl{
		Disposal:  disposalFromBits((packed >> 2) & 0x07),
		UserInput: packed&0x02 != 0,
		Delay:     delay,
	}

	hasTransparency := packed&0x01 != 0
	idx, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	if hasTransparency {
		v := idx
		gce.TransparentColorIndex = &v
	}

	term, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	if term != 0 {
		return nil, &ExpectedBlockTerminatorError{BlockName: "GraphicControl"}
	}
	return gce, nil
}

// ApplicationExtension is the decoded result of label 0xFF (spec.md §3, §4.5).
// Exactly one of LoopCount (when Recognized) or nothing (when not) applies;
// unrecognized application extensions are consumed without error.
type ApplicationExtension struct {
	Recognized bool
	LoopCount  uint16 // meaningful only when Recognized
}

// ReadApplicationExtension reads label 0xFF's payload: a fixed block size
// of 11 (8-byte name + 3-byte auth code), then the sub-block chain. Only
// ("NETSCAPE", "2.0") with a 3-byte, id-0x01 first sub-block yields a
// recognized NetscapeLooping result; anything else is drained and
// reported as not recognized (spec.md §4.5).
func ReadApplicationExtension(src Source) (*ApplicationExtension, error) {
	size, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	if size != applicationBlockSize {
		return nil, &UnexpectedLengthError{BlockName: "Application", Expected: applicationBlockSize, Got: int(size)}
	}

	name, err := src.ReadString(8)
	if err != nil {
		return nil, err
	}
	auth, err := src.ReadString(3)
	if err != nil {
		return nil, err
	}

	isNetscape := name == netscapeName && auth == netscapeAuth

	first, err := ReadSubBlock(src)
	if err != nil {
		return nil, err
	}

	var result ApplicationExtension
	if isNetscape && len(first) == 3 && first[0] == 0x01 {
		result.Recognized = true
		result.LoopCount = uint16(first[1]) | uint16(first[2])<<8
	}

	// Drain any remaining sub-blocks (there shouldn't be any for a
	// well-formed NETSCAPE2.0 block, but unrecognized applications may
	// have an arbitrary chain) up to the terminator.
	if first != nil {
		if err := SkipSubBlocks(src); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// SkipCommentExtension discards label 0xFE's sub-block chain (spec.md §4.5).
func SkipCommentExtension(src Source) error {
	return SkipSubBlocks(src)
}

// SkipPlainTextExtension discards label 0x01: a block size byte that must
// be 12, the 12 header bytes it announces, then the sub-block chain
// (spec.md §4.5).
func SkipPlainTextExtension(src Source) error {
	size, err := src.ReadU8()
	if err != nil {
		return err
	}
	if size != plainTextBlockSize {
		return &UnexpectedLengthError{BlockName: "PlainText", Expected: plainTextBlockSize, Got: int(size)}
	}
	if err := src.SkipBytes(plainTextBlockSize); err != nil {
		return err
	}
	return SkipSubBlocks(src)
}
