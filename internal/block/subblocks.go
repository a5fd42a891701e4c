package block

// ReadSubBlocks reads a sub-block chain (length byte, payload, repeated)
// until the zero-length terminator, returning the concatenated payload
// bytes in file order (spec.md §3, §6). An I/O failure before the
// terminator — including EOF — surfaces as ErrIO, which spec.md §3
// classes as truncation.
func ReadSubBlocks(src Source) ([]byte, error) {
	var out []byte
	for {
		n, err := src.ReadU8()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		payload, err := src.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, payload...)
	}
}

// SkipSubBlocks discards a sub-block chain without retaining its payload
// (used by the Comment and Plain-Text extensions, spec.md §4.5).
func SkipSubBlocks(src Source) error {
	for {
		n, err := src.ReadU8()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := src.SkipBytes(int(n)); err != nil {
			return err
		}
	}
}

// ReadSubBlock reads a single length-prefixed sub-block and returns its
// payload, or nil for a zero-length sub-block. Used where callers need to inspect the
// first sub-block specially (e.g. the Application Extension's NETSCAPE
// loop-count sub-block, spec.md §4.5).
func ReadSubBlock(src Source) ([]byte, error) {
	n, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return src.ReadBytes(int(n))
}
