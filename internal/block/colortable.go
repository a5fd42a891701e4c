package block

// RGB is a tightly packed 8-bit-per-channel color triplet, ordered R,G,B
// as stored in the file (spec.md §3).
type RGB struct {
	R, G, B byte
}

// ColorTable is an ordered sequence of RGB entries; index 0..len-1
// addresses entries (spec.md §3).
type ColorTable []RGB

// ReadColorTable reads n RGB triplets (3n bytes) from src in file order
// (spec.md §4.2). It fails with ErrIO on short input.
func ReadColorTable(src Source, n int) (ColorTable, error) {
	raw, err := src.ReadBytes(3 * n)
	if err != nil {
		return nil, err
	}
	table := make(ColorTable, n)
	for i := 0; i < n; i++ {
		table[i] = RGB{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	return table, nil
}

// TableSize returns the number of entries (2^(k+1)) encoded by a packed
// 3-bit size field k (spec.md §3, §4.3, §4.6).
func TableSize(k byte) int {
	return 1 << (uint(k&0x07) + 1)
}
