package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildHeaderBytes(version string, width, height uint16, gct []byte, bgIndex byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("GIF")
	buf.WriteString(version)
	buf.WriteByte(byte(width))
	buf.WriteByte(byte(width >> 8))
	buf.WriteByte(byte(height))
	buf.WriteByte(byte(height >> 8))

	packed := byte(0)
	if gct != nil {
		packed |= 0x80
		packed |= 0x10 // color resolution bits = 2 (arbitrary, non-zero)
		packed |= 0x00 // table size bits for a 2-entry table
	}
	buf.WriteByte(packed)
	buf.WriteByte(bgIndex)
	buf.WriteByte(0)
	if gct != nil {
		buf.Write(gct)
	}
	return buf.Bytes()
}

func TestReadHeader_WithGlobalColorTable(t *testing.T) {
	gct := []byte{1, 2, 3, 4, 5, 6} // 2 entries
	data := buildHeaderBytes("87a", 10, 20, gct, 1)
	src := NewSource(bytes.NewReader(data))

	hdr, err := ReadHeader(src)
	require.NoError(t, err)
	require.Equal(t, uint16(10), hdr.Width)
	require.Equal(t, uint16(20), hdr.Height)
	require.Equal(t, byte(1), hdr.BackgroundColorIndex)
	require.Equal(t, ColorTable{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}, hdr.GlobalColorTable)
}

func TestReadHeader_WithoutGlobalColorTable(t *testing.T) {
	data := buildHeaderBytes("89a", 1, 1, nil, 0)
	src := NewSource(bytes.NewReader(data))

	hdr, err := ReadHeader(src)
	require.NoError(t, err)
	require.Nil(t, hdr.GlobalColorTable)
}

func TestReadHeader_MissingMagic(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte{0, 0, 0}))
	_, err := ReadHeader(src)
	require.ErrorIs(t, err, ErrNoGIFHeader)
}

func TestReadHeader_UnsupportedVersion(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte("GIF90a")))
	_, err := ReadHeader(src)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	var verErr *UnsupportedVersionError
	require.ErrorAs(t, err, &verErr)
	require.Equal(t, "90a", verErr.Version)
}

func TestReadHeader_89aAccepted(t *testing.T) {
	data := buildHeaderBytes("89a", 5, 5, nil, 0)
	src := NewSource(bytes.NewReader(data))
	_, err := ReadHeader(src)
	require.NoError(t, err)
}
