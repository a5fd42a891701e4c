package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadColorTable(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	src := NewSource(bytes.NewReader(data))

	table, err := ReadColorTable(src, 3)
	require.NoError(t, err)
	require.Equal(t, ColorTable{
		{R: 1, G: 2, B: 3},
		{R: 4, G: 5, B: 6},
		{R: 7, G: 8, B: 9},
	}, table)
}

func TestReadColorTable_ShortInput(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte{1, 2, 3}))
	_, err := ReadColorTable(src, 2)
	require.ErrorIs(t, err, ErrIO)
}

func TestTableSize(t *testing.T) {
	tests := []struct {
		k    byte
		want int
	}{
		{0, 2},
		{1, 4},
		{2, 8},
		{7, 256},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, TableSize(tt.k))
	}
}
