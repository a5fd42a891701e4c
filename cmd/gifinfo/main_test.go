package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeOnePixelGIF writes a minimal, well-formed 1x1 GIF87a file and
// returns its path.
func writeOnePixelGIF(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("GIF87a")
	buf.Write([]byte{1, 0, 1, 0})
	buf.WriteByte(0x80)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.Write([]byte{0x12, 0x34, 0x56})
	buf.Write([]byte{0, 0, 0})

	buf.WriteByte(0x2C)
	buf.Write([]byte{0, 0, 0, 0, 1, 0, 1, 0, 0})
	buf.WriteByte(2)
	buf.Write([]byte{2, 0x44, 0x01})
	buf.WriteByte(0)

	buf.WriteByte(0x3B)

	path := filepath.Join(t.TempDir(), "one_pixel.gif")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestInfoCmd(t *testing.T) {
	path := writeOnePixelGIF(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"info", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "width=1 height=1 global_color_table=true") {
		t.Errorf("output = %q, missing expected fields", got)
	}
}

func TestFramesCmd(t *testing.T) {
	path := writeOnePixelGIF(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"frames", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "frame 0: 3 bytes, delay=none") {
		t.Errorf("output = %q, missing expected frame line", got)
	}
}

func TestInfoCmd_MissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"info", filepath.Join(t.TempDir(), "missing.gif")})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Error("Execute: want error for missing file, got nil")
	}
}
