package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/points"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{9 << 30, "9.0 GiB"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatBytes(tt.in), "formatBytes(%d)", tt.in)
	}
}

func TestFormatPath(t *testing.T) {
	require.Equal(t, "", formatPath(nil))
	require.Equal(t, "0 → 0", formatPath([]points.City{0, 0}))
	require.Equal(t, "0 → 2 → 1 → 0", formatPath([]points.City{0, 2, 1, 0}))
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printTitle(&buf, "title")
	printKeyNumber(&buf, "cost", 42)
	printKeyValue(&buf, "path", "0 → 0")
	printSuccess(&buf, "Rendered %d", 3)
	printFile(&buf, "out.png")

	out := buf.String()
	for _, want := range []string{"title", "cost", "42", "0 → 0", "Rendered 3", "out.png"} {
		require.Contains(t, out, want)
	}
}
