package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/encoding"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(data)
}

func TestNewUTF8Reader_PassesThroughUTF8(t *testing.T) {
	const in = "name,price\nCafé Drum,2900\n"

	r, err := encoding.NewUTF8Reader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, in, readAll(t, r))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,price\n")...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "name,price\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})

	for _, u := range utf16.Encode([]rune("name,price\nCafé,10\n")) {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}

	r, err := encoding.NewUTF8Reader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "name,price\nCafé,10\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF16BE(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFE, 0xFF})

	for _, u := range utf16.Encode([]rune("name\nCafé\n")) {
		buf.WriteByte(byte(u >> 8))
		buf.WriteByte(byte(u))
	}

	r, err := encoding.NewUTF8Reader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "name\nCafé\n", readAll(t, r))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Café" with é as the single Windows-1252 byte 0xE9, which is not
	// valid UTF-8.
	in := []byte("name\nCaf\xe9 Drum, caf\xe9-grade\n")

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	out := readAll(t, r)
	assert.Contains(t, out, "Café Drum")
}

func TestNewUTF8Reader_EmptyInput(t *testing.T) {
	r, err := encoding.NewUTF8Reader(bytes.NewReader(nil))
	require.NoError(t, err)

	assert.Empty(t, readAll(t, r))
}
