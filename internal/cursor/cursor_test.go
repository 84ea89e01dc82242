// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cursor_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/ostafen/mp3probe/internal/cursor"
	"github.com/stretchr/testify/require"
)

func TestRead_InclusiveWidth(t *testing.T) {
	c := cursor.New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	require.Equal(t, []byte{0x01}, c.Read(0))
	require.Equal(t, 2, c.Position())

	require.Equal(t, []byte{0x02, 0x03, 0x04, 0x05}, c.Read(3))
	require.Equal(t, 6, c.Position())
	require.True(t, c.InBounds())
}

func TestRead_TruncatesAtEnd(t *testing.T) {
	c := cursor.New([]byte{0xAA, 0xBB})

	require.Equal(t, []byte{0xAA, 0xBB}, c.Read(9))
	require.Equal(t, 3, c.Position())
	require.True(t, c.InBounds())

	// A read attempted past the last octet yields nothing and latches
	// InBounds false.
	require.Nil(t, c.Read(0))
	require.False(t, c.InBounds())
}

func TestInBounds_LatchBoundary(t *testing.T) {
	c := cursor.New([]byte{0x01, 0x02})

	// Consuming exactly the whole buffer parks the position one past the
	// end without tripping the bounds flag.
	require.Equal(t, []byte{0x01, 0x02}, c.Read(1))
	require.Equal(t, 3, c.Position())
	require.True(t, c.InBounds())

	// The latch trips on the next boundary check: the first read or peek
	// attempted past the last octet.
	require.Nil(t, c.Peek(0))
	require.False(t, c.InBounds())

	// Rewinding into valid range restores the flag.
	c.Rewind(1)
	require.True(t, c.InBounds())
	require.Equal(t, []byte{0x02}, c.Read(0))
}

func TestPeek_DoesNotAdvance(t *testing.T) {
	c := cursor.New([]byte{0x10, 0x20, 0x30, 0x40})

	require.Equal(t, []byte{0x10, 0x20, 0x30, 0x40}, c.Peek(3))
	require.Equal(t, 1, c.Position())
	require.Equal(t, []byte{0x10}, c.Read(0))
}

func TestRewind(t *testing.T) {
	c := cursor.New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	c.Read(5)
	require.Equal(t, 7, c.Position())

	c.Rewind(4)
	require.Equal(t, 3, c.Position())
	require.Equal(t, []byte{0x03, 0x04, 0x05, 0x06}, c.Read(3))

	c.Rewind(100)
	require.Equal(t, 1, c.Position())
}

func TestToBinary(t *testing.T) {
	require.Equal(t, "1111111111100000", cursor.ToBinary([]byte{0xFF, 0xE0}))
	require.Equal(t, "00000001", cursor.ToBinary([]byte{0x01}))
	require.Equal(t, "", cursor.ToBinary(nil))
}

func TestDecimalToBinary_RoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		s := cursor.DecimalToBinary(n, 8)
		require.Len(t, s, 8)

		v, err := strconv.ParseInt(s, 2, 32)
		require.NoError(t, err)
		require.Equal(t, int64(n), v)
	}
}

func TestUint32(t *testing.T) {
	tests := []struct {
		in   []byte
		want int
	}{
		{[]byte{0x00, 0x00, 0x00, 0x09}, 9},
		{[]byte{0x00, 0x00, 0x02, 0x01}, 513},
		{[]byte{0x01, 0x00, 0x00, 0x00}, 1 << 24},
		{[]byte{0xFF}, 255},
		{nil, 0},
	}

	for _, tt := range tests {
		got, err := cursor.Uint32(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestToASCII(t *testing.T) {
	require.Equal(t, "TIT2", cursor.ToASCII([]byte{0x54, 0x49, 0x54, 0x32}))
	require.Equal(t, "ID3", cursor.ToASCII([]byte("ID3")))
}

func TestHexToDecimal(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 255, 4096, 1<<28 - 1} {
		got, err := cursor.HexToDecimal(fmt.Sprintf("%x", n))
		require.NoError(t, err)
		require.Equal(t, n, got)

		got, err = cursor.HexToDecimal(fmt.Sprintf("%X", n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	_, err := cursor.HexToDecimal("12g4")
	require.ErrorIs(t, err, cursor.ErrInvalidHexChar)
}
