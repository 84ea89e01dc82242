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
package mpeg_test

import (
	"testing"

	"github.com/ostafen/mp3probe/internal/mpeg"
	"github.com/stretchr/testify/require"
)

func textTag(id string, value []byte) mpeg.Tag {
	return mpeg.Tag{Identifier: id, Value: value, Flags: []byte{0, 0}}
}

func TestTagText_Latin1(t *testing.T) {
	tag := textTag("TIT2", append([]byte{0x00}, []byte("Hello!\x00\x00")...))

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "Hello!", s)
}

func TestTagText_Latin1HighBytes(t *testing.T) {
	// 0xE9 is é in ISO 8859-1.
	tag := textTag("TPE1", []byte{0x00, 'B', 0xE9, 'k'})

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "Bék", s)
}

func TestTagText_UTF16WithBOM(t *testing.T) {
	tag := textTag("TIT2", []byte{0x01, 0xFF, 0xFE, 'H', 0x00, 'i', 0x00})

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
}

func TestTagText_UTF16BE(t *testing.T) {
	tag := textTag("TIT2", []byte{0x02, 0x00, 'H', 0x00, 'i'})

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
}

func TestTagText_UTF8(t *testing.T) {
	tag := textTag("TXXX", append([]byte{0x03}, []byte("héllo\x00")...))

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "héllo", s)
}

func TestTagText_NonTextTag(t *testing.T) {
	tag := textTag("APIC", []byte{0x00, 0x01, 0x02})
	require.False(t, tag.HasText())

	_, err := tag.Text()
	require.Error(t, err)
}

func TestTagText_UnknownEncoding(t *testing.T) {
	tag := textTag("TIT2", []byte{0x7F, 'x'})

	_, err := tag.Text()
	require.Error(t, err)
}

func TestTagText_EmptyValue(t *testing.T) {
	tag := textTag("TIT2", nil)

	s, err := tag.Text()
	require.NoError(t, err)
	require.Equal(t, "", s)
}
