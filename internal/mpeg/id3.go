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
package mpeg

import (
	"fmt"
	"runtime"

	"github.com/ostafen/mp3probe/internal/cursor"
)

// HeaderInfo describes the 10-octet ID3v2 preamble found before the first
// MPEG frame.
type HeaderInfo struct {
	TagVersion string // "ID3V2.X.Y"

	Unsynchronisation int
	Extended          bool
	Experimental      bool
	HasFooter         bool

	// TagSize is the declared synchsafe size: the number of octets
	// between the preamble and the first frame.
	TagSize int
}

// Tag is a single ID3v2 frame: a 4-character identifier, two flag octets
// and a raw value. The value is carried unmodified; if a text-encoding
// byte is present it is part of the value.
type Tag struct {
	Identifier string
	Value      []byte
	Flags      []byte
}

// readHeader decodes the ID3v2 container accumulated during alignment.
// An empty accumulator is valid: the stream simply starts with an MPEG
// frame, and both the header and the tag list are empty.
//
// The declared synchsafe size must equal len(raw)-10 exactly; the
// alignment stage guarantees raw holds everything up to the first frame,
// so any disagreement means the container is corrupt.
func readHeader(raw []byte) (*HeaderInfo, []Tag, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	c := cursor.New(raw)

	c.Read(2) // "ID3" signature, carried in the stream but not validated
	version := c.Read(1)
	flags := c.Read(0)
	sizeBytes := c.Read(3)

	if len(version) < 2 || len(flags) < 1 || len(sizeBytes) < 4 {
		return nil, nil, fmt.Errorf("%w: container shorter than the 10-octet preamble (%d octets)",
			ErrTagSizeMismatch, len(raw))
	}

	expected := synchsafe(sizeBytes)
	if actual := len(raw) - 10; expected != actual {
		return nil, nil, fmt.Errorf("%w: declared %d, found %d", ErrTagSizeMismatch, expected, actual)
	}

	hdr := &HeaderInfo{
		TagVersion:        fmt.Sprintf("ID3V2.%d.%d", version[0], version[1]),
		Unsynchronisation: int(flags[0]>>7) & 0x1,
		Extended:          flags[0]&0x40 != 0,
		Experimental:      flags[0]&0x20 != 0,
		HasFooter:         flags[0]&0x10 != 0,
		TagSize:           expected,
	}

	tags, err := readTags(c, expected)
	if err != nil {
		return nil, nil, err
	}
	return hdr, tags, nil
}

// readTags walks the tag frames following the preamble. Each iteration
// consumes 10+size octets: identifier, size, flags, value.
//
// Sizes are read as plain big-endian 32-bit integers. ID3v2.4 declares
// per-frame sizes synchsafe, but v2.3 (the common case in the wild) does
// not, and this reader intentionally treats both alike.
func readTags(c *cursor.Cursor, tagAreaSize int) ([]Tag, error) {
	tags := []Tag{}

	for c.Position() <= tagAreaSize+10 && c.InBounds() {
		id := c.Read(3)
		sizeBytes := c.Read(3)
		flags := c.Read(1)

		size, err := cursor.Uint32(sizeBytes)
		if err != nil {
			return nil, err
		}

		var value []byte
		if size > 0 {
			value = c.Read(size - 1)
		}

		// Zero-sized frames whose identifier starts with 0x00 are the
		// padding area; everything else is kept in stream order.
		if size == 0 && len(id) > 0 && id[0] == 0x00 {
			continue
		}

		tags = append(tags, Tag{
			Identifier: cursor.ToASCII(id),
			Value:      value,
			Flags:      flags,
		})

		// Large tag sections should not starve other goroutines on a
		// single-threaded scheduler; the yield has no observable effect
		// on output.
		runtime.Gosched()
	}
	return tags, nil
}

// synchsafe assembles a 28-bit integer from four octets whose MSBs are
// forced to zero by the ID3v2 format.
func synchsafe(b []byte) int {
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}
