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

// Package cursor implements a bit-level reader over an in-memory octet
// buffer. It has no knowledge of MPEG or ID3 semantics: it only moves a
// 1-based position forward and converts octets between binary, hex, ASCII
// and integer renderings.
package cursor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHexChar is returned by HexToDecimal when the input contains a
// character outside [0-9a-fA-F].
var ErrInvalidHexChar = errors.New("invalid hex character")

// Cursor wraps an immutable octet buffer with a movable, 1-based position.
//
// The position is monotonically non-decreasing except for explicit calls
// to Rewind. Reads that cross the end of the buffer stop at the last valid
// octet; the truncation is silent and InBounds latches false on the next
// read attempted past the end.
type Cursor struct {
	buf      []byte
	pos      int
	inBounds bool
}

// New returns a cursor positioned at the first octet of buf.
func New(buf []byte) *Cursor {
	return &Cursor{
		buf:      buf,
		pos:      1,
		inBounds: true,
	}
}

// Read returns up to n+1 successive octets starting at the current
// position, advancing the position by the number of octets actually
// yielded.
//
// The width is inclusive of both endpoints: Read(0) yields one octet and
// Read(3) yields four. Callers therefore ask for one less than the number
// of octets they want. The off-by-one is deliberate and load-bearing; the
// payload-length math in the MPEG layer compensates for it at every call
// site, so it must not be changed on one side only.
func (c *Cursor) Read(n int) []byte {
	return c.read(n, false)
}

// Peek is Read without advancing the position.
func (c *Cursor) Peek(n int) []byte {
	return c.read(n, true)
}

func (c *Cursor) read(n int, stay bool) []byte {
	if c.pos > len(c.buf) {
		c.inBounds = false
		return nil
	}

	end := c.pos + n
	if end > len(c.buf) {
		end = len(c.buf)
	}
	if end < c.pos {
		return nil
	}

	out := make([]byte, end-c.pos+1)
	copy(out, c.buf[c.pos-1:end])

	if !stay {
		c.pos += len(out)
	}
	return out
}

// Rewind moves the position back by n octets, stopping at the first octet.
// Rewinding restores InBounds: the cursor points at valid data again.
func (c *Cursor) Rewind(n int) {
	c.pos -= n
	if c.pos < 1 {
		c.pos = 1
	}
	if c.pos <= len(c.buf) {
		c.inBounds = true
	}
}

// Position returns the current 1-based position.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the total number of octets in the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// InBounds reports whether the cursor still points at readable data.
// Consuming the final octet parks the position one past the end with
// InBounds still true; the flag latches false on the next boundary
// check, that is, the first read or peek attempted from there. It stays
// false until the cursor is rewound into valid range.
func (c *Cursor) InBounds() bool {
	return c.inBounds
}

// ToBinary renders each octet as its 8-bit big-endian binary string,
// MSB first, zero padded, and concatenates the results.
func ToBinary(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, v := range b {
		sb.WriteString(fmt.Sprintf("%08b", v))
	}
	return sb.String()
}

// DecimalToBinary renders n as a big-endian binary string of exactly the
// given number of characters.
func DecimalToBinary(n, bits int) string {
	return fmt.Sprintf("%0*b", bits, n)
}

// Uint32 assembles up to four octets into a big-endian integer.
//
// The assembly goes through the hex rendering of each octet rather than
// shifting directly; short inputs yield proportionally smaller values.
func Uint32(b []byte) (int, error) {
	if len(b) > 4 {
		b = b[:4]
	}
	return HexToDecimal(hex.EncodeToString(b))
}

// ToASCII maps each octet to the character of that code point.
func ToASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

// HexToDecimal parses a case-insensitive hex string into an integer. It
// fails with ErrInvalidHexChar on any character outside [0-9a-fA-F]. The
// empty string parses to zero.
func HexToDecimal(s string) (int, error) {
	n := 0
	for _, r := range s {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case r >= 'a' && r <= 'f':
			d = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = int(r-'A') + 10
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidHexChar, r)
		}
		n = n*16 + d
	}
	return n, nil
}
