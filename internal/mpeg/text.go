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
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ID3v2 text encoding markers: the first octet of a text frame's value.
const (
	textEncodingLatin1  = 0x00
	textEncodingUTF16   = 0x01
	textEncodingUTF16BE = 0x02
	textEncodingUTF8    = 0x03
)

// HasText reports whether the tag is a text or URL frame, whose value
// starts with an encoding octet followed by encoded text.
func (t Tag) HasText() bool {
	return len(t.Identifier) > 0 && (t.Identifier[0] == 'T' || t.Identifier[0] == 'W')
}

// Text decodes the tag value to UTF-8 according to its encoding octet.
// Only text and URL frames carry text; anything else is an error. The
// decoded string is trimmed of NUL terminators and padding.
func (t Tag) Text() (string, error) {
	if !t.HasText() {
		return "", fmt.Errorf("tag %q carries no text content", t.Identifier)
	}
	if len(t.Value) == 0 {
		return "", nil
	}

	data := t.Value[1:]

	var decoded string
	switch t.Value[0] {
	case textEncodingLatin1:
		s, err := decodeWith(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return "", err
		}
		decoded = s
	case textEncodingUTF16:
		s, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), data)
		if err != nil {
			return "", err
		}
		decoded = s
	case textEncodingUTF16BE:
		s, err := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data)
		if err != nil {
			return "", err
		}
		decoded = s
	case textEncodingUTF8:
		decoded = string(data)
	default:
		return "", fmt.Errorf("tag %q: unknown text encoding 0x%02X", t.Identifier, t.Value[0])
	}

	return strings.TrimRight(decoded, "\x00"), nil
}

func decodeWith(dec transform.Transformer, data []byte) (string, error) {
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
