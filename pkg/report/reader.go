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
package report

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ReadAudioEntries streams the <audio> elements of a report, splitting
// streams that parsed cleanly from entries that recorded a parse error.
// Every entry must name its path; an entry without one makes the whole
// report invalid, since nothing downstream can act on it.
func ReadAudioEntries(r io.Reader) (parsed, failed []Audio, err error) {
	dec := xml.NewDecoder(r)

	for n := 1; ; n++ {
		a, err := nextAudioEntry(dec)
		if errors.Is(err, io.EOF) {
			return parsed, failed, nil
		}
		if err != nil {
			return nil, nil, err
		}

		if a.Path == "" {
			return nil, nil, fmt.Errorf("audio entry %d carries no path", n)
		}

		if a.Error != "" {
			failed = append(failed, a)
		} else {
			parsed = append(parsed, a)
		}
	}
}

// nextAudioEntry advances the decoder to the next <audio> element and
// unmarshals it; io.EOF signals a cleanly exhausted document.
func nextAudioEntry(dec *xml.Decoder) (Audio, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return Audio{}, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "audio" {
			continue
		}

		var a Audio
		if err := dec.DecodeElement(&a, &start); err != nil {
			return Audio{}, err
		}
		return a, nil
	}
}
