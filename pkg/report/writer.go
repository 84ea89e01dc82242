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
	"io"
)

// Writer streams a report document: header first, then any number of
// audio entries, then Close to terminate the root element.
type Writer struct {
	w   io.Writer
	enc *xml.Encoder
}

// NewWriter creates a report writer with two-space indentation.
func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{
		w:   w,
		enc: enc,
	}
}

// WriteHeader writes the XML declaration, the opening root tag and the
// document preamble.
func (w *Writer) WriteHeader(hdr Header) error {
	if _, err := w.w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	start := xml.StartElement{Name: xml.Name{Local: "mp3probe_report"}}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	if err := w.enc.Encode(hdr.Creator); err != nil {
		return err
	}
	return w.enc.Encode(hdr.Source)
}

// WriteAudio appends one stream entry.
func (w *Writer) WriteAudio(a Audio) error {
	return w.enc.Encode(a)
}

// Close writes the closing root tag and flushes the encoder.
func (w *Writer) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "mp3probe_report"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}
