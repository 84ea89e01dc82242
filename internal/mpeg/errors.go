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

import "errors"

// All parse failures are structural and fatal: they abort the current
// Parse call and the partially built AudioObject is discarded.
var (
	// ErrNoFrameFound is returned when the scan reaches the end of the
	// buffer without matching the 11-bit frame sync.
	ErrNoFrameFound = errors.New("no frame found")

	// ErrTagSizeMismatch is returned when the declared ID3v2 synchsafe
	// size does not equal the number of bytes preceding the first frame
	// minus the 10-octet preamble.
	ErrTagSizeMismatch = errors.New("tag size mismatch")

	// ErrInvalidSync is returned when a frame decode is attempted on four
	// octets lacking the sync pattern.
	ErrInvalidSync = errors.New("invalid frame sync")

	// ErrInvalidBitrate is returned when the bitrate index, version and
	// layer combination has no table entry.
	ErrInvalidBitrate = errors.New("invalid bitrate")

	// ErrInvalidSamplingRate is returned when the resolved sampling rate
	// is the reserved sentinel or non-positive.
	ErrInvalidSamplingRate = errors.New("invalid sampling rate")

	// ErrInvalidFrameSize is returned when the computed frame size is
	// negative.
	ErrInvalidFrameSize = errors.New("invalid frame size")

	// ErrTruncatedFrame is returned when the stream ends before a frame's
	// declared payload length.
	ErrTruncatedFrame = errors.New("truncated frame")
)
