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

// Package mpeg decodes MPEG-1/2/2.5 Layer I/II/III audio streams together
// with a leading ID3v2 tag container into an in-memory AudioObject. It
// consumes a fully materialized byte buffer; file access, buffering and
// actual audio decoding belong to the caller.
package mpeg

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ostafen/mp3probe/internal/cursor"
)

// AudioObject is the parsed representation of one audio stream: an
// optional ID3v2 header descriptor, the tags in file order, and every
// frame in stream order with its raw payload.
type AudioObject struct {
	Header *HeaderInfo
	Tags   []Tag
	Frames []Frame
}

// Options configures a Parser. Debug enables diagnostic logging; it does
// not alter parse results.
type Options struct {
	Debug bool
}

// Parser decodes a single byte buffer. It is single use: one buffer, one
// Parse call, sequential and synchronous. The lookup tables it relies on
// are immutable and shared across instances.
type Parser struct {
	cur *cursor.Cursor
	log *slog.Logger
}

// New returns a parser over buf. opts may be nil. Debug diagnostics go
// to stderr as structured records carrying stream positions and counts.
func New(buf []byte, opts *Options) *Parser {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts != nil && opts.Debug {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return &Parser{
		cur: cursor.New(buf),
		log: log,
	}
}

// Parse runs the full pipeline: align on the first frame sync, decode the
// accumulated ID3v2 container, then decode frames until the buffer is
// exhausted. Any structural violation aborts the call; no partial result
// is returned.
func (p *Parser) Parse() (*AudioObject, error) {
	preamble, err := p.align()
	if err != nil {
		return nil, err
	}
	p.log.Debug("aligned on frame sync", "offset", p.cur.Position()-1)

	header, tags, err := readHeader(preamble)
	if err != nil {
		return nil, err
	}
	if header != nil {
		p.log.Debug("decoded tag container",
			"version", header.TagVersion, "tags", len(tags), "size", header.TagSize)
	}

	frames := []Frame{}
	for p.cur.Position() < p.cur.Len() {
		frame, err := p.newFrame(p.cur.Read(3))
		if err != nil {
			p.log.Warn("frame decode failed", "frame", len(frames), "err", err)
			return nil, fmt.Errorf("frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}
	p.log.Debug("stream decoded", "frames", len(frames))

	return &AudioObject{
		Header: header,
		Tags:   tags,
		Frames: frames,
	}, nil
}

// align consumes one octet at a time into an accumulator until the last
// four octets read form a frame-sync window. The sync octets are then
// rewound so the frame loop re-reads them as the first header, and the
// remaining accumulator is the pending ID3v2 container.
//
// The scan is a plain forward pass: a literal FF Ex pair inside a tag
// payload will trigger a false alignment.
func (p *Parser) align() ([]byte, error) {
	var acc []byte
	for p.cur.InBounds() {
		b := p.cur.Read(0)
		if len(b) == 0 {
			break
		}
		acc = append(acc, b...)

		if len(acc) >= 4 && PossibleFrame(acc[len(acc)-4:]) {
			p.cur.Rewind(4)
			return acc[:len(acc)-4], nil
		}
	}
	return nil, ErrNoFrameFound
}

// newFrame decodes a frame from its 4-octet header and consumes exactly
// the computed payload length from the cursor.
func (p *Parser) newFrame(hdr []byte) (Frame, error) {
	frame, err := parseFrameHeader(hdr)
	if err != nil {
		return Frame{}, err
	}

	// The cursor read width is inclusive, hence size-1. A zero-size
	// payload requests a negative width and yields nothing, which is
	// exactly right.
	frame.RawData = p.cur.Read(frame.Size - 1)
	if len(frame.RawData) != frame.Size {
		return Frame{}, fmt.Errorf("%w: want %d octet(s), got %d",
			ErrTruncatedFrame, frame.Size, len(frame.RawData))
	}
	return frame, nil
}

// ParseReader is a convenience for callers holding an io.Reader: it
// materializes the stream and parses it. The core contract is unchanged;
// the full buffer still lives in memory.
func ParseReader(r io.Reader, opts *Options) (*AudioObject, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(buf, opts).Parse()
}
