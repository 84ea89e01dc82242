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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ostafen/mp3probe/internal/cursor"
)

// Frame is a single MPEG audio frame: the decoded fields of its 4-octet
// header plus the raw compressed payload that follows it.
type Frame struct {
	RawHeaderBits string
	HeaderBytes   []byte

	MPEGVersionID int
	MPEGVersion   string
	LayerID       int
	Layer         string

	CRCProtected bool

	BitrateID int
	Bitrate   int // kbit/s

	SamplingRateID int
	SamplingRate   int // Hz

	Padded     bool
	PrivateBit int

	Channel       string
	ChannelID     int
	ModeExtension ModeExtension

	Copyrighted bool
	Original    bool
	Emphasis    string

	// Size is the payload length in octets, excluding the 4-octet header.
	// len(RawData) == Size always holds for a parsed frame.
	Size    int
	RawData []byte
}

// PossibleFrame reports whether the first 11 bits of b, MSB first, form
// the MPEG frame sync pattern. A window shorter than 4 octets is never a
// frame.
func PossibleFrame(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	return binary.BigEndian.Uint32(b)&0xFFE00000 == 0xFFE00000
}

// parseFrameHeader splits the 4-octet header MSB first and resolves the
// table-driven fields. The payload is not consumed here; Size is the
// number of octets the caller must read after the header.
func parseFrameHeader(hdr []byte) (Frame, error) {
	if !PossibleFrame(hdr) {
		return Frame{}, fmt.Errorf("%w: % X", ErrInvalidSync, hdr)
	}

	bits := binary.BigEndian.Uint32(hdr)

	f := Frame{
		RawHeaderBits:  cursor.ToBinary(hdr),
		HeaderBytes:    hdr,
		MPEGVersionID:  int(bits>>19) & 0x3,
		LayerID:        int(bits>>17) & 0x3,
		CRCProtected:   bits>>16&0x1 == 0,
		BitrateID:      int(bits>>12) & 0xF,
		SamplingRateID: int(bits>>10) & 0x3,
		Padded:         bits>>9&0x1 == 1,
		PrivateBit:     int(bits>>8) & 0x1,
		ChannelID:      int(bits>>6) & 0x3,
		Copyrighted:    bits>>3&0x1 == 1,
		Original:       bits>>2&0x1 == 1,
	}

	f.MPEGVersion = mpegVersionNames[f.MPEGVersionID]
	f.Layer = layerNames[f.LayerID]
	f.Channel = channelNames[f.ChannelID]
	f.ModeExtension = modeExtensions[int(bits>>4)&0x3]
	f.Emphasis = emphasisNames[int(bits)&0x3]

	bitrate, ok := resolveBitrate(f.MPEGVersionID, f.LayerID, f.BitrateID)
	if !ok {
		return Frame{}, fmt.Errorf("%w: index %d (version id %d, layer id %d)",
			ErrInvalidBitrate, f.BitrateID, f.MPEGVersionID, f.LayerID)
	}
	f.Bitrate = bitrate
	f.SamplingRate = resolveSampleRate(f.MPEGVersionID, f.SamplingRateID)

	size, err := frameSize(f.LayerID, f.Bitrate, f.SamplingRate, f.Padded)
	if err != nil {
		return Frame{}, err
	}
	f.Size = size

	return f, nil
}

// frameSize computes the payload length in octets. The bitrate is given
// in kbit/s and scaled to bit/s before use; the subtracted 4 excludes the
// already consumed header. The result is floored after the full
// expression is evaluated, not per division.
func frameSize(layerID, bitrate, sampleRate int, padded bool) (int, error) {
	if sampleRate < 1 {
		return 0, fmt.Errorf("%w: %d Hz", ErrInvalidSamplingRate, sampleRate)
	}

	bps := float64(bitrate * 1000)
	pad := 0.0
	if padded {
		pad = 1
	}

	var size float64
	if layerID == LayerI {
		size = (12*bps/float64(sampleRate)+4*pad)*4 - 4
	} else {
		size = 144*bps/float64(sampleRate) + pad - 4
	}

	n := int(math.Floor(size))
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrameSize, n)
	}
	return n, nil
}
