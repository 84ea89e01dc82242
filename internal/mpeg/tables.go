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

// MPEG version ids, as encoded in bits 12-13 of the frame header.
const (
	MPEGVersion2_5 = iota
	MPEGVersionReserved
	MPEGVersion2
	MPEGVersion1
)

// Layer ids, as encoded in bits 14-15 of the frame header.
const (
	LayerReserved = iota
	LayerIII
	LayerII
	LayerI
)

// Channel mode ids, as encoded in bits 25-26 of the frame header.
const (
	Stereo = iota
	JointStereo
	DualChannel
	Mono
)

// Downstream code branches on these exact strings; they are part of the
// output contract, not display sugar.
var mpegVersionNames = [4]string{
	"MPEG Version 2.5 (unofficial)",
	"Reserved",
	"MPEG Version 2 (ISO/IEC 13818-3)",
	"MPEG Version 1 (ISO/IEC 11172-3)",
}

var layerNames = [4]string{
	"Reserved",
	"Layer III",
	"Layer II",
	"Layer I",
}

var channelNames = [4]string{
	"Stereo",
	"Joint Stereo",
	"Dual Channel",
	"Mono",
}

var emphasisNames = [4]string{
	"None",
	"50/15 ms",
	"Reserved",
	"CCIT J.17",
}

// ModeExtension describes the joint-stereo coding switches of bits 27-28.
// The bits only carry meaning in Joint Stereo mode but are decoded
// unconditionally.
type ModeExtension struct {
	IntensityStereo bool
	MSStereo        bool
}

var modeExtensions = [4]ModeExtension{
	{IntensityStereo: false, MSStereo: false},
	{IntensityStereo: true, MSStereo: false},
	{IntensityStereo: false, MSStereo: true},
	{IntensityStereo: true, MSStereo: true},
}

// sampleRates is indexed by [samplingRateID][column] where the column is
// derived from the MPEG version id (0 for MPEG-1, 1 for MPEG-2, 2 for
// MPEG-2.5). Row 3 is the reserved sampling index; the zero entries are
// rejected where the rate is consumed.
var sampleRates = [4][3]int{
	{44100, 22050, 11025},
	{48000, 24000, 12000},
	{32000, 16000, 8000},
	{0, 0, 0},
}

// bitrates holds kbit/s values indexed by [bitrateID][column]. Columns:
// MPEG-1 Layer I, MPEG-1 Layer II, MPEG-1 Layer III, MPEG-2 Layer III,
// MPEG-2 Layers I/II. Index 0 (free format) and 15 (bad) carry no entry.
// There is no MPEG-2.5 column; streams declaring that version fail the
// bitrate lookup.
var bitrates = [16][5]int{
	{0, 0, 0, 0, 0},
	{32, 32, 32, 8, 32},
	{64, 48, 40, 16, 48},
	{96, 56, 48, 24, 56},
	{128, 64, 56, 32, 64},
	{160, 80, 64, 40, 80},
	{192, 96, 80, 48, 96},
	{224, 112, 96, 56, 112},
	{256, 128, 112, 64, 128},
	{288, 160, 128, 80, 144},
	{320, 192, 160, 96, 160},
	{352, 224, 192, 112, 176},
	{384, 256, 224, 128, 192},
	{416, 320, 256, 144, 224},
	{448, 384, 320, 160, 256},
	{0, 0, 0, 0, 0},
}

func sampleRateColumn(versionID int) int {
	switch versionID {
	case MPEGVersion1:
		return 0
	case MPEGVersion2:
		return 1
	default:
		return 2
	}
}

func bitrateColumn(versionID, layerID int) (int, bool) {
	switch versionID {
	case MPEGVersion1:
		switch layerID {
		case LayerI:
			return 0, true
		case LayerII:
			return 1, true
		case LayerIII:
			return 2, true
		}
	case MPEGVersion2:
		switch layerID {
		case LayerIII:
			return 3, true
		case LayerI, LayerII:
			return 4, true
		}
	}
	return 0, false
}

func resolveBitrate(versionID, layerID, bitrateID int) (int, bool) {
	if bitrateID <= 0 || bitrateID >= 15 {
		return 0, false
	}

	col, ok := bitrateColumn(versionID, layerID)
	if !ok {
		return 0, false
	}
	return bitrates[bitrateID][col], true
}

func resolveSampleRate(versionID, samplingRateID int) int {
	if samplingRateID < 0 || samplingRateID > 3 {
		return 0
	}
	return sampleRates[samplingRateID][sampleRateColumn(versionID)]
}
