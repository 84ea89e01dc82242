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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPossibleFrame(t *testing.T) {
	require.True(t, PossibleFrame([]byte{0xFF, 0xFB, 0x90, 0x00}))
	require.True(t, PossibleFrame([]byte{0xFF, 0xE0, 0x00, 0x00}))

	require.False(t, PossibleFrame([]byte{0xFF, 0xDF, 0x90, 0x00}))
	require.False(t, PossibleFrame([]byte{0xFE, 0xFB, 0x90, 0x00}))

	// A partial window is never a frame.
	require.False(t, PossibleFrame(nil))
	require.False(t, PossibleFrame([]byte{0xFF, 0xFB, 0x90}))
}

func TestParseFrameHeader_MPEG1Layer3(t *testing.T) {
	f, err := parseFrameHeader([]byte{0xFF, 0xFB, 0x90, 0x00})
	require.NoError(t, err)

	require.Equal(t, MPEGVersion1, f.MPEGVersionID)
	require.Equal(t, "MPEG Version 1 (ISO/IEC 11172-3)", f.MPEGVersion)
	require.Equal(t, LayerIII, f.LayerID)
	require.Equal(t, "Layer III", f.Layer)
	require.False(t, f.CRCProtected)
	require.Equal(t, 9, f.BitrateID)
	require.Equal(t, 128, f.Bitrate)
	require.Equal(t, 0, f.SamplingRateID)
	require.Equal(t, 44100, f.SamplingRate)
	require.False(t, f.Padded)
	require.Equal(t, 0, f.PrivateBit)
	require.Equal(t, "Stereo", f.Channel)
	require.Equal(t, ModeExtension{}, f.ModeExtension)
	require.False(t, f.Copyrighted)
	require.False(t, f.Original)
	require.Equal(t, "None", f.Emphasis)
	require.Equal(t, 413, f.Size)

	require.True(t, strings.HasPrefix(f.RawHeaderBits, "11111111111"))
	require.Len(t, f.RawHeaderBits, 32)
}

func TestParseFrameHeader_JointStereoFlags(t *testing.T) {
	// Channel 01, mode extension 10, copyright 1, original 0, emphasis 01.
	f, err := parseFrameHeader([]byte{0xFF, 0xFB, 0x90, 0x69})
	require.NoError(t, err)

	require.Equal(t, "Joint Stereo", f.Channel)
	require.Equal(t, ModeExtension{IntensityStereo: false, MSStereo: true}, f.ModeExtension)
	require.True(t, f.Copyrighted)
	require.False(t, f.Original)
	require.Equal(t, "50/15 ms", f.Emphasis)
}

func TestParseFrameHeader_Layer1Size(t *testing.T) {
	// MPEG-1 Layer I, bitrate index 9 (288 kbit/s), 44100 Hz, no padding.
	f, err := parseFrameHeader([]byte{0xFF, 0xFF, 0x90, 0x00})
	require.NoError(t, err)

	require.Equal(t, LayerI, f.LayerID)
	require.Equal(t, 288, f.Bitrate)
	require.Equal(t, 309, f.Size)
}

func TestParseFrameHeader_PaddedSize(t *testing.T) {
	f, err := parseFrameHeader([]byte{0xFF, 0xFB, 0x92, 0x00})
	require.NoError(t, err)

	require.True(t, f.Padded)
	require.Equal(t, 414, f.Size)
}

func TestParseFrameHeader_Errors(t *testing.T) {
	_, err := parseFrameHeader([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.ErrorIs(t, err, ErrInvalidSync)

	// Bitrate index 15 is "bad", index 0 is free format; neither has a
	// table entry.
	_, err = parseFrameHeader([]byte{0xFF, 0xFB, 0xF0, 0x00})
	require.ErrorIs(t, err, ErrInvalidBitrate)

	_, err = parseFrameHeader([]byte{0xFF, 0xFB, 0x00, 0x00})
	require.ErrorIs(t, err, ErrInvalidBitrate)

	// MPEG-2.5 has no bitrate column.
	_, err = parseFrameHeader([]byte{0xFF, 0xE3, 0x90, 0x00})
	require.ErrorIs(t, err, ErrInvalidBitrate)

	// Reserved sampling index resolves to the sentinel rate.
	_, err = parseFrameHeader([]byte{0xFF, 0xFB, 0x9C, 0x00})
	require.ErrorIs(t, err, ErrInvalidSamplingRate)
}

func TestFrameSize(t *testing.T) {
	// 128 kbit/s Layer III at 44100 Hz.
	n, err := frameSize(LayerIII, 128, 44100, false)
	require.NoError(t, err)
	require.Equal(t, 413, n)

	n, err = frameSize(LayerIII, 128, 44100, true)
	require.NoError(t, err)
	require.Equal(t, 414, n)

	// Layer I pads by a whole 4-octet slot.
	n, err = frameSize(LayerI, 288, 44100, true)
	require.NoError(t, err)
	require.Equal(t, 325, n)

	_, err = frameSize(LayerIII, 0, 44100, false)
	require.ErrorIs(t, err, ErrInvalidFrameSize)

	_, err = frameSize(LayerIII, 128, 0, false)
	require.ErrorIs(t, err, ErrInvalidSamplingRate)
}

func TestResolveBitrate(t *testing.T) {
	tests := []struct {
		versionID, layerID, index int
		want                      int
		ok                        bool
	}{
		{MPEGVersion1, LayerI, 14, 448, true},
		{MPEGVersion1, LayerII, 5, 80, true},
		{MPEGVersion1, LayerIII, 9, 128, true},
		{MPEGVersion2, LayerIII, 1, 8, true},
		{MPEGVersion2, LayerII, 9, 144, true},
		{MPEGVersion2, LayerI, 14, 256, true},
		{MPEGVersion1, LayerIII, 0, 0, false},
		{MPEGVersion1, LayerIII, 15, 0, false},
		{MPEGVersion2_5, LayerIII, 9, 0, false},
		{MPEGVersionReserved, LayerIII, 9, 0, false},
		{MPEGVersion1, LayerReserved, 9, 0, false},
	}

	for _, tt := range tests {
		got, ok := resolveBitrate(tt.versionID, tt.layerID, tt.index)
		require.Equal(t, tt.ok, ok)
		if ok {
			require.Equal(t, tt.want, got)
		}
	}
}

func TestResolveSampleRate(t *testing.T) {
	require.Equal(t, 44100, resolveSampleRate(MPEGVersion1, 0))
	require.Equal(t, 48000, resolveSampleRate(MPEGVersion1, 1))
	require.Equal(t, 32000, resolveSampleRate(MPEGVersion1, 2))
	require.Equal(t, 24000, resolveSampleRate(MPEGVersion2, 1))
	require.Equal(t, 8000, resolveSampleRate(MPEGVersion2_5, 2))

	// Reserved index resolves to the sentinel.
	require.Equal(t, 0, resolveSampleRate(MPEGVersion1, 3))
}
