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
package inspect

import (
	"time"

	"github.com/ostafen/mp3probe/internal/mpeg"
)

// Stats are derived from a parsed stream; the parser itself stays a pure
// structural decoder.
type Stats struct {
	FrameCount int
	TagCount   int

	// AudioBytes is the total payload size across frames, headers
	// excluded.
	AudioBytes uint64

	// Duration is estimated from per-frame sample counts; it is exact
	// for CBR and VBR streams alike, modulo encoder delay.
	Duration time.Duration

	// AvgBitrate is the mean of the per-frame bitrates in kbit/s.
	AvgBitrate int

	// VBR is set when at least two frames declare different bitrates.
	VBR bool
}

// ComputeStats aggregates frame-level figures for a parsed stream.
func ComputeStats(obj *mpeg.AudioObject) Stats {
	s := Stats{
		FrameCount: len(obj.Frames),
		TagCount:   len(obj.Tags),
	}

	var bitrateSum int
	for i, f := range obj.Frames {
		s.AudioBytes += uint64(f.Size)
		bitrateSum += f.Bitrate

		if i > 0 && f.Bitrate != obj.Frames[0].Bitrate {
			s.VBR = true
		}

		if f.SamplingRate > 0 {
			samples := samplesPerFrame(f.MPEGVersionID, f.LayerID)
			s.Duration += time.Duration(float64(samples) / float64(f.SamplingRate) * float64(time.Second))
		}
	}

	if s.FrameCount > 0 {
		s.AvgBitrate = bitrateSum / s.FrameCount
	}
	return s
}

// samplesPerFrame returns the PCM sample count one frame decodes to.
// Layer III halves it for the low-sampling-frequency versions.
func samplesPerFrame(versionID, layerID int) int {
	switch layerID {
	case mpeg.LayerI:
		return 384
	case mpeg.LayerII:
		return 1152
	case mpeg.LayerIII:
		if versionID == mpeg.MPEGVersion1 {
			return 1152
		}
		return 576
	}
	return 0
}
