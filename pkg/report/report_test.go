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
package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ostafen/mp3probe/pkg/report"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadBack(t *testing.T) {
	var buf bytes.Buffer

	w := report.NewWriter(&buf)
	err := w.WriteHeader(report.Header{
		Creator: report.Creator{
			Package:              "mp3probe",
			Version:              "test",
			ExecutionEnvironment: report.GetExecEnv(),
		},
		Source: report.Source{Path: "/music"},
	})
	require.NoError(t, err)

	entries := []report.Audio{
		{
			Path:       "/music/a.mp3",
			Size:       417,
			TagVersion: "ID3V2.4.0",
			Tags:       1,
			Frames:     1,
			DurationMS: 26,
			Bitrate:    128,
		},
		{
			Path:  "/music/broken.mp3",
			Size:  12,
			Error: "no frame found",
		},
	}
	for _, e := range entries {
		require.NoError(t, w.WriteAudio(e))
	}
	require.NoError(t, w.Close())

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "<mp3probe_report>")
	require.Contains(t, out, "</mp3probe_report>")

	parsed, failed, err := report.ReadAudioEntries(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	require.Len(t, failed, 1)

	require.Equal(t, "/music/a.mp3", parsed[0].Path)
	require.Equal(t, uint64(417), parsed[0].Size)
	require.Equal(t, "ID3V2.4.0", parsed[0].TagVersion)
	require.Equal(t, 128, parsed[0].Bitrate)

	require.Equal(t, "/music/broken.mp3", failed[0].Path)
	require.Equal(t, "no frame found", failed[0].Error)
}

func TestReadAudioEntries_RejectsPathlessEntry(t *testing.T) {
	var buf bytes.Buffer

	w := report.NewWriter(&buf)
	require.NoError(t, w.WriteHeader(report.Header{}))
	require.NoError(t, w.WriteAudio(report.Audio{Size: 12}))
	require.NoError(t, w.Close())

	_, _, err := report.ReadAudioEntries(strings.NewReader(buf.String()))
	require.Error(t, err)
}
