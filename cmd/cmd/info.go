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
package cmd

import (
	"fmt"

	"github.com/ostafen/mp3probe/internal/inspect"
	"github.com/ostafen/mp3probe/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "info <file>",
		Short:        "Print a summary of an MPEG audio stream",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}
}

func RunInfo(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	res, err := inspect.File(args[0], debug)
	if err != nil {
		return err
	}

	obj := res.Object
	stats := res.Stats

	fmt.Printf("File: \t\t%s (%s)\n", res.Path, format.FormatBytes(int64(res.Size)))

	if obj.Header != nil {
		fmt.Printf("Tag container: \t%s, %d tag(s), %s\n",
			obj.Header.TagVersion,
			stats.TagCount,
			format.FormatBytes(int64(obj.Header.TagSize)),
		)
	} else {
		fmt.Println("Tag container: \tnone")
	}

	if len(obj.Frames) > 0 {
		first := obj.Frames[0]
		fmt.Printf("Audio: \t\t%s, %s, %d Hz, %s\n", first.MPEGVersion, first.Layer, first.SamplingRate, first.Channel)
	}

	mode := "CBR"
	if stats.VBR {
		mode = "VBR"
	}
	fmt.Printf("Bitrate: \t%d kbit/s (%s)\n", stats.AvgBitrate, mode)
	fmt.Printf("Frames: \t%d (%s of audio data)\n", stats.FrameCount, format.FormatBytes(int64(stats.AudioBytes)))
	fmt.Printf("Duration: \t%s\n", format.FormatDuration(stats.Duration))

	return nil
}
