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
	"os"
	"path/filepath"

	"github.com/ostafen/mp3probe/internal/inspect"
	"github.com/spf13/cobra"
)

func DefineFramesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "frames <file>",
		Short:        "List the MPEG frames of an audio stream",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunFrames,
	}

	cmd.Flags().IntP("limit", "n", 0, "print at most this many frames (0 means all)")
	cmd.Flags().StringP("dump", "d", "", "dump each frame payload to the specified directory")

	return cmd
}

func RunFrames(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	limit, _ := cmd.Flags().GetInt("limit")
	dumpDir, _ := cmd.Flags().GetString("dump")

	res, err := inspect.File(args[0], debug)
	if err != nil {
		return err
	}

	if dumpDir != "" {
		if err := os.MkdirAll(dumpDir, 0755); err != nil {
			return err
		}
	}

	var offset uint64
	if res.Object.Header != nil {
		offset = uint64(10 + res.Object.Header.TagSize)
	}
	for i, frame := range res.Object.Frames {
		if limit <= 0 || i < limit {
			pad := ""
			if frame.Padded {
				pad = " padded"
			}
			fmt.Printf("#%-6d @%-10d %s %s %3d kbit/s %5d Hz %-13s %4dB%s\n",
				i, offset, frame.MPEGVersion, frame.Layer, frame.Bitrate,
				frame.SamplingRate, frame.Channel, frame.Size, pad)
		}

		if dumpDir != "" {
			name := filepath.Join(dumpDir, fmt.Sprintf("frame%06d.bin", i))
			if err := os.WriteFile(name, frame.RawData, 0644); err != nil {
				return fmt.Errorf("unable to dump frame %d: %w", i, err)
			}
		}

		offset += uint64(4 + frame.Size)
	}

	if limit > 0 && res.Stats.FrameCount > limit {
		fmt.Printf("... %d more frame(s)\n", res.Stats.FrameCount-limit)
	}
	return nil
}
