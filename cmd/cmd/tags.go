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
	"github.com/ostafen/mp3probe/internal/mpeg"
	"github.com/spf13/cobra"
)

func DefineTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "tags <file>",
		Short:        "List the ID3v2 tags of an audio stream",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunTags,
	}
}

func RunTags(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	res, err := inspect.File(args[0], debug)
	if err != nil {
		return err
	}

	obj := res.Object
	if obj.Header == nil {
		fmt.Println("no ID3v2 container")
		return nil
	}

	fmt.Printf("%s (%d tag(s), %d octets)\n", obj.Header.TagVersion, len(obj.Tags), obj.Header.TagSize)
	for _, tag := range obj.Tags {
		fmt.Printf("%s %-6d %s\n", tag.Identifier, len(tag.Value), tagContent(tag))
	}
	return nil
}

func tagContent(tag mpeg.Tag) string {
	if tag.HasText() {
		if s, err := tag.Text(); err == nil {
			return s
		}
	}
	return binaryView(tag.Value, 64)
}

func binaryView(buf []byte, max int) string {
	if len(buf) > max {
		return fmt.Sprintf("%x[...]", buf[:max])
	}
	return fmt.Sprintf("%x", buf)
}
