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
	"github.com/ostafen/mp3probe/internal/env"
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:          env.AppName,
		Short:        "Inspect MPEG audio streams and ID3v2 tags",
		SilenceUsage: true,
	}

	root.PersistentFlags().Bool("debug", false, "enable parser debug diagnostics")
	root.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(DefineInfoCommand())
	root.AddCommand(DefineFramesCommand())
	root.AddCommand(DefineTagsCommand())
	root.AddCommand(DefineScanCommand())

	return root.Execute()
}
