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
	"log/slog"

	"github.com/ostafen/mp3probe/internal/inspect"
	"github.com/spf13/cobra"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan <dir>",
		Short:        "Inspect every MP3 file under a directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().Bool("no-log", false, "disable the per-session log file")
	cmd.Flags().StringP("output", "o", "", "the path of the XML report file")

	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	return inspect.Dir(args[0], parseOptions(cmd))
}

func parseOptions(cmd *cobra.Command) inspect.Options {
	disableLog, _ := cmd.Flags().GetBool("no-log")
	outputFile, _ := cmd.Flags().GetString("output")
	logLevel, _ := cmd.Flags().GetString("log-level")
	debug, _ := cmd.Flags().GetBool("debug")

	return inspect.Options{
		ReportFile: outputFile,
		DisableLog: disableLog,
		LogLevel:   parseSlogLevel(logLevel),
		Debug:      debug,
	}
}

func parseSlogLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}
