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

// Package inspect drives the parser over files on disk: a single stream
// for the info/frames/tags commands, or a whole directory tree with an
// XML report for the scan command.
package inspect

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ostafen/mp3probe/internal/env"
	"github.com/ostafen/mp3probe/internal/mpeg"
	"github.com/ostafen/mp3probe/pkg/pbar"
	"github.com/ostafen/mp3probe/pkg/report"
	fmtutil "github.com/ostafen/mp3probe/pkg/util/format"
)

// Options configures a directory sweep.
type Options struct {
	ReportFile string
	DisableLog bool
	LogLevel   slog.Level
	Debug      bool
}

// Result is one parsed stream plus its derived statistics.
type Result struct {
	Path   string
	Size   uint64
	Object *mpeg.AudioObject
	Stats  Stats
}

// File materializes and parses a single stream.
func File(path string, debug bool) (*Result, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	obj, err := mpeg.New(buf, &mpeg.Options{Debug: debug}).Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return &Result{
		Path:   path,
		Size:   uint64(len(buf)),
		Object: obj,
		Stats:  ComputeStats(obj),
	}, nil
}

// Dir walks root, parses every .mp3 file found and writes one report
// entry per file. A malformed stream is recorded in the report and the
// sweep continues.
func Dir(root string, opts Options) error {
	files, totalBytes, err := listAudioFiles(root)
	if err != nil {
		return err
	}

	session := GenSessionID()

	reportFileName := opts.ReportFile
	if reportFileName == "" {
		reportFileName = fmt.Sprintf("report_%s.xml", session)
	}

	outFile, err := os.Create(reportFileName)
	if err != nil {
		return err
	}
	defer outFile.Close()

	reportWriter := report.NewWriter(outFile)
	defer reportWriter.Close()

	err = reportWriter.WriteHeader(report.Header{
		Creator: report.Creator{
			Package:              env.AppName,
			Version:              env.Version,
			ExecutionEnvironment: report.GetExecEnv(),
		},
		Source: report.Source{Path: absPath(root)},
	})
	if err != nil {
		return err
	}

	var logFilePath string
	if !opts.DisableLog {
		logFilePath = absPath(session + ".log")
	}

	logger, logFile, err := setupLogger(logFilePath, opts.LogLevel)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	fmt.Println("[INFO] Starting inspection...")
	fmt.Printf("[INFO] Source: \t%s\n", absPath(root))
	fmt.Printf("[INFO] Files: \t%d\n", len(files))

	outLog := "disabled"
	if !opts.DisableLog {
		outLog = logFilePath
	}
	fmt.Printf("[INFO] Output Log: \t%s\n", outLog)

	start := time.Now()
	parsed := 0
	var totalDuration time.Duration

	pb := pbar.NewProgressBarState(int64(totalBytes))

	for _, path := range files {
		res, err := File(path, opts.Debug)

		entry := report.Audio{Path: path}
		if err != nil {
			entry.Error = err.Error()
			if info, statErr := os.Stat(path); statErr == nil {
				entry.Size = uint64(info.Size())
			}
			logger.Error("parse failed", "file", path, "err", err)
		} else {
			entry.Size = res.Size
			entry.Tags = res.Stats.TagCount
			entry.Frames = res.Stats.FrameCount
			entry.DurationMS = res.Stats.Duration.Milliseconds()
			entry.Bitrate = res.Stats.AvgBitrate
			entry.VBR = res.Stats.VBR
			if res.Object.Header != nil {
				entry.TagVersion = res.Object.Header.TagVersion
			}

			parsed++
			totalDuration += res.Stats.Duration
			pb.FramesFound += res.Stats.FrameCount

			logger.Info("parsed",
				"file", path,
				"frames", res.Stats.FrameCount,
				"tags", res.Stats.TagCount,
				"duration", res.Stats.Duration,
			)
		}

		if err := reportWriter.WriteAudio(entry); err != nil {
			logger.Error("unable to write report entry", "err", err)
		}

		pb.ProcessedBytes += int64(entry.Size)
		pb.FilesParsed++
		pb.Render(false)
	}

	pb.Render(true)
	pb.Finish()

	fmt.Printf("[INFO] Inspection completed!\n")
	fmt.Printf("[INFO] Parsed: \t%d/%d file(s)\n", parsed, len(files))
	fmt.Printf("[INFO] Total data: \t%s\n", fmtutil.FormatBytes(int64(totalBytes)))
	fmt.Printf("[INFO] Total audio: \t%s\n", fmtutil.FormatDuration(totalDuration))
	fmt.Printf("[INFO] Duration: \t%s\n", fmtutil.FormatDuration(time.Since(start)))
	fmt.Printf("[INFO] Report saved to: \t%s\n", absPath(reportFileName))

	if !opts.DisableLog {
		fmt.Printf("[INFO] Detailed log: \t%s\n", logFilePath)
	}
	return nil
}

func listAudioFiles(root string) ([]string, uint64, error) {
	var files []string
	var total uint64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, path)
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// GenSessionID creates a unique name for an inspection session, in the
// form "inspect_YYYYMMDD_HHMMSS".
func GenSessionID() string {
	return "inspect_" + time.Now().Format("20060102_150405")
}

// setupLogger initializes a slog.Logger writing to logFilePath, or one
// that discards output when the path is empty. The returned *os.File, if
// not nil, must be closed by the caller.
func setupLogger(logFilePath string, minLevel slog.Level) (*slog.Logger, *os.File, error) {
	var writer io.Writer
	var file *os.File

	if logFilePath == "" {
		writer = io.Discard
	} else {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		writer = f
		file = f
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     minLevel,
		AddSource: true,
	})

	return slog.New(handler), file, nil
}
