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

// Package report writes and reads the XML index produced by a sweep: a
// document preamble describing who ran the inspection and where, followed
// by one <audio> element per parsed stream.
package report

import (
	"encoding/xml"
	"os"
	"runtime"
	"time"
)

// Header is the root element preamble of an inspection report.
type Header struct {
	XMLName xml.Name `xml:"mp3probe_report"`
	Creator Creator  `xml:"creator"`
	Source  Source   `xml:"source"`
}

// Creator describes the software and environment that produced the report.
type Creator struct {
	XMLName              xml.Name `xml:"creator"`
	Package              string   `xml:"package"`
	Version              string   `xml:"version"`
	ExecutionEnvironment ExecEnv  `xml:"execution_environment"`
}

// ExecEnv captures the host the inspection ran on.
type ExecEnv struct {
	OS    string `xml:"os_sysname"`
	Arch  string `xml:"arch"`
	Host  string `xml:"host"`
	Start string `xml:"start_time"`
}

// Source describes the file or directory tree that was inspected.
type Source struct {
	XMLName xml.Name `xml:"source"`
	Path    string   `xml:"path"`
}

// Audio is one parsed stream. A stream that failed to parse still gets an
// entry, with Error set; its Size is recorded and the other numeric fields
// are zero.
type Audio struct {
	XMLName    xml.Name `xml:"audio"`
	Path       string   `xml:"path"`
	Size       uint64   `xml:"size"`
	TagVersion string   `xml:"tag_version,omitempty"`
	Tags       int      `xml:"tags"`
	Frames     int      `xml:"frames"`
	DurationMS int64    `xml:"duration_ms"`
	Bitrate    int      `xml:"bitrate"`
	VBR        bool     `xml:"vbr"`
	Error      string   `xml:"error,omitempty"`
}

// GetExecEnv captures the current host for a report preamble.
func GetExecEnv() ExecEnv {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown_host"
	}

	return ExecEnv{
		OS:    runtime.GOOS,
		Arch:  runtime.GOARCH,
		Host:  host,
		Start: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}
