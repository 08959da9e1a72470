// Package sniff decides whether a file is binary and should be excluded from
// content checks.
//
// A file is binary if its name carries a known binary extension, or if its
// first charlint.SniffSampleSize bytes contain a NUL byte or more than
// charlint.SniffNonTextThreshold non-text bytes. Text bytes are TAB, LF, CR
// and everything from 0x20 to 0xFF.
package sniff

import (
	"bytes"
	"io"
	"strings"

	"github.com/vvka-141/charlint/internal/files/filesystem"
	"github.com/vvka-141/charlint/pkg/charlint"
)

// binaryExtensions lists suffixes that are never scanned. Compound suffixes
// such as ".tar.gz" are matched against the end of the lowercased name.
var binaryExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
	".exe", ".dll", ".so", ".class", ".jar",
	".pdf", ".zip", ".tar", ".tar.gz", ".7z",
}

// HasBinaryExtension reports whether name ends in a known binary extension.
// The comparison is case-insensitive.
func HasBinaryExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lower, ext) && len(lower) > len(ext) {
			return true
		}
	}
	return false
}

// IsBinary samples the leading bytes of r. A read error is treated as binary.
func IsBinary(r io.Reader) bool {
	sample := make([]byte, charlint.SniffSampleSize)
	n, err := io.ReadFull(r, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return IsBinarySample(sample[:n])
}

// IsBinarySample applies the NUL-byte and non-text-ratio checks to a sample.
// An empty sample is text.
func IsBinarySample(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > charlint.SniffNonTextThreshold
}

func isTextByte(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b >= 0x20
}

// IsBinaryFile reports whether f should be skipped: either by extension or
// by content sniffing. A file that cannot be opened is treated as binary.
func IsBinaryFile(f filesystem.File) bool {
	if HasBinaryExtension(f.Info().Name()) {
		return true
	}

	rc, err := f.Open()
	if err != nil {
		return true
	}
	defer rc.Close()

	return IsBinary(rc)
}
