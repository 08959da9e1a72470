// Package files groups the sub-packages that find and read the files of a
// scan target:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - sniff: Binary exclusion by extension and content sample
//   - scanner: Directory walk, filename and content rule checks, violation reporting
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/charlint/internal/annotate"
//	    "github.com/vvka-141/charlint/internal/files/scanner"
//	    "github.com/vvka-141/charlint/internal/logging"
//	)
//
//	s := scanner.NewScanner(annotate.NewWriter(os.Stdout), logging.NewConsoleLogger(false))
//	result, err := s.ScanDirectory("./src")
package files
