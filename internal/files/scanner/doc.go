// Package scanner walks a directory tree and reports encoding hygiene violations.
//
// The scanner package is responsible for:
//   - Recursively discovering every file under the scan target
//   - Skipping binary files (known extensions or sniffed content)
//   - Checking filenames for Cyrillic characters
//   - Checking each line of text files for Cyrillic, Extended Pictographic
//     symbols, and whitespace-bounded emoticons
//
// Violations are streamed to a charlint.Reporter in walk order; within a file
// they arrive in ascending line order. Per-file I/O failures are logged at
// verbose level and never abort the scan.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory filesystems.
package scanner
