// Package content implements streaming regular-expression search over
// file contents.
package content

import (
	"bytes"
	"io"
	"os"
	"regexp"
)

const (
	// DefaultChunkSize is the number of bytes read per streaming step.
	DefaultChunkSize = 64 * 1024

	// DefaultCarryOver is how many trailing bytes of the previous
	// window are prepended to the next chunk so a match straddling a
	// chunk boundary is still seen. A match longer than carry-over +
	// chunk size can be missed; the defaults comfortably cover
	// multi-KiB matches.
	DefaultCarryOver = 32 * 1024

	binarySniffLen = 512
)

// PatternError reports a content pattern that failed to compile. The
// regexp diagnostic is preserved verbatim for the result payload.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return "Invalid regular expression: " + e.Err.Error()
}

func (e *PatternError) Unwrap() error { return e.Err }

// Searcher tests files for a regular expression without loading whole
// files into memory. A Searcher is safe for concurrent use.
type Searcher struct {
	re        *regexp.Regexp
	chunkSize int
	carryOver int
}

// New compiles pattern once, before any file I/O. The pattern is
// case-insensitive unless caseSensitive is set. An invalid pattern is
// reported as a *PatternError.
func New(pattern string, caseSensitive bool) (*Searcher, error) {
	src := pattern
	if !caseSensitive {
		src = "(?i)" + pattern
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Searcher{
		re:        re,
		chunkSize: DefaultChunkSize,
		carryOver: DefaultCarryOver,
	}, nil
}

// SetWindow overrides the chunk and carry-over sizes. Zero or negative
// values leave the current setting unchanged.
func (s *Searcher) SetWindow(chunkSize, carryOver int) {
	if chunkSize > 0 {
		s.chunkSize = chunkSize
	}
	if carryOver > 0 {
		s.carryOver = carryOver
	}
}

// Matches reports whether the file at path contains at least one match.
// Reading stops at the first hit. Binary content (NUL byte in the sniff
// window) reports false without an error.
func (s *Searcher) Matches(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var carry []byte
	chunk := make([]byte, s.chunkSize)
	first := true
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			if first {
				first = false
				if looksBinary(chunk[:n]) {
					return false, nil
				}
			}
			window := make([]byte, 0, len(carry)+n)
			window = append(window, carry...)
			window = append(window, chunk[:n]...)
			if s.re.Match(window) {
				return true, nil
			}
			if len(window) > s.carryOver {
				window = window[len(window)-s.carryOver:]
			}
			carry = window
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

func looksBinary(b []byte) bool {
	if len(b) > binarySniffLen {
		b = b[:binarySniffLen]
	}
	return bytes.IndexByte(b, 0) >= 0
}
