package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// DefaultMaxLineSize bounds a single command line in bytes.
	DefaultMaxLineSize = 256
	// EnvMaxLineSize is the environment variable to override the default
	EnvMaxLineSize = "DIAL_MAX_LINE_SIZE"
)

// lineSlack lets a scanned line exceed the limit so the size check, not the
// scanner, reports it.
const lineSlack = 1024

var (
	ErrLineTooLarge = errors.New("line exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("line contains invalid UTF-8 sequences")
)

// SanitizeLine prepares a raw input line for parsing: it enforces the size
// limit, validates UTF-8 and trims surrounding whitespace (including a
// trailing \r). Anything inside the token is left for the parser to reject.
// A blank line yields an empty token and no error.
func SanitizeLine(line string) (string, error) {
	limit := getMaxLineSize()
	if len(line) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLarge, len(line), limit)
	}

	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	return strings.TrimSpace(line), nil
}

// NewLineScanner returns a line scanner whose buffer admits lines a little
// past the sanitizer limit, so oversized lines reach SanitizeLine and fail
// with ErrLineTooLarge instead of bufio.ErrTooLong.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	limit := getMaxLineSize() + lineSlack
	scanner.Buffer(make([]byte, 0, min(limit, 4096)), limit)
	return scanner
}

// ScanError maps a scanner failure on the given line to a *LineError when the
// line was too long to buffer.
func ScanError(line int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &LineError{Line: line, Err: fmt.Errorf("%w: limit=%d", ErrLineTooLarge, getMaxLineSize())}
	}
	return fmt.Errorf("read commands: %w", err)
}

func getMaxLineSize() int {
	if val := os.Getenv(EnvMaxLineSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxLineSize
}
