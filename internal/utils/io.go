package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadStdin reads all content from stdin.
// Returns an error if stdin is empty, is a terminal (no piped data), or cannot be read.
func ReadStdin() ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}

	// If ModeCharDevice is set, stdin is connected to a terminal.
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe your master passphrase to this command)")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}

	return data, nil
}

// ReadLine returns the first line of r without its line ending.
// The reader is buffered, so use FirstLine for secrets.
func ReadLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read line: %w", err)
	}
	return FirstLine(line)
}

// FirstLine returns a copy of the first line of data without its line
// ending. data is only sliced, so wiping it wipes every copy but the result.
func FirstLine(data []byte) ([]byte, error) {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return nil, fmt.Errorf("input is empty")
	}

	out := make([]byte, len(line))
	copy(out, line)
	return out, nil
}

// ReadPassphraseStdin reads the first line of piped stdin as a passphrase.
func ReadPassphraseStdin() ([]byte, error) {
	data, err := ReadStdin()
	if err != nil {
		return nil, err
	}
	defer Zero(data)
	return FirstLine(data)
}
