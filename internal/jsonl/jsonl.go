// Package jsonl reads and writes line-delimited JSON files.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// ForEach streams a line-delimited JSON file, invoking fn with each line's
// raw bytes and its 1-based line number. A blank interior line is a decode
// error; processing stops at the first error fn returns.
func ForEach(path string, fn func(line int, raw []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			return fmt.Errorf("%s:%d: empty line", path, line)
		}
		if err := fn(line, raw); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Writer emits one JSON object per line, preserving non-ASCII and HTML
// characters verbatim. Creating a Writer truncates any existing file.
type Writer struct {
	f     *os.File
	buf   *bufio.Writer
	enc   *json.Encoder
	count int
}

// Create opens path for writing, truncating any existing file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{f: f, buf: buf, enc: enc}, nil
}

// Write appends one record as a single line.
func (w *Writer) Write(v any) error {
	if err := w.enc.Encode(v); err != nil {
		return fmt.Errorf("encoding record %d: %w", w.count+1, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered records and closes the file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("flushing %s: %w", w.f.Name(), err)
	}
	return w.f.Close()
}

// CountLines returns the number of lines in a line-delimited JSON file.
func CountLines(path string) (int, error) {
	n := 0
	err := ForEach(path, func(line int, raw []byte) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
