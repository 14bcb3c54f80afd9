// Package audit provides the append-only record of dispatched command lines.
package audit

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Writer appends one CSV row per dispatched command line, paired with the
// acting user. The record starts with a "User,Action" header row and is
// never read back during the session.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

// Create opens (or truncates) the record at path and writes the header row.
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("tarsh: create audit log: %w", err)
	}

	w := &Writer{
		file: file,
		csv:  csv.NewWriter(file),
	}

	if err := w.write("User", "Action"); err != nil {
		file.Close()
		return nil, err
	}

	return w, nil
}

// Record appends one row with the user and the verbatim command line.
func (w *Writer) Record(user, action string) error {
	return w.write(user, action)
}

func (w *Writer) write(fields ...string) error {
	if err := w.csv.Write(fields); err != nil {
		return fmt.Errorf("tarsh: write audit log: %w", err)
	}

	// Flush per row so the record survives abnormal termination.
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes and releases the underlying file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}

	return w.file.Close()
}
