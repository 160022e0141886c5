// Package output persists debug snapshots of a pipeline run. Snapshots
// are named payloads (raw document, simplified view, converted tree) and
// can go to the console, local JSON files, Kafka or S3. None of this is
// load-bearing for the transform itself; failures are for the caller to
// log, not to die on.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type SnapshotWriter interface {
	WriteSnapshot(name string, payload []byte) error
	Close() error
}

// SnapshotName builds the file-safe snapshot key from the restaurant
// name: spaces become underscores, then the suffix is appended.
func SnapshotName(restaurantName, suffix string) string {
	return strings.ReplaceAll(restaurantName, " ", "_") + suffix
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteSnapshot(name string, payload []byte) error {
	out := fmt.Sprintf("[%s] %s\n", name, string(payload))
	if _, err := os.Stdout.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write snapshot %s to stdout: %w", name, err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// FileOutput writes each snapshot to <basePath>/<name>.json, creating
// the folder on first use.
type FileOutput struct {
	basePath string
}

func NewFileOutput(basePath string) *FileOutput {
	return &FileOutput{basePath: basePath}
}

func (f *FileOutput) WriteSnapshot(name string, payload []byte) error {
	if err := os.MkdirAll(f.basePath, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot folder %s: %w", f.basePath, err)
	}
	filename := filepath.Join(f.basePath, name+".json")
	if err := os.WriteFile(filename, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	return nil
}

func (f *FileOutput) Close() error {
	return nil
}

// MultiOutput fans one snapshot out to several destinations, keeping the
// first error but still attempting the rest.
type MultiOutput struct {
	writers []SnapshotWriter
}

func NewMultiOutput(writers ...SnapshotWriter) *MultiOutput {
	return &MultiOutput{writers: writers}
}

func (m *MultiOutput) WriteSnapshot(name string, payload []byte) error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.WriteSnapshot(name, payload); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *MultiOutput) Close() error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
