package output

import (
	"fmt"
	"path"

	"github.com/phoneline/voicemenu/internal/cloudwriter"
)

// CloudOutput uploads each snapshot as <folder>/<name>.json through a
// cloud writer factory.
type CloudOutput struct {
	factory cloudwriter.CloudWriterFactory
	bucket  string
	folder  string
}

func NewCloudOutput(factory cloudwriter.CloudWriterFactory, bucket, folder string) *CloudOutput {
	return &CloudOutput{factory: factory, bucket: bucket, folder: folder}
}

func (c *CloudOutput) WriteSnapshot(name string, payload []byte) error {
	objectPath := path.Join(c.folder, name+".json")
	w, err := c.factory.NewWriter(c.bucket, objectPath)
	if err != nil {
		return fmt.Errorf("failed to open cloud writer for %s: %w", name, err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to buffer snapshot %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return nil
}

func (c *CloudOutput) Close() error {
	return nil
}
