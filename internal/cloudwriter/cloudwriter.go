// Package cloudwriter is a small buffered-upload abstraction over object
// storage, used by the snapshot sink to push debug payloads to S3.
package cloudwriter

// CloudWriter buffers writes and uploads the object when closed.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
