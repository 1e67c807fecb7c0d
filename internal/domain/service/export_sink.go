package service

import "context"

// ExportSink is the injected "download a file" capability: it receives a
// filename and the full text content of an admin export. Implementations
// decide where the bytes land (a blob bucket, a local directory); the
// exporting code never touches the destination directly.
type ExportSink interface {
	// Write stores content under filename, replacing any previous export
	// with the same name.
	Write(ctx context.Context, filename, content string) error
}
