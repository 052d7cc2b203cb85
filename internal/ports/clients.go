package ports

import (
	"context"
	"io"
)

// SeedSource is the outbound port for reading seed CSV data. Implementations
// read from the local filesystem or a remote HTTP endpoint; the caller closes
// the returned reader.
type SeedSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)

	// Describe returns the location being read, for logging.
	Describe() string
}
