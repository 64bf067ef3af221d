package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("blob: key not found")

// Store is an opaque keyed blob store. The portfolio keeps exactly two
// blobs in it (the document and the access secret), each written as a
// whole-value overwrite - no partial writes, no transactions, one writer.
//
// Implementations: file (one file per key), Redis, in-memory (tests).
type Store interface {
	// Get trả về value của key, ErrNotFound nếu key chưa tồn tại
	Get(ctx context.Context, key string) ([]byte, error)

	// Put ghi đè toàn bộ value của key
	Put(ctx context.Context, key string, value []byte) error

	// Ping kiểm tra backend còn sống không
	Ping(ctx context.Context) error

	// Close giải phóng connections/handles
	Close() error
}
