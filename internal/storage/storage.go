package storage

import (
	"io"
	"time"
)

// URLSigner exchanges a storage reference for a time-limited access URL.
// Signed URLs are derived per request and never persisted.
type URLSigner interface {
	SignedURL(bucket, path string, expiresIn time.Duration) (string, error)
}

// Store persists and removes blobs. Buckets are flat namespaces; paths may
// contain slashes but never escape the bucket.
type Store interface {
	Save(bucket, path string, r io.Reader) error
	Delete(bucket, path string) error
}

// ObjectInfo describes one stored blob; Path is relative to its bucket.
type ObjectInfo struct {
	Path       string
	Size       int64
	ModifiedAt time.Time
}
