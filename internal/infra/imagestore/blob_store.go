// Package imagestore materializes meal photos on local storage through gocloud blob buckets.
package imagestore

import (
	"context"
	"path/filepath"
	"strings"

	"snapdish/internal/domain/service"
	"snapdish/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const imageContentType = "image/jpeg"

// memoryRoot is the address prefix of the in-memory store; nothing is written there.
const memoryRoot = "/snapdish-memory"

// BlobStore implements service.ImageStore on a blob bucket rooted at a directory.
// Addresses are root joined with the object key.
type BlobStore struct {
	bucket *blob.Bucket
	root   string
}

var _ service.ImageStore = (*BlobStore)(nil)

// NewFileStore stores images as plain files under dir, creating it when missing.
func NewFileStore(dir string) (*BlobStore, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve image directory")
	}

	bucket, err := fileblob.OpenBucket(root, &fileblob.Options{
		CreateDir: true,
		// keep the directory to image files only
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open image directory %s", root)
	}

	return &BlobStore{bucket: bucket, root: root}, nil
}

// NewMemoryStore keeps images in memory. Addresses look like paths but do not exist on disk.
func NewMemoryStore() *BlobStore {
	return &BlobStore{bucket: memblob.OpenBucket(nil), root: memoryRoot}
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(key)), "/")
	if key == "." || key == "" || strings.HasPrefix(key, "../") || key == ".." {
		return "", errors.Errorf("invalid image key %q", key)
	}

	return key, nil
}

// Write stores data under key and returns its address.
func (s *BlobStore) Write(ctx context.Context, key string, data []byte) (string, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: imageContentType}); err != nil {
		return "", errors.Wrapf(err, "write image %s", key)
	}

	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

// Exists reports whether an image is stored under key.
func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return false, err
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "stat image %s", key)
	}

	return exists, nil
}

// Read returns the bytes stored at address.
func (s *BlobStore) Read(ctx context.Context, address string) ([]byte, error) {
	key, err := s.keyOf(address)
	if err != nil {
		return nil, err
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrapf(service.ErrImageNotFound, "read %s", address)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", address)
	}

	return data, nil
}

// Delete removes the image at address. Deleting a missing image is not an error.
func (s *BlobStore) Delete(ctx context.Context, address string) error {
	key, err := s.keyOf(address)
	if err != nil {
		return err
	}

	err = s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete image %s", address)
	}

	return nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}

func (s *BlobStore) keyOf(address string) (string, error) {
	rel, err := filepath.Rel(s.root, filepath.Clean(address))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("address %s is outside the image store", address)
	}

	return filepath.ToSlash(rel), nil
}
