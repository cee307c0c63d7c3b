/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidBlobPath is returned for paths that are absolute or escape the blob root.
var ErrInvalidBlobPath = errors.New("invalid blob path")

// BlobStoreInterface stores uploaded files under slash separated paths.
type BlobStoreInterface interface {
	Put(ctx context.Context, path string, content io.Reader) (int64, error)
}

// fsBlobStore keeps blobs as files below a root directory.
type fsBlobStore struct {
	root string
}

// NewFSBlobStore creates a blob store rooted at root.
func NewFSBlobStore(root string) BlobStoreInterface {
	return &fsBlobStore{root: root}
}

// Put writes content to path. The file appears only once fully written.
func (s *fsBlobStore) Put(ctx context.Context, path string, content io.Reader) (int64, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBlobPath, path)
	}
	target := filepath.Join(s.root, clean)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp.*")
	if err != nil {
		return 0, fmt.Errorf("failed to create blob: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	n, err := io.Copy(tmp, &contextReader{ctx: ctx, r: content})
	if err != nil {
		return 0, fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close blob: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return 0, fmt.Errorf("failed to commit blob: %w", err)
	}
	return n, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
