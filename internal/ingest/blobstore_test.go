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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSBlobStorePut(t *testing.T) {
	root := t.TempDir()
	store := NewFSBlobStore(root)

	n, err := store.Put(context.Background(), "ingestion/tb-1.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	data, err := os.ReadFile(filepath.Join(root, "ingestion", "tb-1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "ingestion"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFSBlobStoreRejectsEscapingPaths(t *testing.T) {
	store := NewFSBlobStore(t.TempDir())
	for _, p := range []string{"../outside.csv", "/etc/passwd", "ingestion/../../x", ""} {
		_, err := store.Put(context.Background(), p, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidBlobPath, p)
	}
}

func TestFSBlobStoreCancelledContext(t *testing.T) {
	root := t.TempDir()
	store := NewFSBlobStore(root)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "ingestion/tb.csv", strings.NewReader("data"))
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(root, "ingestion", "tb.csv"))
	assert.True(t, os.IsNotExist(statErr))
}
