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

// Package ingest stores uploaded ledger files and hands them to the analytics backend.
package ingest

import (
	"context"
	"io"
	"time"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "IngestService"

// UploadRequest carries an uploaded file and the context it belongs to.
type UploadRequest struct {
	FileName string
	Content  io.Reader
	Entity   string
	Period   string
	UserID   string
}

// UploadResult is the stored location with the ingestion summary.
type UploadResult struct {
	StoragePath string                    `json:"storagePath"`
	Bucket      string                    `json:"bucket"`
	Bytes       int64                     `json:"bytes"`
	Summary     *analytics.IngestResponse `json:"summary"`
}

// IngestServiceInterface defines the ingestion operation.
type IngestServiceInterface interface {
	Upload(ctx context.Context, request UploadRequest) (*UploadResult, *serviceerror.ServiceError)
}

// ingestService is the default implementation of IngestServiceInterface.
type ingestService struct {
	blobs  BlobStoreInterface
	client analytics.AnalyticsClientInterface
	bucket string
	now    func() time.Time
}

// newIngestService creates a new instance of ingestService.
func newIngestService(blobs BlobStoreInterface, client analytics.AnalyticsClientInterface,
	bucket string) *ingestService {
	return &ingestService{
		blobs:  blobs,
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

// Upload stores the file and asks the backend to ingest it.
func (s *ingestService) Upload(ctx context.Context, request UploadRequest) (
	*UploadResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	storagePath := StoragePath(request.FileName, s.now())
	n, err := s.blobs.Put(ctx, storagePath, request.Content)
	if err != nil {
		logger.Error("Failed to store upload", log.String("path", storagePath), log.Error(err))
		return nil, &ErrorStorageFailure
	}

	ingestContext := map[string]interface{}{}
	if request.Entity != "" {
		ingestContext["entity"] = request.Entity
	}
	if request.Period != "" {
		ingestContext["period"] = request.Period
	}
	if request.UserID != "" {
		ingestContext["uploadedBy"] = request.UserID
	}

	summary, err := s.client.Ingest(ctx, analytics.IngestRequest{
		StoragePath: storagePath,
		Bucket:      s.bucket,
		Context:     ingestContext,
	})
	if err != nil {
		logger.Error("Analytics ingestion failed", log.String("path", storagePath), log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorIngestFailed, err.Error())
	}

	logger.Info("File ingested", log.String("path", storagePath), log.Int64("bytes", n),
		log.Int64("rows", summary.RowsProcessed))
	return &UploadResult{
		StoragePath: storagePath,
		Bucket:      s.bucket,
		Bytes:       n,
		Summary:     summary,
	}, nil
}
