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

// Package mapping validates mapping sheets and submits their rules to the analytics backend.
package mapping

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "MappingService"

// UploadRequest carries an uploaded mapping sheet and its submission options.
type UploadRequest struct {
	FileName      string
	Content       io.Reader
	Name          string
	SourceProfile string
	Activate      bool
}

// UploadResult reports what was submitted.
type UploadResult struct {
	Name           string          `json:"name"`
	RulesSubmitted int             `json:"rulesSubmitted"`
	RowsSkipped    int             `json:"rowsSkipped"`
	Activated      bool            `json:"activated"`
	Ack            json.RawMessage `json:"ack,omitempty"`
}

// MappingServiceInterface defines the mapping upload operation.
type MappingServiceInterface interface {
	Upload(ctx context.Context, request UploadRequest) (*UploadResult, *serviceerror.ServiceError)
}

// mappingService is the default implementation of MappingServiceInterface.
type mappingService struct {
	client analytics.AnalyticsClientInterface
}

// newMappingService creates a new instance of mappingService.
func newMappingService(client analytics.AnalyticsClientInterface) MappingServiceInterface {
	return &mappingService{
		client: client,
	}
}

// Upload parses the sheet, builds the rules and submits them. Nothing is submitted when no rule is valid.
func (s *mappingService) Upload(ctx context.Context, request UploadRequest) (
	*UploadResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	rows, err := ParseSheet(request.FileName, request.Content)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInvalidSheet, err.Error())
	}
	set, err := BuildRules(rows)
	if err != nil {
		if errors.Is(err, ErrNoRules) {
			return nil, &ErrorNoValidRules
		}
		return nil, serviceerror.CustomServiceError(ErrorInvalidSheet, err.Error())
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		base := filepath.Base(request.FileName)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	ack, err := s.client.UploadMapping(ctx, analytics.MappingUploadRequest{
		Name:          name,
		SourceProfile: request.SourceProfile,
		Rules:         set.Rules,
		Activate:      request.Activate,
	})
	if err != nil {
		logger.Error("Failed to submit mapping rules", log.String("name", name), log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorSubmissionFailed, err.Error())
	}

	logger.Info("Mapping rules submitted", log.String("name", name), log.Int("rules", len(set.Rules)),
		log.Int("skipped", set.Skipped), log.Bool("activate", request.Activate))
	return &UploadResult{
		Name:           name,
		RulesSubmitted: len(set.Rules),
		RowsSkipped:    set.Skipped,
		Activated:      request.Activate,
		Ack:            ack,
	}, nil
}
