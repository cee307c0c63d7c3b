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

// Package analytics provides a typed client for the analytics backend and a thin proxy over it.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	httpservice "github.com/socar-georgia/finsight/internal/system/http"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const clientLoggerComponentName = "AnalyticsClient"

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 4096

const (
	pathFinancialTruth     = "/api/financial-truth"
	pathQuery              = "/api/query"
	pathIngest             = "/api/ingest"
	pathProcessTransaction = "/api/process-transaction"
	pathMappingUpload      = "/api/mapping/upload"
)

// AnalyticsClientInterface defines the calls made to the analytics backend.
type AnalyticsClientInterface interface {
	FinancialTruth(ctx context.Context, request TruthRequest) (*TruthResponse, error)
	Query(ctx context.Context, request QueryRequest) (*QueryResponse, error)
	Ingest(ctx context.Context, request IngestRequest) (*IngestResponse, error)
	ProcessTransaction(ctx context.Context, action string, params map[string]interface{}) (json.RawMessage, error)
	UploadMapping(ctx context.Context, request MappingUploadRequest) (json.RawMessage, error)
}

// Client is the default implementation of AnalyticsClientInterface.
type Client struct {
	baseURL    string
	httpClient httpservice.HTTPClientInterface
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, httpClient httpservice.HTTPClientInterface) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FinancialTruth fetches the reconciled variance of a period. A 409 answer yields ErrPeriodNotLocked.
func (c *Client) FinancialTruth(ctx context.Context, request TruthRequest) (*TruthResponse, error) {
	var resp TruthResponse
	if err := c.post(ctx, pathFinancialTruth, request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Query asks the AI query endpoint a question.
func (c *Client) Query(ctx context.Context, request QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.post(ctx, pathQuery, request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ingest asks the backend to process an uploaded blob.
func (c *Client) Ingest(ctx context.Context, request IngestRequest) (*IngestResponse, error) {
	var resp IngestResponse
	if err := c.post(ctx, pathIngest, request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessTransaction runs one of the transaction actions and returns its action specific result.
func (c *Client) ProcessTransaction(ctx context.Context, action string,
	params map[string]interface{}) (json.RawMessage, error) {
	if !supportedActions[action] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, action)
	}

	body := make(map[string]interface{}, len(params)+1)
	for k, v := range params {
		body[k] = v
	}
	body["action"] = action

	var resp json.RawMessage
	if err := c.post(ctx, pathProcessTransaction, body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UploadMapping submits a mapping rule set and returns the backend acknowledgement.
func (c *Client) UploadMapping(ctx context.Context, request MappingUploadRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.post(ctx, pathMappingUpload, request, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// post sends in as JSON and decodes the answer into out. An empty body leaves out untouched.
func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, clientLoggerComponentName))

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	logger.Debug("Received response from analytics backend", log.String("path", path),
		log.Int("statusCode", resp.StatusCode))

	if path == pathFinancialTruth && resp.StatusCode == http.StatusConflict {
		return ErrPeriodNotLocked
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
