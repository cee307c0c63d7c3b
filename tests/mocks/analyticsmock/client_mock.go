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

// Package analyticsmock provides a testify based mock of the analytics client.
package analyticsmock

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/socar-georgia/finsight/internal/analytics"
)

// AnalyticsClientInterfaceMock is a mock implementation of analytics.AnalyticsClientInterface.
type AnalyticsClientInterfaceMock struct {
	mock.Mock
}

// NewAnalyticsClientInterfaceMock creates a mock whose expectations are asserted on test cleanup.
func NewAnalyticsClientInterfaceMock(t *testing.T) *AnalyticsClientInterfaceMock {
	m := &AnalyticsClientInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FinancialTruth mocks the FinancialTruth method.
func (m *AnalyticsClientInterfaceMock) FinancialTruth(ctx context.Context,
	request analytics.TruthRequest) (*analytics.TruthResponse, error) {
	ret := m.Called(ctx, request)
	var resp *analytics.TruthResponse
	if v := ret.Get(0); v != nil {
		resp = v.(*analytics.TruthResponse)
	}
	return resp, ret.Error(1)
}

// Query mocks the Query method.
func (m *AnalyticsClientInterfaceMock) Query(ctx context.Context,
	request analytics.QueryRequest) (*analytics.QueryResponse, error) {
	ret := m.Called(ctx, request)
	var resp *analytics.QueryResponse
	if v := ret.Get(0); v != nil {
		resp = v.(*analytics.QueryResponse)
	}
	return resp, ret.Error(1)
}

// Ingest mocks the Ingest method.
func (m *AnalyticsClientInterfaceMock) Ingest(ctx context.Context,
	request analytics.IngestRequest) (*analytics.IngestResponse, error) {
	ret := m.Called(ctx, request)
	var resp *analytics.IngestResponse
	if v := ret.Get(0); v != nil {
		resp = v.(*analytics.IngestResponse)
	}
	return resp, ret.Error(1)
}

// ProcessTransaction mocks the ProcessTransaction method.
func (m *AnalyticsClientInterfaceMock) ProcessTransaction(ctx context.Context, action string,
	params map[string]interface{}) (json.RawMessage, error) {
	ret := m.Called(ctx, action, params)
	var resp json.RawMessage
	if v := ret.Get(0); v != nil {
		resp = v.(json.RawMessage)
	}
	return resp, ret.Error(1)
}

// UploadMapping mocks the UploadMapping method.
func (m *AnalyticsClientInterfaceMock) UploadMapping(ctx context.Context,
	request analytics.MappingUploadRequest) (json.RawMessage, error) {
	ret := m.Called(ctx, request)
	var resp json.RawMessage
	if v := ret.Get(0); v != nil {
		resp = v.(json.RawMessage)
	}
	return resp, ret.Error(1)
}
