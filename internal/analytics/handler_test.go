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

package analytics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/error/apierror"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	backend *httptest.Server
	mu      sync.Mutex
	calls   []string
	status  int
	mux     *http.ServeMux
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	suite.calls = nil
	suite.status = http.StatusOK
	suite.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.mu.Lock()
		suite.calls = append(suite.calls, r.URL.Path)
		status := suite.status
		suite.mu.Unlock()
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"answer":"ok"}`))
		}
	}))
	suite.mux = http.NewServeMux()
	analytics.Initialize(suite.mux, suite.backend.URL, 5*time.Second)
}

func (suite *AnalyticsHandlerTestSuite) TearDownTest() {
	suite.backend.Close()
}

func (suite *AnalyticsHandlerTestSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("X-User-ID", "user-1")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *AnalyticsHandlerTestSuite) setStatus(status int) {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.status = status
}

func (suite *AnalyticsHandlerTestSuite) recordedCalls() []string {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	return append([]string(nil), suite.calls...)
}

func (suite *AnalyticsHandlerTestSuite) errorCode(rr *httptest.ResponseRecorder) string {
	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
	return errResp.Code
}

func (suite *AnalyticsHandlerTestSuite) TestQueryProxied() {
	rr := suite.post("/analytics/query", `{"query":"hi"}`)
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal([]string{"/api/query"}, suite.recordedCalls())
	suite.Contains(rr.Body.String(), `"answer":"ok"`)
}

func (suite *AnalyticsHandlerTestSuite) TestTruthPeriodNotLocked() {
	suite.setStatus(http.StatusConflict)
	rr := suite.post("/analytics/truth", `{"entity":"SGG","period":"2025-03","currency":"GEL"}`)
	suite.Equal(http.StatusConflict, rr.Code)
	suite.Equal(analytics.ErrorPeriodNotLocked.Code, suite.errorCode(rr))
}

func (suite *AnalyticsHandlerTestSuite) TestUpstreamFailure() {
	suite.setStatus(http.StatusServiceUnavailable)
	rr := suite.post("/analytics/query", `{"query":"hi"}`)
	suite.Equal(http.StatusBadGateway, rr.Code)
	suite.Equal(analytics.ErrorUpstreamFailure.Code, suite.errorCode(rr))
}

func (suite *AnalyticsHandlerTestSuite) TestTransactionUnsupportedAction() {
	rr := suite.post("/analytics/transactions", `{"action":"drop"}`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(analytics.ErrorUnsupportedAction.Code, suite.errorCode(rr))
	suite.Empty(suite.recordedCalls())
}

func (suite *AnalyticsHandlerTestSuite) TestInvalidBody() {
	rr := suite.post("/analytics/truth", `not json`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(analytics.ErrorInvalidRequestFormat.Code, suite.errorCode(rr))
}
