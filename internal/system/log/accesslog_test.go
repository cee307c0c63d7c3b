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

package log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type AccessLogTestSuite struct {
	suite.Suite
}

func TestAccessLogSuite(t *testing.T) {
	suite.Run(t, new(AccessLogTestSuite))
}

func (suite *AccessLogTestSuite) TestAccessLogHandler() {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			suite.T().Errorf("Failed to write response: %v", err)
		}
	})

	handler := AccessLogHandler(l, testHandler)

	req := httptest.NewRequest("GET", "/designer/registry", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	assert.Equal(suite.T(), 1, logs.Len())
	msg := logs.All()[0].Message
	assert.Contains(suite.T(), msg, "192.168.1.1")
	assert.Contains(suite.T(), msg, `"GET /designer/registry HTTP/1.1" 201 2`)
}

func (suite *AccessLogTestSuite) TestAccessLogHandlerAllowsFlush() {
	core, _ := observer.New(zapcore.DebugLevel)

	handler := AccessLogHandler(NewWithCore(core), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("event"))
		assert.NoError(suite.T(), http.NewResponseController(w).Flush())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/app-context/events", nil))

	assert.True(suite.T(), rr.Flushed)
}
