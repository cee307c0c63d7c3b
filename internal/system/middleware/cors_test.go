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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/system/config"
)

type CORSTestSuite struct {
	suite.Suite
}

func TestCORSSuite(t *testing.T) {
	suite.Run(t, new(CORSTestSuite))
}

func (suite *CORSTestSuite) SetupTest() {
	config.ResetServerRuntime()
	_ = config.InitializeServerRuntime("", &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	})
}

func (suite *CORSTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func (suite *CORSTestSuite) serve(origin string) *httptest.ResponseRecorder {
	opts := CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	pattern, handler := WithCORS("GET /designer/registry", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, opts)
	suite.Equal("GET /designer/registry", pattern)

	req := httptest.NewRequest(http.MethodGet, "/designer/registry", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func (suite *CORSTestSuite) TestAllowedOrigin() {
	rr := suite.serve("http://localhost:5173")
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	suite.Equal("GET, POST", rr.Header().Get("Access-Control-Allow-Methods"))
	suite.Equal("Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	suite.Equal("true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSTestSuite) TestDisallowedOrigin() {
	rr := suite.serve("http://evil.example")
	suite.Equal(http.StatusOK, rr.Code)
	suite.Empty(rr.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSTestSuite) TestNoOrigin() {
	rr := suite.serve("")
	suite.Empty(rr.Header().Get("Access-Control-Allow-Origin"))
}
