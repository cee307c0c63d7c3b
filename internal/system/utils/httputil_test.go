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

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/system/error/apierror"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

type samplePayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"flow","count":2}`))
	payload, err := DecodeJSONBody[samplePayload](req)
	suite.Require().NoError(err)
	suite.Equal("flow", payload.Name)
	suite.Equal(2, payload.Count)
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyEmpty() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	_, err := DecodeJSONBody[samplePayload](req)
	suite.EqualError(err, "request body is empty")
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyMalformed() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	_, err := DecodeJSONBody[samplePayload](req)
	suite.Error(err)
}

func (suite *HTTPUtilTestSuite) TestWriteServiceError() {
	rr := httptest.NewRecorder()
	WriteServiceError(rr, http.StatusNotFound, &serviceerror.ServiceError{
		Code:             "FLW-60001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Not found",
		ErrorDescription: "missing",
	})

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Equal("application/json", rr.Header().Get("Content-Type"))
	var body apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	suite.Equal("FLW-60001", body.Code)
	suite.Equal("Not found", body.Message)
	suite.Equal("missing", body.Description)
}

func (suite *HTTPUtilTestSuite) TestGetAllowedOrigin() {
	suite.Equal("", GetAllowedOrigin(nil, "http://localhost:3000"))
	suite.Equal("http://localhost:3000",
		GetAllowedOrigin([]string{"http://localhost:3000"}, "http://localhost:3000"))
	suite.Equal("", GetAllowedOrigin([]string{"http://localhost:3000"}, "http://evil.example"))
	suite.Equal("https://app.example", GetAllowedOrigin([]string{"*"}, "https://app.example"))
}

func (suite *HTTPUtilTestSuite) TestGenerateUUID() {
	a := GenerateUUID()
	b := GenerateUUID()
	suite.Len(a, 36)
	suite.NotEqual(a, b)
}
