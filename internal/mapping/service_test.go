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

package mapping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/error/apierror"
	"github.com/socar-georgia/finsight/tests/mocks/analyticsmock"
)

const validSheet = "budget_article,budget_holder,account_code\nFuel,Logistics,6100\nRent,,6200\n"

type MappingServiceTestSuite struct {
	suite.Suite
	mockClient *analyticsmock.AnalyticsClientInterfaceMock
	service    MappingServiceInterface
	mux        *http.ServeMux
}

func TestMappingServiceSuite(t *testing.T) {
	suite.Run(t, new(MappingServiceTestSuite))
}

func (suite *MappingServiceTestSuite) SetupTest() {
	suite.mockClient = analyticsmock.NewAnalyticsClientInterfaceMock(suite.T())
	suite.mux = http.NewServeMux()
	suite.service = Initialize(suite.mux, suite.mockClient)
}

func (suite *MappingServiceTestSuite) TestUpload() {
	suite.mockClient.On("UploadMapping", mock.Anything, analytics.MappingUploadRequest{
		Name:          "georgia-rules",
		SourceProfile: "1c",
		Rules:         []analytics.MappingRule{{BudgetArticle: "Fuel", BudgetHolder: "Logistics", AccountCode: "6100"}},
		Activate:      true,
	}).Return(json.RawMessage(`{"ok":true}`), nil)

	result, svcErr := suite.service.Upload(context.Background(), UploadRequest{
		FileName:      "georgia-rules.csv",
		Content:       strings.NewReader(validSheet),
		SourceProfile: "1c",
		Activate:      true,
	})
	suite.Require().Nil(svcErr)
	suite.Equal("georgia-rules", result.Name)
	suite.Equal(1, result.RulesSubmitted)
	suite.Equal(1, result.RowsSkipped)
	suite.JSONEq(`{"ok":true}`, string(result.Ack))
}

func (suite *MappingServiceTestSuite) TestUploadNoValidRulesIsNotSubmitted() {
	result, svcErr := suite.service.Upload(context.Background(), UploadRequest{
		FileName: "rules.csv",
		Content:  strings.NewReader("budget_article,budget_holder\nFuel,\n,Admin\n"),
	})
	suite.Nil(result)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorNoValidRules.Code, svcErr.Code)
	suite.mockClient.AssertNotCalled(suite.T(), "UploadMapping", mock.Anything, mock.Anything)
}

func (suite *MappingServiceTestSuite) TestUploadMissingColumns() {
	_, svcErr := suite.service.Upload(context.Background(), UploadRequest{
		FileName: "rules.csv",
		Content:  strings.NewReader("article,holder\nFuel,Admin\n"),
	})
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidSheet.Code, svcErr.Code)
}

func (suite *MappingServiceTestSuite) TestUploadSubmissionFailure() {
	suite.mockClient.On("UploadMapping", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

	_, svcErr := suite.service.Upload(context.Background(), UploadRequest{
		FileName: "rules.csv",
		Content:  strings.NewReader(validSheet),
		Name:     "explicit",
	})
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorSubmissionFailed.Code, svcErr.Code)
}

func (suite *MappingServiceTestSuite) multipartRequest(fileName, content string,
	fields map[string]string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		suite.Require().NoError(err)
		_, err = part.Write([]byte(content))
		suite.Require().NoError(err)
	}
	for k, v := range fields {
		suite.Require().NoError(writer.WriteField(k, v))
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/mapping/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (suite *MappingServiceTestSuite) TestHandleUpload() {
	suite.mockClient.On("UploadMapping", mock.Anything, mock.MatchedBy(func(r analytics.MappingUploadRequest) bool {
		return r.Name == "q1" && r.SourceProfile == "sap" && !r.Activate && len(r.Rules) == 1
	})).Return(json.RawMessage(`{}`), nil)

	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, suite.multipartRequest("rules.csv", validSheet,
		map[string]string{"name": "q1", "sourceProfile": "sap", "activate": "false"}))

	suite.Equal(http.StatusOK, rr.Code)
	var result UploadResult
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &result))
	suite.Equal(1, result.RulesSubmitted)
}

func (suite *MappingServiceTestSuite) TestHandleUploadWithoutFile() {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, suite.multipartRequest("", "", map[string]string{"name": "q1"}))

	suite.Equal(http.StatusBadRequest, rr.Code)
	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
	suite.Equal(ErrorInvalidUpload.Code, errResp.Code)
}

func (suite *MappingServiceTestSuite) TestHandleUploadNoValidRules() {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, suite.multipartRequest("rules.csv", "budget_article,budget_holder\nFuel,\n", nil))

	suite.Equal(http.StatusBadRequest, rr.Code)
	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
	suite.Equal(ErrorNoValidRules.Code, errResp.Code)
	suite.Contains(errResp.Description, "No valid rules found")
}
