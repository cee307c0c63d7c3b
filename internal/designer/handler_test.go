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

package designer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/internal/system/error/apierror"
	"github.com/socar-georgia/finsight/tests/mocks/flowstoremock"
)

type DesignerHandlerTestSuite struct {
	suite.Suite
	store   *flowstoremock.FlowStoreInterfaceMock
	service *designerService
	mux     *http.ServeMux
}

func TestDesignerHandlerSuite(t *testing.T) {
	suite.Run(t, new(DesignerHandlerTestSuite))
}

func (suite *DesignerHandlerTestSuite) SetupTest() {
	suite.store = flowstoremock.NewFlowStoreInterfaceMock(suite.T())
	suite.service = newDesignerService(suite.store, flowstore.PolicyLastWriteWins, time.Minute)
	suite.service.newID = func() string { return "s1" }
	suite.mux = http.NewServeMux()
	registerRoutes(suite.mux, newDesignerHandler(suite.service))
}

func (suite *DesignerHandlerTestSuite) TearDownTest() {
	suite.service.Stop()
}

func (suite *DesignerHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *DesignerHandlerTestSuite) errorCode(rr *httptest.ResponseRecorder) string {
	var resp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Code
}

func (suite *DesignerHandlerTestSuite) TestSessionLifecycle() {
	sub := flowstoremock.NewSubscription()
	suite.store.On("Load", mock.Anything, "c1", "main").Return(sub, nil).Once()

	rr := suite.do(http.MethodPost, "/designer/sessions", `{"companyId":"c1","flowId":"main"}`)
	suite.Equal(http.StatusCreated, rr.Code)
	var created SessionResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &created))
	suite.Equal("s1", created.ID)
	suite.False(created.View.Loaded)

	nodes, edges := flowgraph.DefaultGraph()
	sub.C <- flowstore.Snapshot{Nodes: nodes, Edges: edges, Fallback: true}
	suite.Require().Eventually(func() bool {
		resp, _ := suite.service.GetSession("s1")
		return resp.View.Loaded
	}, time.Second, 5*time.Millisecond)

	rr = suite.do(http.MethodPost, "/designer/sessions/s1/selection", `{"kind":"node","id":"truth-engine"}`)
	suite.Equal(http.StatusOK, rr.Code)

	rr = suite.do(http.MethodPatch, "/designer/sessions/s1/inspector",
		`{"id":"truth-engine","data":{"locked":true}}`)
	suite.Equal(http.StatusOK, rr.Code)
	var patched SessionResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &patched))
	suite.Equal(true, patched.Inspector.Data["locked"])
	suite.Equal("Truth Engine", patched.Inspector.Data["label"])

	rr = suite.do(http.MethodPatch, "/designer/sessions/s1/inspector", `{"data":{"bogus":1}}`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidChange.Code, suite.errorCode(rr))

	rr = suite.do(http.MethodPut, "/designer/sessions/s1/active-path", `{"nodeIds":["src-erp"]}`)
	suite.Equal(http.StatusOK, rr.Code)

	rr = suite.do(http.MethodDelete, "/designer/sessions/s1/inspector", "")
	suite.Equal(http.StatusOK, rr.Code)

	rr = suite.do(http.MethodDelete, "/designer/sessions/s1", "")
	suite.Equal(http.StatusNoContent, rr.Code)

	rr = suite.do(http.MethodGet, "/designer/sessions/s1", "")
	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Equal(ErrorSessionNotFound.Code, suite.errorCode(rr))
}

func (suite *DesignerHandlerTestSuite) TestInvalidBody() {
	rr := suite.do(http.MethodPost, "/designer/sessions", `{"companyId":`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidRequestFormat.Code, suite.errorCode(rr))

	rr = suite.do(http.MethodPost, "/designer/sessions", `{"companyId":"c1"}`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorMissingFlowReference.Code, suite.errorCode(rr))
}

func (suite *DesignerHandlerTestSuite) TestFlushUnknownSession() {
	rr := suite.do(http.MethodPost, "/designer/sessions/nope/flush", "")
	suite.Equal(http.StatusNotFound, rr.Code)
}

func (suite *DesignerHandlerTestSuite) TestRegistry() {
	rr := suite.do(http.MethodGet, "/designer/registry", "")
	suite.Equal(http.StatusOK, rr.Code)

	var presentations []flowgraph.Presentation
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &presentations))
	suite.Len(presentations, len(flowgraph.Kinds()))
	suite.Equal(flowgraph.KindData, presentations[0].Kind)
}

func (suite *DesignerHandlerTestSuite) TestPreflight() {
	rr := suite.do(http.MethodOptions, "/designer/sessions/s1/inspector", "")
	suite.Equal(http.StatusNoContent, rr.Code)
}
