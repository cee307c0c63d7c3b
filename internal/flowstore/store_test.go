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

package flowstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/tests/mocks/databasemock"
)

type DocumentStoreTestSuite struct {
	suite.Suite
	mockDBProvider *databasemock.DBProviderInterfaceMock
	mockDBClient   *databasemock.DBClientInterfaceMock
	mockTx         *databasemock.TxInterfaceMock
	store          *documentStore
	flow           flowgraph.Flow
}

func TestDocumentStoreSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreTestSuite))
}

func (suite *DocumentStoreTestSuite) SetupTest() {
	suite.mockDBProvider = databasemock.NewDBProviderInterfaceMock(suite.T())
	suite.mockDBClient = databasemock.NewDBClientInterfaceMock(suite.T())
	suite.mockTx = databasemock.NewTxInterfaceMock(suite.T())
	suite.store = &documentStore{dbProvider: suite.mockDBProvider}

	suite.flow = flowgraph.Flow{
		CompanyID: "c1",
		FlowID:    "main",
		Nodes: []flowgraph.Node{
			flowgraph.NewNode("a", &flowgraph.DataPayload{BaseData: flowgraph.BaseData{Label: "ERP"}},
				flowgraph.Position{X: 1, Y: 2}),
		},
		UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedBy: "user-1",
	}
}

func (suite *DocumentStoreTestSuite) expectTx() {
	suite.mockDBProvider.On("GetDBClient", provider.FlowDB).Return(suite.mockDBClient, nil)
	suite.mockDBClient.On("BeginTx").Return(suite.mockTx, nil)
}

func (suite *DocumentStoreTestSuite) TestGetFlow() {
	suite.mockDBProvider.On("GetDBClient", provider.FlowDB).Return(suite.mockDBClient, nil)
	suite.mockDBClient.On("Query", QueryGetFlow.ID, "c1", "main").Return([]map[string]interface{}{{
		"company_id": "c1",
		"flow_id":    "main",
		"version":    int64(4),
		"nodes":      []byte(`[{"id":"a","type":"data","position":{"x":1,"y":2},"data":{"label":"ERP"}}]`),
		"edges":      "[]",
		"updated_at": "2025-03-01T10:00:00Z",
		"updated_by": "user-1",
	}}, nil)

	flow, err := suite.store.GetFlow(context.Background(), "c1", "main")
	suite.Require().NoError(err)
	suite.Equal(int64(4), flow.Version)
	suite.Len(flow.Nodes, 1)
	suite.Equal("ERP", flow.Nodes[0].Base().Label)
	suite.Empty(flow.Edges)
	suite.True(flow.UpdatedAt.Equal(suite.flow.UpdatedAt))
}

func (suite *DocumentStoreTestSuite) TestGetFlowNotFound() {
	suite.mockDBProvider.On("GetDBClient", provider.FlowDB).Return(suite.mockDBClient, nil)
	suite.mockDBClient.On("Query", QueryGetFlow.ID, "c1", "main").Return([]map[string]interface{}{}, nil)

	_, err := suite.store.GetFlow(context.Background(), "c1", "main")
	suite.ErrorIs(err, ErrFlowNotFound)
}

func (suite *DocumentStoreTestSuite) TestGetFlowClientError() {
	suite.mockDBProvider.On("GetDBClient", provider.FlowDB).Return(nil, errors.New("db down"))

	_, err := suite.store.GetFlow(context.Background(), "c1", "main")
	suite.ErrorContains(err, "db down")
}

func (suite *DocumentStoreTestSuite) TestSaveFlowInsertsFirstVersion() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").Return([]map[string]interface{}{}, nil)
	suite.mockTx.On("Exec", QueryInsertFlow.ID, "c1", "main", int64(1), mock.AnythingOfType("string"),
		"[]", "2025-03-01T10:00:00Z", "user-1").Return(databasemock.SQLResult{Affected: 1}, nil)
	suite.mockTx.On("Commit").Return(nil)

	version, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 0, true)
	suite.NoError(err)
	suite.False(stale)
	suite.Equal(int64(1), version)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowUpdatesExisting() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(3)}}, nil)
	suite.mockTx.On("Exec", QueryUpdateFlow.ID, int64(4), mock.AnythingOfType("string"), "[]",
		"2025-03-01T10:00:00Z", "user-1", "c1", "main", int64(3)).
		Return(databasemock.SQLResult{Affected: 1}, nil)
	suite.mockTx.On("Commit").Return(nil)

	version, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 3, true)
	suite.NoError(err)
	suite.False(stale)
	suite.Equal(int64(4), version)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowStaleRejected() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(5)}}, nil)
	suite.mockTx.On("Rollback").Return(nil)

	_, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 3, true)
	suite.ErrorIs(err, ErrVersionConflict)
	suite.True(stale)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowStaleOverwritten() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(5)}}, nil)
	suite.mockTx.On("Exec", QueryUpdateFlow.ID, int64(6), mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, "c1", "main", int64(5)).Return(databasemock.SQLResult{Affected: 1}, nil)
	suite.mockTx.On("Commit").Return(nil)

	version, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 3, false)
	suite.NoError(err)
	suite.True(stale)
	suite.Equal(int64(6), version)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowConcurrentUpdateOverwritten() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(2)}}, nil).Once()
	suite.mockTx.On("Exec", QueryUpdateFlow.ID, int64(3), mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, "c1", "main", int64(2)).Return(databasemock.SQLResult{Affected: 0}, nil)
	suite.mockTx.On("Exec", QueryOverwriteFlow.ID, mock.Anything, mock.Anything, mock.Anything, "user-1",
		"c1", "main").Return(databasemock.SQLResult{Affected: 1}, nil)
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(4)}}, nil).Once()
	suite.mockTx.On("Commit").Return(nil)

	version, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 2, false)
	suite.Require().NoError(err)
	suite.Equal(int64(4), version)
	suite.True(stale)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowConcurrentUpdateRejected() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").
		Return([]map[string]interface{}{{"version": int64(2)}}, nil)
	suite.mockTx.On("Exec", QueryUpdateFlow.ID, int64(3), mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, "c1", "main", int64(2)).Return(databasemock.SQLResult{Affected: 0}, nil)
	suite.mockTx.On("Rollback").Return(nil)

	_, stale, err := suite.store.SaveFlow(context.Background(), suite.flow, 2, true)
	suite.ErrorIs(err, ErrVersionConflict)
	suite.True(stale)
}

func (suite *DocumentStoreTestSuite) TestSaveFlowExecErrorRollsBack() {
	suite.expectTx()
	suite.mockTx.On("Query", QueryGetFlowVersion.ID, "c1", "main").Return([]map[string]interface{}{}, nil)
	suite.mockTx.On("Exec", QueryInsertFlow.ID, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("permission denied"))
	suite.mockTx.On("Rollback").Return(errors.New("rollback failed"))

	_, _, err := suite.store.SaveFlow(context.Background(), suite.flow, 0, false)
	suite.ErrorContains(err, "permission denied")
	suite.ErrorContains(err, "rollback failed")
}
