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

package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/system/config"
	"github.com/socar-georgia/finsight/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) SetupTest() {
	config.ResetServerRuntime()
	_ = config.InitializeServerRuntime(suite.T().TempDir(), &config.Config{
		Database: config.DatabaseConfig{
			Flow:   config.DataSource{Type: "sqlite", Name: "flow", Path: "flow.db"},
			Ledger: config.DataSource{Type: "oracle", Name: "ledger"},
		},
	})
}

func (suite *DBProviderTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func (suite *DBProviderTestSuite) TestSQLiteClientRoundTrip() {
	p := &DBProvider{}
	defer func() { suite.NoError(p.Close()) }()

	c, err := p.GetDBClient(FlowDB)
	suite.Require().NoError(err)

	ctx := context.Background()
	_, err = c.Execute(ctx, model.DBQuery{ID: "create", Query: "CREATE TABLE T (ID TEXT PRIMARY KEY, N INTEGER)"})
	suite.Require().NoError(err)
	affected, err := c.Execute(ctx, model.DBQuery{ID: "insert", Query: "INSERT INTO T (ID, N) VALUES ($1, $2)"},
		"a", 7)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	rows, err := c.Query(ctx, model.DBQuery{ID: "select", Query: "SELECT ID, N FROM T"})
	suite.Require().NoError(err)
	suite.Len(rows, 1)
	suite.Equal("a", rows[0]["id"])
	suite.Equal(int64(7), rows[0]["n"])

	again, err := p.GetDBClient(FlowDB)
	suite.Require().NoError(err)
	suite.Same(c, again)
}

func (suite *DBProviderTestSuite) TestUnsupportedDataSourceType() {
	p := &DBProvider{}
	_, err := p.GetDBClient(LedgerDB)
	suite.ErrorContains(err, "unsupported data source type")
}

func (suite *DBProviderTestSuite) TestUnknownDatabaseName() {
	p := &DBProvider{}
	_, err := p.GetDBClient("identity")
	suite.ErrorContains(err, "unsupported database name")
}
