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

package databasemock

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/socar-georgia/finsight/internal/system/database/model"
)

// TxInterfaceMock is a mock implementation of model.TxInterface.
// Expectations are matched on the query ID followed by the query arguments.
type TxInterfaceMock struct {
	mock.Mock
}

// NewTxInterfaceMock creates a mock whose expectations are asserted on test cleanup.
func NewTxInterfaceMock(t *testing.T) *TxInterfaceMock {
	m := &TxInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Commit mocks the Commit method.
func (m *TxInterfaceMock) Commit() error {
	return m.Called().Error(0)
}

// Rollback mocks the Rollback method.
func (m *TxInterfaceMock) Rollback() error {
	return m.Called().Error(0)
}

// Query mocks the Query method.
func (m *TxInterfaceMock) Query(query model.DBQuery, args ...any) ([]map[string]interface{}, error) {
	callArgs := append([]interface{}{query.ID}, args...)
	ret := m.Called(callArgs...)

	var rows []map[string]interface{}
	if v := ret.Get(0); v != nil {
		rows = v.([]map[string]interface{})
	}
	return rows, ret.Error(1)
}

// Exec mocks the Exec method.
func (m *TxInterfaceMock) Exec(query model.DBQuery, args ...any) (sql.Result, error) {
	callArgs := append([]interface{}{query.ID}, args...)
	ret := m.Called(callArgs...)

	var res sql.Result
	if v := ret.Get(0); v != nil {
		res = v.(sql.Result)
	}
	return res, ret.Error(1)
}

// SQLResult is a fixed sql.Result.
type SQLResult struct {
	LastID   int64
	Affected int64
}

// LastInsertId returns the configured id.
func (r SQLResult) LastInsertId() (int64, error) {
	return r.LastID, nil
}

// RowsAffected returns the configured row count.
func (r SQLResult) RowsAffected() (int64, error) {
	return r.Affected, nil
}
