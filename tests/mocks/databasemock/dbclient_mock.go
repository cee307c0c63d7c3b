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
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/socar-georgia/finsight/internal/system/database/model"
)

// DBClientInterfaceMock is a mock implementation of client.DBClientInterface.
// Expectations are matched on the query ID followed by the query arguments.
type DBClientInterfaceMock struct {
	mock.Mock
}

// NewDBClientInterfaceMock creates a mock whose expectations are asserted on test cleanup.
func NewDBClientInterfaceMock(t *testing.T) *DBClientInterfaceMock {
	m := &DBClientInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Query mocks the Query method.
func (m *DBClientInterfaceMock) Query(_ context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	callArgs := append([]interface{}{query.ID}, args...)
	ret := m.Called(callArgs...)

	var rows []map[string]interface{}
	if v := ret.Get(0); v != nil {
		rows = v.([]map[string]interface{})
	}
	return rows, ret.Error(1)
}

// Execute mocks the Execute method.
func (m *DBClientInterfaceMock) Execute(_ context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	callArgs := append([]interface{}{query.ID}, args...)
	ret := m.Called(callArgs...)
	return ret.Get(0).(int64), ret.Error(1)
}

// BeginTx mocks the BeginTx method.
func (m *DBClientInterfaceMock) BeginTx(_ context.Context) (model.TxInterface, error) {
	ret := m.Called()

	var tx model.TxInterface
	if v := ret.Get(0); v != nil {
		tx = v.(model.TxInterface)
	}
	return tx, ret.Error(1)
}

// Close mocks the Close method.
func (m *DBClientInterfaceMock) Close() error {
	return m.Called().Error(0)
}
