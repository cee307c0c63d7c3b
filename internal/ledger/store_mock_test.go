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

package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ledgerStoreInterfaceMock is a mock implementation of ledgerStoreInterface.
type ledgerStoreInterfaceMock struct {
	mock.Mock
}

func (m *ledgerStoreInterfaceMock) CreateEntry(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ledgerStoreInterfaceMock) ListEntries(ctx context.Context, companyID, fromDate, toDate string) (
	[]Entry, error) {
	args := m.Called(ctx, companyID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}
