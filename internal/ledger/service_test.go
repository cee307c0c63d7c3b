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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockStore *ledgerStoreInterfaceMock
	service   *ledgerService
	now       time.Time
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockStore = &ledgerStoreInterfaceMock{}
	suite.now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	suite.service = &ledgerService{
		store:          suite.mockStore,
		defaultCompany: "default-co",
		now:            func() time.Time { return suite.now },
	}
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustment() {
	var stored Entry
	suite.mockStore.On("CreateEntry", mock.Anything, mock.AnythingOfType("ledger.Entry")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(Entry) }).
		Return(nil)

	entry, svcErr := suite.service.CreateAdjustment(context.Background(), AdjustmentRequest{
		CompanyID:   "c1",
		AccountCode: "6100",
		Amount:      "500.00",
		PeriodDate:  "2025-03-01",
	}, "user-1")

	suite.Require().Nil(svcErr)
	suite.Equal("MANUAL_ADJ_"+"1741944600000", entry.ID)
	suite.True(entry.ActualMonth.Equal(decimal.NewFromInt(500)))
	suite.True(entry.BudgetMonth.IsZero())
	suite.True(entry.IsAdjustment)
	suite.Equal(StatusAdjusted, entry.Status)
	suite.Equal("6100", entry.AccountCode)
	suite.Equal("c1", entry.CompanyID)
	suite.Equal("user-1", entry.CreatedBy)
	suite.True(entry.CreatedAt.Equal(suite.now))
	suite.Equal(*entry, stored)
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentDefaultsCompany() {
	suite.mockStore.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e Entry) bool {
		return e.CompanyID == "default-co"
	})).Return(nil)

	entry, svcErr := suite.service.CreateAdjustment(context.Background(), AdjustmentRequest{
		AccountCode: "6100", Amount: "-12.5", PeriodDate: "2025-03-01",
	}, "")
	suite.Require().Nil(svcErr)
	suite.True(entry.ActualMonth.Equal(decimal.RequireFromString("-12.5")))
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentValidation() {
	testCases := []struct {
		name    string
		request AdjustmentRequest
		code    string
	}{
		{"MissingAccount", AdjustmentRequest{Amount: "1", PeriodDate: "2025-03-01"},
			ErrorMissingRequiredField.Code},
		{"MissingAmount", AdjustmentRequest{AccountCode: "6100", PeriodDate: "2025-03-01"},
			ErrorMissingRequiredField.Code},
		{"BlankPeriod", AdjustmentRequest{AccountCode: "6100", Amount: "1", PeriodDate: "  "},
			ErrorMissingRequiredField.Code},
		{"BadAmount", AdjustmentRequest{AccountCode: "6100", Amount: "five", PeriodDate: "2025-03-01"},
			ErrorInvalidAmount.Code},
		{"BadPeriodDate", AdjustmentRequest{AccountCode: "6100", Amount: "1", PeriodDate: "03/01/2025"},
			ErrorInvalidPeriod.Code},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			entry, svcErr := suite.service.CreateAdjustment(context.Background(), tc.request, "")
			suite.Nil(entry)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.code, svcErr.Code)
		})
	}
	suite.mockStore.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentMissingCompany() {
	suite.service.defaultCompany = ""
	_, svcErr := suite.service.CreateAdjustment(context.Background(), AdjustmentRequest{
		AccountCode: "6100", Amount: "1", PeriodDate: "2025-03-01",
	}, "")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorMissingCompany.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentStoreError() {
	suite.mockStore.On("CreateEntry", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, svcErr := suite.service.CreateAdjustment(context.Background(), AdjustmentRequest{
		AccountCode: "6100", Amount: "1", PeriodDate: "2025-03-01",
	}, "")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentSameInstantConflict() {
	suite.mockStore.On("CreateEntry", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: MANUAL_ADJ_1741944600000", ErrDuplicateEntry))

	_, svcErr := suite.service.CreateAdjustment(context.Background(), AdjustmentRequest{
		AccountCode: "6100", Amount: "1", PeriodDate: "2025-03-01",
	}, "")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorAdjustmentConflict.Code, svcErr.Code)
	suite.Equal(serviceerror.ClientErrorType, svcErr.Type)
}

func (suite *LedgerServiceTestSuite) TestListSummary() {
	suite.mockStore.On("ListEntries", mock.Anything, "c1", "2025-12-01", "2026-01-01").Return([]Entry{
		{ID: "e1", ActualMonth: decimal.RequireFromString("1200.50"), BudgetMonth: decimal.NewFromInt(1000)},
		{ID: "e2", ActualMonth: decimal.NewFromInt(500), BudgetMonth: decimal.Zero, IsAdjustment: true},
	}, nil)

	summary, svcErr := suite.service.ListSummary(context.Background(), "c1", "2025-12")
	suite.Require().Nil(svcErr)
	suite.Equal("2025-12", summary.Period)
	suite.Len(summary.Entries, 2)
	suite.True(summary.TotalActual.Equal(decimal.RequireFromString("1700.50")))
	suite.True(summary.TotalBudget.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.Variance.Equal(decimal.RequireFromString("700.50")))
}

func (suite *LedgerServiceTestSuite) TestListSummaryInvalidPeriod() {
	_, svcErr := suite.service.ListSummary(context.Background(), "c1", "2025-13")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidPeriod.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestListSummaryStoreError() {
	suite.mockStore.On("ListEntries", mock.Anything, "default-co", "2025-03-01", "2025-04-01").
		Return(nil, errors.New("db down"))

	_, svcErr := suite.service.ListSummary(context.Background(), "", "2025-03")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}
