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

// Package ledger provides manual adjustments and period summaries over the financial summary facts.
package ledger

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "LedgerService"

const (
	periodDateLayout = "2006-01-02"
	periodLayout     = "2006-01"
)

// LedgerServiceInterface defines the ledger operations.
type LedgerServiceInterface interface {
	CreateAdjustment(ctx context.Context, request AdjustmentRequest, userID string) (
		*Entry, *serviceerror.ServiceError)
	ListSummary(ctx context.Context, companyID, period string) (*Summary, *serviceerror.ServiceError)
}

// ledgerService is the default implementation of LedgerServiceInterface.
type ledgerService struct {
	store          ledgerStoreInterface
	defaultCompany string
	now            func() time.Time
}

// newLedgerService creates a new instance of ledgerService.
func newLedgerService(store ledgerStoreInterface, defaultCompany string) LedgerServiceInterface {
	return &ledgerService{
		store:          store,
		defaultCompany: defaultCompany,
		now:            time.Now,
	}
}

// CreateAdjustment records a manual adjustment as an actual amount with no budget.
func (s *ledgerService) CreateAdjustment(ctx context.Context, request AdjustmentRequest, userID string) (
	*Entry, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	accountCode := strings.TrimSpace(request.AccountCode)
	amountText := strings.TrimSpace(request.Amount)
	periodDate := strings.TrimSpace(request.PeriodDate)
	if accountCode == "" || amountText == "" || periodDate == "" {
		return nil, &ErrorMissingRequiredField
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInvalidAmount,
			"The amount "+strconv.Quote(amountText)+" is not a decimal number")
	}
	if _, err := time.Parse(periodDateLayout, periodDate); err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInvalidPeriod,
			"The period date "+strconv.Quote(periodDate)+" is not a YYYY-MM-DD date")
	}

	companyID := s.companyOrDefault(request.CompanyID)
	if companyID == "" {
		return nil, &ErrorMissingCompany
	}

	now := s.now()
	entry := Entry{
		ID:           AdjustmentIDPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		CompanyID:    companyID,
		AccountCode:  accountCode,
		CostCategory: strings.TrimSpace(request.CostCategory),
		ActualMonth:  amount,
		BudgetMonth:  decimal.Zero,
		PeriodDate:   periodDate,
		IsAdjustment: true,
		Status:       StatusAdjusted,
		CreatedAt:    now,
		CreatedBy:    userID,
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, ErrDuplicateEntry) {
			logger.Warn("Manual adjustment id already taken", log.String("entryId", entry.ID))
			return nil, &ErrorAdjustmentConflict
		}
		logger.Error("Failed to create manual adjustment", log.String(log.LoggerKeyCompanyID, companyID),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Info("Manual adjustment recorded", log.String(log.LoggerKeyCompanyID, companyID),
		log.String("entryId", entry.ID), log.String("accountCode", accountCode),
		log.String("amount", amount.String()))
	return &entry, nil
}

// ListSummary returns the entries of a month with their actual and budget totals.
func (s *ledgerService) ListSummary(ctx context.Context, companyID, period string) (
	*Summary, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	companyID = s.companyOrDefault(companyID)
	if companyID == "" {
		return nil, &ErrorMissingCompany
	}
	month, err := time.Parse(periodLayout, strings.TrimSpace(period))
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInvalidPeriod,
			"The period "+strconv.Quote(period)+" is not a YYYY-MM month")
	}

	from := month.Format(periodDateLayout)
	to := month.AddDate(0, 1, 0).Format(periodDateLayout)
	entries, err := s.store.ListEntries(ctx, companyID, from, to)
	if err != nil {
		logger.Error("Failed to list ledger entries", log.String(log.LoggerKeyCompanyID, companyID),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	summary := &Summary{
		CompanyID:   companyID,
		Period:      month.Format(periodLayout),
		Entries:     entries,
		TotalActual: decimal.Zero,
		TotalBudget: decimal.Zero,
	}
	for _, e := range entries {
		summary.TotalActual = summary.TotalActual.Add(e.ActualMonth)
		summary.TotalBudget = summary.TotalBudget.Add(e.BudgetMonth)
	}
	summary.Variance = summary.TotalActual.Sub(summary.TotalBudget)
	return summary, nil
}

func (s *ledgerService) companyOrDefault(companyID string) string {
	if c := strings.TrimSpace(companyID); c != "" {
		return c
	}
	return s.defaultCompany
}
