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
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	dbmodel "github.com/socar-georgia/finsight/internal/system/database/model"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
)

// ErrDuplicateEntry is returned when an entry with the same id already exists.
var ErrDuplicateEntry = errors.New("ledger entry already exists")

// pgUniqueViolation is the postgres SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

// ledgerStoreInterface defines the interface for ledger store operations.
type ledgerStoreInterface interface {
	CreateEntry(ctx context.Context, entry Entry) error
	ListEntries(ctx context.Context, companyID, fromDate, toDate string) ([]Entry, error)
}

// ledgerStore is the default implementation of ledgerStoreInterface.
type ledgerStore struct {
	dbProvider provider.DBProviderInterface
}

// newLedgerStore creates a new instance of ledgerStore.
func newLedgerStore() ledgerStoreInterface {
	return &ledgerStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateEntry inserts a ledger entry.
func (s *ledgerStore) CreateEntry(ctx context.Context, entry Entry) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.LedgerDB)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(ctx, QueryInsertEntry, entry.ID, entry.CompanyID, entry.AccountCode,
		entry.CostCategory, entry.ActualMonth.String(), entry.BudgetMonth.String(), entry.PeriodDate,
		entry.IsAdjustment, entry.Status, entry.CreatedAt.UTC().Format(time.RFC3339Nano), entry.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, entry.ID)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique or primary key violation from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}

// ListEntries returns the entries with fromDate <= period_date < toDate.
func (s *ledgerStore) ListEntries(ctx context.Context, companyID, fromDate, toDate string) ([]Entry, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.LedgerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryListEntriesByPeriod, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, row := range results {
		entry, err := buildEntryFromResultRow(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// buildEntryFromResultRow constructs an entry from a database result row.
func buildEntryFromResultRow(row map[string]interface{}) (Entry, error) {
	actual, err := parseDecimal(row["actual_month"])
	if err != nil {
		return Entry{}, fmt.Errorf("failed to parse actual_month: %w", err)
	}
	budget, err := parseDecimal(row["budget_month"])
	if err != nil {
		return Entry{}, fmt.Errorf("failed to parse budget_month: %w", err)
	}
	createdAt, err := dbmodel.GetTime(row, "created_at")
	if err != nil {
		return Entry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return Entry{
		ID:           dbmodel.GetString(row, "entry_id"),
		CompanyID:    dbmodel.GetString(row, "company_id"),
		AccountCode:  dbmodel.GetString(row, "account_code"),
		CostCategory: dbmodel.GetString(row, "cost_category"),
		ActualMonth:  actual,
		BudgetMonth:  budget,
		PeriodDate:   dbmodel.GetString(row, "period_date"),
		IsAdjustment: dbmodel.GetBool(row, "is_adjustment"),
		Status:       dbmodel.GetString(row, "status"),
		CreatedAt:    createdAt,
		CreatedBy:    dbmodel.GetString(row, "created_by"),
	}, nil
}

// parseDecimal reads NUMERIC values, which drivers return as text, integers or floats.
func parseDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case []byte:
		return decimal.NewFromString(string(n))
	case string:
		return decimal.NewFromString(n)
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromString(strconv.FormatFloat(n, 'f', -1, 64))
	default:
		return decimal.Zero, fmt.Errorf("unexpected numeric type %T", v)
	}
}
