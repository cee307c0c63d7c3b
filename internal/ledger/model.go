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
	"time"

	"github.com/shopspring/decimal"
)

// Status values of ledger entries.
const (
	StatusAdjusted = "ADJUSTED"
)

// AdjustmentIDPrefix prefixes the generated id of manual adjustments.
const AdjustmentIDPrefix = "MANUAL_ADJ_"

// AdjustmentRequest is the manual adjustment form.
type AdjustmentRequest struct {
	CompanyID    string `json:"companyId"`
	AccountCode  string `json:"accountCode"`
	CostCategory string `json:"costCategory"`
	Amount       string `json:"amount"`
	PeriodDate   string `json:"periodDate"`
}

// Entry is a row of the financial summary fact table.
type Entry struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	AccountCode  string          `json:"account_code"`
	CostCategory string          `json:"cost_category"`
	ActualMonth  decimal.Decimal `json:"actual_month"`
	BudgetMonth  decimal.Decimal `json:"budget_month"`
	PeriodDate   string          `json:"period_date"`
	IsAdjustment bool            `json:"is_adjustment"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// Summary lists the entries of one period with their totals.
type Summary struct {
	CompanyID   string          `json:"companyId"`
	Period      string          `json:"period"`
	Entries     []Entry         `json:"entries"`
	TotalActual decimal.Decimal `json:"totalActual"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	Variance    decimal.Decimal `json:"variance"`
}
