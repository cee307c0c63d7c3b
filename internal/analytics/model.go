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

package analytics

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Transaction actions understood by the process-transaction endpoint.
const (
	ActionForecast = "forecast"
	ActionSimulate = "simulate"
	ActionReport   = "report"
	ActionSlides   = "slides"
	ActionMetrics  = "metrics"
)

var supportedActions = map[string]bool{
	ActionForecast: true,
	ActionSimulate: true,
	ActionReport:   true,
	ActionSlides:   true,
	ActionMetrics:  true,
}

// TruthRequest asks the truth engine for the reconciled variance of a period.
type TruthRequest struct {
	Entity   string `json:"entity"`
	Period   string `json:"period"`
	Currency string `json:"currency"`
}

// MetricVariance compares a metric with the previous period.
type MetricVariance struct {
	Current         decimal.Decimal `json:"current"`
	Previous        decimal.Decimal `json:"previous"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variance_percent"`
}

// TruthResponse holds the variance per metric name.
type TruthResponse struct {
	Variance map[string]MetricVariance `json:"variance"`
}

// QueryRequest is a natural language question for the AI query endpoint.
type QueryRequest struct {
	Query   string                 `json:"query"`
	UserID  string                 `json:"userId"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// QueryResponse is the answer of the AI query endpoint.
type QueryResponse struct {
	Answer         string          `json:"answer"`
	UIComponent    string          `json:"ui_component,omitempty"`
	UIData         json.RawMessage `json:"ui_data,omitempty"`
	ThoughtProcess string          `json:"thought_process,omitempty"`
}

// IngestRequest points the backend at an uploaded blob.
type IngestRequest struct {
	StoragePath string                 `json:"storagePath"`
	Bucket      string                 `json:"bucket"`
	Context     map[string]interface{} `json:"context,omitempty"`
}

// IngestResponse summarizes an ingestion run.
type IngestResponse struct {
	RowsProcessed     int64           `json:"rows_processed"`
	TotalValueGEL     decimal.Decimal `json:"total_value_gel"`
	ValidationSummary json.RawMessage `json:"validation_summary,omitempty"`
}

// MappingRule maps a budget article and holder onto ledger dimensions.
type MappingRule struct {
	BudgetArticle string `json:"budget_article"`
	BudgetHolder  string `json:"budget_holder"`
	AccountCode   string `json:"account_code,omitempty"`
	CostCategory  string `json:"cost_category,omitempty"`
	Department    string `json:"department,omitempty"`
}

// MappingUploadRequest submits a rule set.
type MappingUploadRequest struct {
	Name          string        `json:"name"`
	SourceProfile string        `json:"source_profile"`
	Rules         []MappingRule `json:"rules"`
	Activate      bool          `json:"activate"`
}
