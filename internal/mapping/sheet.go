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

package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/socar-georgia/finsight/internal/analytics"
)

// Column names recognized in the header row.
const (
	ColumnBudgetArticle = "budget_article"
	ColumnBudgetHolder  = "budget_holder"
	ColumnAccountCode   = "account_code"
	ColumnCostCategory  = "cost_category"
	ColumnDepartment    = "department"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither csv nor xlsx.
	ErrUnsupportedFormat = errors.New("unsupported mapping file format")
	// ErrEmptySheet is returned when the sheet has no header row.
	ErrEmptySheet = errors.New("mapping sheet is empty")
	// ErrMissingColumns is returned when a required column is absent from the header.
	ErrMissingColumns = errors.New("mapping sheet is missing required columns")
	// ErrNoRules is returned when no row carries both required values.
	ErrNoRules = errors.New("mapping sheet contains no valid rules")
)

// ParseSheet reads the rows of a csv or xlsx file, chosen by the file extension.
// Only the first worksheet of an xlsx workbook is read.
func ParseSheet(fileName string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func parseXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// RuleSet is the outcome of converting sheet rows into mapping rules.
type RuleSet struct {
	Rules   []analytics.MappingRule
	Skipped int
}

// BuildRules turns sheet rows into mapping rules. The first row is the header. Rows lacking a budget
// article or a budget holder are skipped.
func BuildRules(rows [][]string) (*RuleSet, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if _, seen := index[key]; !seen && key != "" {
			index[key] = i
		}
	}

	var missing []string
	for _, required := range []string{ColumnBudgetArticle, ColumnBudgetHolder} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	set := &RuleSet{}
	for _, row := range rows[1:] {
		rule := analytics.MappingRule{
			BudgetArticle: cell(row, ColumnBudgetArticle),
			BudgetHolder:  cell(row, ColumnBudgetHolder),
			AccountCode:   cell(row, ColumnAccountCode),
			CostCategory:  cell(row, ColumnCostCategory),
			Department:    cell(row, ColumnDepartment),
		}
		if rule.BudgetArticle == "" || rule.BudgetHolder == "" {
			set.Skipped++
			continue
		}
		set.Rules = append(set.Rules, rule)
	}

	if len(set.Rules) == 0 {
		return nil, ErrNoRules
	}
	return set, nil
}

// normalizeHeader maps "Budget Article" and " budget_article " to budget_article.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(strings.ReplaceAll(name, "-", " ")), "_")
}
