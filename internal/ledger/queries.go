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

import dbmodel "github.com/socar-georgia/finsight/internal/system/database/model"

var (
	// QueryInsertEntry creates a financial summary entry.
	QueryInsertEntry = dbmodel.DBQuery{
		ID: "LGQ-LEDGER_MGT-01",
		Query: "INSERT INTO FACT_FINANCIAL_SUMMARY (ENTRY_ID, COMPANY_ID, ACCOUNT_CODE, COST_CATEGORY, " +
			"ACTUAL_MONTH, BUDGET_MONTH, PERIOD_DATE, IS_ADJUSTMENT, STATUS, CREATED_AT, CREATED_BY) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
	}

	// QueryListEntriesByPeriod lists the entries of a company between two period dates.
	QueryListEntriesByPeriod = dbmodel.DBQuery{
		ID: "LGQ-LEDGER_MGT-02",
		Query: "SELECT ENTRY_ID, COMPANY_ID, ACCOUNT_CODE, COST_CATEGORY, ACTUAL_MONTH, BUDGET_MONTH, " +
			"PERIOD_DATE, IS_ADJUSTMENT, STATUS, CREATED_AT, CREATED_BY FROM FACT_FINANCIAL_SUMMARY " +
			"WHERE COMPANY_ID = $1 AND PERIOD_DATE >= $2 AND PERIOD_DATE < $3 ORDER BY ACCOUNT_CODE, ENTRY_ID",
	}
)
