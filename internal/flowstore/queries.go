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

package flowstore

import dbmodel "github.com/socar-georgia/finsight/internal/system/database/model"

var (
	// QueryGetFlow retrieves a flow document.
	QueryGetFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-01",
		Query: "SELECT COMPANY_ID, FLOW_ID, VERSION, NODES, EDGES, UPDATED_AT, UPDATED_BY FROM FLOW " +
			"WHERE COMPANY_ID = $1 AND FLOW_ID = $2",
	}

	// QueryGetFlowVersion retrieves the current version of a flow document.
	QueryGetFlowVersion = dbmodel.DBQuery{
		ID:    "FLQ-FLOW_MGT-02",
		Query: "SELECT VERSION FROM FLOW WHERE COMPANY_ID = $1 AND FLOW_ID = $2",
	}

	// QueryInsertFlow creates a flow document.
	QueryInsertFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-03",
		Query: "INSERT INTO FLOW (COMPANY_ID, FLOW_ID, VERSION, NODES, EDGES, UPDATED_AT, UPDATED_BY) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}

	// QueryUpdateFlow overwrites a flow document if it is still at the read version.
	QueryUpdateFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-04",
		Query: "UPDATE FLOW SET VERSION = $1, NODES = $2, EDGES = $3, UPDATED_AT = $4, UPDATED_BY = $5 " +
			"WHERE COMPANY_ID = $6 AND FLOW_ID = $7 AND VERSION = $8",
	}

	// QueryOverwriteFlow overwrites a flow document whatever its current version.
	QueryOverwriteFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-05",
		Query: "UPDATE FLOW SET VERSION = VERSION + 1, NODES = $1, EDGES = $2, UPDATED_AT = $3, UPDATED_BY = $4 " +
			"WHERE COMPANY_ID = $5 AND FLOW_ID = $6",
	}
)
