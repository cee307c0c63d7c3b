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
	"net/http"

	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize initializes the ledger service and registers its routes.
func Initialize(mux *http.ServeMux, defaultCompany string) LedgerServiceInterface {
	ledgerService := newLedgerService(newLedgerStore(), defaultCompany)
	ledgerHandler := newLedgerHandler(ledgerService)
	registerRoutes(mux, ledgerHandler)
	return ledgerService
}

// registerRoutes registers the routes for ledger operations.
func registerRoutes(mux *http.ServeMux, ledgerHandler *ledgerHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /ledger/adjustments", ledgerHandler.HandleAdjustmentPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /ledger/adjustments", middleware.NoContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /ledger/summary", ledgerHandler.HandleSummaryGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /ledger/summary", middleware.NoContent, opts2))
}
