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
	"net/http"
	"time"

	httpservice "github.com/socar-georgia/finsight/internal/system/http"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize creates the analytics client and registers the proxy routes.
func Initialize(mux *http.ServeMux, baseURL string, timeout time.Duration) AnalyticsClientInterface {
	client := NewClient(baseURL, httpservice.NewHTTPClientWithTimeout(timeout))
	registerRoutes(mux, newAnalyticsHandler(client))
	return client
}

// registerRoutes registers the routes for analytics proxy operations.
func registerRoutes(mux *http.ServeMux, analyticsHandler *analyticsHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /analytics/truth", analyticsHandler.HandleTruthPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /analytics/truth", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("POST /analytics/query", analyticsHandler.HandleQueryPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /analytics/query", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("POST /analytics/transactions",
		analyticsHandler.HandleTransactionPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /analytics/transactions", middleware.NoContent, opts))
}
