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

package healthcheck

import (
	"net/http"

	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize registers the liveness and readiness routes. redis may be nil.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	redis Pinger) HealthCheckServiceInterface {
	service := newHealthCheckService(dbProvider, redis)
	registerRoutes(mux, &healthCheckHandler{service: service})
	return service
}

// registerRoutes registers the routes for health checks.
func registerRoutes(mux *http.ServeMux, handler *healthCheckHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /health/liveness", handler.HandleLivenessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/liveness", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness", handler.HandleReadinessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/readiness", middleware.NoContent, opts))
}
