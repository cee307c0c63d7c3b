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
	"net/http"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize initializes the mapping service and registers its routes.
func Initialize(mux *http.ServeMux, client analytics.AnalyticsClientInterface) MappingServiceInterface {
	mappingService := newMappingService(client)
	registerRoutes(mux, newMappingHandler(mappingService))
	return mappingService
}

// registerRoutes registers the routes for mapping upload operations.
func registerRoutes(mux *http.ServeMux, mappingHandler *mappingHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /mapping/upload", mappingHandler.HandleUploadPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /mapping/upload", middleware.NoContent, opts))
}
