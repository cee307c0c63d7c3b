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

package ingest

import (
	"net/http"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize initializes the ingest service and registers its routes.
func Initialize(mux *http.ServeMux, blobs BlobStoreInterface, client analytics.AnalyticsClientInterface,
	bucket string) IngestServiceInterface {
	ingestService := newIngestService(blobs, client, bucket)
	registerRoutes(mux, newIngestHandler(ingestService))
	return ingestService
}

// registerRoutes registers the routes for ingestion operations.
func registerRoutes(mux *http.ServeMux, ingestHandler *ingestHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /ingest", ingestHandler.HandleIngestPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /ingest", middleware.NoContent, opts))
}
