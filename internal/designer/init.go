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

package designer

import (
	"net/http"
	"time"

	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize initializes the designer service and registers its routes.
func Initialize(mux *http.ServeMux, store flowstore.FlowStoreInterface, policy flowstore.ConflictPolicy,
	idleTimeout time.Duration) DesignerServiceInterface {
	designerService := newDesignerService(store, policy, idleTimeout)
	designerHandler := newDesignerHandler(designerService)
	registerRoutes(mux, designerHandler)
	return designerService
}

// registerRoutes registers the routes for designer session operations.
func registerRoutes(mux *http.ServeMux, designerHandler *designerHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /designer/sessions", designerHandler.HandleSessionPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions", middleware.NoContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /designer/sessions/{id}", designerHandler.HandleSessionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /designer/sessions/{id}",
		designerHandler.HandleSessionDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}", middleware.NoContent, opts2))

	mux.HandleFunc(middleware.WithCORS("POST /designer/sessions/{id}/changes",
		designerHandler.HandleChangesPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}/changes", middleware.NoContent, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /designer/sessions/{id}/selection",
		designerHandler.HandleSelectionPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}/selection", middleware.NoContent, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /designer/sessions/{id}/flush",
		designerHandler.HandleFlushPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}/flush", middleware.NoContent, opts1))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "PATCH, DELETE",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PATCH /designer/sessions/{id}/inspector",
		designerHandler.HandleInspectorPatchRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("DELETE /designer/sessions/{id}/inspector",
		designerHandler.HandleInspectorDeleteRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}/inspector", middleware.NoContent, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /designer/sessions/{id}/active-path",
		designerHandler.HandleActivePathPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/sessions/{id}/active-path", middleware.NoContent, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /designer/registry", designerHandler.HandleRegistryGetRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /designer/registry", middleware.NoContent, opts5))
}
