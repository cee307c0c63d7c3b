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

package appcontext

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socar-georgia/finsight/internal/system/broker"
	"github.com/socar-georgia/finsight/internal/system/config"
	"github.com/socar-georgia/finsight/internal/system/middleware"
)

// Initialize initializes the application context service and registers its routes. Contexts are
// kept in Redis when client is not nil and in memory otherwise.
func Initialize(mux *http.ServeMux, client *redis.Client, b broker.BrokerInterface,
	cfg config.Config) AppContextServiceInterface {
	var store appContextStoreInterface
	if client != nil {
		store = newRedisStore(client, cfg.Redis.ChannelPrefix, time.Duration(cfg.Redis.AppContextTTL)*time.Second)
	} else {
		store = newMemoryStore()
	}

	appContextService := newAppContextService(store, b, AppContext{
		CompanyID:  cfg.App.CompanyID,
		Period:     cfg.App.Period,
		Department: cfg.App.Department,
		Theme:      cfg.App.Theme,
		Language:   cfg.App.Language,
	})
	registerRoutes(mux, newAppContextHandler(appContextService))
	return appContextService
}

// registerRoutes registers the routes for application context operations.
func registerRoutes(mux *http.ServeMux, appContextHandler *appContextHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, PATCH",
		AllowedHeaders:   "Content-Type, Authorization, X-User-ID",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /app-context", appContextHandler.HandleAppContextGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PATCH /app-context", appContextHandler.HandleAppContextPatchRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /app-context", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("GET /app-context/events",
		appContextHandler.HandleAppContextEventsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /app-context/events", middleware.NoContent, opts))
}
