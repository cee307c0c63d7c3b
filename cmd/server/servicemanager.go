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

package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socar-georgia/finsight/internal/analytics"
	"github.com/socar-georgia/finsight/internal/appcontext"
	"github.com/socar-georgia/finsight/internal/designer"
	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/internal/ingest"
	"github.com/socar-georgia/finsight/internal/ledger"
	"github.com/socar-georgia/finsight/internal/mapping"
	"github.com/socar-georgia/finsight/internal/system/broker"
	"github.com/socar-georgia/finsight/internal/system/config"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/internal/system/healthcheck"
	"github.com/socar-georgia/finsight/internal/system/log"
	"github.com/socar-georgia/finsight/internal/system/redisclient"
)

// registeredServices holds the services that need teardown on shutdown.
type registeredServices struct {
	broker   broker.BrokerInterface
	designer designer.DesignerServiceInterface
}

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(ctx context.Context, logger *log.Logger, mux *http.ServeMux, cfg *config.Config,
	serverHome string) *registeredServices {
	redisClient, err := redisclient.GetClient()
	if err != nil {
		logger.Fatal("Failed to connect to redis", log.Error(err))
	}

	var changeBroker broker.BrokerInterface
	var redisPinger healthcheck.Pinger
	if redisClient != nil {
		changeBroker = broker.NewRedisBroker(redisClient, cfg.Redis.ChannelPrefix)
		redisPinger = pingerOf(redisClient)
	} else {
		changeBroker = broker.NewInMemoryBroker()
	}

	policy := flowstore.ParseConflictPolicy(cfg.Designer.ConflictPolicy)
	store := flowstore.NewFlowStore(changeBroker, cfg.Designer.FallbackWait(), policy)
	designerService := designer.Initialize(mux, store, policy, cfg.Designer.IdleTimeout())
	designerService.Start(ctx)

	_ = ledger.Initialize(mux, cfg.App.CompanyID)

	analyticsClient := analytics.Initialize(mux, cfg.Analytics.BaseURL,
		time.Duration(cfg.Analytics.Timeout)*time.Second)
	_ = mapping.Initialize(mux, analyticsClient)

	blobRoot := cfg.Ingestion.BlobRoot
	if !filepath.IsAbs(blobRoot) {
		blobRoot = filepath.Join(serverHome, blobRoot)
	}
	_ = ingest.Initialize(mux, ingest.NewFSBlobStore(blobRoot), analyticsClient, cfg.Ingestion.Bucket)

	_ = appcontext.Initialize(mux, redisClient, changeBroker, *cfg)

	_ = healthcheck.Initialize(mux, provider.GetDBProvider(), redisPinger)

	logger.Info("Services registered", log.String("conflictPolicy", string(policy)),
		log.Bool("redis", redisClient != nil))
	return &registeredServices{
		broker:   changeBroker,
		designer: designerService,
	}
}

// pingerOf adapts the redis client to the readiness check.
func pingerOf(client *redis.Client) healthcheck.Pinger {
	return healthcheck.PingerFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
