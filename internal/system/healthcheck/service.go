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

// Package healthcheck reports liveness and the readiness of the server's backing stores.
package healthcheck

import (
	"context"
	"time"

	dbmodel "github.com/socar-georgia/finsight/internal/system/database/model"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const checkTimeout = 3 * time.Second

var queryFlowDBTable = dbmodel.DBQuery{
	ID:    "HLC-00001",
	Query: "SELECT COMPANY_ID FROM FLOW WHERE 1 = 0",
}

var queryLedgerDBTable = dbmodel.DBQuery{
	ID:    "HLC-00002",
	Query: "SELECT ENTRY_ID FROM FACT_FINANCIAL_SUMMARY WHERE 1 = 0",
}

// Pinger is satisfied by the Redis client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

// Ping calls f.
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) ServerStatus
}

// healthCheckService is the default implementation of HealthCheckServiceInterface.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
	redis      Pinger
}

// newHealthCheckService creates a service that also checks redis when it is not nil.
func newHealthCheckService(dbProvider provider.DBProviderInterface, redis Pinger) HealthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: dbProvider,
		redis:      redis,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness(ctx context.Context) ServerStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	statuses := []ServiceStatus{
		{ServiceName: "FlowDB", Status: hcs.checkDatabaseStatus(ctx, provider.FlowDB, queryFlowDBTable)},
		{ServiceName: "LedgerDB", Status: hcs.checkDatabaseStatus(ctx, provider.LedgerDB, queryLedgerDBTable)},
	}
	if hcs.redis != nil {
		statuses = append(statuses, ServiceStatus{ServiceName: "Redis", Status: hcs.checkRedisStatus(ctx)})
	}

	status := StatusUp
	for _, s := range statuses {
		if s.Status == StatusDown {
			status = StatusDown
		}
	}
	return ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *healthCheckService) checkDatabaseStatus(ctx context.Context, dbName string,
	query dbmodel.DBQuery) Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.dbProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.String("database", dbName), log.Error(err))
		return StatusDown
	}
	if _, err := dbClient.Query(ctx, query); err != nil {
		logger.Error("Failed to execute query", log.String("database", dbName), log.Error(err))
		return StatusDown
	}
	return StatusUp
}

func (hcs *healthCheckService) checkRedisStatus(ctx context.Context) Status {
	if err := hcs.redis.Ping(ctx); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")).
			Error("Redis ping failed", log.Error(err))
		return StatusDown
	}
	return StatusUp
}
