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

// Package redisclient provides the shared Redis client built from the server configuration.
package redisclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socar-georgia/finsight/internal/system/config"
	"github.com/socar-georgia/finsight/internal/system/log"
)

var (
	client  *redis.Client
	initErr error
	once    sync.Once
)

// GetClient returns the shared Redis client, or nil when Redis is not configured.
func GetClient() (*redis.Client, error) {
	once.Do(func() {
		client, initErr = newClient(config.GetServerRuntime().Config.Redis)
	})
	return client, initErr
}

// newClient parses the configured URL and verifies the connection.
func newClient(cfg config.RedisConfig) (*redis.Client, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RedisClient"))
	if cfg.URL == "" {
		logger.Info("Redis is not configured, in-memory implementations will be used")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	timeout := 5 * time.Second
	if cfg.ConnectTimeout > 0 {
		timeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to redis", log.String("address", opts.Addr), log.Int("db", opts.DB))
	return c, nil
}

// Close closes the shared client if one was created.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
