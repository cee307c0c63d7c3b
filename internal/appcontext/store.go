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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// appContextStoreInterface persists application contexts per user.
type appContextStoreInterface interface {
	Get(ctx context.Context, userID string) (AppContext, bool, error)
	Put(ctx context.Context, userID string, appCtx AppContext) error
}

// redisStore keeps each user's context as a JSON value with a sliding TTL.
type redisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// newRedisStore creates a store on client. A zero ttl keeps values forever.
func newRedisStore(client *redis.Client, prefix string, ttl time.Duration) appContextStoreInterface {
	return &redisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *redisStore) key(userID string) string {
	return s.prefix + ":appctx:" + userID
}

// Get loads the context of userID.
func (s *redisStore) Get(ctx context.Context, userID string) (AppContext, bool, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return AppContext{}, false, nil
		}
		return AppContext{}, false, fmt.Errorf("failed to load app context: %w", err)
	}

	var appCtx AppContext
	if err := json.Unmarshal(data, &appCtx); err != nil {
		return AppContext{}, false, fmt.Errorf("failed to unmarshal app context: %w", err)
	}
	return appCtx, true, nil
}

// Put stores the context of userID and refreshes its TTL.
func (s *redisStore) Put(ctx context.Context, userID string, appCtx AppContext) error {
	data, err := json.Marshal(appCtx)
	if err != nil {
		return fmt.Errorf("failed to marshal app context: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save app context: %w", err)
	}
	return nil
}

// memoryStore keeps contexts in process.
type memoryStore struct {
	mu       sync.RWMutex
	contexts map[string]AppContext
}

func newMemoryStore() appContextStoreInterface {
	return &memoryStore{contexts: make(map[string]AppContext)}
}

// Get loads the context of userID.
func (s *memoryStore) Get(_ context.Context, userID string) (AppContext, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appCtx, ok := s.contexts[userID]
	return appCtx, ok, nil
}

// Put stores the context of userID.
func (s *memoryStore) Put(_ context.Context, userID string, appCtx AppContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[userID] = appCtx
	return nil
}
