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

package flowstore

import (
	"context"
	"sync"
)

// SubscriptionInterface is a live view of one flow.
type SubscriptionInterface interface {
	// Snapshots returns the channel of flow states. It is closed after Unsubscribe.
	Snapshots() <-chan Snapshot
	// Unsubscribe releases the change listener and any pending fallback timer. Safe to call more than once.
	Unsubscribe()
}

// subscription is the default implementation of SubscriptionInterface.
type subscription struct {
	snapshots chan Snapshot
	cancel    context.CancelFunc
	once      sync.Once
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{
		snapshots: make(chan Snapshot, 1),
		cancel:    cancel,
	}
}

func (s *subscription) Snapshots() <-chan Snapshot {
	return s.snapshots
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
