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

// Package flowstoremock provides testify based mocks of the flow store.
package flowstoremock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/flowstore"
)

// FlowStoreInterfaceMock is a mock implementation of flowstore.FlowStoreInterface.
type FlowStoreInterfaceMock struct {
	mock.Mock
}

// NewFlowStoreInterfaceMock creates a mock whose expectations are asserted on test cleanup.
func NewFlowStoreInterfaceMock(t *testing.T) *FlowStoreInterfaceMock {
	m := &FlowStoreInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Load mocks the Load method.
func (m *FlowStoreInterfaceMock) Load(ctx context.Context, companyID, flowID string) (
	flowstore.SubscriptionInterface, error) {
	ret := m.Called(ctx, companyID, flowID)

	var sub flowstore.SubscriptionInterface
	if v := ret.Get(0); v != nil {
		sub = v.(flowstore.SubscriptionInterface)
	}
	return sub, ret.Error(1)
}

// Save mocks the Save method.
func (m *FlowStoreInterfaceMock) Save(ctx context.Context, companyID, flowID string, nodes []flowgraph.Node,
	edges []flowgraph.Edge, opts flowstore.SaveOptions) (int64, error) {
	ret := m.Called(ctx, companyID, flowID, nodes, edges, opts)
	return ret.Get(0).(int64), ret.Error(1)
}

// Subscription is a hand-fed flowstore.SubscriptionInterface.
type Subscription struct {
	C            chan flowstore.Snapshot
	once         sync.Once
	unsubscribed chan struct{}
}

// NewSubscription creates a subscription whose snapshots are pushed through C.
func NewSubscription() *Subscription {
	return &Subscription{
		C:            make(chan flowstore.Snapshot, 8),
		unsubscribed: make(chan struct{}),
	}
}

// Snapshots returns C.
func (s *Subscription) Snapshots() <-chan flowstore.Snapshot {
	return s.C
}

// Unsubscribe closes C once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.unsubscribed)
		close(s.C)
	})
}

// Unsubscribed is closed after Unsubscribe.
func (s *Subscription) Unsubscribed() <-chan struct{} {
	return s.unsubscribed
}
