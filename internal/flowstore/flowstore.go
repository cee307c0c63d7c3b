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

// Package flowstore persists designer flows and streams their changes to subscribers.
package flowstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/system/broker"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "FlowStore"

// ConflictPolicy decides what a save does when its base version is stale.
type ConflictPolicy string

const (
	// PolicyLastWriteWins overwrites the stored flow and logs a warning.
	PolicyLastWriteWins ConflictPolicy = "last-write-wins"
	// PolicyReject fails the save with ErrVersionConflict.
	PolicyReject ConflictPolicy = "reject"
)

// ParseConflictPolicy maps a configured policy name, defaulting to last-write-wins.
func ParseConflictPolicy(name string) ConflictPolicy {
	if ConflictPolicy(name) == PolicyReject {
		return PolicyReject
	}
	return PolicyLastWriteWins
}

// SaveOptions carries the version token and policy of a save.
type SaveOptions struct {
	ExpectedVersion int64
	Policy          ConflictPolicy
	UpdatedBy       string
}

// Snapshot is one state of a flow delivered to a subscriber.
type Snapshot struct {
	Nodes     []flowgraph.Node
	Edges     []flowgraph.Edge
	Version   int64
	UpdatedAt time.Time
	UpdatedBy string
	// Fallback marks the default graph shown while nothing is persisted.
	Fallback bool
}

// changeEvent is published after every successful save.
type changeEvent struct {
	CompanyID string `json:"companyId"`
	FlowID    string `json:"flowId"`
	Version   int64  `json:"version"`
}

// FlowStoreInterface loads and saves flows.
type FlowStoreInterface interface {
	Load(ctx context.Context, companyID, flowID string) (SubscriptionInterface, error)
	Save(ctx context.Context, companyID, flowID string, nodes []flowgraph.Node, edges []flowgraph.Edge,
		opts SaveOptions) (int64, error)
}

// flowStore is the default implementation of FlowStoreInterface.
type flowStore struct {
	docs          documentStoreInterface
	broker        broker.BrokerInterface
	fallbackWait  time.Duration
	defaultPolicy ConflictPolicy
	now           func() time.Time
}

// NewFlowStore creates a flow store over the SQL document store and the given broker.
func NewFlowStore(b broker.BrokerInterface, fallbackWait time.Duration, policy ConflictPolicy) FlowStoreInterface {
	return &flowStore{
		docs:          newDocumentStore(),
		broker:        b,
		fallbackWait:  fallbackWait,
		defaultPolicy: policy,
		now:           time.Now,
	}
}

func channelName(companyID, flowID string) string {
	return "flow:" + companyID + ":" + flowID
}

// Load starts a live subscription to the flow. The persisted state, if any, is delivered first.
// When nothing is persisted the default graph is delivered once after the fallback wait,
// unless real data arrives before then.
func (s *flowStore) Load(ctx context.Context, companyID, flowID string) (SubscriptionInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyCompanyID, companyID), log.String(log.LoggerKeyFlowID, flowID))

	listener, err := s.broker.Subscribe(ctx, channelName(companyID, flowID))
	if err != nil {
		return nil, &PersistenceError{Op: OpLoad, CompanyID: companyID, FlowID: flowID,
			Err: fmt.Errorf("failed to subscribe to flow changes: %w", err)}
	}

	flow, err := s.docs.GetFlow(ctx, companyID, flowID)
	if err != nil && !errors.Is(err, ErrFlowNotFound) {
		_ = listener.Close()
		return nil, &PersistenceError{Op: OpLoad, CompanyID: companyID, FlowID: flowID, Err: err}
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := newSubscription(cancel)
	go s.watch(subCtx, companyID, flowID, flow, listener, sub.snapshots, logger)

	logger.Debug("Flow subscription started", log.Bool("persisted", flow != nil))
	return sub, nil
}

// watch feeds snapshots to a subscription until it is cancelled.
func (s *flowStore) watch(ctx context.Context, companyID, flowID string, initial *flowgraph.Flow,
	listener broker.SubscriptionInterface, out chan<- Snapshot, logger *log.Logger) {
	defer close(out)
	defer func() { _ = listener.Close() }()

	emit := func(snap Snapshot) bool {
		select {
		case out <- snap:
			return true
		case <-ctx.Done():
			return false
		}
	}

	lastVersion := int64(-1)
	var fallback *time.Timer
	var fallbackC <-chan time.Time
	stopFallback := func() {
		if fallback != nil {
			fallback.Stop()
			fallback, fallbackC = nil, nil
		}
	}
	defer stopFallback()

	if initial != nil {
		lastVersion = initial.Version
	}
	delivered := initial != nil && len(initial.Nodes) > 0
	if delivered {
		if !emit(snapshotOf(initial)) {
			return
		}
	} else {
		fallback = time.NewTimer(s.fallbackWait)
		fallbackC = fallback.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-fallbackC:
			fallback, fallbackC = nil, nil
			nodes, edges := flowgraph.DefaultGraph()
			logger.Debug("No persisted flow arrived, delivering default graph")
			if !emit(Snapshot{Nodes: nodes, Edges: edges, Version: max(lastVersion, 0), Fallback: true}) {
				return
			}
		case msg, ok := <-listener.Messages():
			if !ok {
				logger.Warn("Flow change listener closed")
				return
			}
			var event changeEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				logger.Warn("Ignoring malformed flow change event", log.Error(err))
				continue
			}
			if event.Version <= lastVersion {
				continue
			}
			flow, err := s.docs.GetFlow(ctx, companyID, flowID)
			if err != nil {
				logger.Error("Failed to read changed flow", log.Error(err))
				continue
			}
			if flow.Version <= lastVersion {
				continue
			}
			lastVersion = flow.Version
			if !delivered && len(flow.Nodes) == 0 {
				logger.Debug("Changed flow has no nodes, keeping the default graph",
					log.Int64("version", flow.Version))
				continue
			}
			stopFallback()
			delivered = true
			if !emit(snapshotOf(flow)) {
				return
			}
		}
	}
}

func snapshotOf(flow *flowgraph.Flow) Snapshot {
	return Snapshot{
		Nodes:     flow.Nodes,
		Edges:     flow.Edges,
		Version:   flow.Version,
		UpdatedAt: flow.UpdatedAt,
		UpdatedBy: flow.UpdatedBy,
	}
}

// Save validates and persists the full node and edge collections, then notifies subscribers.
func (s *flowStore) Save(ctx context.Context, companyID, flowID string, nodes []flowgraph.Node,
	edges []flowgraph.Edge, opts SaveOptions) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyCompanyID, companyID), log.String(log.LoggerKeyFlowID, flowID))

	if err := flowgraph.Validate(nodes, edges); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFlow, err)
	}

	policy := opts.Policy
	if policy == "" {
		policy = s.defaultPolicy
	}

	flow := flowgraph.Flow{
		CompanyID: companyID,
		FlowID:    flowID,
		Nodes:     nodes,
		Edges:     edges,
		UpdatedAt: s.now(),
		UpdatedBy: opts.UpdatedBy,
	}
	version, stale, err := s.docs.SaveFlow(ctx, flow, opts.ExpectedVersion, policy == PolicyReject)
	if err != nil {
		return 0, &PersistenceError{Op: OpSave, CompanyID: companyID, FlowID: flowID, Err: err}
	}
	if stale {
		logger.Warn("Overwrote a flow saved from a stale version",
			log.Int64("expectedVersion", opts.ExpectedVersion), log.Int64("newVersion", version))
	}

	payload, err := json.Marshal(changeEvent{CompanyID: companyID, FlowID: flowID, Version: version})
	if err == nil {
		err = s.broker.Publish(ctx, channelName(companyID, flowID), payload)
	}
	if err != nil {
		logger.Warn("Flow saved but change notification failed", log.Error(err))
	}

	logger.Debug("Flow saved", log.Int64("version", version), log.Int("nodes", len(nodes)),
		log.Int("edges", len(edges)))
	return version, nil
}
