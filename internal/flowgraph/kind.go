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

// Package flowgraph defines the typed node and edge model of a designer flow.
package flowgraph

// NodeKind is the discriminator tag of a node.
type NodeKind string

const (
	// KindData is a data source feeding the platform.
	KindData NodeKind = "data"
	// KindTruthEngine is the ledger reconciliation engine.
	KindTruthEngine NodeKind = "truthEngine"
	// KindAI is a generic AI agent.
	KindAI NodeKind = "ai"
	// KindGovernance is an approval or policy gate.
	KindGovernance NodeKind = "governance"
	// KindSystemZone is a non-connectable grouping container.
	KindSystemZone NodeKind = "systemZone"
	// KindAIIntent is a classified user intent.
	KindAIIntent NodeKind = "aiIntent"
	// KindAIToolExecution is a tool invocation made by an agent.
	KindAIToolExecution NodeKind = "aiToolExecution"
	// KindAIModel is a model endpoint used by an agent.
	KindAIModel NodeKind = "aiModel"
)

var allKinds = []NodeKind{
	KindData,
	KindTruthEngine,
	KindAI,
	KindGovernance,
	KindSystemZone,
	KindAIIntent,
	KindAIToolExecution,
	KindAIModel,
}

// Kinds returns every registered node kind in display order.
func Kinds() []NodeKind {
	kinds := make([]NodeKind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// IsRegistered reports whether the kind has a registry entry.
func (k NodeKind) IsRegistered() bool {
	_, ok := registry[k]
	return ok
}

// IsConnectable reports whether edges may attach to nodes of this kind.
func (k NodeKind) IsConnectable() bool {
	p, ok := registry[k]
	return ok && p.Connectable
}
