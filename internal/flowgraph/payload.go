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

package flowgraph

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseData holds the attributes every node kind carries.
type BaseData struct {
	Label       string `json:"label,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	// Disabled excludes the node from downstream logic evaluation. Forwarded verbatim.
	Disabled bool `json:"disabled,omitempty"`
	// Locked forces deterministic path selection downstream. Forwarded verbatim.
	Locked bool `json:"locked,omitempty"`
}

// Base returns the common attributes.
func (b *BaseData) Base() *BaseData {
	return b
}

// Payload is the kind-specific data of a node.
type Payload interface {
	Kind() NodeKind
	Base() *BaseData
	clone() Payload
}

// DataPayload describes a data source node.
type DataPayload struct {
	BaseData
	Source        string `json:"source,omitempty"`
	RowsPerSecond int64  `json:"rowsPerSecond,omitempty"`
	LatencyMs     int64  `json:"latencyMs,omitempty"`
	LastSync      string `json:"lastSync,omitempty"`
}

// TruthEnginePayload describes the reconciliation engine node.
type TruthEnginePayload struct {
	BaseData
	Reliability        float64 `json:"reliability,omitempty"`
	ReconciledAccounts int64   `json:"reconciledAccounts,omitempty"`
	LatencyMs          int64   `json:"latencyMs,omitempty"`
}

// AIPayload describes an AI agent node.
type AIPayload struct {
	BaseData
	Model      string `json:"model,omitempty"`
	TokenUsage int64  `json:"tokenUsage,omitempty"`
	LatencyMs  int64  `json:"latencyMs,omitempty"`
}

// GovernancePayload describes a policy gate node.
type GovernancePayload struct {
	BaseData
	Policy     string   `json:"policy,omitempty"`
	Approvers  []string `json:"approvers,omitempty"`
	Violations int64    `json:"violations,omitempty"`
}

// SystemZonePayload describes a grouping zone.
type SystemZonePayload struct {
	BaseData
	Color string `json:"color,omitempty"`
}

// AIIntentPayload describes a classified intent node.
type AIIntentPayload struct {
	BaseData
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// AIToolExecutionPayload describes a tool call node.
type AIToolExecutionPayload struct {
	BaseData
	Tool       string `json:"tool,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Success    bool   `json:"success,omitempty"`
}

// AIModelPayload describes a model endpoint node.
type AIModelPayload struct {
	BaseData
	Provider  string          `json:"provider,omitempty"`
	ModelName string          `json:"modelName,omitempty"`
	TokensIn  int64           `json:"tokensIn,omitempty"`
	TokensOut int64           `json:"tokensOut,omitempty"`
	CostUSD   decimal.Decimal `json:"costUsd"`
}

func (*DataPayload) Kind() NodeKind            { return KindData }
func (*TruthEnginePayload) Kind() NodeKind     { return KindTruthEngine }
func (*AIPayload) Kind() NodeKind              { return KindAI }
func (*GovernancePayload) Kind() NodeKind      { return KindGovernance }
func (*SystemZonePayload) Kind() NodeKind      { return KindSystemZone }
func (*AIIntentPayload) Kind() NodeKind        { return KindAIIntent }
func (*AIToolExecutionPayload) Kind() NodeKind { return KindAIToolExecution }
func (*AIModelPayload) Kind() NodeKind         { return KindAIModel }

func (p *DataPayload) clone() Payload            { c := *p; return &c }
func (p *TruthEnginePayload) clone() Payload     { c := *p; return &c }
func (p *AIPayload) clone() Payload              { c := *p; return &c }
func (p *SystemZonePayload) clone() Payload      { c := *p; return &c }
func (p *AIIntentPayload) clone() Payload        { c := *p; return &c }
func (p *AIToolExecutionPayload) clone() Payload { c := *p; return &c }
func (p *AIModelPayload) clone() Payload         { c := *p; return &c }

func (p *GovernancePayload) clone() Payload {
	c := *p
	if p.Approvers != nil {
		c.Approvers = append([]string(nil), p.Approvers...)
	}
	return &c
}

// NewPayload returns an empty payload for the kind.
func NewPayload(kind NodeKind) (Payload, error) {
	switch kind {
	case KindData:
		return &DataPayload{}, nil
	case KindTruthEngine:
		return &TruthEnginePayload{}, nil
	case KindAI:
		return &AIPayload{}, nil
	case KindGovernance:
		return &GovernancePayload{}, nil
	case KindSystemZone:
		return &SystemZonePayload{}, nil
	case KindAIIntent:
		return &AIIntentPayload{}, nil
	case KindAIToolExecution:
		return &AIToolExecutionPayload{}, nil
	case KindAIModel:
		return &AIModelPayload{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNodeKind, kind)
}
