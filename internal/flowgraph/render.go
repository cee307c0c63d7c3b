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
	"strconv"
	"strings"
)

// StatusIndicator is the state light shown in a card header.
type StatusIndicator string

const (
	StatusLive     StatusIndicator = "live"
	StatusIdle     StatusIndicator = "idle"
	StatusError    StatusIndicator = "error"
	StatusDisabled StatusIndicator = "disabled"
)

// Handle is a connection point of a card.
type Handle struct {
	Type     string `json:"type"`
	Position string `json:"position"`
}

var defaultHandles = []Handle{
	{Type: "target", Position: "left"},
	{Type: "source", Position: "right"},
}

// TelemetryItem is a display-only key/value row of a card body.
type TelemetryItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CardHeader is the top row of a card.
type CardHeader struct {
	Icon   string          `json:"icon"`
	Label  string          `json:"label"`
	Status StatusIndicator `json:"status"`
}

// Card is the view model of a rendered node.
type Card struct {
	NodeID     string          `json:"nodeId"`
	Kind       NodeKind        `json:"kind"`
	Header     CardHeader      `json:"header"`
	Body       []TelemetryItem `json:"body"`
	Handles    []Handle        `json:"handles"`
	Accent     string          `json:"accent"`
	Position   Position        `json:"position"`
	ParentNode string          `json:"parentNode,omitempty"`
	Style      *Style          `json:"style,omitempty"`
	Disabled   bool            `json:"disabled"`
	Locked     bool            `json:"locked"`
	Selected   bool            `json:"selected"`
	Active     bool            `json:"active"`
}

// RenderCard builds the card of a node. It has no side effects.
func RenderCard(n Node, selected, active bool) Card {
	pres := registry[n.Type]
	base := n.Base()

	label := base.Label
	if label == "" {
		label = pres.Title
	}

	card := Card{
		NodeID:     n.ID,
		Kind:       n.Type,
		Header:     CardHeader{Icon: pres.Icon, Label: label, Status: statusOf(base)},
		Body:       telemetry(n.Data),
		Accent:     pres.Accent,
		Position:   n.Position,
		ParentNode: n.ParentNode,
		Style:      n.Style,
		Disabled:   base.Disabled,
		Locked:     base.Locked,
		Selected:   selected,
		Active:     active,
	}
	if pres.Connectable {
		card.Handles = append([]Handle(nil), defaultHandles...)
	} else {
		card.Handles = []Handle{}
	}
	return card
}

func statusOf(base BaseData) StatusIndicator {
	if base.Disabled {
		return StatusDisabled
	}
	switch strings.ToLower(base.Status) {
	case "live", "active", "running", "online", "healthy":
		return StatusLive
	case "error", "failed", "offline", "degraded":
		return StatusError
	}
	return StatusIdle
}

func telemetry(p Payload) []TelemetryItem {
	items := []TelemetryItem{}
	add := func(key, value string) {
		if value == "" {
			value = "-"
		}
		items = append(items, TelemetryItem{Key: key, Value: value})
	}
	ms := func(v int64) string { return strconv.FormatInt(v, 10) + " ms" }

	switch d := p.(type) {
	case *DataPayload:
		add("Source", d.Source)
		add("Throughput", strconv.FormatInt(d.RowsPerSecond, 10)+" rows/s")
		add("Latency", ms(d.LatencyMs))
		add("Last sync", d.LastSync)
	case *TruthEnginePayload:
		add("Reliability", fmt.Sprintf("%.1f%%", d.Reliability))
		add("Reconciled", strconv.FormatInt(d.ReconciledAccounts, 10))
		add("Latency", ms(d.LatencyMs))
	case *AIPayload:
		add("Model", d.Model)
		add("Tokens", strconv.FormatInt(d.TokenUsage, 10))
		add("Latency", ms(d.LatencyMs))
	case *GovernancePayload:
		add("Policy", d.Policy)
		add("Approvers", strings.Join(d.Approvers, ", "))
		add("Violations", strconv.FormatInt(d.Violations, 10))
	case *SystemZonePayload:
	case *AIIntentPayload:
		add("Intent", d.Intent)
		add("Confidence", fmt.Sprintf("%.0f%%", d.Confidence*100))
	case *AIToolExecutionPayload:
		add("Tool", d.Tool)
		add("Duration", ms(d.DurationMs))
		if d.Success {
			add("Result", "success")
		} else {
			add("Result", "failed")
		}
	case *AIModelPayload:
		add("Provider", d.Provider)
		add("Model", d.ModelName)
		add("Tokens", fmt.Sprintf("%d in / %d out", d.TokensIn, d.TokensOut))
		add("Cost", "$"+d.CostUSD.StringFixed(4))
	}
	return items
}
