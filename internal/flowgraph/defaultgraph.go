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

import "github.com/shopspring/decimal"

// DefaultGraph returns the graph shown while a flow has no persisted state.
// Every call returns fresh values.
func DefaultGraph() ([]Node, []Edge) {
	ingest := NewNode("zone-ingestion", &SystemZonePayload{
		BaseData: BaseData{Label: "Ingestion Layer"},
		Color:    "#0ea5e9",
	}, Position{X: 0, Y: 0})
	ingest.Style = &Style{Width: 320, Height: 420}

	intel := NewNode("zone-intelligence", &SystemZonePayload{
		BaseData: BaseData{Label: "Intelligence Layer"},
		Color:    "#8b5cf6",
	}, Position{X: 760, Y: 0})
	intel.Style = &Style{Width: 560, Height: 420}

	erp := NewNode("src-erp", &DataPayload{
		BaseData:      BaseData{Label: "1C ERP", Status: "live"},
		Source:        "1C:Enterprise",
		RowsPerSecond: 1200,
		LatencyMs:     45,
	}, Position{X: 40, Y: 60})
	erp.ParentNode = ingest.ID

	bank := NewNode("src-bank", &DataPayload{
		BaseData:      BaseData{Label: "Bank Feeds", Status: "live"},
		Source:        "TBC / BoG statements",
		RowsPerSecond: 300,
		LatencyMs:     120,
	}, Position{X: 40, Y: 240})
	bank.ParentNode = ingest.ID

	truth := NewNode("truth-engine", &TruthEnginePayload{
		BaseData:           BaseData{Label: "Truth Engine", Status: "live"},
		Reliability:        99.2,
		ReconciledAccounts: 1843,
		LatencyMs:          80,
	}, Position{X: 420, Y: 150})

	policy := NewNode("gov-approval", &GovernancePayload{
		BaseData:  BaseData{Label: "CFO Approval", Status: "idle"},
		Policy:    "Adjustments over 10,000 GEL require approval",
		Approvers: []string{"CFO", "Group Controller"},
	}, Position{X: 420, Y: 360})

	intent := NewNode("ai-intent", &AIIntentPayload{
		BaseData:   BaseData{Label: "Variance Question", Status: "idle"},
		Intent:     "explain_variance",
		Confidence: 0.92,
	}, Position{X: 40, Y: 60})
	intent.ParentNode = intel.ID

	copilot := NewNode("ai-copilot", &AIPayload{
		BaseData:   BaseData{Label: "CFO Copilot", Status: "live"},
		Model:      "gemini-1.5-pro",
		TokenUsage: 18250,
		LatencyMs:  950,
	}, Position{X: 220, Y: 160})
	copilot.ParentNode = intel.ID

	tool := NewNode("ai-tool-truth", &AIToolExecutionPayload{
		BaseData:   BaseData{Label: "financial-truth", Status: "idle"},
		Tool:       "financial_truth",
		DurationMs: 340,
		Success:    true,
	}, Position{X: 380, Y: 60})
	tool.ParentNode = intel.ID

	model := NewNode("ai-model", &AIModelPayload{
		BaseData:  BaseData{Label: "Vertex AI", Status: "live"},
		Provider:  "vertex",
		ModelName: "gemini-1.5-pro",
		TokensIn:  12400,
		TokensOut: 5850,
		CostUSD:   decimal.RequireFromString("0.0412"),
	}, Position{X: 380, Y: 280})
	model.ParentNode = intel.ID

	nodes := []Node{ingest, intel, erp, bank, truth, policy, intent, copilot, tool, model}
	edges := []Edge{
		{ID: "e-erp-truth", Source: erp.ID, Target: truth.ID, Type: "smoothstep", Animated: true},
		{ID: "e-bank-truth", Source: bank.ID, Target: truth.ID, Type: "smoothstep", Animated: true},
		{ID: "e-truth-policy", Source: truth.ID, Target: policy.ID, Type: "smoothstep"},
		{ID: "e-intent-copilot", Source: intent.ID, Target: copilot.ID, Type: "smoothstep", Animated: true},
		{ID: "e-copilot-tool", Source: copilot.ID, Target: tool.ID, Type: "smoothstep"},
		{ID: "e-copilot-model", Source: copilot.ID, Target: model.ID, Type: "smoothstep"},
		{ID: "e-tool-truth", Source: tool.ID, Target: truth.ID, Type: "smoothstep"},
	}
	return nodes, edges
}
