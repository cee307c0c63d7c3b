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

// Presentation describes how a node kind is drawn.
type Presentation struct {
	Kind        NodeKind `json:"kind"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Accent      string   `json:"accent"`
	Connectable bool     `json:"connectable"`
	Attributes  []string `json:"attributes"`
}

var registry = map[NodeKind]Presentation{
	KindData:            {Kind: KindData, Title: "Data Source", Icon: "database", Accent: "#38bdf8", Connectable: true},
	KindTruthEngine:     {Kind: KindTruthEngine, Title: "Truth Engine", Icon: "shield-check", Accent: "#22c55e", Connectable: true},
	KindAI:              {Kind: KindAI, Title: "AI Agent", Icon: "brain", Accent: "#a855f7", Connectable: true},
	KindGovernance:      {Kind: KindGovernance, Title: "Governance", Icon: "gavel", Accent: "#f59e0b", Connectable: true},
	KindSystemZone:      {Kind: KindSystemZone, Title: "System Zone", Icon: "square-dashed", Accent: "#64748b"},
	KindAIIntent:        {Kind: KindAIIntent, Title: "Intent", Icon: "target", Accent: "#ec4899", Connectable: true},
	KindAIToolExecution: {Kind: KindAIToolExecution, Title: "Tool Call", Icon: "wrench", Accent: "#14b8a6", Connectable: true},
	KindAIModel:         {Kind: KindAIModel, Title: "Model", Icon: "cpu", Accent: "#6366f1", Connectable: true},
}

// Lookup returns the presentation of a kind.
func Lookup(kind NodeKind) (Presentation, bool) {
	p, ok := registry[kind]
	if !ok {
		return Presentation{}, false
	}
	p.Attributes = Attributes(kind)
	return p, true
}

// Presentations lists every registered kind in display order.
func Presentations() []Presentation {
	out := make([]Presentation, 0, len(allKinds))
	for _, kind := range allKinds {
		if p, ok := Lookup(kind); ok {
			out = append(out, p)
		}
	}
	return out
}
