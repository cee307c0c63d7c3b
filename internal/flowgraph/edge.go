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

// Edge connects two nodes of a flow.
type Edge struct {
	ID       string                 `json:"id"`
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Type     string                 `json:"type,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Animated bool                   `json:"animated,omitempty"`
}

// Clone returns a copy of the edge with its own data map.
func (e Edge) Clone() Edge {
	c := e
	if e.Data != nil {
		c.Data = make(map[string]interface{}, len(e.Data))
		for k, v := range e.Data {
			c.Data[k] = v
		}
	}
	return c
}

// CloneNodes deep copies a node slice.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// CloneEdges deep copies an edge slice.
func CloneEdges(edges []Edge) []Edge {
	if edges == nil {
		return nil
	}
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = e.Clone()
	}
	return out
}
