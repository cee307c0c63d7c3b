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

package canvas

import "sort"

// ActivePath is the set of node and edge ids highlighted by the timeline.
type ActivePath struct {
	nodeIDs map[string]struct{}
	edgeIDs map[string]struct{}
}

// NewActivePath builds a path from id lists. Duplicates are collapsed.
func NewActivePath(nodeIDs, edgeIDs []string) ActivePath {
	p := ActivePath{
		nodeIDs: make(map[string]struct{}, len(nodeIDs)),
		edgeIDs: make(map[string]struct{}, len(edgeIDs)),
	}
	for _, id := range nodeIDs {
		p.nodeIDs[id] = struct{}{}
	}
	for _, id := range edgeIDs {
		p.edgeIDs[id] = struct{}{}
	}
	return p
}

// HasNode reports whether the node is on the path.
func (p ActivePath) HasNode(id string) bool {
	_, ok := p.nodeIDs[id]
	return ok
}

// HasEdge reports whether the edge is on the path.
func (p ActivePath) HasEdge(id string) bool {
	_, ok := p.edgeIDs[id]
	return ok
}

// NodeIDs returns the sorted node ids of the path.
func (p ActivePath) NodeIDs() []string {
	return sortedKeys(p.nodeIDs)
}

// EdgeIDs returns the sorted edge ids of the path.
func (p ActivePath) EdgeIDs() []string {
	return sortedKeys(p.edgeIDs)
}

// IsEmpty reports whether nothing is highlighted.
func (p ActivePath) IsEmpty() bool {
	return len(p.nodeIDs) == 0 && len(p.edgeIDs) == 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
