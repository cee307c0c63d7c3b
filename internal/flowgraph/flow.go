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
	"time"
)

// Flow is the persisted graph of one company and flow id.
type Flow struct {
	CompanyID string    `json:"companyId"`
	FlowID    string    `json:"flowId"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// Validate checks the structural rules of a graph and returns the first violation.
func Validate(nodes []Node, edges []Edge) error {
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("node: %w", ErrEmptyID)
		}
		if _, dup := byID[n.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		if !n.Type.IsRegistered() {
			return fmt.Errorf("%w: %q on node %s", ErrUnknownNodeKind, n.Type, n.ID)
		}
		if n.Data != nil && n.Data.Kind() != n.Type {
			return fmt.Errorf("%w: node %s is %s, data is %s", ErrPayloadMismatch, n.ID, n.Type, n.Data.Kind())
		}
		byID[n.ID] = n
	}

	for _, n := range nodes {
		if n.ParentNode == "" {
			continue
		}
		parent, ok := byID[n.ParentNode]
		if !ok || parent.Type != KindSystemZone {
			return fmt.Errorf("%w: node %s has parent %s", ErrInvalidParent, n.ID, n.ParentNode)
		}
	}

	edgeIDs := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.ID == "" {
			return fmt.Errorf("edge: %w", ErrEmptyID)
		}
		if _, dup := edgeIDs[e.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEdgeID, e.ID)
		}
		edgeIDs[e.ID] = struct{}{}

		for _, end := range []string{e.Source, e.Target} {
			n, ok := byID[end]
			if !ok {
				return fmt.Errorf("%w: edge %s references %q", ErrDanglingEdge, e.ID, end)
			}
			if !n.Type.IsConnectable() {
				return fmt.Errorf("%w: edge %s touches %s node %s", ErrNotConnectable, e.ID, n.Type, end)
			}
		}
	}
	return nil
}
