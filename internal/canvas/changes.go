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

import (
	"fmt"
	"strconv"

	"github.com/socar-georgia/finsight/internal/flowgraph"
)

// NodeChangeType names a node change event.
type NodeChangeType string

const (
	NodeChangePosition   NodeChangeType = "position"
	NodeChangeDimensions NodeChangeType = "dimensions"
	NodeChangeAdd        NodeChangeType = "add"
	NodeChangeRemove     NodeChangeType = "remove"
	NodeChangeSelect     NodeChangeType = "select"
)

// NodeChange is a node event emitted by the canvas.
type NodeChange struct {
	Type       NodeChangeType      `json:"type"`
	ID         string              `json:"id,omitempty"`
	Position   *flowgraph.Position `json:"position,omitempty"`
	Dimensions *flowgraph.Style    `json:"dimensions,omitempty"`
	Item       *flowgraph.Node     `json:"item,omitempty"`
	Selected   bool                `json:"selected,omitempty"`
}

// EdgeChangeType names an edge change event.
type EdgeChangeType string

const (
	EdgeChangeAdd    EdgeChangeType = "add"
	EdgeChangeRemove EdgeChangeType = "remove"
	EdgeChangeSelect EdgeChangeType = "select"
)

// EdgeChange is an edge event emitted by the canvas.
type EdgeChange struct {
	Type     EdgeChangeType  `json:"type"`
	ID       string          `json:"id,omitempty"`
	Item     *flowgraph.Edge `json:"item,omitempty"`
	Selected bool            `json:"selected,omitempty"`
}

// Connection is a user drag from a source handle to a target handle.
type Connection struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ApplyNodeChanges applies node events in order to the working copy.
// It stops at the first change that cannot be applied; earlier changes stay applied.
func (c *Controller) ApplyNodeChanges(changes []NodeChange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.dropStaleSelection()

	for _, ch := range changes {
		var cmd command
		switch ch.Type {
		case NodeChangeSelect:
			if err := c.selectNode(ch.ID, ch.Selected); err != nil {
				return err
			}
			continue
		case NodeChangePosition:
			if ch.Position == nil {
				return fmt.Errorf("%w: position change for %s has no position", ErrInvalidChange, ch.ID)
			}
			cmd = moveNode{id: ch.ID, position: *ch.Position}
		case NodeChangeDimensions:
			if ch.Dimensions == nil {
				return fmt.Errorf("%w: dimensions change for %s has no dimensions", ErrInvalidChange, ch.ID)
			}
			cmd = resizeNode{id: ch.ID, style: *ch.Dimensions}
		case NodeChangeAdd:
			if ch.Item == nil {
				return fmt.Errorf("%w: add change has no node", ErrInvalidChange)
			}
			node := ch.Item.Clone()
			if node.Data == nil {
				data, err := flowgraph.NewPayload(node.Type)
				if err != nil {
					return err
				}
				node.Data = data
			}
			cmd = addNode{node: node}
		case NodeChangeRemove:
			cmd = removeNode{id: ch.ID}
		default:
			return fmt.Errorf("%w: unknown node change type %q", ErrInvalidChange, ch.Type)
		}
		if err := c.record(cmd); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEdgeChanges applies edge events in order to the working copy.
func (c *Controller) ApplyEdgeChanges(changes []EdgeChange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.dropStaleSelection()

	for _, ch := range changes {
		var cmd command
		switch ch.Type {
		case EdgeChangeSelect:
			if err := c.selectEdge(ch.ID, ch.Selected); err != nil {
				return err
			}
			continue
		case EdgeChangeAdd:
			if ch.Item == nil {
				return fmt.Errorf("%w: add change has no edge", ErrInvalidChange)
			}
			cmd = addEdge{edge: ch.Item.Clone()}
		case EdgeChangeRemove:
			cmd = removeEdge{id: ch.ID}
		default:
			return fmt.Errorf("%w: unknown edge change type %q", ErrInvalidChange, ch.Type)
		}
		if err := c.record(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Connect creates an edge between two nodes and returns it.
func (c *Controller) Connect(conn Connection) (flowgraph.Edge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := "e-" + conn.Source + "-" + conn.Target
	id := base
	for n := 2; c.working.edgeIndex(id) >= 0; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	edge := flowgraph.Edge{ID: id, Source: conn.Source, Target: conn.Target, Type: "smoothstep"}
	if err := c.record(addEdge{edge: edge}); err != nil {
		return flowgraph.Edge{}, err
	}
	return edge, nil
}

func (c *Controller) selectNode(id string, selected bool) error {
	if !selected {
		if c.selection.isNode(id) {
			c.selection = Selection{}
		}
		return nil
	}
	if c.working.nodeIndex(id) < 0 {
		return fmt.Errorf("%w: node %s", ErrElementNotFound, id)
	}
	c.selection = Selection{Kind: SelectionNode, ID: id}
	return nil
}

func (c *Controller) selectEdge(id string, selected bool) error {
	if !selected {
		if c.selection.isEdge(id) {
			c.selection = Selection{}
		}
		return nil
	}
	if c.working.edgeIndex(id) < 0 {
		return fmt.Errorf("%w: edge %s", ErrElementNotFound, id)
	}
	c.selection = Selection{Kind: SelectionEdge, ID: id}
	return nil
}
