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

	"github.com/socar-georgia/finsight/internal/flowgraph"
)

// graph is a mutable node and edge collection.
type graph struct {
	nodes []flowgraph.Node
	edges []flowgraph.Edge
}

func (g *graph) nodeIndex(id string) int {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

func (g *graph) edgeIndex(id string) int {
	for i := range g.edges {
		if g.edges[i].ID == id {
			return i
		}
	}
	return -1
}

func (g *graph) clone() graph {
	return graph{nodes: flowgraph.CloneNodes(g.nodes), edges: flowgraph.CloneEdges(g.edges)}
}

// command is one local edit. Commands are replayed over remote snapshots until flushed.
type command interface {
	apply(g *graph) error
	String() string
}

// pendingCommand is a logged command with its position in the log.
type pendingCommand struct {
	seq uint64
	cmd command
}

type moveNode struct {
	id       string
	position flowgraph.Position
}

func (c moveNode) apply(g *graph) error {
	i := g.nodeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: node %s", ErrElementNotFound, c.id)
	}
	g.nodes[i].Position = c.position
	return nil
}

func (c moveNode) String() string { return "move node " + c.id }

type resizeNode struct {
	id    string
	style flowgraph.Style
}

func (c resizeNode) apply(g *graph) error {
	i := g.nodeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: node %s", ErrElementNotFound, c.id)
	}
	s := c.style
	g.nodes[i].Style = &s
	return nil
}

func (c resizeNode) String() string { return "resize node " + c.id }

type addNode struct {
	node flowgraph.Node
}

func (c addNode) apply(g *graph) error {
	if !c.node.Type.IsRegistered() {
		return fmt.Errorf("%w: %q", flowgraph.ErrUnknownNodeKind, c.node.Type)
	}
	if g.nodeIndex(c.node.ID) >= 0 {
		return fmt.Errorf("%w: %s", flowgraph.ErrDuplicateNodeID, c.node.ID)
	}
	if c.node.ParentNode != "" {
		p := g.nodeIndex(c.node.ParentNode)
		if p < 0 || g.nodes[p].Type != flowgraph.KindSystemZone {
			return fmt.Errorf("%w: node %s has parent %s", flowgraph.ErrInvalidParent, c.node.ID, c.node.ParentNode)
		}
	}
	g.nodes = append(g.nodes, c.node.Clone())
	return nil
}

func (c addNode) String() string { return "add node " + c.node.ID }

// removeNode drops the node with its edges and detaches its children.
type removeNode struct {
	id string
}

func (c removeNode) apply(g *graph) error {
	i := g.nodeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: node %s", ErrElementNotFound, c.id)
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	for j := range g.nodes {
		if g.nodes[j].ParentNode == c.id {
			g.nodes[j].ParentNode = ""
		}
	}
	edges := g.edges[:0]
	for _, e := range g.edges {
		if e.Source != c.id && e.Target != c.id {
			edges = append(edges, e)
		}
	}
	g.edges = edges
	return nil
}

func (c removeNode) String() string { return "remove node " + c.id }

type addEdge struct {
	edge flowgraph.Edge
}

func (c addEdge) apply(g *graph) error {
	if g.edgeIndex(c.edge.ID) >= 0 {
		return fmt.Errorf("%w: %s", flowgraph.ErrDuplicateEdgeID, c.edge.ID)
	}
	for _, end := range []string{c.edge.Source, c.edge.Target} {
		i := g.nodeIndex(end)
		if i < 0 {
			return fmt.Errorf("%w: edge %s references %q", flowgraph.ErrDanglingEdge, c.edge.ID, end)
		}
		if !g.nodes[i].Type.IsConnectable() {
			return fmt.Errorf("%w: edge %s touches %s", flowgraph.ErrNotConnectable, c.edge.ID, end)
		}
	}
	g.edges = append(g.edges, c.edge.Clone())
	return nil
}

func (c addEdge) String() string { return "add edge " + c.edge.ID }

type removeEdge struct {
	id string
}

func (c removeEdge) apply(g *graph) error {
	i := g.edgeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: edge %s", ErrElementNotFound, c.id)
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	return nil
}

func (c removeEdge) String() string { return "remove edge " + c.id }

type patchNode struct {
	id    string
	patch map[string]interface{}
}

func (c patchNode) apply(g *graph) error {
	i := g.nodeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: node %s", ErrElementNotFound, c.id)
	}
	data := g.nodes[i].Data
	if data == nil {
		var err error
		if data, err = flowgraph.NewPayload(g.nodes[i].Type); err != nil {
			return err
		}
	}
	merged, err := flowgraph.MergePayload(data, c.patch)
	if err != nil {
		return err
	}
	g.nodes[i].Data = merged
	return nil
}

func (c patchNode) String() string { return "patch node " + c.id }

type patchEdge struct {
	id    string
	patch map[string]interface{}
}

func (c patchEdge) apply(g *graph) error {
	i := g.edgeIndex(c.id)
	if i < 0 {
		return fmt.Errorf("%w: edge %s", ErrElementNotFound, c.id)
	}
	g.edges[i].Data = flowgraph.MergeEdgeData(g.edges[i].Data, c.patch)
	return nil
}

func (c patchEdge) String() string { return "patch edge " + c.id }
