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
	"context"
	"fmt"
	"sync"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "CanvasController"

// Controller owns the working copy of one flow. Edits apply synchronously and are kept in a
// pending command log until Flush writes the working copy back through the store.
type Controller struct {
	mu          sync.Mutex
	store       flowstore.FlowStoreInterface
	companyID   string
	flowID      string
	userID      string
	policy      flowstore.ConflictPolicy
	working     graph
	loaded      bool
	fallback    bool
	baseVersion int64
	pending     []pendingCommand
	seq         uint64
	selection   Selection
	activePath  ActivePath
	logger      *log.Logger
}

// NewController creates a controller for a flow. It shows nothing until the first snapshot.
func NewController(store flowstore.FlowStoreInterface, companyID, flowID, userID string,
	policy flowstore.ConflictPolicy) *Controller {
	return &Controller{
		store:      store,
		companyID:  companyID,
		flowID:     flowID,
		userID:     userID,
		policy:     policy,
		activePath: NewActivePath(nil, nil),
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
			log.String(log.LoggerKeyCompanyID, companyID), log.String(log.LoggerKeyFlowID, flowID)),
	}
}

// ApplySnapshot replaces the working copy with a store snapshot and replays pending commands on top.
// Commands that no longer apply are dropped.
func (c *Controller) ApplySnapshot(snap flowstore.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && snap.Fallback && !c.fallback {
		return
	}
	if c.loaded && !snap.Fallback && !c.fallback && snap.Version < c.baseVersion {
		c.logger.Debug("Ignoring snapshot older than the working copy base",
			log.Int64("version", snap.Version), log.Int64("baseVersion", c.baseVersion))
		return
	}

	g := graph{nodes: flowgraph.CloneNodes(snap.Nodes), edges: flowgraph.CloneEdges(snap.Edges)}
	kept := make([]pendingCommand, 0, len(c.pending))
	for _, p := range c.pending {
		if err := p.cmd.apply(&g); err != nil {
			c.logger.Warn("Dropping local edit that no longer applies",
				log.String("command", p.cmd.String()), log.Error(err))
			continue
		}
		kept = append(kept, p)
	}

	c.working = g
	c.pending = kept
	c.baseVersion = snap.Version
	c.fallback = snap.Fallback
	c.loaded = true
	c.dropStaleSelection()
}

// record applies a command to the working copy and appends it to the pending log.
// Consecutive moves of the same node collapse into one entry.
func (c *Controller) record(cmd command) error {
	if err := cmd.apply(&c.working); err != nil {
		return err
	}
	c.seq++
	if mv, ok := cmd.(moveNode); ok && len(c.pending) > 0 {
		last := &c.pending[len(c.pending)-1]
		if prev, ok := last.cmd.(moveNode); ok && prev.id == mv.id {
			*last = pendingCommand{seq: c.seq, cmd: mv}
			return nil
		}
	}
	c.pending = append(c.pending, pendingCommand{seq: c.seq, cmd: cmd})
	return nil
}

// dropStaleSelection resets the selection when its element has disappeared.
func (c *Controller) dropStaleSelection() {
	switch c.selection.Kind {
	case SelectionNode:
		if c.working.nodeIndex(c.selection.ID) < 0 {
			c.selection = Selection{}
		}
	case SelectionEdge:
		if c.working.edgeIndex(c.selection.ID) < 0 {
			c.selection = Selection{}
		}
	}
}

// ClickNode moves to NodeSelected.
func (c *Controller) ClickNode(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectNode(id, true)
}

// ClickEdge moves to EdgeSelected.
func (c *Controller) ClickEdge(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectEdge(id, true)
}

// ClickBackground moves to NoSelection.
func (c *Controller) ClickBackground() {
	c.ClearSelection()
}

// ClearSelection moves to NoSelection.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = Selection{}
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// SetActivePath replaces the timeline highlight.
func (c *Controller) SetActivePath(p ActivePath) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activePath = p
}

// ActivePath returns the timeline highlight.
func (c *Controller) ActivePath() ActivePath {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activePath
}

// UpdateData merges a patch into the data of a node or edge of the working copy.
func (c *Controller) UpdateData(kind SelectionKind, id string, patch map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		p[k] = v
	}
	switch kind {
	case SelectionNode:
		return c.record(patchNode{id: id, patch: p})
	case SelectionEdge:
		return c.record(patchEdge{id: id, patch: p})
	}
	return fmt.Errorf("%w: cannot update element of kind %q", ErrInvalidChange, kind)
}

// Nodes returns a copy of the working nodes.
func (c *Controller) Nodes() []flowgraph.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return flowgraph.CloneNodes(c.working.nodes)
}

// Edges returns a copy of the working edges.
func (c *Controller) Edges() []flowgraph.Edge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return flowgraph.CloneEdges(c.working.edges)
}

// Pending describes the unflushed local edits in order.
func (c *Controller) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.pending))
	for i, p := range c.pending {
		out[i] = p.cmd.String()
	}
	return out
}

// BaseVersion returns the store version the working copy is based on.
func (c *Controller) BaseVersion() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseVersion
}

// Flush persists the working copy. On success the flushed commands leave the log;
// on failure the log is kept so the flush can be retried.
func (c *Controller) Flush(ctx context.Context) (int64, error) {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return 0, ErrNotLoaded
	}
	snapshot := c.working.clone()
	base := c.baseVersion
	flushedSeq := c.seq
	flushed := len(c.pending)
	c.mu.Unlock()

	version, err := c.store.Save(ctx, c.companyID, c.flowID, snapshot.nodes, snapshot.edges,
		flowstore.SaveOptions{ExpectedVersion: base, Policy: c.policy, UpdatedBy: c.userID})
	if err != nil {
		c.logger.Error("Failed to flush working copy", log.Error(err), log.Int("pending", flushed))
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	remaining := make([]pendingCommand, 0, len(c.pending))
	for _, p := range c.pending {
		if p.seq > flushedSeq {
			remaining = append(remaining, p)
		}
	}
	c.pending = remaining
	c.baseVersion = version
	c.fallback = false
	c.logger.Debug("Flushed working copy", log.Int64("version", version), log.Int("commands", flushed))
	return version, nil
}

// EdgeView is an edge with its highlight flags.
type EdgeView struct {
	flowgraph.Edge
	Selected bool `json:"selected"`
	Active   bool `json:"active"`
}

// View is the renderable state of the canvas.
type View struct {
	CompanyID   string           `json:"companyId"`
	FlowID      string           `json:"flowId"`
	Loaded      bool             `json:"loaded"`
	Fallback    bool             `json:"fallback"`
	BaseVersion int64            `json:"baseVersion"`
	Nodes       []flowgraph.Card `json:"nodes"`
	Edges       []EdgeView       `json:"edges"`
	Selection   Selection        `json:"selection"`
	ActiveNodes []string         `json:"activeNodeIds"`
	ActiveEdges []string         `json:"activeEdgeIds"`
	Pending     int              `json:"pending"`
}

// View renders the working copy. An element is active when it is selected or on the active path.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		CompanyID:   c.companyID,
		FlowID:      c.flowID,
		Loaded:      c.loaded,
		Fallback:    c.fallback,
		BaseVersion: c.baseVersion,
		Nodes:       make([]flowgraph.Card, 0, len(c.working.nodes)),
		Edges:       make([]EdgeView, 0, len(c.working.edges)),
		Selection:   c.selection,
		ActiveNodes: c.activePath.NodeIDs(),
		ActiveEdges: c.activePath.EdgeIDs(),
		Pending:     len(c.pending),
	}
	for _, n := range c.working.nodes {
		selected := c.selection.isNode(n.ID)
		v.Nodes = append(v.Nodes, flowgraph.RenderCard(n, selected, selected || c.activePath.HasNode(n.ID)))
	}
	for _, e := range c.working.edges {
		selected := c.selection.isEdge(e.ID)
		v.Edges = append(v.Edges, EdgeView{
			Edge:     e.Clone(),
			Selected: selected,
			Active:   selected || c.activePath.HasEdge(e.ID),
		})
	}
	return v
}
