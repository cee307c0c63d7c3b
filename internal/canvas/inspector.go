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
	"encoding/json"
	"fmt"

	"github.com/socar-georgia/finsight/internal/flowgraph"
)

// Updater receives inspector patches.
type Updater interface {
	UpdateData(kind SelectionKind, id string, patch map[string]interface{}) error
}

// Inspector is the property panel bound to the current selection.
type Inspector struct {
	ctrl      *Controller
	selection Selection
	updater   Updater
}

// InspectedElement is the panel content.
type InspectedElement struct {
	Kind       SelectionKind          `json:"kind"`
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	Attributes []string               `json:"attributes,omitempty"`
	ReadOnly   bool                   `json:"readOnly"`
}

// OpenInspector returns the panel for the current selection, or nil when nothing is selected.
// A nil updater opens the panel read-only.
func (c *Controller) OpenInspector(updater Updater) *Inspector {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.IsEmpty() {
		return nil
	}
	return &Inspector{ctrl: c, selection: c.selection, updater: updater}
}

// Selection returns the element the panel is bound to.
func (i *Inspector) Selection() Selection {
	return i.selection
}

// ReadOnly reports whether patches are rejected.
func (i *Inspector) ReadOnly() bool {
	return i.updater == nil
}

// Element returns the current content of the bound element.
func (i *Inspector) Element() (InspectedElement, error) {
	c := i.ctrl
	c.mu.Lock()
	defer c.mu.Unlock()

	el := InspectedElement{Kind: i.selection.Kind, ID: i.selection.ID, ReadOnly: i.ReadOnly()}
	switch i.selection.Kind {
	case SelectionNode:
		idx := c.working.nodeIndex(i.selection.ID)
		if idx < 0 {
			return InspectedElement{}, fmt.Errorf("%w: node %s", ErrElementNotFound, i.selection.ID)
		}
		n := c.working.nodes[idx]
		bag, err := dataBag(n.Data)
		if err != nil {
			return InspectedElement{}, err
		}
		el.Type = string(n.Type)
		el.Data = bag
		el.Attributes = flowgraph.Attributes(n.Type)
	case SelectionEdge:
		idx := c.working.edgeIndex(i.selection.ID)
		if idx < 0 {
			return InspectedElement{}, fmt.Errorf("%w: edge %s", ErrElementNotFound, i.selection.ID)
		}
		e := c.working.edges[idx].Clone()
		el.Type = e.Type
		el.Data = e.Data
		if el.Data == nil {
			el.Data = map[string]interface{}{}
		}
	}
	return el, nil
}

// Update merges partial data into the element with the given id.
func (i *Inspector) Update(id string, partial map[string]interface{}) error {
	if i.updater == nil {
		return ErrReadOnly
	}
	return i.updater.UpdateData(i.selection.Kind, id, partial)
}

// SetDisabled sets the governance flag that excludes the node from downstream evaluation.
func (i *Inspector) SetDisabled(disabled bool) error {
	return i.toggle("disabled", disabled)
}

// SetLocked sets the governance flag that forces deterministic path selection downstream.
func (i *Inspector) SetLocked(locked bool) error {
	return i.toggle("locked", locked)
}

func (i *Inspector) toggle(key string, value bool) error {
	if i.selection.Kind != SelectionNode {
		return ErrNotANode
	}
	return i.Update(i.selection.ID, map[string]interface{}{key: value})
}

// Close clears the selection, which closes the panel.
func (i *Inspector) Close() {
	i.ctrl.ClearSelection()
}

func dataBag(p flowgraph.Payload) (map[string]interface{}, error) {
	bag := map[string]interface{}{}
	if p == nil {
		return bag, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, err
	}
	return bag, nil
}
