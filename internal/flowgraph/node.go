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
	"bytes"
	"encoding/json"
	"fmt"
)

// Position is the canvas location of a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries explicit node dimensions.
type Style struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Node is a typed vertex of a flow.
type Node struct {
	ID         string
	Type       NodeKind
	Position   Position
	Data       Payload
	ParentNode string
	Style      *Style
}

// nodeJSON is the wire shape of a node with its flat data bag.
type nodeJSON struct {
	ID         string          `json:"id"`
	Type       NodeKind        `json:"type"`
	Position   Position        `json:"position"`
	Data       json.RawMessage `json:"data,omitempty"`
	ParentNode string          `json:"parentNode,omitempty"`
	Style      *Style          `json:"style,omitempty"`
}

// NewNode creates a node whose type follows the payload kind.
func NewNode(id string, data Payload, pos Position) Node {
	return Node{ID: id, Type: data.Kind(), Position: pos, Data: data}
}

// Base returns the common attributes, or an empty set when the node has no data.
func (n Node) Base() BaseData {
	if n.Data == nil {
		return BaseData{}
	}
	return *n.Data.Base()
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	c := n
	if n.Data != nil {
		c.Data = n.Data.clone()
	}
	if n.Style != nil {
		s := *n.Style
		c.Style = &s
	}
	return c
}

// MarshalJSON encodes the node with its payload as a flat data bag.
func (n Node) MarshalJSON() ([]byte, error) {
	data := json.RawMessage("{}")
	if n.Data != nil {
		raw, err := json.Marshal(n.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode data of node %s: %w", n.ID, err)
		}
		data = raw
	}
	return json.Marshal(nodeJSON{
		ID:         n.ID,
		Type:       n.Type,
		Position:   n.Position,
		Data:       data,
		ParentNode: n.ParentNode,
		Style:      n.Style,
	})
}

// UnmarshalJSON decodes a node, selecting the payload type from the node type.
// Keys in the data bag that the kind does not define are ignored.
func (n *Node) UnmarshalJSON(b []byte) error {
	var wire nodeJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	payload, err := NewPayload(wire.Type)
	if err != nil {
		return err
	}
	if len(wire.Data) > 0 && !bytes.Equal(bytes.TrimSpace(wire.Data), []byte("null")) {
		if err := json.Unmarshal(wire.Data, payload); err != nil {
			return fmt.Errorf("failed to decode data of node %s: %w", wire.ID, err)
		}
	}

	*n = Node{
		ID:         wire.ID,
		Type:       wire.Type,
		Position:   wire.Position,
		Data:       payload,
		ParentNode: wire.ParentNode,
		Style:      wire.Style,
	}
	return nil
}
