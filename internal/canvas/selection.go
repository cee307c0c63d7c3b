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

// Package canvas holds the working copy of a flow together with its selection, highlight and edit log.
package canvas

// SelectionKind tells what kind of element is selected.
type SelectionKind string

const (
	// SelectionNone is the NoSelection state.
	SelectionNone SelectionKind = ""
	// SelectionNode is the NodeSelected state.
	SelectionNode SelectionKind = "node"
	// SelectionEdge is the EdgeSelected state.
	SelectionEdge SelectionKind = "edge"
)

// Selection is the selected element. The zero value is NoSelection.
type Selection struct {
	Kind SelectionKind `json:"kind,omitempty"`
	ID   string        `json:"id,omitempty"`
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return s.Kind == SelectionNone
}

func (s Selection) isNode(id string) bool {
	return s.Kind == SelectionNode && s.ID == id
}

func (s Selection) isEdge(id string) bool {
	return s.Kind == SelectionEdge && s.ID == id
}
