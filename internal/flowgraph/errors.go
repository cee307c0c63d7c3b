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

import "errors"

var (
	// ErrUnknownNodeKind is returned for a node type missing from the registry.
	ErrUnknownNodeKind = errors.New("unknown node kind")
	// ErrEmptyID is returned for a node or edge without an id.
	ErrEmptyID = errors.New("element id is empty")
	// ErrDuplicateNodeID is returned when two nodes share an id.
	ErrDuplicateNodeID = errors.New("duplicate node id")
	// ErrDuplicateEdgeID is returned when two edges share an id.
	ErrDuplicateEdgeID = errors.New("duplicate edge id")
	// ErrPayloadMismatch is returned when a node's data does not match its type.
	ErrPayloadMismatch = errors.New("node data does not match node type")
	// ErrInvalidParent is returned when a parentNode is missing or is not a zone.
	ErrInvalidParent = errors.New("parent node must be an existing system zone")
	// ErrDanglingEdge is returned when an edge endpoint does not exist.
	ErrDanglingEdge = errors.New("edge endpoint does not exist")
	// ErrNotConnectable is returned when an edge touches a non-connectable node.
	ErrNotConnectable = errors.New("edge endpoint is not connectable")
	// ErrUnknownAttribute is returned when a patch names a key the element does not have.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrInvalidAttributeValue is returned when a patch value has the wrong type.
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
)
