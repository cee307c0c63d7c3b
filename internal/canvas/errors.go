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

import "errors"

var (
	// ErrElementNotFound is returned when a node or edge id is not in the working copy.
	ErrElementNotFound = errors.New("element not found")
	// ErrReadOnly is returned by an inspector that was opened without an updater.
	ErrReadOnly = errors.New("inspector is read-only")
	// ErrNotANode is returned when a node-only operation targets an edge.
	ErrNotANode = errors.New("element is not a node")
	// ErrNotLoaded is returned when flushing before the first snapshot arrived.
	ErrNotLoaded = errors.New("flow has not been loaded")
	// ErrInvalidChange is returned for a change event that cannot be applied.
	ErrInvalidChange = errors.New("invalid change")
)
