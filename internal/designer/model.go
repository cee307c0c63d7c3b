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

package designer

import (
	"github.com/socar-georgia/finsight/internal/canvas"
)

// CreateSessionRequest opens a designer session on a flow.
type CreateSessionRequest struct {
	CompanyID string `json:"companyId"`
	FlowID    string `json:"flowId"`
}

// ChangesRequest carries canvas events.
type ChangesRequest struct {
	NodeChanges []canvas.NodeChange `json:"nodeChanges"`
	EdgeChanges []canvas.EdgeChange `json:"edgeChanges"`
	Connections []canvas.Connection `json:"connections"`
}

// SelectionRequest moves the selection. An empty kind clears it.
type SelectionRequest struct {
	Kind canvas.SelectionKind `json:"kind"`
	ID   string               `json:"id"`
}

// InspectorPatchRequest merges data into the selected element.
type InspectorPatchRequest struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// ActivePathRequest sets the highlight from explicit ids or by scrubbing a trace.
type ActivePathRequest struct {
	NodeIDs []string     `json:"nodeIds"`
	EdgeIDs []string     `json:"edgeIds"`
	Trace   canvas.Trace `json:"trace,omitempty"`
	At      *int64       `json:"at,omitempty"`
}

// SessionResponse is the state of a session.
type SessionResponse struct {
	ID        string                   `json:"id"`
	View      canvas.View              `json:"view"`
	Inspector *canvas.InspectedElement `json:"inspector,omitempty"`
}

// FlushResponse reports the stored version after a flush.
type FlushResponse struct {
	Version int64 `json:"version"`
}
