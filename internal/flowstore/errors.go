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

package flowstore

import (
	"errors"
	"fmt"
)

var (
	// ErrFlowNotFound is returned when no document exists for a company and flow id.
	ErrFlowNotFound = errors.New("flow not found")
	// ErrVersionConflict is returned when a save is based on a stale version under the reject policy.
	ErrVersionConflict = errors.New("flow version conflict")
	// ErrInvalidFlow is returned when a graph fails structural validation.
	ErrInvalidFlow = errors.New("invalid flow")
)

// Operations reported by PersistenceError.
const (
	OpLoad = "load"
	OpSave = "save"
)

// PersistenceError reports a rejected read or write of a flow document.
type PersistenceError struct {
	Op        string
	CompanyID string
	FlowID    string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("flow %s failed for company %s flow %s: %v", e.Op, e.CompanyID, e.FlowID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
