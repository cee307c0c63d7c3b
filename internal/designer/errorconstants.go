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

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for designer session operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingFlowReference is the error returned when the company or flow id is missing.
	ErrorMissingFlowReference = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60002",
		Error:            "Invalid request format",
		ErrorDescription: "Company ID and flow ID are required",
	}
	// ErrorSessionNotFound is the error returned when a session does not exist.
	ErrorSessionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60003",
		Error:            "Session not found",
		ErrorDescription: "The designer session with the specified id does not exist",
	}
	// ErrorElementNotFound is the error returned when a node or edge does not exist.
	ErrorElementNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60004",
		Error:            "Element not found",
		ErrorDescription: "The node or edge with the specified id does not exist",
	}
	// ErrorInvalidChange is the error returned when a change cannot be applied.
	ErrorInvalidChange = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60005",
		Error:            "Invalid change",
		ErrorDescription: "The change cannot be applied to the flow",
	}
	// ErrorVersionConflict is the error returned when the flow changed since it was loaded.
	ErrorVersionConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60006",
		Error:            "Version conflict",
		ErrorDescription: "The flow was saved by someone else since it was loaded",
	}
	// ErrorFlowNotLoaded is the error returned when flushing before the flow arrived.
	ErrorFlowNotLoaded = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60007",
		Error:            "Flow not loaded",
		ErrorDescription: "The flow has not been loaded yet",
	}
	// ErrorNoSelection is the error returned when the inspector is used without a selection.
	ErrorNoSelection = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60008",
		Error:            "Nothing selected",
		ErrorDescription: "Select a node or edge before using the inspector",
	}
	// ErrorInvalidActivePath is the error returned when an active path request is incomplete.
	ErrorInvalidActivePath = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DSG-60009",
		Error:            "Invalid active path",
		ErrorDescription: "Provide either node and edge ids or a trace with a time index",
	}
)

// Server errors for designer session operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DSG-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
