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

package appcontext

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for application context operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "APC-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingUser is the error returned when the caller is not identified.
	ErrorMissingUser = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "APC-60002",
		Error:            "Missing user",
		ErrorDescription: "The X-User-ID header is required",
	}
	// ErrorInvalidValue is the error returned when a patched field has an invalid value.
	ErrorInvalidValue = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "APC-60003",
		Error:            "Invalid value",
		ErrorDescription: "One of the application context fields has an invalid value",
	}
)

// Server errors for application context operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "APC-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
