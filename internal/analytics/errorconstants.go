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

package analytics

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for analytics proxy operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ANL-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorPeriodNotLocked is the error returned when the requested period has not been locked.
	ErrorPeriodNotLocked = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ANL-60002",
		Error:            "Period not locked",
		ErrorDescription: "The period must be locked before its financial truth can be computed",
	}
	// ErrorUnsupportedAction is the error returned for unknown transaction actions.
	ErrorUnsupportedAction = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ANL-60003",
		Error:            "Unsupported action",
		ErrorDescription: "The action must be one of forecast, simulate, report, slides or metrics",
	}
)

// Server errors for analytics proxy operations.
var (
	// ErrorUpstreamFailure is the error returned when the analytics backend call fails.
	ErrorUpstreamFailure = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ANL-65002",
		Error:            "Analytics backend failure",
		ErrorDescription: "The analytics backend could not complete the request",
	}
)
