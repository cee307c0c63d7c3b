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

package ledger

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for ledger operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingRequiredField is the error returned when a required adjustment field is empty.
	ErrorMissingRequiredField = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60002",
		Error:            "Missing required field",
		ErrorDescription: "Account code, amount and period date are required",
	}
	// ErrorInvalidAmount is the error returned when the amount is not a decimal number.
	ErrorInvalidAmount = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60003",
		Error:            "Invalid amount",
		ErrorDescription: "The amount must be a decimal number",
	}
	// ErrorInvalidPeriod is the error returned when a period or period date is malformed.
	ErrorInvalidPeriod = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60004",
		Error:            "Invalid period",
		ErrorDescription: "Period dates must be YYYY-MM-DD and periods YYYY-MM",
	}
	// ErrorMissingCompany is the error returned when no company is given or configured.
	ErrorMissingCompany = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60005",
		Error:            "Missing company",
		ErrorDescription: "Company ID is required",
	}
	// ErrorAdjustmentConflict is the error returned when an adjustment id is already taken.
	ErrorAdjustmentConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LDG-60006",
		Error:            "Adjustment conflict",
		ErrorDescription: "Another adjustment was recorded at the same instant, retry the request",
	}
)

// Server errors for ledger operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "LDG-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
