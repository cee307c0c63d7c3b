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

package mapping

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for mapping upload operations.
var (
	// ErrorInvalidUpload is the error returned when the multipart upload cannot be read.
	ErrorInvalidUpload = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAP-60001",
		Error:            "Invalid upload",
		ErrorDescription: "The request must be a multipart form with a file field",
	}
	// ErrorInvalidSheet is the error returned when the mapping sheet cannot be parsed.
	ErrorInvalidSheet = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAP-60002",
		Error:            "Invalid mapping sheet",
		ErrorDescription: "The mapping file must be a csv or xlsx sheet with a header row",
	}
	// ErrorNoValidRules is the error returned when no row yields a rule.
	ErrorNoValidRules = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MAP-60003",
		Error:            "No valid rules",
		ErrorDescription: "No valid rules found. Each row needs a budget_article and a budget_holder",
	}
)

// Server errors for mapping upload operations.
var (
	// ErrorSubmissionFailed is the error returned when the analytics backend rejects the rule set.
	ErrorSubmissionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "MAP-65002",
		Error:            "Mapping submission failed",
		ErrorDescription: "The analytics backend did not accept the mapping rules",
	}
)
