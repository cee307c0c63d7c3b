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

package ingest

import "github.com/socar-georgia/finsight/internal/system/error/serviceerror"

// Client errors for ingestion operations.
var (
	// ErrorInvalidUpload is the error returned when the multipart upload cannot be read.
	ErrorInvalidUpload = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ING-60001",
		Error:            "Invalid upload",
		ErrorDescription: "The request must be a multipart form with a file field",
	}
)

// Server errors for ingestion operations.
var (
	// ErrorStorageFailure is the error returned when the upload cannot be stored.
	ErrorStorageFailure = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ING-65001",
		Error:            "Storage failure",
		ErrorDescription: "The uploaded file could not be stored",
	}
	// ErrorIngestFailed is the error returned when the analytics backend fails to ingest the file.
	ErrorIngestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ING-65002",
		Error:            "Ingestion failed",
		ErrorDescription: "The analytics backend could not ingest the uploaded file",
	}
)
