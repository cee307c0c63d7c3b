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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/apierror"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
)

// maxJSONBodySize caps request bodies decoded as JSON (1 MiB).
const maxJSONBodySize = 1 << 20

// DecodeJSONBody decodes the JSON request body into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}
	var data T
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, err
	}
	return &data, nil
}

// WriteJSON writes the value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
	}
}

// WriteServiceError writes a service error as an API error response.
func WriteServiceError(w http.ResponseWriter, statusCode int, svcErr *serviceerror.ServiceError) {
	WriteJSON(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int, respHeaders []map[string]string) {
	logger := log.GetLogger()
	logger.Error("Error in HTTP response", log.String("error", code), log.String("description", desc))

	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": desc,
	})
	if err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
		return
	}
}
