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

import (
	"net/http"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "IngestHandler"

// ingestHandler is the handler for file ingestion.
type ingestHandler struct {
	ingestService IngestServiceInterface
}

// newIngestHandler creates a new instance of ingestHandler.
func newIngestHandler(ingestService IngestServiceInterface) *ingestHandler {
	return &ingestHandler{
		ingestService: ingestService,
	}
}

// HandleIngestPostRequest handles the multipart file upload.
func (ih *ingestHandler) HandleIngestPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	r.Body = http.MaxBytesReader(w, r.Body, serverconst.MaxUploadSize)
	if err := r.ParseMultipartForm(serverconst.MaxUploadSize); err != nil {
		ih.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidUpload, err.Error()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		ih.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidUpload, err.Error()))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Error("Failed to close uploaded file", log.Error(closeErr))
		}
	}()

	result, svcErr := ih.ingestService.Upload(r.Context(), UploadRequest{
		FileName: header.Filename,
		Content:  file,
		Entity:   r.FormValue("entity"),
		Period:   r.FormValue("period"),
		UserID:   r.Header.Get(serverconst.UserIDHeaderName),
	})
	if svcErr != nil {
		ih.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, result)
}

// handleError writes the error response for a service error.
func (ih *ingestHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	} else if svcErr.Code == ErrorIngestFailed.Code {
		statusCode = http.StatusBadGateway
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Ingestion request failed", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
