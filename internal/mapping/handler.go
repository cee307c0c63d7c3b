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

import (
	"net/http"
	"strconv"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "MappingHandler"

// mappingHandler is the handler for mapping uploads.
type mappingHandler struct {
	mappingService MappingServiceInterface
}

// newMappingHandler creates a new instance of mappingHandler.
func newMappingHandler(mappingService MappingServiceInterface) *mappingHandler {
	return &mappingHandler{
		mappingService: mappingService,
	}
}

// HandleUploadPostRequest handles the multipart mapping upload.
func (mh *mappingHandler) HandleUploadPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	r.Body = http.MaxBytesReader(w, r.Body, serverconst.MaxUploadSize)
	if err := r.ParseMultipartForm(serverconst.MaxUploadSize); err != nil {
		mh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidUpload, err.Error()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		mh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidUpload, err.Error()))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Error("Failed to close uploaded file", log.Error(closeErr))
		}
	}()

	activate, _ := strconv.ParseBool(r.FormValue("activate"))
	result, svcErr := mh.mappingService.Upload(r.Context(), UploadRequest{
		FileName:      header.Filename,
		Content:       file,
		Name:          r.FormValue("name"),
		SourceProfile: r.FormValue("sourceProfile"),
		Activate:      activate,
	})
	if svcErr != nil {
		mh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, result)
}

// handleError writes the error response for a service error.
func (mh *mappingHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	} else if svcErr.Code == ErrorSubmissionFailed.Code {
		statusCode = http.StatusBadGateway
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Mapping upload failed", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
