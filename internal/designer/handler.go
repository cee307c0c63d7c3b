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

import (
	"net/http"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "DesignerHandler"

// designerHandler is the handler for designer session operations.
type designerHandler struct {
	designerService DesignerServiceInterface
}

// newDesignerHandler creates a new instance of designerHandler.
func newDesignerHandler(designerService DesignerServiceInterface) *designerHandler {
	return &designerHandler{
		designerService: designerService,
	}
}

// HandleSessionPostRequest handles the create session request.
func (dh *designerHandler) HandleSessionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[CreateSessionRequest](r)
	if err != nil {
		dh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	session, svcErr := dh.designerService.CreateSession(r.Context(), *request,
		r.Header.Get(serverconst.UserIDHeaderName))
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSON(w, http.StatusCreated, session)
	logger.Debug("Successfully created designer session", log.String(log.LoggerKeySessionID, session.ID))
}

// HandleSessionGetRequest handles the get session request.
func (dh *designerHandler) HandleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	session, svcErr := dh.designerService.GetSession(r.PathValue("id"))
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleSessionDeleteRequest handles the close session request.
func (dh *designerHandler) HandleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	id := r.PathValue("id")
	if svcErr := dh.designerService.CloseSession(id); svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully closed designer session", log.String(log.LoggerKeySessionID, id))
}

// HandleChangesPostRequest handles canvas change events.
func (dh *designerHandler) HandleChangesPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[ChangesRequest](r)
	if err != nil {
		dh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	session, svcErr := dh.designerService.ApplyChanges(r.PathValue("id"), *request)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleSelectionPostRequest handles clicks on nodes, edges and the background.
func (dh *designerHandler) HandleSelectionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SelectionRequest](r)
	if err != nil {
		dh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	session, svcErr := dh.designerService.Select(r.PathValue("id"), *request)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleInspectorPatchRequest handles inspector edits.
func (dh *designerHandler) HandleInspectorPatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[InspectorPatchRequest](r)
	if err != nil {
		dh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	session, svcErr := dh.designerService.PatchInspector(r.PathValue("id"), *request)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleInspectorDeleteRequest closes the inspector panel.
func (dh *designerHandler) HandleInspectorDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	session, svcErr := dh.designerService.CloseInspector(r.PathValue("id"))
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleActivePathPutRequest sets the timeline highlight.
func (dh *designerHandler) HandleActivePathPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[ActivePathRequest](r)
	if err != nil {
		dh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	session, svcErr := dh.designerService.SetActivePath(r.PathValue("id"), *request)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, session)
}

// HandleFlushPostRequest persists the working copy.
func (dh *designerHandler) HandleFlushPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	id := r.PathValue("id")
	resp, svcErr := dh.designerService.Flush(r.Context(), id)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
	logger.Debug("Successfully flushed designer session", log.String(log.LoggerKeySessionID, id),
		log.Int64("version", resp.Version))
}

// HandleRegistryGetRequest lists the registered node kinds.
func (dh *designerHandler) HandleRegistryGetRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSON(w, http.StatusOK, dh.designerService.Registry())
}

// handleError writes the error response for a service error.
func (dh *designerHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorSessionNotFound.Code, ErrorElementNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorVersionConflict.Code, ErrorFlowNotLoaded.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	}

	if statusCode == http.StatusInternalServerError {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
