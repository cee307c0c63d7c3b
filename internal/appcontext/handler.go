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

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "AppContextHandler"

const eventName = "app-context"

// appContextHandler is the handler for application context operations.
type appContextHandler struct {
	appContextService AppContextServiceInterface
}

// newAppContextHandler creates a new instance of appContextHandler.
func newAppContextHandler(appContextService AppContextServiceInterface) *appContextHandler {
	return &appContextHandler{
		appContextService: appContextService,
	}
}

// HandleAppContextGetRequest returns the caller's application context.
func (ah *appContextHandler) HandleAppContextGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	appCtx, svcErr := ah.appContextService.Get(r.Context(), r.Header.Get(serverconst.UserIDHeaderName))
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, appCtx)
}

// HandleAppContextPatchRequest updates the caller's application context.
func (ah *appContextHandler) HandleAppContextPatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	patch, err := sysutils.DecodeJSONBody[Patch](r)
	if err != nil {
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	appCtx, svcErr := ah.appContextService.Update(r.Context(), r.Header.Get(serverconst.UserIDHeaderName), *patch)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, appCtx)
}

// HandleAppContextEventsRequest streams the caller's application context as server-sent events.
// The current context is sent first, then one event per change until the client disconnects.
func (ah *appContextHandler) HandleAppContextEventsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	current, svcErr := ah.appContextService.Get(r.Context(), userID)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}
	changes, err := ah.appContextService.Subscribe(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to subscribe to app context changes", log.Error(err))
		ah.handleError(w, logger, &ErrorInternalServerError)
		return
	}

	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if !writeEvent(w, rc, *current, logger) {
		return
	}
	for appCtx := range changes {
		if !writeEvent(w, rc, appCtx, logger) {
			return
		}
	}
}

// writeEvent writes one app-context event and flushes it. It reports whether the stream is still usable.
func writeEvent(w http.ResponseWriter, rc *http.ResponseController, appCtx AppContext, logger *log.Logger) bool {
	data, err := json.Marshal(appCtx)
	if err != nil {
		logger.Error("Failed to encode app context event", log.Error(err))
		return false
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data); err != nil {
		return false
	}
	if err := rc.Flush(); err != nil {
		logger.Debug("App context stream closed", log.Error(err))
		return false
	}
	return true
}

// handleError writes the error response for a service error.
func (ah *appContextHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == ErrorMissingUser.Code {
			statusCode = http.StatusUnauthorized
		}
	}
	if statusCode == http.StatusInternalServerError {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
