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

import (
	"errors"
	"net/http"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "AnalyticsHandler"

// analyticsHandler proxies selected analytics backend calls.
type analyticsHandler struct {
	client AnalyticsClientInterface
}

// newAnalyticsHandler creates a new instance of analyticsHandler.
func newAnalyticsHandler(client AnalyticsClientInterface) *analyticsHandler {
	return &analyticsHandler{
		client: client,
	}
}

// HandleTruthPostRequest handles the financial truth request.
func (ah *analyticsHandler) HandleTruthPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[TruthRequest](r)
	if err != nil {
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	resp, err := ah.client.FinancialTruth(r.Context(), *request)
	if err != nil {
		ah.handleClientError(w, logger, err)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
}

// HandleQueryPostRequest handles the AI query request.
func (ah *analyticsHandler) HandleQueryPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[QueryRequest](r)
	if err != nil {
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}
	if request.UserID == "" {
		request.UserID = r.Header.Get(serverconst.UserIDHeaderName)
	}

	resp, err := ah.client.Query(r.Context(), *request)
	if err != nil {
		ah.handleClientError(w, logger, err)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
}

// HandleTransactionPostRequest handles the process-transaction request.
func (ah *analyticsHandler) HandleTransactionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[map[string]interface{}](r)
	if err != nil {
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	params := *request
	action, _ := params["action"].(string)
	delete(params, "action")

	resp, err := ah.client.ProcessTransaction(r.Context(), action, params)
	if err != nil {
		ah.handleClientError(w, logger, err)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
}

// handleClientError maps analytics client errors onto service errors.
func (ah *analyticsHandler) handleClientError(w http.ResponseWriter, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, ErrPeriodNotLocked):
		ah.handleError(w, logger, &ErrorPeriodNotLocked)
	case errors.Is(err, ErrUnsupportedAction):
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorUnsupportedAction, err.Error()))
	default:
		ah.handleError(w, logger, serviceerror.CustomServiceError(ErrorUpstreamFailure, err.Error()))
	}
}

// handleError writes the error response for a service error.
func (ah *analyticsHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == ErrorPeriodNotLocked.Code {
			statusCode = http.StatusConflict
		}
	} else if svcErr.Code == ErrorUpstreamFailure.Code {
		statusCode = http.StatusBadGateway
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Analytics request failed", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
