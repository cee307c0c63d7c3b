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

import (
	"net/http"

	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const handlerLoggerComponentName = "LedgerHandler"

// ledgerHandler is the handler for ledger operations.
type ledgerHandler struct {
	ledgerService LedgerServiceInterface
}

// newLedgerHandler creates a new instance of ledgerHandler.
func newLedgerHandler(ledgerService LedgerServiceInterface) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
	}
}

// HandleAdjustmentPostRequest handles the manual adjustment request.
func (lh *ledgerHandler) HandleAdjustmentPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[AdjustmentRequest](r)
	if err != nil {
		lh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	entry, svcErr := lh.ledgerService.CreateAdjustment(r.Context(), *request,
		r.Header.Get(serverconst.UserIDHeaderName))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusCreated, entry)
}

// HandleSummaryGetRequest handles the period summary request.
func (lh *ledgerHandler) HandleSummaryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	query := r.URL.Query()
	summary, svcErr := lh.ledgerService.ListSummary(r.Context(), query.Get("companyId"), query.Get("period"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, summary)
}

// handleError writes the error response for a service error.
func (lh *ledgerHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == ErrorAdjustmentConflict.Code {
			statusCode = http.StatusConflict
		}
	}
	if statusCode == http.StatusInternalServerError {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
	sysutils.WriteServiceError(w, statusCode, svcErr)
}
