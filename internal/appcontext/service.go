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

// Package appcontext keeps the per-user company, period and display selection.
package appcontext

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/socar-georgia/finsight/internal/system/broker"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const loggerComponentName = "AppContextService"

const periodLayout = "2006-01"

// AppContextServiceInterface defines the application context operations.
type AppContextServiceInterface interface {
	Get(ctx context.Context, userID string) (*AppContext, *serviceerror.ServiceError)
	Update(ctx context.Context, userID string, patch Patch) (*AppContext, *serviceerror.ServiceError)
	Subscribe(ctx context.Context, userID string) (<-chan AppContext, error)
}

// appContextService is the default implementation of AppContextServiceInterface.
type appContextService struct {
	store    appContextStoreInterface
	broker   broker.BrokerInterface
	defaults AppContext
}

// newAppContextService creates a new instance of appContextService.
func newAppContextService(store appContextStoreInterface, b broker.BrokerInterface,
	defaults AppContext) AppContextServiceInterface {
	return &appContextService{
		store:    store,
		broker:   b,
		defaults: defaults,
	}
}

func channelName(userID string) string {
	return "appctx:" + userID
}

// Get returns the user's context, or the configured defaults when none was stored.
func (s *appContextService) Get(ctx context.Context, userID string) (*AppContext, *serviceerror.ServiceError) {
	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorMissingUser
	}
	appCtx, svcErr := s.load(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	return &appCtx, nil
}

// Update applies patch, stores the result and notifies subscribers of the user.
func (s *appContextService) Update(ctx context.Context, userID string, patch Patch) (
	*AppContext, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorMissingUser
	}
	if svcErr := validatePatch(patch); svcErr != nil {
		return nil, svcErr
	}

	current, svcErr := s.load(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	updated := patch.apply(current)
	if updated == current {
		return &updated, nil
	}

	if err := s.store.Put(ctx, userID, updated); err != nil {
		logger.Error("Failed to store app context", log.String("userId", userID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	payload, err := json.Marshal(updated)
	if err == nil {
		err = s.broker.Publish(ctx, channelName(userID), payload)
	}
	if err != nil {
		logger.Warn("Failed to notify app context subscribers", log.String("userId", userID), log.Error(err))
	}

	logger.Debug("App context updated", log.String("userId", userID),
		log.String(log.LoggerKeyCompanyID, updated.CompanyID), log.String("period", updated.Period))
	return &updated, nil
}

// Subscribe streams the user's context after every change until ctx is done.
func (s *appContextService) Subscribe(ctx context.Context, userID string) (<-chan AppContext, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sub, err := s.broker.Subscribe(ctx, channelName(userID))
	if err != nil {
		return nil, err
	}

	out := make(chan AppContext, 1)
	go func() {
		defer close(out)
		defer func() {
			_ = sub.Close()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Messages():
				if !ok {
					return
				}
				var appCtx AppContext
				if err := json.Unmarshal(msg.Payload, &appCtx); err != nil {
					logger.Warn("Dropping malformed app context notification", log.Error(err))
					continue
				}
				select {
				case out <- appCtx:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *appContextService) load(ctx context.Context, userID string) (AppContext, *serviceerror.ServiceError) {
	appCtx, ok, err := s.store.Get(ctx, userID)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to load app context", log.String("userId", userID), log.Error(err))
		return AppContext{}, &ErrorInternalServerError
	}
	if !ok {
		return s.defaults, nil
	}
	return appCtx, nil
}

func validatePatch(patch Patch) *serviceerror.ServiceError {
	if patch.CompanyID != nil && strings.TrimSpace(*patch.CompanyID) == "" {
		return serviceerror.CustomServiceError(ErrorInvalidValue, "companyId must not be empty")
	}
	if patch.Period != nil {
		if _, err := time.Parse(periodLayout, *patch.Period); err != nil {
			return serviceerror.CustomServiceError(ErrorInvalidValue, "period must be a YYYY-MM month")
		}
	}
	if patch.Theme != nil && *patch.Theme != ThemeDark && *patch.Theme != ThemeLight {
		return serviceerror.CustomServiceError(ErrorInvalidValue, "theme must be dark or light")
	}
	if patch.Language != nil && strings.TrimSpace(*patch.Language) == "" {
		return serviceerror.CustomServiceError(ErrorInvalidValue, "language must not be empty")
	}
	return nil
}
