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

// Package designer exposes server-side canvas sessions over HTTP.
package designer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/socar-georgia/finsight/internal/canvas"
	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/internal/system/error/serviceerror"
	"github.com/socar-georgia/finsight/internal/system/log"
	sysutils "github.com/socar-georgia/finsight/internal/system/utils"
)

const loggerComponentName = "DesignerService"

// DesignerServiceInterface defines the designer session operations.
type DesignerServiceInterface interface {
	CreateSession(ctx context.Context, request CreateSessionRequest, userID string) (
		*SessionResponse, *serviceerror.ServiceError)
	GetSession(id string) (*SessionResponse, *serviceerror.ServiceError)
	CloseSession(id string) *serviceerror.ServiceError
	ApplyChanges(id string, request ChangesRequest) (*SessionResponse, *serviceerror.ServiceError)
	Select(id string, request SelectionRequest) (*SessionResponse, *serviceerror.ServiceError)
	PatchInspector(id string, request InspectorPatchRequest) (*SessionResponse, *serviceerror.ServiceError)
	CloseInspector(id string) (*SessionResponse, *serviceerror.ServiceError)
	SetActivePath(id string, request ActivePathRequest) (*SessionResponse, *serviceerror.ServiceError)
	Flush(ctx context.Context, id string) (*FlushResponse, *serviceerror.ServiceError)
	Registry() []flowgraph.Presentation
	Start(ctx context.Context)
	Stop()
}

// designerService is the default implementation of DesignerServiceInterface.
type designerService struct {
	store       flowstore.FlowStoreInterface
	policy      flowstore.ConflictPolicy
	idleTimeout time.Duration
	now         func() time.Time
	newID       func() string

	mu       sync.Mutex
	sessions map[string]*session
	stop     context.CancelFunc
	sweeper  sync.WaitGroup
}

// newDesignerService creates a new instance of designerService.
func newDesignerService(store flowstore.FlowStoreInterface, policy flowstore.ConflictPolicy,
	idleTimeout time.Duration) *designerService {
	return &designerService{
		store:       store,
		policy:      policy,
		idleTimeout: idleTimeout,
		now:         time.Now,
		newID:       sysutils.GenerateUUID,
		sessions:    make(map[string]*session),
	}
}

// CreateSession subscribes to the flow and opens a canvas on it.
func (ds *designerService) CreateSession(ctx context.Context, request CreateSessionRequest, userID string) (
	*SessionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.CompanyID == "" || request.FlowID == "" {
		return nil, &ErrorMissingFlowReference
	}

	sub, err := ds.store.Load(ctx, request.CompanyID, request.FlowID)
	if err != nil {
		logger.Error("Failed to load flow", log.String(log.LoggerKeyCompanyID, request.CompanyID),
			log.String(log.LoggerKeyFlowID, request.FlowID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	ctrl := canvas.NewController(ds.store, request.CompanyID, request.FlowID, userID, ds.policy)
	s := newSession(ds.newID(), userID, ctrl, sub, ds.now())

	ds.mu.Lock()
	ds.sessions[s.id] = s
	ds.mu.Unlock()

	logger.Debug("Designer session created", log.String(log.LoggerKeySessionID, s.id),
		log.String(log.LoggerKeyCompanyID, request.CompanyID), log.String(log.LoggerKeyFlowID, request.FlowID))
	return s.response(), nil
}

// lookup returns the session and marks it used.
func (ds *designerService) lookup(id string) (*session, *serviceerror.ServiceError) {
	ds.mu.Lock()
	s, ok := ds.sessions[id]
	ds.mu.Unlock()
	if !ok {
		return nil, &ErrorSessionNotFound
	}
	s.touch(ds.now())
	return s, nil
}

// GetSession returns the state of a session.
func (ds *designerService) GetSession(id string) (*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.response(), nil
}

// CloseSession unsubscribes and forgets a session.
func (ds *designerService) CloseSession(id string) *serviceerror.ServiceError {
	ds.mu.Lock()
	s, ok := ds.sessions[id]
	delete(ds.sessions, id)
	ds.mu.Unlock()
	if !ok {
		return &ErrorSessionNotFound
	}
	s.close()
	return nil
}

// ApplyChanges applies node changes, edge changes and connections in that order.
func (ds *designerService) ApplyChanges(id string, request ChangesRequest) (
	*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.ctrl.ApplyNodeChanges(request.NodeChanges); err != nil {
		return nil, translateCanvasError(err)
	}
	if err := s.ctrl.ApplyEdgeChanges(request.EdgeChanges); err != nil {
		return nil, translateCanvasError(err)
	}
	for _, conn := range request.Connections {
		if _, err := s.ctrl.Connect(conn); err != nil {
			return nil, translateCanvasError(err)
		}
	}
	return s.response(), nil
}

// Select applies a click on a node, an edge or the background.
func (ds *designerService) Select(id string, request SelectionRequest) (*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	var err error
	switch request.Kind {
	case canvas.SelectionNone:
		s.ctrl.ClickBackground()
	case canvas.SelectionNode:
		err = s.ctrl.ClickNode(request.ID)
	case canvas.SelectionEdge:
		err = s.ctrl.ClickEdge(request.ID)
	default:
		return nil, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Selection kind must be node, edge or empty")
	}
	if err != nil {
		return nil, translateCanvasError(err)
	}
	return s.response(), nil
}

// PatchInspector merges data into the selected element through the inspector.
func (ds *designerService) PatchInspector(id string, request InspectorPatchRequest) (
	*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	inspector := s.ctrl.OpenInspector(s.ctrl)
	if inspector == nil {
		return nil, &ErrorNoSelection
	}
	target := request.ID
	if target == "" {
		target = inspector.Selection().ID
	}
	if err := inspector.Update(target, request.Data); err != nil {
		return nil, translateCanvasError(err)
	}
	return s.response(), nil
}

// CloseInspector closes the panel, clearing the selection.
func (ds *designerService) CloseInspector(id string) (*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}
	if inspector := s.ctrl.OpenInspector(nil); inspector != nil {
		inspector.Close()
	}
	return s.response(), nil
}

// SetActivePath sets the timeline highlight.
func (ds *designerService) SetActivePath(id string, request ActivePathRequest) (
	*SessionResponse, *serviceerror.ServiceError) {
	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	switch {
	case len(request.Trace) > 0 && request.At != nil:
		s.ctrl.SetActivePath(request.Trace.Scrub(*request.At))
	case len(request.Trace) > 0 || request.At != nil:
		return nil, &ErrorInvalidActivePath
	default:
		s.ctrl.SetActivePath(canvas.NewActivePath(request.NodeIDs, request.EdgeIDs))
	}
	return s.response(), nil
}

// Flush persists the working copy of the session.
func (ds *designerService) Flush(ctx context.Context, id string) (*FlushResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, id))

	s, svcErr := ds.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	version, err := s.ctrl.Flush(ctx)
	if err != nil {
		switch {
		case errors.Is(err, flowstore.ErrVersionConflict):
			return nil, &ErrorVersionConflict
		case errors.Is(err, canvas.ErrNotLoaded):
			return nil, &ErrorFlowNotLoaded
		case errors.Is(err, flowstore.ErrInvalidFlow):
			return nil, serviceerror.CustomServiceError(ErrorInvalidChange, err.Error())
		}
		logger.Error("Failed to flush session", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return &FlushResponse{Version: version}, nil
}

// Registry lists the node kinds and their presentation.
func (ds *designerService) Registry() []flowgraph.Presentation {
	return flowgraph.Presentations()
}

// Start runs the idle session sweeper until Stop or ctx cancellation.
func (ds *designerService) Start(ctx context.Context) {
	if ds.idleTimeout <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	ds.mu.Lock()
	ds.stop = cancel
	ds.mu.Unlock()

	interval := max(ds.idleTimeout/2, time.Second)
	ds.sweeper.Add(1)
	go func() {
		defer ds.sweeper.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ds.sweepIdle()
			}
		}
	}()
}

// sweepIdle closes sessions unused for longer than the idle timeout.
func (ds *designerService) sweepIdle() int {
	cutoff := ds.now().Add(-ds.idleTimeout)

	ds.mu.Lock()
	var expired []*session
	for id, s := range ds.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(ds.sessions, id)
		}
	}
	ds.mu.Unlock()

	for _, s := range expired {
		s.close()
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Closed idle designer session", log.String(log.LoggerKeySessionID, s.id))
	}
	return len(expired)
}

// Stop halts the sweeper and closes every session.
func (ds *designerService) Stop() {
	ds.mu.Lock()
	if ds.stop != nil {
		ds.stop()
	}
	sessions := ds.sessions
	ds.sessions = make(map[string]*session)
	ds.mu.Unlock()

	ds.sweeper.Wait()
	for _, s := range sessions {
		s.close()
	}
}

// translateCanvasError maps canvas and graph errors to service errors.
func translateCanvasError(err error) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, canvas.ErrElementNotFound):
		return serviceerror.CustomServiceError(ErrorElementNotFound, err.Error())
	case errors.Is(err, canvas.ErrNotANode), errors.Is(err, canvas.ErrInvalidChange),
		errors.Is(err, flowgraph.ErrUnknownAttribute), errors.Is(err, flowgraph.ErrInvalidAttributeValue),
		errors.Is(err, flowgraph.ErrUnknownNodeKind), errors.Is(err, flowgraph.ErrDuplicateNodeID),
		errors.Is(err, flowgraph.ErrDuplicateEdgeID), errors.Is(err, flowgraph.ErrDanglingEdge),
		errors.Is(err, flowgraph.ErrNotConnectable), errors.Is(err, flowgraph.ErrInvalidParent):
		return serviceerror.CustomServiceError(ErrorInvalidChange, err.Error())
	}
	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Error("Unexpected canvas error", log.Error(err))
	return &ErrorInternalServerError
}
