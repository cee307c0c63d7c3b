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
	"sync"
	"time"

	"github.com/socar-georgia/finsight/internal/canvas"
	"github.com/socar-georgia/finsight/internal/flowstore"
)

// session binds one canvas controller to its flow subscription.
type session struct {
	id       string
	userID   string
	ctrl     *canvas.Controller
	sub      flowstore.SubscriptionInterface
	done     chan struct{}
	mu       sync.Mutex
	lastUsed time.Time
	closed   sync.Once
}

func newSession(id, userID string, ctrl *canvas.Controller, sub flowstore.SubscriptionInterface,
	now time.Time) *session {
	s := &session{
		id:       id,
		userID:   userID,
		ctrl:     ctrl,
		sub:      sub,
		done:     make(chan struct{}),
		lastUsed: now,
	}
	go s.pump()
	return s
}

// pump feeds store snapshots into the controller until the subscription ends.
func (s *session) pump() {
	defer close(s.done)
	for snap := range s.sub.Snapshots() {
		s.ctrl.ApplySnapshot(snap)
	}
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastUsed = now
	s.mu.Unlock()
}

func (s *session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// close unsubscribes and waits for the pump to drain.
func (s *session) close() {
	s.closed.Do(func() {
		s.sub.Unsubscribe()
		<-s.done
	})
}

func (s *session) response() *SessionResponse {
	resp := &SessionResponse{ID: s.id, View: s.ctrl.View()}
	if inspector := s.ctrl.OpenInspector(nil); inspector != nil {
		if el, err := inspector.Element(); err == nil {
			el.ReadOnly = false
			resp.Inspector = &el
		}
	}
	return resp
}
