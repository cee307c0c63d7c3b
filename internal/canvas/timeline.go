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

package canvas

// TraceStep is one recorded step of an execution trace. Times are in milliseconds.
type TraceStep struct {
	At       int64    `json:"at"`
	Duration int64    `json:"duration"`
	NodeIDs  []string `json:"nodeIds"`
	EdgeIDs  []string `json:"edgeIds"`
}

// Trace is an ordered list of steps.
type Trace []TraceStep

// contains reports whether t falls in the step window [At, At+Duration).
// A step without duration only matches its own instant.
func (s TraceStep) contains(t int64) bool {
	if s.Duration <= 0 {
		return t == s.At
	}
	return t >= s.At && t < s.At+s.Duration
}

// Scrub returns the path of every step active at time t.
func (tr Trace) Scrub(t int64) ActivePath {
	var nodeIDs, edgeIDs []string
	for _, step := range tr {
		if step.contains(t) {
			nodeIDs = append(nodeIDs, step.NodeIDs...)
			edgeIDs = append(edgeIDs, step.EdgeIDs...)
		}
	}
	return NewActivePath(nodeIDs, edgeIDs)
}

// End returns the time at which the last step finishes.
func (tr Trace) End() int64 {
	var end int64
	for _, step := range tr {
		if e := step.At + max(step.Duration, 0); e > end {
			end = e
		}
	}
	return end
}
