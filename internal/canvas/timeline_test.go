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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceScrub(t *testing.T) {
	trace := Trace{
		{At: 0, Duration: 100, NodeIDs: []string{"src"}},
		{At: 50, Duration: 100, NodeIDs: []string{"truth"}, EdgeIDs: []string{"e-src-truth"}},
		{At: 200, NodeIDs: []string{"ai"}},
	}

	testCases := []struct {
		name      string
		at        int64
		wantNodes []string
		wantEdges []string
	}{
		{"FirstStepOnly", 10, []string{"src"}, []string{}},
		{"Overlap", 75, []string{"src", "truth"}, []string{"e-src-truth"}},
		{"WindowEndExclusive", 100, []string{"truth"}, []string{"e-src-truth"}},
		{"Gap", 170, []string{}, []string{}},
		{"Instant", 200, []string{"ai"}, []string{}},
		{"AfterInstant", 201, []string{}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := trace.Scrub(tc.at)
			assert.Equal(t, tc.wantNodes, path.NodeIDs())
			assert.Equal(t, tc.wantEdges, path.EdgeIDs())
		})
	}
	assert.Equal(t, int64(200), trace.End())
}

func TestActivePath(t *testing.T) {
	p := NewActivePath([]string{"b", "a", "a"}, nil)
	assert.True(t, p.HasNode("a"))
	assert.False(t, p.HasEdge("a"))
	assert.Equal(t, []string{"a", "b"}, p.NodeIDs())
	assert.False(t, p.IsEmpty())
	assert.True(t, NewActivePath(nil, nil).IsEmpty())
}
