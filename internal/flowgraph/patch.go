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

package flowgraph

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// MergePayload returns a copy of the payload with the patch shallow-merged into it.
// Keys absent from the patch keep their value; a null value resets the key.
func MergePayload(p Payload, patch map[string]interface{}) (Payload, error) {
	known := attributeSet(p)
	for key := range patch {
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("%w: %q for %s node", ErrUnknownAttribute, key, p.Kind())
		}
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	bag := make(map[string]interface{})
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, err
	}
	for key, value := range patch {
		bag[key] = value
	}

	merged, err := json.Marshal(bag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAttributeValue, err)
	}
	out, err := NewPayload(p.Kind())
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(merged, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAttributeValue, err)
	}
	return out, nil
}

// MergeEdgeData returns a copy of the edge data bag with the patch merged in.
// A nil value removes the key.
func MergeEdgeData(data, patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data)+len(patch))
	for k, v := range data {
		out[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Attributes returns the sorted data keys a node kind accepts.
func Attributes(kind NodeKind) []string {
	p, err := NewPayload(kind)
	if err != nil {
		return nil
	}
	set := attributeSet(p)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func attributeSet(p Payload) map[string]struct{} {
	set := make(map[string]struct{})
	collectAttributes(reflect.TypeOf(p).Elem(), set)
	return set
}

func collectAttributes(t reflect.Type, set map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectAttributes(f.Type, set)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		set[name] = struct{}{}
	}
}
