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

package model

import (
	"fmt"
	"strconv"
	"time"
)

// GetString reads a text column that drivers may return as string or []byte.
func GetString(row map[string]interface{}, column string) string {
	switch v := row[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// GetInt64 reads an integer column across driver representations.
func GetInt64(row map[string]interface{}, column string) (int64, error) {
	switch v := row[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("column %s has unexpected type %T", column, v)
	}
}

// GetBool reads a boolean column; sqlite stores booleans as integers.
func GetBool(row map[string]interface{}, column string) bool {
	switch v := row[column].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// GetTime reads a timestamp column stored natively or as RFC 3339 text.
func GetTime(row map[string]interface{}, column string) (time.Time, error) {
	switch v := row[column].(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(v))
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("column %s has unexpected type %T", column, v)
	}
}
