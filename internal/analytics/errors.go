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
	"fmt"
)

// ErrPeriodNotLocked is returned when the truth engine refuses a period that has not been locked.
var ErrPeriodNotLocked = errors.New("period not locked")

// ErrUnsupportedAction is returned for process-transaction actions the backend does not know.
var ErrUnsupportedAction = errors.New("unsupported transaction action")

// StatusError is returned when the analytics backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analytics %s returned status %d: %s", e.Path, e.StatusCode, e.Body)
}
