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

package ingest

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// PathPrefix is the blob folder uploads are stored under.
const PathPrefix = "ingestion"

// StoragePath returns ingestion/<basename>-<unix-ms>.<ext> for an uploaded file name.
func StoragePath(fileName string, at time.Time) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		name = "upload"
	}
	return path.Join(PathPrefix, name+"-"+strconv.FormatInt(at.UnixMilli(), 10)+ext)
}
