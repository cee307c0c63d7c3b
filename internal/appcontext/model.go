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

package appcontext

// Themes supported by the UI.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// AppContext is the per-user selection shared by every page.
type AppContext struct {
	CompanyID  string `json:"companyId"`
	Period     string `json:"period"`
	Department string `json:"department"`
	Theme      string `json:"theme"`
	Language   string `json:"language"`
}

// Patch changes the fields that are set and leaves the others untouched.
type Patch struct {
	CompanyID  *string `json:"companyId,omitempty"`
	Period     *string `json:"period,omitempty"`
	Department *string `json:"department,omitempty"`
	Theme      *string `json:"theme,omitempty"`
	Language   *string `json:"language,omitempty"`
}

// apply returns c with the patch applied.
func (p Patch) apply(c AppContext) AppContext {
	if p.CompanyID != nil {
		c.CompanyID = *p.CompanyID
	}
	if p.Period != nil {
		c.Period = *p.Period
	}
	if p.Department != nil {
		c.Department = *p.Department
	}
	if p.Theme != nil {
		c.Theme = *p.Theme
	}
	if p.Language != nil {
		c.Language = *p.Language
	}
	return c
}
