/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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
	"bytes"
	"encoding/json"
)

// Profile is an ICP row as stored. Criteria are kept as raw JSON so they can be echoed back untouched.
type Profile struct {
	Slug            string
	Domain          string
	CompanyCriteria json.RawMessage
	PersonCriteria  json.RawMessage
}

// CompanyCriteria targets candidate companies. A nil *CompanyCriteria matches every company.
type CompanyCriteria struct {
	Industries       []string `json:"industries,omitempty"`
	SizeBuckets      []string `json:"size_buckets,omitempty"`
	Countries        []string `json:"countries,omitempty"`
	EmployeeCountMin *int64   `json:"employee_count_min,omitempty"`
	EmployeeCountMax *int64   `json:"employee_count_max,omitempty"`
	// Accepted, not used for matching.
	FoundedMin *int64 `json:"founded_min,omitempty"`
	FoundedMax *int64 `json:"founded_max,omitempty"`
}

// PersonCriteria targets people at candidate companies.
type PersonCriteria struct {
	TitleContainsAny []string `json:"title_contains_any,omitempty"`
	TitleContainsAll []string `json:"title_contains_all,omitempty"`
	// Accepted, not used for matching.
	Seniority []string `json:"seniority,omitempty"`
}

// ICP is the criteria block of a leads response.
type ICP struct {
	CompanyCriteria json.RawMessage `json:"company_criteria"`
	PersonCriteria  json.RawMessage `json:"person_criteria"`
}

// IsNullJSON reports whether raw is absent or the JSON literal null.
func IsNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
