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
	"encoding/json"
	"time"
)

// Firmographics is an enriched company snapshot from extracted.company_firmographics.
type Firmographics struct {
	ID                string          `json:"id"`
	CompanyDomain     string          `json:"company_domain"`
	LinkedinURL       *string         `json:"linkedin_url"`
	LinkedinSlug      *string         `json:"linkedin_slug"`
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	Website           *string         `json:"website"`
	LogoURL           *string         `json:"logo_url"`
	CompanyType       *string         `json:"company_type"`
	Industry          *string         `json:"industry"`
	FoundedYear       *int64          `json:"founded_year"`
	SizeRange         *string         `json:"size_range"`
	EmployeeCount     *int64          `json:"employee_count"`
	FollowerCount     *int64          `json:"follower_count"`
	Country           *string         `json:"country"`
	Locality          *string         `json:"locality"`
	PrimaryLocation   json.RawMessage `json:"primary_location"`
	Specialties       []string        `json:"specialties"`
	SourceLastRefresh *time.Time      `json:"source_last_refresh"`
	CreatedAt         *time.Time      `json:"created_at"`
}

// SearchFilter narrows a firmographics search. Text fields match case-insensitive substrings,
// SizeRange matches exactly and the numeric bounds are inclusive.
type SearchFilter struct {
	Domain        string
	Name          string
	Industry      string
	Country       string
	SizeRange     string
	MinEmployees  *int64
	MaxEmployees  *int64
	FoundedAfter  *int64
	FoundedBefore *int64
}
