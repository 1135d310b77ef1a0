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

package constants

const ApiBasePath = "/api"
const LeadsApiPath = "leads"
const CompaniesApiPath = "companies"
const FirmographicsApiPath = "companies/firmo"
const PeopleApiPath = "people"

const TraceIDHeader = "X-Trace-Id"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"

// Default ICP matching caps. They bound the worst case latency of a single lead request.
const (
	DefaultCompanySampleLimit = 200
	DefaultCompanyScanLimit   = 500
	DefaultPeopleScanLimit    = 200
	DefaultLeadLimit          = 50
)

// Modes for evaluating the title_contains_all person criterion.
const (
	TitleMatchAny = "any"
	TitleMatchAll = "all"
)

var AllowedTitleMatchModes = map[string]bool{
	TitleMatchAny: true,
	TitleMatchAll: true,
}

// Default database schemas of the backing store.
const (
	DefaultCoreSchema      = "core"
	DefaultReferenceSchema = "reference"
	DefaultExtractedSchema = "extracted"
)

// Table names, relative to their schema.
const (
	CompanyICPTable           = "company_icp"
	CompanyFirmographicsTable = "company_firmographics"
	PersonProfileTable        = "person_profile"
	CompaniesTable            = "companies"
	PeopleTable               = "people"
	PersonExperienceTable     = "person_experience"
	PersonEducationTable      = "person_education"
)

// DefaultPastExperienceScanLimit caps the past employment rows read for one by-past-company search.
const DefaultPastExperienceScanLimit = 1000

const DefaultRequestTimeoutSeconds = 30

// Firmographics search pagination.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
