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

package service

import (
	"strings"

	"github.com/wso2/icp-lead-service/internal/icp/model"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/constants"
)

// MatchPolicy holds the caps and modes of the matching pipeline.
type MatchPolicy struct {
	// CompanySampleLimit caps the domains sampled when a profile has no company criteria.
	CompanySampleLimit int
	// CompanyScanLimit caps the rows read by the range query before in-memory filtering.
	CompanyScanLimit int
	PeopleScanLimit  int
	LeadLimit        int
	// TitleContainsAllMode is constants.TitleMatchAny (at least one term) or constants.TitleMatchAll.
	TitleContainsAllMode string
}

func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		CompanySampleLimit:   constants.DefaultCompanySampleLimit,
		CompanyScanLimit:     constants.DefaultCompanyScanLimit,
		PeopleScanLimit:      constants.DefaultPeopleScanLimit,
		LeadLimit:            constants.DefaultLeadLimit,
		TitleContainsAllMode: constants.TitleMatchAny,
	}
}

// NewMatchPolicy builds the policy from the leads configuration, defaulting unset caps.
func NewMatchPolicy(cfg config.LeadsConfig) MatchPolicy {

	policy := DefaultMatchPolicy()
	if cfg.CompanySampleLimit > 0 {
		policy.CompanySampleLimit = cfg.CompanySampleLimit
	}
	if cfg.CompanyScanLimit > 0 {
		policy.CompanyScanLimit = cfg.CompanyScanLimit
	}
	if cfg.PeopleScanLimit > 0 {
		policy.PeopleScanLimit = cfg.PeopleScanLimit
	}
	if cfg.LeadLimit > 0 {
		policy.LeadLimit = cfg.LeadLimit
	}
	if mode := strings.ToLower(cfg.TitleContainsAllMode); constants.AllowedTitleMatchModes[mode] {
		policy.TitleContainsAllMode = mode
	}
	return policy
}

// matchesCompany applies the in-memory part of the company criteria. Each non-empty list must match,
// any term of a list is enough.
func matchesCompany(criteria *model.CompanyCriteria, company model.CompanyRecord) bool {

	if len(criteria.Industries) > 0 {
		industry := strings.ToLower(valueOrEmpty(company.Industry))
		if !containsAnyTerm(industry, criteria.Industries) {
			return false
		}
	}

	if len(criteria.SizeBuckets) > 0 {
		sizeRange := valueOrEmpty(company.SizeRange)
		found := false
		for _, bucket := range criteria.SizeBuckets {
			if bucket == sizeRange {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(criteria.Countries) > 0 {
		// Either side may contain the other. A company without a country matches every entry.
		country := strings.ToLower(valueOrEmpty(company.Country))
		found := false
		for _, c := range criteria.Countries {
			c = strings.ToLower(c)
			if strings.Contains(country, c) || strings.Contains(c, country) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesTitle applies the person criteria to a title. A nil criteria matches everything.
func matchesTitle(criteria *model.PersonCriteria, title string, allMode string) bool {

	if criteria == nil {
		return true
	}
	title = strings.ToLower(title)
	if len(criteria.TitleContainsAny) > 0 && !containsAnyTerm(title, criteria.TitleContainsAny) {
		return false
	}
	if len(criteria.TitleContainsAll) > 0 {
		if allMode == constants.TitleMatchAll {
			return containsEveryTerm(title, criteria.TitleContainsAll)
		}
		return containsAnyTerm(title, criteria.TitleContainsAll)
	}
	return true
}

// containsAnyTerm expects value to be lower case already.
func containsAnyTerm(value string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(value, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func containsEveryTerm(value string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(value, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
