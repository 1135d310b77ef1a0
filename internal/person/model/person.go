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

import "time"

// Person is a canonical person record from core.people.
type Person struct {
	ID           string     `json:"id"`
	LinkedinURL  string     `json:"linkedin_url"`
	LinkedinSlug *string    `json:"linkedin_slug"`
	FullName     *string    `json:"full_name"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// SearchFilter narrows a people search. LinkedinURL and LinkedinSlug match exactly,
// FullName matches a case-insensitive substring.
type SearchFilter struct {
	LinkedinURL  string
	LinkedinSlug string
	FullName     string
}

// Profile is an extracted LinkedIn profile snapshot from extracted.person_profile.
type Profile struct {
	ID                       string     `json:"id"`
	LinkedinURL              string     `json:"linkedin_url"`
	LinkedinSlug             *string    `json:"linkedin_slug"`
	FirstName                *string    `json:"first_name"`
	LastName                 *string    `json:"last_name"`
	FullName                 *string    `json:"full_name"`
	Headline                 *string    `json:"headline"`
	Summary                  *string    `json:"summary"`
	Country                  *string    `json:"country"`
	LocationName             *string    `json:"location_name"`
	Connections              *int64     `json:"connections"`
	NumFollowers             *int64     `json:"num_followers"`
	PictureURL               *string    `json:"picture_url"`
	LatestTitle              *string    `json:"latest_title"`
	LatestCompany            *string    `json:"latest_company"`
	LatestCompanyDomain      *string    `json:"latest_company_domain"`
	LatestCompanyLinkedinURL *string    `json:"latest_company_linkedin_url"`
	LatestLocality           *string    `json:"latest_locality"`
	LatestIsCurrent          *bool      `json:"latest_is_current"`
	SourceLastRefresh        *time.Time `json:"source_last_refresh"`
	CreatedAt                *time.Time `json:"created_at"`
	UpdatedAt                *time.Time `json:"updated_at"`
}

// Experience is one position in a person's work history. Dates are YYYY-MM-DD.
type Experience struct {
	ID                 string     `json:"id"`
	LinkedinURL        string     `json:"linkedin_url"`
	Company            *string    `json:"company"`
	CompanyDomain      *string    `json:"company_domain"`
	CompanyLinkedinURL *string    `json:"company_linkedin_url"`
	Title              *string    `json:"title"`
	Summary            *string    `json:"summary"`
	Locality           *string    `json:"locality"`
	StartDate          *string    `json:"start_date"`
	EndDate            *string    `json:"end_date"`
	IsCurrent          *bool      `json:"is_current"`
	ExperienceOrder    *int64     `json:"experience_order"`
	CreatedAt          *time.Time `json:"created_at"`
}

type Education struct {
	ID             string     `json:"id"`
	LinkedinURL    string     `json:"linkedin_url"`
	SchoolName     *string    `json:"school_name"`
	Degree         *string    `json:"degree"`
	FieldOfStudy   *string    `json:"field_of_study"`
	StartDate      *string    `json:"start_date"`
	EndDate        *string    `json:"end_date"`
	Grade          *string    `json:"grade"`
	Activities     *string    `json:"activities"`
	EducationOrder *int64     `json:"education_order"`
	CreatedAt      *time.Time `json:"created_at"`
}

// PersonDetails is the latest profile of a person with its full history.
type PersonDetails struct {
	Profile
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// PastCompanyQuery identifies a company by domain, LinkedIn URL or name, in that order of precedence.
type PastCompanyQuery struct {
	CompanyDomain      string
	CompanyLinkedinURL string
	CompanyName        string
}

func (q PastCompanyQuery) IsEmpty() bool {
	return q.CompanyDomain == "" && q.CompanyLinkedinURL == "" && q.CompanyName == ""
}

// PastEmployee is a person who used to work at the queried company.
type PastEmployee struct {
	LinkedinURL             string       `json:"linkedin_url"`
	LinkedinSlug            *string      `json:"linkedin_slug"`
	FullName                *string      `json:"full_name"`
	Headline                *string      `json:"headline"`
	CurrentCompany          *string      `json:"current_company"`
	CurrentTitle            *string      `json:"current_title"`
	PictureURL              *string      `json:"picture_url"`
	PastExperienceAtCompany []Experience `json:"past_experience_at_company"`
}
