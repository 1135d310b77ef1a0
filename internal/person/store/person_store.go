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


package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wso2/icp-lead-service/internal/person/model"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/constants"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/database/query"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
)

var (
	peopleColumns = []string{"id", "linkedin_url", "linkedin_slug", "full_name", "created_at", "updated_at"}

	profileColumns = []string{
		"id", "linkedin_url", "linkedin_slug", "first_name", "last_name", "full_name", "headline", "summary",
		"country", "location_name", "connections", "num_followers", "picture_url", "latest_title",
		"latest_company", "latest_company_domain", "latest_company_linkedin_url", "latest_locality",
		"latest_is_current", "source_last_refresh", "created_at", "updated_at",
	}

	experienceColumns = []string{
		"id", "linkedin_url", "company", "company_domain", "company_linkedin_url", "title", "summary",
		"locality", "start_date", "end_date", "is_current", "experience_order", "created_at",
	}

	educationColumns = []string{
		"id", "linkedin_url", "school_name", "degree", "field_of_study", "start_date", "end_date", "grade",
		"activities", "education_order", "created_at",
	}
)

type PersonStoreInterface interface {
	SearchPeople(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Person, error)
	CountPeople(ctx context.Context, filter model.SearchFilter) (int64, error)
	// GetLatestProfileBySlug returns nil without error when no profile URL carries the slug.
	GetLatestProfileBySlug(ctx context.Context, slug string) (*model.Profile, error)
	ListExperience(ctx context.Context, linkedinURL string) ([]model.Experience, error)
	ListEducation(ctx context.Context, linkedinURL string) ([]model.Education, error)
	// ListPastExperience returns ended positions at the queried company, grouped by person URL.
	ListPastExperience(ctx context.Context, q model.PastCompanyQuery, limit int) ([]model.Experience, error)
	// ListProfilesByURL returns every snapshot for the given URLs, newest first.
	ListProfilesByURL(ctx context.Context, linkedinURLs []string) ([]model.Profile, error)
}

type PersonStore struct {
	dbClient        client.DBClientInterface
	peopleTable     string
	profileTable    string
	experienceTable string
	educationTable  string
}

func NewPersonStore(dbClient client.DBClientInterface, schemas config.SchemaConfig) PersonStoreInterface {

	return &PersonStore{
		dbClient:        dbClient,
		peopleTable:     query.Table(schemas.Core, constants.PeopleTable),
		profileTable:    query.Table(schemas.Extracted, constants.PersonProfileTable),
		experienceTable: query.Table(schemas.Extracted, constants.PersonExperienceTable),
		educationTable:  query.Table(schemas.Extracted, constants.PersonEducationTable),
	}
}

func (s *PersonStore) SearchPeople(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Person, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.peopleTable,
		Columns: peopleColumns,
		Filters: buildFilters(filter),
		Order:   &query.Order{Column: "created_at", Descending: true},
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.SEARCH_PEOPLE, errors.Wrap(err, "search people"))
	}
	people := make([]model.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, model.Person{
			ID:           query.StringOrEmpty(row, "id"),
			LinkedinURL:  query.StringOrEmpty(row, "linkedin_url"),
			LinkedinSlug: query.StringValue(row, "linkedin_slug"),
			FullName:     query.StringValue(row, "full_name"),
			CreatedAt:    query.TimeValue(row, "created_at"),
			UpdatedAt:    query.TimeValue(row, "updated_at"),
		})
	}
	return people, nil
}

func (s *PersonStore) CountPeople(ctx context.Context, filter model.SearchFilter) (int64, error) {

	total, err := query.CountRows(ctx, s.dbClient, query.Count{Table: s.peopleTable, Filters: buildFilters(filter)})
	if err != nil {
		return 0, serverError(ctx, customerrors.COUNT_PEOPLE, errors.Wrap(err, "count people"))
	}
	return total, nil
}

func (s *PersonStore) GetLatestProfileBySlug(ctx context.Context, slug string) (*model.Profile, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.profileTable,
		Columns: profileColumns,
		Filters: []query.Filter{query.Contains("linkedin_url", "/in/"+slug)},
		Order:   &query.Order{Column: "created_at", Descending: true},
		Limit:   1,
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_PERSON_PROFILE,
			errors.Wrapf(err, "profile for slug %q", slug))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	profile := scanProfile(rows[0])
	return &profile, nil
}

func (s *PersonStore) ListExperience(ctx context.Context, linkedinURL string) ([]model.Experience, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.experienceTable,
		Columns: experienceColumns,
		Filters: []query.Filter{query.Eq("linkedin_url", linkedinURL)},
		Order:   &query.Order{Column: "experience_order"},
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_PERSON_EXPERIENCE,
			errors.Wrapf(err, "experience for %q", linkedinURL))
	}
	return scanExperiences(rows), nil
}

func (s *PersonStore) ListEducation(ctx context.Context, linkedinURL string) ([]model.Education, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.educationTable,
		Columns: educationColumns,
		Filters: []query.Filter{query.Eq("linkedin_url", linkedinURL)},
		Order:   &query.Order{Column: "education_order"},
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_PERSON_EDUCATION,
			errors.Wrapf(err, "education for %q", linkedinURL))
	}
	education := make([]model.Education, 0, len(rows))
	for _, row := range rows {
		education = append(education, model.Education{
			ID:             query.StringOrEmpty(row, "id"),
			LinkedinURL:    query.StringOrEmpty(row, "linkedin_url"),
			SchoolName:     query.StringValue(row, "school_name"),
			Degree:         query.StringValue(row, "degree"),
			FieldOfStudy:   query.StringValue(row, "field_of_study"),
			StartDate:      query.DateValue(row, "start_date"),
			EndDate:        query.DateValue(row, "end_date"),
			Grade:          query.StringValue(row, "grade"),
			Activities:     query.StringValue(row, "activities"),
			EducationOrder: query.Int64Value(row, "education_order"),
			CreatedAt:      query.TimeValue(row, "created_at"),
		})
	}
	return education, nil
}

func (s *PersonStore) ListPastExperience(ctx context.Context, q model.PastCompanyQuery, limit int) ([]model.Experience, error) {

	filters := []query.Filter{query.Eq("is_current", false)}
	switch {
	case q.CompanyDomain != "":
		filters = append(filters, query.Eq("company_domain", q.CompanyDomain))
	case q.CompanyLinkedinURL != "":
		filters = append(filters, query.Eq("company_linkedin_url", q.CompanyLinkedinURL))
	default:
		filters = append(filters, query.Contains("company", q.CompanyName))
	}

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.experienceTable,
		Columns: experienceColumns,
		Filters: filters,
		Order:   &query.Order{Column: "linkedin_url"},
		Limit:   limit,
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_PERSON_EXPERIENCE, errors.Wrap(err, "past experience"))
	}
	return scanExperiences(rows), nil
}

func (s *PersonStore) ListProfilesByURL(ctx context.Context, linkedinURLs []string) ([]model.Profile, error) {

	if len(linkedinURLs) == 0 {
		return []model.Profile{}, nil
	}
	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.profileTable,
		Columns: profileColumns,
		Filters: []query.Filter{query.In("linkedin_url", linkedinURLs)},
		Order:   &query.Order{Column: "created_at", Descending: true},
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_PERSON_PROFILE,
			errors.Wrapf(err, "profiles for %d urls", len(linkedinURLs)))
	}
	profiles := make([]model.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, scanProfile(row))
	}
	return profiles, nil
}

func buildFilters(filter model.SearchFilter) []query.Filter {

	var filters []query.Filter
	if filter.LinkedinURL != "" {
		filters = append(filters, query.Eq("linkedin_url", filter.LinkedinURL))
	}
	if filter.LinkedinSlug != "" {
		filters = append(filters, query.Eq("linkedin_slug", filter.LinkedinSlug))
	}
	if filter.FullName != "" {
		filters = append(filters, query.Contains("full_name", filter.FullName))
	}
	return filters
}

func scanProfile(row map[string]interface{}) model.Profile {

	return model.Profile{
		ID:                       query.StringOrEmpty(row, "id"),
		LinkedinURL:              query.StringOrEmpty(row, "linkedin_url"),
		LinkedinSlug:             query.StringValue(row, "linkedin_slug"),
		FirstName:                query.StringValue(row, "first_name"),
		LastName:                 query.StringValue(row, "last_name"),
		FullName:                 query.StringValue(row, "full_name"),
		Headline:                 query.StringValue(row, "headline"),
		Summary:                  query.StringValue(row, "summary"),
		Country:                  query.StringValue(row, "country"),
		LocationName:             query.StringValue(row, "location_name"),
		Connections:              query.Int64Value(row, "connections"),
		NumFollowers:             query.Int64Value(row, "num_followers"),
		PictureURL:               query.StringValue(row, "picture_url"),
		LatestTitle:              query.StringValue(row, "latest_title"),
		LatestCompany:            query.StringValue(row, "latest_company"),
		LatestCompanyDomain:      query.StringValue(row, "latest_company_domain"),
		LatestCompanyLinkedinURL: query.StringValue(row, "latest_company_linkedin_url"),
		LatestLocality:           query.StringValue(row, "latest_locality"),
		LatestIsCurrent:          query.BoolValue(row, "latest_is_current"),
		SourceLastRefresh:        query.TimeValue(row, "source_last_refresh"),
		CreatedAt:                query.TimeValue(row, "created_at"),
		UpdatedAt:                query.TimeValue(row, "updated_at"),
	}
}

func scanExperiences(rows []map[string]interface{}) []model.Experience {

	experience := make([]model.Experience, 0, len(rows))
	for _, row := range rows {
		experience = append(experience, model.Experience{
			ID:                 query.StringOrEmpty(row, "id"),
			LinkedinURL:        query.StringOrEmpty(row, "linkedin_url"),
			Company:            query.StringValue(row, "company"),
			CompanyDomain:      query.StringValue(row, "company_domain"),
			CompanyLinkedinURL: query.StringValue(row, "company_linkedin_url"),
			Title:              query.StringValue(row, "title"),
			Summary:            query.StringValue(row, "summary"),
			Locality:           query.StringValue(row, "locality"),
			StartDate:          query.DateValue(row, "start_date"),
			EndDate:            query.DateValue(row, "end_date"),
			IsCurrent:          query.BoolValue(row, "is_current"),
			ExperienceOrder:    query.Int64Value(row, "experience_order"),
			CreatedAt:          query.TimeValue(row, "created_at"),
		})
	}
	return experience
}

func serverError(ctx context.Context, msg customerrors.ErrorMessage, cause error) error {

	if query.IsBuildError(cause) {
		msg = customerrors.BUILD_QUERY
	}
	log.FromContext(ctx).Debug(msg.Message, log.String("code", msg.Code), log.Error(cause))
	return customerrors.NewServerError(customerrors.ErrorMessage{
		Code:        msg.Code,
		Message:     msg.Message,
		Description: cause.Error(),
	}, cause)
}
