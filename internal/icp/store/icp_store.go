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
	"github.com/wso2/icp-lead-service/internal/icp/model"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/constants"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/database/query"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
)

// ICPStoreInterface is the read-only data access used by the lead matching pipeline.
type ICPStoreInterface interface {
	// GetProfile returns nil without error when no profile has the slug.
	GetProfile(ctx context.Context, slug string) (*model.Profile, error)
	SampleCompanyDomains(ctx context.Context, limit int) ([]string, error)
	// ListCompanies applies the inclusive employee count bounds that are set.
	ListCompanies(ctx context.Context, employeeMin, employeeMax *int64, limit int) ([]model.CompanyRecord, error)
	// ListPeople returns people with a title whose current company is one of domains, ordered by name.
	ListPeople(ctx context.Context, domains []string, limit int) ([]model.PersonRecord, error)
	GetCompanyDetails(ctx context.Context, domains []string) (map[string]model.CompanyDetails, error)
	// GetCompanyName returns nil without error when the domain is unknown.
	GetCompanyName(ctx context.Context, domain string) (*string, error)
}

type ICPStore struct {
	dbClient client.DBClientInterface
	schemas  config.SchemaConfig
}

func NewICPStore(dbClient client.DBClientInterface, schemas config.SchemaConfig) ICPStoreInterface {

	return &ICPStore{dbClient: dbClient, schemas: schemas}
}

func (s *ICPStore) GetProfile(ctx context.Context, slug string) (*model.Profile, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   query.Table(s.schemas.Reference, constants.CompanyICPTable),
		Columns: []string{"slug", "domain", "company_criteria", "person_criteria"},
		Filters: []query.Filter{query.Eq("slug", slug)},
		Limit:   1,
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_ICP_PROFILE,
			errors.Wrapf(err, "query %s for slug %q", constants.CompanyICPTable, slug))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &model.Profile{
		Slug:            query.StringOrEmpty(row, "slug"),
		Domain:          query.StringOrEmpty(row, "domain"),
		CompanyCriteria: query.JSONValue(row, "company_criteria"),
		PersonCriteria:  query.JSONValue(row, "person_criteria"),
	}, nil
}

func (s *ICPStore) SampleCompanyDomains(ctx context.Context, limit int) ([]string, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   query.Table(s.schemas.Extracted, constants.CompanyFirmographicsTable),
		Columns: []string{"company_domain"},
		Limit:   limit,
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_CANDIDATE_COMPANIES,
			errors.Wrapf(err, "sample %s", constants.CompanyFirmographicsTable))
	}
	domains := make([]string, 0, len(rows))
	for _, row := range rows {
		if domain := query.StringOrEmpty(row, "company_domain"); domain != "" {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}

func (s *ICPStore) ListCompanies(ctx context.Context, employeeMin, employeeMax *int64, limit int) ([]model.CompanyRecord, error) {

	var filters []query.Filter
	if employeeMin != nil {
		filters = append(filters, query.Gte("employee_count", *employeeMin))
	}
	if employeeMax != nil {
		filters = append(filters, query.Lte("employee_count", *employeeMax))
	}
	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   query.Table(s.schemas.Extracted, constants.CompanyFirmographicsTable),
		Columns: []string{"company_domain", "name", "industry", "size_range", "employee_count", "country"},
		Filters: filters,
		Limit:   limit,
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_CANDIDATE_COMPANIES,
			errors.Wrapf(err, "range query on %s", constants.CompanyFirmographicsTable))
	}
	companies := make([]model.CompanyRecord, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, model.CompanyRecord{
			Domain:        query.StringValue(row, "company_domain"),
			Name:          query.StringValue(row, "name"),
			Industry:      query.StringValue(row, "industry"),
			SizeRange:     query.StringValue(row, "size_range"),
			EmployeeCount: query.Int64Value(row, "employee_count"),
			Country:       query.StringValue(row, "country"),
		})
	}
	return companies, nil
}

func (s *ICPStore) ListPeople(ctx context.Context, domains []string, limit int) ([]model.PersonRecord, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table: query.Table(s.schemas.Extracted, constants.PersonProfileTable),
		Columns: []string{"linkedin_url", "linkedin_slug", "full_name", "latest_title",
			"latest_company", "latest_company_domain"},
		Filters: []query.Filter{
			query.In("latest_company_domain", domains),
			query.NotNull("latest_title"),
		},
		Order: &query.Order{Column: "full_name"},
		Limit: limit,
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_CANDIDATE_PEOPLE,
			errors.Wrapf(err, "query %s for %d domains", constants.PersonProfileTable, len(domains)))
	}
	people := make([]model.PersonRecord, 0, len(rows))
	for _, row := range rows {
		people = append(people, model.PersonRecord{
			LinkedinURL:   query.StringValue(row, "linkedin_url"),
			LinkedinSlug:  query.StringValue(row, "linkedin_slug"),
			FullName:      query.StringValue(row, "full_name"),
			Title:         query.StringValue(row, "latest_title"),
			Company:       query.StringValue(row, "latest_company"),
			CompanyDomain: query.StringValue(row, "latest_company_domain"),
		})
	}
	return people, nil
}

func (s *ICPStore) GetCompanyDetails(ctx context.Context, domains []string) (map[string]model.CompanyDetails, error) {

	details := make(map[string]model.CompanyDetails, len(domains))
	if len(domains) == 0 {
		return details, nil
	}
	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   query.Table(s.schemas.Extracted, constants.CompanyFirmographicsTable),
		Columns: []string{"company_domain", "name", "industry", "size_range"},
		Filters: []query.Filter{query.In("company_domain", domains)},
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_COMPANY_DETAILS,
			errors.Wrapf(err, "details from %s for %d domains", constants.CompanyFirmographicsTable, len(domains)))
	}
	for _, row := range rows {
		domain := query.StringOrEmpty(row, "company_domain")
		if domain == "" {
			continue
		}
		details[domain] = model.CompanyDetails{
			Name:      query.StringValue(row, "name"),
			Industry:  query.StringValue(row, "industry"),
			SizeRange: query.StringValue(row, "size_range"),
		}
	}
	return details, nil
}

func (s *ICPStore) GetCompanyName(ctx context.Context, domain string) (*string, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   query.Table(s.schemas.Core, constants.CompaniesTable),
		Columns: []string{"name"},
		Filters: []query.Filter{query.Eq("domain", domain)},
		Limit:   1,
	})
	if err != nil {
		return nil, storeError(ctx, customerrors.FETCH_OWNER_COMPANY,
			errors.Wrapf(err, "query %s for domain %q", constants.CompaniesTable, domain))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return query.StringValue(rows[0], "name"), nil
}

func storeError(ctx context.Context, msg customerrors.ErrorMessage, cause error) error {

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
