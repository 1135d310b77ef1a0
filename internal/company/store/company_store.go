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

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/wso2/icp-lead-service/internal/company/model"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/constants"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/database/query"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
)

var firmographicsColumns = []string{
	"id", "company_domain", "linkedin_url", "linkedin_slug", "name", "description", "website", "logo_url",
	"company_type", "industry", "founded_year", "size_range", "employee_count", "follower_count", "country",
	"locality", "primary_location", "specialties", "source_last_refresh", "created_at",
}

type CompanyStoreInterface interface {
	SearchFirmographics(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Firmographics, error)
	CountFirmographics(ctx context.Context, filter model.SearchFilter) (int64, error)
	// GetLatestFirmographics returns nil without error when the domain is unknown.
	GetLatestFirmographics(ctx context.Context, domain string) (*model.Firmographics, error)
}

type CompanyStore struct {
	dbClient client.DBClientInterface
	table    string
}

func NewCompanyStore(dbClient client.DBClientInterface, schemas config.SchemaConfig) CompanyStoreInterface {

	return &CompanyStore{
		dbClient: dbClient,
		table:    query.Table(schemas.Extracted, constants.CompanyFirmographicsTable),
	}
}

func (s *CompanyStore) SearchFirmographics(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Firmographics, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.table,
		Columns: firmographicsColumns,
		Filters: buildFilters(filter),
		Order:   &query.Order{Column: "created_at", Descending: true},
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.SEARCH_FIRMOGRAPHICS, errors.Wrap(err, "search firmographics"))
	}
	result := make([]model.Firmographics, 0, len(rows))
	for _, row := range rows {
		result = append(result, scanFirmographics(row))
	}
	return result, nil
}

func (s *CompanyStore) CountFirmographics(ctx context.Context, filter model.SearchFilter) (int64, error) {

	total, err := query.CountRows(ctx, s.dbClient, query.Count{Table: s.table, Filters: buildFilters(filter)})
	if err != nil {
		return 0, serverError(ctx, customerrors.COUNT_FIRMOGRAPHICS, errors.Wrap(err, "count firmographics"))
	}
	return total, nil
}

func (s *CompanyStore) GetLatestFirmographics(ctx context.Context, domain string) (*model.Firmographics, error) {

	rows, err := query.Execute(ctx, s.dbClient, query.Select{
		Table:   s.table,
		Columns: firmographicsColumns,
		Filters: []query.Filter{query.Eq("company_domain", domain)},
		Order:   &query.Order{Column: "created_at", Descending: true},
		Limit:   1,
	})
	if err != nil {
		return nil, serverError(ctx, customerrors.FETCH_FIRMOGRAPHICS,
			errors.Wrapf(err, "firmographics for domain %q", domain))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	firmographics := scanFirmographics(rows[0])
	return &firmographics, nil
}

func buildFilters(filter model.SearchFilter) []query.Filter {

	var filters []query.Filter
	if filter.Domain != "" {
		filters = append(filters, query.Contains("company_domain", filter.Domain))
	}
	if filter.Name != "" {
		filters = append(filters, query.Contains("name", filter.Name))
	}
	if filter.Industry != "" {
		filters = append(filters, query.Contains("industry", filter.Industry))
	}
	if filter.Country != "" {
		filters = append(filters, query.Contains("country", filter.Country))
	}
	if filter.SizeRange != "" {
		filters = append(filters, query.Eq("size_range", filter.SizeRange))
	}
	if filter.MinEmployees != nil {
		filters = append(filters, query.Gte("employee_count", *filter.MinEmployees))
	}
	if filter.MaxEmployees != nil {
		filters = append(filters, query.Lte("employee_count", *filter.MaxEmployees))
	}
	if filter.FoundedAfter != nil {
		filters = append(filters, query.Gte("founded_year", *filter.FoundedAfter))
	}
	if filter.FoundedBefore != nil {
		filters = append(filters, query.Lte("founded_year", *filter.FoundedBefore))
	}
	return filters
}

func scanFirmographics(row map[string]interface{}) model.Firmographics {

	firmographics := model.Firmographics{
		ID:                query.StringOrEmpty(row, "id"),
		CompanyDomain:     query.StringOrEmpty(row, "company_domain"),
		LinkedinURL:       query.StringValue(row, "linkedin_url"),
		LinkedinSlug:      query.StringValue(row, "linkedin_slug"),
		Name:              query.StringValue(row, "name"),
		Description:       query.StringValue(row, "description"),
		Website:           query.StringValue(row, "website"),
		LogoURL:           query.StringValue(row, "logo_url"),
		CompanyType:       query.StringValue(row, "company_type"),
		Industry:          query.StringValue(row, "industry"),
		FoundedYear:       query.Int64Value(row, "founded_year"),
		SizeRange:         query.StringValue(row, "size_range"),
		EmployeeCount:     query.Int64Value(row, "employee_count"),
		FollowerCount:     query.Int64Value(row, "follower_count"),
		Country:           query.StringValue(row, "country"),
		Locality:          query.StringValue(row, "locality"),
		PrimaryLocation:   query.JSONValue(row, "primary_location"),
		SourceLastRefresh: query.TimeValue(row, "source_last_refresh"),
		CreatedAt:         query.TimeValue(row, "created_at"),
	}
	if raw, ok := row["specialties"]; ok && raw != nil {
		var specialties pq.StringArray
		if err := specialties.Scan(raw); err == nil {
			firmographics.Specialties = specialties
		}
	}
	return firmographics
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
