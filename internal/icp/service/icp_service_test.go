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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/icp-lead-service/internal/icp/model"
	"github.com/wso2/icp-lead-service/internal/system/config"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
)

type MockICPStore struct {
	mock.Mock
}

func (m *MockICPStore) GetProfile(ctx context.Context, slug string) (*model.Profile, error) {
	args := m.Called(slug)
	profile, _ := args.Get(0).(*model.Profile)
	return profile, args.Error(1)
}

func (m *MockICPStore) SampleCompanyDomains(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(limit)
	domains, _ := args.Get(0).([]string)
	return domains, args.Error(1)
}

func (m *MockICPStore) ListCompanies(ctx context.Context, employeeMin, employeeMax *int64, limit int) ([]model.CompanyRecord, error) {
	args := m.Called(employeeMin, employeeMax, limit)
	companies, _ := args.Get(0).([]model.CompanyRecord)
	return companies, args.Error(1)
}

func (m *MockICPStore) ListPeople(ctx context.Context, domains []string, limit int) ([]model.PersonRecord, error) {
	args := m.Called(domains, limit)
	people, _ := args.Get(0).([]model.PersonRecord)
	return people, args.Error(1)
}

func (m *MockICPStore) GetCompanyDetails(ctx context.Context, domains []string) (map[string]model.CompanyDetails, error) {
	args := m.Called(domains)
	details, _ := args.Get(0).(map[string]model.CompanyDetails)
	return details, args.Error(1)
}

func (m *MockICPStore) GetCompanyName(ctx context.Context, domain string) (*string, error) {
	args := m.Called(domain)
	name, _ := args.Get(0).(*string)
	return name, args.Error(1)
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func company(domain, industry, size, country string, employees int64) model.CompanyRecord {
	record := model.CompanyRecord{Domain: strPtr(domain), EmployeeCount: int64Ptr(employees)}
	if industry != "" {
		record.Industry = strPtr(industry)
	}
	if size != "" {
		record.SizeRange = strPtr(size)
	}
	if country != "" {
		record.Country = strPtr(country)
	}
	return record
}

func person(name, title, domain string) model.PersonRecord {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return model.PersonRecord{
		LinkedinURL:   strPtr("https://www.linkedin.com/in/" + slug),
		LinkedinSlug:  strPtr(slug),
		FullName:      strPtr(name),
		Title:         strPtr(title),
		CompanyDomain: strPtr(domain),
	}
}

func newTestService(policy MatchPolicy) (*MockICPStore, ICPServiceInterface) {
	s := new(MockICPStore)
	return s, NewICPService(s, policy, 0)
}

func TestNewMatchPolicy(t *testing.T) {
	policy := NewMatchPolicy(config.LeadsConfig{LeadLimit: 10, TitleContainsAllMode: "ALL"})
	assert.Equal(t, 200, policy.CompanySampleLimit)
	assert.Equal(t, 500, policy.CompanyScanLimit)
	assert.Equal(t, 200, policy.PeopleScanLimit)
	assert.Equal(t, 10, policy.LeadLimit)
	assert.Equal(t, "all", policy.TitleContainsAllMode)

	assert.Equal(t, "any", NewMatchPolicy(config.LeadsConfig{TitleContainsAllMode: "bogus"}).TitleContainsAllMode)
}

func TestGetLeads_ScenarioA_NoMatchingCompanies(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	criteria := json.RawMessage(`{"industries":["Fintech"],"employee_count_min":50}`)
	s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com", CompanyCriteria: criteria}, nil)
	s.On("ListCompanies", int64Ptr(50), (*int64)(nil), 500).
		Return([]model.CompanyRecord{company("bank.com", "Banking", "", "", 80)}, nil)
	s.On("GetCompanyName", "ramp.com").Return(strPtr("Ramp"), nil)

	response, err := svc.GetLeads(context.Background(), "ramp")
	require.NoError(t, err)
	assert.Equal(t, "ramp", response.Slug)
	assert.Equal(t, "ramp.com", response.Domain)
	require.NotNil(t, response.CompanyName)
	assert.Equal(t, "Ramp", *response.CompanyName)
	assert.Empty(t, response.Leads)
	assert.NotNil(t, response.Leads)
	assert.Equal(t, 0, response.TotalLeads)
	s.AssertNotCalled(t, "ListPeople", mock.Anything, mock.Anything)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"leads":[]`)
}

func TestGetLeads_ScenarioB_NotFound(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "doesnotexist").Return(nil, nil)

	response, err := svc.GetLeads(context.Background(), "DoesNotExist")
	assert.Nil(t, response)
	require.Error(t, err)
	assert.True(t, customerrors.IsNotFound(err))
	s.AssertNotCalled(t, "SampleCompanyDomains", mock.Anything)
	s.AssertNotCalled(t, "GetCompanyName", mock.Anything)
}

func TestGetLeads_ScenarioC_TitleMatch(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "acme").Return(&model.Profile{
		Slug:           "acme",
		Domain:         "acme.com",
		PersonCriteria: json.RawMessage(`{"title_contains_any":["VP","Director"]}`),
	}, nil)
	s.On("SampleCompanyDomains", 200).Return([]string{"target.com"}, nil)
	s.On("ListPeople", []string{"target.com"}, 200).Return([]model.PersonRecord{
		person("Ada Lovelace", "VP Engineering", "target.com"),
		person("Bob Stone", "Software Engineer", "target.com"),
		person("Cleo Park", "director of sales", "target.com"),
	}, nil)
	s.On("GetCompanyDetails", []string{"target.com"}).Return(map[string]model.CompanyDetails{
		"target.com": {Name: strPtr("Target"), Industry: strPtr("Retail"), SizeRange: strPtr("1000+")},
	}, nil)
	s.On("GetCompanyName", "acme.com").Return(nil, nil)

	response, err := svc.GetLeads(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, 2, response.TotalLeads)
	require.Len(t, response.Leads, 2)
	assert.Equal(t, "Ada Lovelace", *response.Leads[0].FullName)
	assert.Equal(t, "Cleo Park", *response.Leads[1].FullName)
	assert.Equal(t, "Target", *response.Leads[0].CompanyName)
	assert.Equal(t, "Retail", *response.Leads[0].CompanyIndustry)
	assert.Equal(t, "1000+", *response.Leads[0].CompanySize)
	assert.Nil(t, response.CompanyName)
}

func TestGetLeads_EchoesCriteriaVerbatim(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	companyCriteria := json.RawMessage(`{"industries":["Fintech"],"seniority_hint":"x","founded_min":2001}`)
	personCriteria := json.RawMessage(`{"seniority":["vp"],"title_contains_all":["Sales"]}`)
	s.On("GetProfile", "ramp").Return(&model.Profile{
		Slug: "ramp", Domain: "ramp.com", CompanyCriteria: companyCriteria, PersonCriteria: personCriteria,
	}, nil)
	s.On("ListCompanies", (*int64)(nil), (*int64)(nil), 500).Return([]model.CompanyRecord{}, nil)
	s.On("GetCompanyName", "ramp.com").Return(nil, nil)

	response, err := svc.GetLeads(context.Background(), "ramp")
	require.NoError(t, err)
	assert.Equal(t, companyCriteria, response.ICP.CompanyCriteria)
	assert.Equal(t, personCriteria, response.ICP.PersonCriteria)

	body, err := json.Marshal(response.ICP)
	require.NoError(t, err)
	assert.JSONEq(t, `{"company_criteria":`+string(companyCriteria)+`,"person_criteria":`+string(personCriteria)+`}`, string(body))
}

func TestGetLeads_NullCriteriaEchoedAsNull(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "open").Return(&model.Profile{Slug: "open", Domain: "open.com"}, nil)
	s.On("SampleCompanyDomains", 200).Return([]string{}, nil)
	s.On("GetCompanyName", "open.com").Return(nil, nil)

	response, err := svc.GetLeads(context.Background(), "open")
	require.NoError(t, err)
	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug":"open","domain":"open.com","company_name":null,
		"icp":{"company_criteria":null,"person_criteria":null},"leads":[],"total_leads":0}`, string(body))
}

func TestGetLeads_MalformedCriteria(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "broken").Return(&model.Profile{
		Slug: "broken", Domain: "broken.com",
		CompanyCriteria: json.RawMessage(`{"employee_count_min":900,"employee_count_max":10}`),
	}, nil)

	_, err := svc.GetLeads(context.Background(), "broken")
	var clientErr *customerrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnprocessableEntity, clientErr.StatusCode)
	assert.Equal(t, customerrors.VALIDATION_ERROR.Code, clientErr.Code)
	s.AssertNotCalled(t, "ListCompanies", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLeads_EmptySlug(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())

	_, err := svc.GetLeads(context.Background(), "   ")
	var clientErr *customerrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	s.AssertNotCalled(t, "GetProfile", mock.Anything)
}

func TestGetLeads_StoreErrorsPropagate(t *testing.T) {
	storeErr := customerrors.NewServerError(customerrors.FETCH_CANDIDATE_COMPANIES, errors.New("connection reset"))

	t.Run("profile", func(t *testing.T) {
		s, svc := newTestService(DefaultMatchPolicy())
		s.On("GetProfile", "ramp").Return(nil, storeErr)
		_, err := svc.GetLeads(context.Background(), "ramp")
		assert.ErrorIs(t, err, storeErr)
		assert.False(t, customerrors.IsClientError(err))
	})

	t.Run("company filter is not treated as zero candidates", func(t *testing.T) {
		s, svc := newTestService(DefaultMatchPolicy())
		s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com"}, nil)
		s.On("SampleCompanyDomains", 200).Return(nil, storeErr)
		s.On("GetCompanyName", "ramp.com").Return(strPtr("Ramp"), nil)
		response, err := svc.GetLeads(context.Background(), "ramp")
		assert.Nil(t, response)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("people", func(t *testing.T) {
		s, svc := newTestService(DefaultMatchPolicy())
		s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com"}, nil)
		s.On("SampleCompanyDomains", 200).Return([]string{"a.com"}, nil)
		s.On("ListPeople", []string{"a.com"}, 200).Return(nil, storeErr)
		s.On("GetCompanyName", "ramp.com").Return(strPtr("Ramp"), nil)
		_, err := svc.GetLeads(context.Background(), "ramp")
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("owner lookup", func(t *testing.T) {
		s, svc := newTestService(DefaultMatchPolicy())
		s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com"}, nil)
		s.On("SampleCompanyDomains", 200).Return([]string{}, nil)
		s.On("GetCompanyName", "ramp.com").Return(nil, storeErr)
		_, err := svc.GetLeads(context.Background(), "ramp")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestResolveProfile_Cache(t *testing.T) {
	s := new(MockICPStore)
	svc := NewICPService(s, DefaultMatchPolicy(), time.Minute)
	s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com"}, nil).Once()
	s.On("GetProfile", "missing").Return(nil, nil).Twice()

	for i := 0; i < 3; i++ {
		profile, err := svc.ResolveProfile(context.Background(), "ramp")
		require.NoError(t, err)
		assert.Equal(t, "ramp.com", profile.Domain)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.ResolveProfile(context.Background(), "missing")
		assert.True(t, customerrors.IsNotFound(err))
	}
	s.AssertExpectations(t)
}

func TestResolveProfile_NormalizesSlugForLookupAndCache(t *testing.T) {
	s := new(MockICPStore)
	svc := NewICPService(s, DefaultMatchPolicy(), time.Minute)
	s.On("GetProfile", "ramp").Return(&model.Profile{Slug: "ramp", Domain: "ramp.com"}, nil).Once()

	for _, slug := range []string{"Ramp", " RAMP ", "ramp"} {
		profile, err := svc.ResolveProfile(context.Background(), slug)
		require.NoError(t, err)
		assert.Equal(t, "ramp.com", profile.Domain)
	}
	s.AssertExpectations(t)

	_, err := svc.ResolveProfile(context.Background(), "  ")
	var clientErr *customerrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

func TestGetLeads_WholeNumberFloatBoundPushedDown(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "ramp").Return(&model.Profile{
		Slug: "ramp", Domain: "ramp.com", CompanyCriteria: json.RawMessage(`{"employee_count_min":50.0}`),
	}, nil)
	s.On("ListCompanies", int64Ptr(50), (*int64)(nil), 500).Return([]model.CompanyRecord{}, nil)
	s.On("GetCompanyName", "ramp.com").Return(nil, nil)

	response, err := svc.GetLeads(context.Background(), "ramp")
	require.NoError(t, err)
	assert.JSONEq(t, `{"employee_count_min":50.0}`, string(response.ICP.CompanyCriteria))
	s.AssertExpectations(t)
}

func TestFilterCompanies_NullCriteriaSamples(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	sample := make([]string, 200)
	for i := range sample {
		sample[i] = fmt.Sprintf("c%d.com", i)
	}
	s.On("SampleCompanyDomains", 200).Return(sample, nil)

	domains, err := svc.FilterCompanies(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, sample, domains)
	assert.LessOrEqual(t, len(domains), 200)
	s.AssertNotCalled(t, "ListCompanies", mock.Anything, mock.Anything, mock.Anything)
}

func TestFilterCompanies_NumericBoundsOnly(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	criteria := &model.CompanyCriteria{EmployeeCountMin: int64Ptr(10), EmployeeCountMax: int64Ptr(100)}
	s.On("ListCompanies", int64Ptr(10), int64Ptr(100), 500).Return([]model.CompanyRecord{
		company("a.com", "", "", "", 10),
		company("b.com", "", "", "", 100),
		company("c.com", "", "", "", 55),
	}, nil)

	domains, err := svc.FilterCompanies(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, domains)
}

func TestFilterCompanies_InMemoryCriteria(t *testing.T) {
	companies := []model.CompanyRecord{
		company("fin-us.com", "Financial Technology / Fintech", "51-200", "United States", 100),
		company("fin-de.com", "fintech", "51-200", "Germany", 100),
		company("bank-us.com", "Banking", "51-200", "United States", 100),
		company("fin-small.com", "Fintech", "1-10", "United States", 5),
		company("fin-nocountry.com", "Fintech", "51-200", "", 100),
		{Domain: nil, Industry: strPtr("Fintech"), SizeRange: strPtr("51-200"), Country: strPtr("US")},
	}
	tests := []struct {
		name     string
		criteria model.CompanyCriteria
		want     []string
	}{
		{
			name:     "industry substring any term",
			criteria: model.CompanyCriteria{Industries: []string{"FINTECH", "insurance"}},
			want:     []string{"fin-us.com", "fin-de.com", "fin-small.com", "fin-nocountry.com"},
		},
		{
			name:     "size buckets exact",
			criteria: model.CompanyCriteria{SizeBuckets: []string{"1-10"}},
			want:     []string{"fin-small.com"},
		},
		{
			name:     "country either way, missing country matches",
			criteria: model.CompanyCriteria{Countries: []string{"USA"}},
			want:     []string{"fin-nocountry.com"},
		},
		{
			name:     "country substring of value",
			criteria: model.CompanyCriteria{Countries: []string{"states"}},
			want:     []string{"fin-us.com", "bank-us.com", "fin-small.com", "fin-nocountry.com"},
		},
		{
			name: "lists are combined",
			criteria: model.CompanyCriteria{
				Industries: []string{"fintech"}, SizeBuckets: []string{"51-200"}, Countries: []string{"Germany"},
			},
			want: []string{"fin-de.com", "fin-nocountry.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, svc := newTestService(DefaultMatchPolicy())
			s.On("ListCompanies", (*int64)(nil), (*int64)(nil), 500).Return(companies, nil)
			domains, err := svc.FilterCompanies(context.Background(), &tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, domains)
		})
	}
}

func TestFilterCompanies_UsesConfiguredCaps(t *testing.T) {
	policy := DefaultMatchPolicy()
	policy.CompanySampleLimit = 5
	policy.CompanyScanLimit = 7
	s, svc := newTestService(policy)
	s.On("SampleCompanyDomains", 5).Return([]string{"a.com"}, nil)
	s.On("ListCompanies", (*int64)(nil), (*int64)(nil), 7).Return([]model.CompanyRecord{}, nil)

	_, err := svc.FilterCompanies(context.Background(), nil)
	require.NoError(t, err)
	_, err = svc.FilterCompanies(context.Background(), &model.CompanyCriteria{})
	require.NoError(t, err)
	s.AssertExpectations(t)
}

func TestFilterPeople_EmptyDomainsIssuesNoQuery(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())

	for _, criteria := range []*model.PersonCriteria{nil, {TitleContainsAny: []string{"VP"}}} {
		leads, err := svc.FilterPeople(context.Background(), nil, criteria)
		require.NoError(t, err)
		assert.Empty(t, leads)
	}
	s.AssertNotCalled(t, "ListPeople", mock.Anything, mock.Anything)
	s.AssertNotCalled(t, "GetCompanyDetails", mock.Anything)
}

func TestFilterPeople_TruncatesAfterFiltering(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	var people []model.PersonRecord
	for i := 0; i < 200; i++ {
		title := "Engineer"
		if i%2 == 0 {
			title = "VP Marketing"
		}
		people = append(people, person(fmt.Sprintf("Person %03d", i), title, "a.com"))
	}
	s.On("ListPeople", []string{"a.com"}, 200).Return(people, nil)
	s.On("GetCompanyDetails", []string{"a.com"}).Return(map[string]model.CompanyDetails{}, nil)

	leads, err := svc.FilterPeople(context.Background(), []string{"a.com"},
		&model.PersonCriteria{TitleContainsAny: []string{"vp"}})
	require.NoError(t, err)
	assert.Len(t, leads, 50)
	for i, lead := range leads {
		assert.Contains(t, strings.ToLower(*lead.Title), "vp")
		assert.Equal(t, fmt.Sprintf("Person %03d", i*2), *lead.FullName)
	}
}

func TestFilterPeople_FewerThanLimit(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("ListPeople", []string{"a.com"}, 200).Return([]model.PersonRecord{person("Ada", "CTO", "a.com")}, nil)
	s.On("GetCompanyDetails", []string{"a.com"}).Return(map[string]model.CompanyDetails{}, nil)

	leads, err := svc.FilterPeople(context.Background(), []string{"a.com"}, nil)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Nil(t, leads[0].CompanyName)
	assert.Nil(t, leads[0].CompanyIndustry)
}

func TestFilterPeople_CustomerHistoryIsNeverSet(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("ListPeople", []string{"a.com", "b.com"}, 200).Return([]model.PersonRecord{
		person("Ada", "CTO", "a.com"), person("Ben", "CFO", "b.com"),
	}, nil)
	s.On("GetCompanyDetails", []string{"a.com", "b.com"}).Return(map[string]model.CompanyDetails{}, nil)

	leads, err := svc.FilterPeople(context.Background(), []string{"a.com", "b.com"}, nil)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, lead := range leads {
		assert.False(t, lead.IsWorkedAtCustomer)
		assert.Nil(t, lead.WorkedAtCustomerCompany)
	}
}

func TestFilterPeople_PrefersPersonCompanyName(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	withCompany := person("Ada", "CTO", "a.com")
	withCompany.Company = strPtr("A Corp (Person)")
	s.On("ListPeople", []string{"a.com", "x.com"}, 200).Return([]model.PersonRecord{
		withCompany, person("Ben", "CFO", "a.com"),
	}, nil)
	s.On("GetCompanyDetails", []string{"a.com"}).Return(map[string]model.CompanyDetails{
		"a.com": {Name: strPtr("A Corp")},
	}, nil)

	leads, err := svc.FilterPeople(context.Background(), []string{"a.com", "x.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "A Corp (Person)", *leads[0].CompanyName)
	assert.Equal(t, "A Corp", *leads[1].CompanyName)
	for _, lead := range leads {
		assert.Contains(t, []string{"a.com", "x.com"}, *lead.CompanyDomain)
	}
}

func TestMatchesTitle(t *testing.T) {
	both := &model.PersonCriteria{TitleContainsAny: []string{"VP", "Head"}, TitleContainsAll: []string{"Sales", "Revenue"}}

	assert.True(t, matchesTitle(nil, "", "any"))
	assert.True(t, matchesTitle(&model.PersonCriteria{Seniority: []string{"c-level"}}, "Intern", "any"))
	assert.True(t, matchesTitle(both, "VP Sales", "any"))
	assert.True(t, matchesTitle(both, "Head of Revenue", "any"))
	assert.False(t, matchesTitle(both, "VP Engineering", "any"))
	assert.False(t, matchesTitle(both, "Sales Manager", "any"))

	assert.False(t, matchesTitle(both, "VP Sales", "all"))
	assert.True(t, matchesTitle(both, "VP Sales and Revenue", "all"))
}

func TestGetLeads_OwnerLookupSkippedWithoutDomain(t *testing.T) {
	s, svc := newTestService(DefaultMatchPolicy())
	s.On("GetProfile", "nodomain").Return(&model.Profile{Slug: "nodomain"}, nil)
	s.On("SampleCompanyDomains", 200).Return([]string{}, nil)

	response, err := svc.GetLeads(context.Background(), "nodomain")
	require.NoError(t, err)
	assert.Nil(t, response.CompanyName)
	s.AssertNotCalled(t, "GetCompanyName", mock.Anything)
}
