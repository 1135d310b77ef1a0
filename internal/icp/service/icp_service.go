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
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/wso2/icp-lead-service/internal/icp/model"
	"github.com/wso2/icp-lead-service/internal/icp/store"
	"github.com/wso2/icp-lead-service/internal/system/cache"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
	"github.com/wso2/icp-lead-service/internal/system/metrics"
	"golang.org/x/sync/errgroup"
)

type ICPServiceInterface interface {
	GetLeads(ctx context.Context, slug string) (*model.LeadsResponse, error)
	ResolveProfile(ctx context.Context, slug string) (*model.Profile, error)
	FilterCompanies(ctx context.Context, criteria *model.CompanyCriteria) ([]string, error)
	FilterPeople(ctx context.Context, domains []string, criteria *model.PersonCriteria) ([]model.Lead, error)
}

// ICPService resolves an ICP profile and matches leads against its criteria.
type ICPService struct {
	store    store.ICPStoreInterface
	policy   MatchPolicy
	profiles *cache.Cache[model.Profile]
}

// NewICPService creates the service. A zero profileTTL disables profile caching.
func NewICPService(icpStore store.ICPStoreInterface, policy MatchPolicy, profileTTL time.Duration) ICPServiceInterface {

	return &ICPService{
		store:    icpStore,
		policy:   policy,
		profiles: cache.NewCache[model.Profile](profileTTL),
	}
}

// NormalizeSlug is the canonical form slugs are matched in.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// GetLeads runs the full pipeline for a profile slug.
func (s *ICPService) GetLeads(ctx context.Context, slug string) (*model.LeadsResponse, error) {

	response, err := s.getLeads(ctx, slug)
	metrics.RecordLeadRequest(outcomeOf(err))
	if err == nil {
		metrics.ObserveLeadsReturned(response.TotalLeads)
	}
	return response, err
}

func (s *ICPService) getLeads(ctx context.Context, slug string) (*model.LeadsResponse, error) {

	logger := log.FromContext(ctx)
	slug = NormalizeSlug(slug)
	if slug == "" {
		return nil, customerrors.NewBadRequestError("ICP slug is required")
	}

	profile, err := s.ResolveProfile(ctx, slug)
	if err != nil {
		return nil, err
	}

	companyCriteria, err := model.ParseCompanyCriteria(profile.CompanyCriteria)
	if err != nil {
		return nil, criteriaValidationError(slug, err)
	}
	personCriteria, err := model.ParsePersonCriteria(profile.PersonCriteria)
	if err != nil {
		return nil, criteriaValidationError(slug, err)
	}

	// The owner name does not depend on the candidates, so it is looked up alongside them.
	var ownerName *string
	leads := []model.Lead{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if profile.Domain == "" {
			return nil
		}
		defer metrics.ObserveStage(metrics.StageOwnerLookup, time.Now())
		name, err := s.store.GetCompanyName(gctx, profile.Domain)
		if err != nil {
			return err
		}
		ownerName = name
		return nil
	})
	g.Go(func() error {
		domains, err := s.FilterCompanies(gctx, companyCriteria)
		if err != nil {
			return err
		}
		if len(domains) == 0 {
			return nil
		}
		matched, err := s.FilterPeople(gctx, domains, personCriteria)
		if err != nil {
			return err
		}
		leads = matched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Resolved leads for ICP", log.String("slug", slug), log.Int("leads", len(leads)))
	return &model.LeadsResponse{
		Slug:        slug,
		Domain:      profile.Domain,
		CompanyName: ownerName,
		ICP: model.ICP{
			CompanyCriteria: profile.CompanyCriteria,
			PersonCriteria:  profile.PersonCriteria,
		},
		Leads:      leads,
		TotalLeads: len(leads),
	}, nil
}

// ResolveProfile looks up a profile by slug after normalizing it. An unknown slug is a not found client error.
func (s *ICPService) ResolveProfile(ctx context.Context, slug string) (*model.Profile, error) {

	slug = NormalizeSlug(slug)
	if slug == "" {
		return nil, customerrors.NewBadRequestError("ICP slug is required")
	}
	if profile, ok := s.profiles.Get(slug); ok {
		return &profile, nil
	}
	defer metrics.ObserveStage(metrics.StageResolve, time.Now())

	profile, err := s.store.GetProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, customerrors.NewNotFoundError("ICP for slug")
	}
	s.profiles.Set(slug, *profile)
	return profile, nil
}

// FilterCompanies returns the candidate domains for the criteria. Without criteria it returns a bounded
// sample. Otherwise the employee count bounds are applied by the store on a capped page and the
// remaining criteria are applied to that page.
func (s *ICPService) FilterCompanies(ctx context.Context, criteria *model.CompanyCriteria) ([]string, error) {

	defer metrics.ObserveStage(metrics.StageCompanyFilter, time.Now())
	logger := log.FromContext(ctx)

	if criteria == nil {
		domains, err := s.store.SampleCompanyDomains(ctx, s.policy.CompanySampleLimit)
		if err != nil {
			return nil, err
		}
		metrics.ObserveCandidateCompanies(len(domains))
		logger.Debug("Sampled candidate companies", log.Int("count", len(domains)))
		return domains, nil
	}

	companies, err := s.store.ListCompanies(ctx, criteria.EmployeeCountMin, criteria.EmployeeCountMax,
		s.policy.CompanyScanLimit)
	if err != nil {
		return nil, err
	}

	domains := make([]string, 0, len(companies))
	for _, company := range companies {
		if !matchesCompany(criteria, company) {
			continue
		}
		if company.Domain != nil && *company.Domain != "" {
			domains = append(domains, *company.Domain)
		}
	}
	metrics.ObserveCandidateCompanies(len(domains))
	logger.Debug("Filtered candidate companies", log.Int("scanned", len(companies)),
		log.Int("matched", len(domains)))
	return domains, nil
}

// FilterPeople returns leads at the candidate domains whose title matches the criteria,
// truncated to the lead limit after filtering. No query is issued for an empty domain list.
func (s *ICPService) FilterPeople(ctx context.Context, domains []string, criteria *model.PersonCriteria) ([]model.Lead, error) {

	leads := []model.Lead{}
	if len(domains) == 0 {
		return leads, nil
	}
	defer metrics.ObserveStage(metrics.StagePersonFilter, time.Now())

	people, err := s.store.ListPeople(ctx, domains, s.policy.PeopleScanLimit)
	if err != nil {
		return nil, err
	}
	details, err := s.store.GetCompanyDetails(ctx, distinctDomains(people))
	if err != nil {
		return nil, err
	}

	for _, person := range people {
		if len(leads) >= s.policy.LeadLimit {
			break
		}
		if !matchesTitle(criteria, valueOrEmpty(person.Title), s.policy.TitleContainsAllMode) {
			continue
		}
		leads = append(leads, toLead(person, details))
	}
	log.FromContext(ctx).Debug("Filtered candidate people", log.Int("scanned", len(people)),
		log.Int("leads", len(leads)))
	return leads, nil
}

func toLead(person model.PersonRecord, details map[string]model.CompanyDetails) model.Lead {

	info := details[valueOrEmpty(person.CompanyDomain)]
	companyName := person.Company
	if companyName == nil {
		companyName = info.Name
	}
	return model.Lead{
		LinkedinURL:     person.LinkedinURL,
		LinkedinSlug:    person.LinkedinSlug,
		FullName:        person.FullName,
		Title:           person.Title,
		CompanyName:     companyName,
		CompanyDomain:   person.CompanyDomain,
		CompanyIndustry: info.Industry,
		CompanySize:     info.SizeRange,
		// Customer history is not computed yet.
		IsWorkedAtCustomer:      false,
		WorkedAtCustomerCompany: nil,
	}
}

func distinctDomains(people []model.PersonRecord) []string {

	seen := make(map[string]bool, len(people))
	var domains []string
	for _, person := range people {
		domain := valueOrEmpty(person.CompanyDomain)
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}
	return domains
}

func criteriaValidationError(slug string, err error) error {

	var criteriaErr *model.CriteriaError
	details := map[string]interface{}{"slug": slug}
	if errors.As(err, &criteriaErr) {
		details[criteriaErr.Field] = criteriaErr.Reason
	}
	return customerrors.NewValidationError(http.StatusUnprocessableEntity,
		"stored ICP criteria are malformed", details)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case customerrors.IsNotFound(err):
		return metrics.OutcomeNotFound
	case customerrors.IsClientError(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeStoreError
	}
}
