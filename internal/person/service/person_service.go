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
	"strings"

	"github.com/wso2/icp-lead-service/internal/person/model"
	"github.com/wso2/icp-lead-service/internal/person/store"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
	"github.com/wso2/icp-lead-service/internal/system/pagination"
	"golang.org/x/sync/errgroup"
)

type PersonServiceInterface interface {
	SearchPeople(ctx context.Context, filter model.SearchFilter, limit, offset int) (*pagination.Page[model.Person], error)
	GetPerson(ctx context.Context, slug string) (*model.PersonDetails, error)
	GetExperience(ctx context.Context, slug string) ([]model.Experience, error)
	GetEducation(ctx context.Context, slug string) ([]model.Education, error)
	GetPeopleByPastCompany(ctx context.Context, q model.PastCompanyQuery, limit, offset int) (*pagination.Page[model.PastEmployee], error)
}

type PersonService struct {
	store     store.PersonStoreInterface
	scanLimit int
}

// NewPersonService creates a person service. scanLimit caps the experience rows read for one
// past-company lookup.
func NewPersonService(personStore store.PersonStoreInterface, scanLimit int) PersonServiceInterface {

	return &PersonService{store: personStore, scanLimit: scanLimit}
}

// SearchPeople returns one page of canonical people, newest first, with the total match count.
func (s *PersonService) SearchPeople(ctx context.Context, filter model.SearchFilter, limit, offset int) (*pagination.Page[model.Person], error) {

	var (
		data  []model.Person
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.store.SearchPeople(gctx, filter, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountPeople(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	page := pagination.NewPage(data, total, limit, offset)
	return &page, nil
}

// GetPerson returns the latest profile for a LinkedIn slug together with its experience and education.
func (s *PersonService) GetPerson(ctx context.Context, slug string) (*model.PersonDetails, error) {

	profile, err := s.resolveProfile(ctx, slug)
	if err != nil {
		return nil, err
	}

	details := &model.PersonDetails{Profile: *profile}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Experience, err = s.store.ListExperience(gctx, profile.LinkedinURL)
		return err
	})
	g.Go(func() error {
		var err error
		details.Education, err = s.store.ListEducation(gctx, profile.LinkedinURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if details.Experience == nil {
		details.Experience = []model.Experience{}
	}
	if details.Education == nil {
		details.Education = []model.Education{}
	}
	return details, nil
}

func (s *PersonService) GetExperience(ctx context.Context, slug string) ([]model.Experience, error) {

	profile, err := s.resolveProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	experience, err := s.store.ListExperience(ctx, profile.LinkedinURL)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		experience = []model.Experience{}
	}
	return experience, nil
}

func (s *PersonService) GetEducation(ctx context.Context, slug string) ([]model.Education, error) {

	profile, err := s.resolveProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	education, err := s.store.ListEducation(ctx, profile.LinkedinURL)
	if err != nil {
		return nil, err
	}
	if education == nil {
		education = []model.Education{}
	}
	return education, nil
}

// GetPeopleByPastCompany lists people with an ended position at the queried company, in the order
// their URLs first appear among the matching positions. Each person carries the latest profile
// snapshot and every matching position.
func (s *PersonService) GetPeopleByPastCompany(ctx context.Context, q model.PastCompanyQuery, limit, offset int) (*pagination.Page[model.PastEmployee], error) {

	q = model.PastCompanyQuery{
		CompanyDomain:      strings.TrimSpace(q.CompanyDomain),
		CompanyLinkedinURL: strings.TrimSpace(q.CompanyLinkedinURL),
		CompanyName:        strings.TrimSpace(q.CompanyName),
	}
	if q.IsEmpty() {
		return nil, customerrors.NewBadRequestError(
			"At least one of company_domain, company_linkedin_url, or company_name is required")
	}

	experience, err := s.store.ListPastExperience(ctx, q, s.scanLimit)
	if err != nil {
		return nil, err
	}
	if s.scanLimit > 0 && len(experience) >= s.scanLimit {
		log.FromContext(ctx).Warn("Past experience scan limit reached",
			log.Int("limit", s.scanLimit), log.String("company_domain", q.CompanyDomain),
			log.String("company_name", q.CompanyName))
	}

	var urls []string
	byURL := map[string][]model.Experience{}
	for _, e := range experience {
		if e.LinkedinURL == "" {
			continue
		}
		if _, seen := byURL[e.LinkedinURL]; !seen {
			urls = append(urls, e.LinkedinURL)
		}
		byURL[e.LinkedinURL] = append(byURL[e.LinkedinURL], e)
	}
	if len(urls) == 0 {
		page := pagination.NewPage[model.PastEmployee](nil, 0, limit, offset)
		return &page, nil
	}

	profiles, err := s.store.ListProfilesByURL(ctx, urls)
	if err != nil {
		return nil, err
	}
	// Snapshots arrive newest first, so the first one seen per URL is the latest.
	latest := make(map[string]model.Profile, len(urls))
	for _, p := range profiles {
		if _, ok := latest[p.LinkedinURL]; !ok {
			latest[p.LinkedinURL] = p
		}
	}

	employees := make([]model.PastEmployee, 0, len(urls))
	for _, url := range urls {
		p, ok := latest[url]
		if !ok {
			continue
		}
		employees = append(employees, model.PastEmployee{
			LinkedinURL:             url,
			LinkedinSlug:            p.LinkedinSlug,
			FullName:                p.FullName,
			Headline:                p.Headline,
			CurrentCompany:          p.LatestCompany,
			CurrentTitle:            p.LatestTitle,
			PictureURL:              p.PictureURL,
			PastExperienceAtCompany: byURL[url],
		})
	}

	total := int64(len(employees))
	start := min(offset, len(employees))
	end := min(start+limit, len(employees))
	page := pagination.NewPage(employees[start:end], total, limit, offset)
	return &page, nil
}

func (s *PersonService) resolveProfile(ctx context.Context, slug string) (*model.Profile, error) {

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, customerrors.NewBadRequestError("Person slug is required")
	}
	profile, err := s.store.GetLatestProfileBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, customerrors.NewNotFoundError("Person")
	}
	return profile, nil
}
