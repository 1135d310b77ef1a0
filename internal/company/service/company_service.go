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

	"github.com/wso2/icp-lead-service/internal/company/model"
	"github.com/wso2/icp-lead-service/internal/company/store"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/pagination"
	"golang.org/x/sync/errgroup"
)

type CompanyServiceInterface interface {
	SearchFirmographics(ctx context.Context, filter model.SearchFilter, limit, offset int) (*pagination.Page[model.Firmographics], error)
	GetFirmographics(ctx context.Context, domain string) (*model.Firmographics, error)
}

type CompanyService struct {
	store store.CompanyStoreInterface
}

func NewCompanyService(companyStore store.CompanyStoreInterface) CompanyServiceInterface {

	return &CompanyService{store: companyStore}
}

// SearchFirmographics returns one page of matching companies, newest first, with the total match count.
func (s *CompanyService) SearchFirmographics(ctx context.Context, filter model.SearchFilter, limit, offset int) (*pagination.Page[model.Firmographics], error) {

	var (
		data  []model.Firmographics
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.store.SearchFirmographics(gctx, filter, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountFirmographics(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	page := pagination.NewPage(data, total, limit, offset)
	return &page, nil
}

// GetFirmographics returns the latest snapshot for an exact domain.
func (s *CompanyService) GetFirmographics(ctx context.Context, domain string) (*model.Firmographics, error) {

	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, customerrors.NewBadRequestError("Company domain is required")
	}
	firmographics, err := s.store.GetLatestFirmographics(ctx, domain)
	if err != nil {
		return nil, err
	}
	if firmographics == nil {
		return nil, customerrors.NewNotFoundError("Company")
	}
	return firmographics, nil
}
