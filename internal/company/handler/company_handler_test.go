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

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/icp-lead-service/internal/company/model"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/pagination"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) SearchFirmographics(ctx context.Context, filter model.SearchFilter, limit, offset int) (*pagination.Page[model.Firmographics], error) {
	args := m.Called(filter, limit, offset)
	page, _ := args.Get(0).(*pagination.Page[model.Firmographics])
	return page, args.Error(1)
}

func (m *MockCompanyService) GetFirmographics(ctx context.Context, domain string) (*model.Firmographics, error) {
	args := m.Called(domain)
	result, _ := args.Get(0).(*model.Firmographics)
	return result, args.Error(1)
}

func serve(h *CompanyHandler, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/companies", h.SearchCompanies)
	mux.HandleFunc("GET /api/companies/firmo/{domain}", h.GetFirmographics)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchCompanies(t *testing.T) {
	svc := new(MockCompanyService)
	minEmployees, foundedBefore := int64(50), int64(2020)
	filter := model.SearchFilter{Industry: "fintech", Country: "US", MinEmployees: &minEmployees, FoundedBefore: &foundedBefore}
	page := pagination.NewPage([]model.Firmographics{{CompanyDomain: "ramp.com"}}, 31, 10, 20)
	svc.On("SearchFirmographics", filter, 10, 20).Return(&page, nil)

	rec := serve(&CompanyHandler{companyService: svc},
		"/api/companies?industry=fintech&country=US&min_employees=50&founded_before=2020&limit=10&offset=20")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"total": float64(31), "limit": float64(10), "offset": float64(20), "hasMore": true},
		body["pagination"])
	assert.Len(t, body["data"], 1)
}

func TestSearchCompanies_Defaults(t *testing.T) {
	svc := new(MockCompanyService)
	page := pagination.NewPage[model.Firmographics](nil, 0, 20, 0)
	svc.On("SearchFirmographics", model.SearchFilter{}, 20, 0).Return(&page, nil)

	rec := serve(&CompanyHandler{companyService: svc}, "/api/companies")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"total":0,"limit":20,"offset":0,"hasMore":false}}`, rec.Body.String())
}

func TestSearchCompanies_InvalidParams(t *testing.T) {
	for _, target := range []string{
		"/api/companies?limit=0",
		"/api/companies?limit=101",
		"/api/companies?offset=-1",
		"/api/companies?min_employees=lots",
		"/api/companies?founded_after=1999.5",
	} {
		t.Run(target, func(t *testing.T) {
			svc := new(MockCompanyService)
			rec := serve(&CompanyHandler{companyService: svc}, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_ERROR", body["error"]["code"])
			assert.NotEmpty(t, body["error"]["details"])
			svc.AssertNotCalled(t, "SearchFirmographics", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetFirmographics(t *testing.T) {
	svc := new(MockCompanyService)
	svc.On("GetFirmographics", "acme.com").Return(&model.Firmographics{ID: "1", CompanyDomain: "acme.com"}, nil)
	svc.On("GetFirmographics", "none.com").Return(nil, customerrors.NewNotFoundError("Company"))
	h := &CompanyHandler{companyService: svc}

	rec := serve(h, "/api/companies/firmo/acme.com")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "acme.com", body["company_domain"])

	rec = serve(h, "/api/companies/firmo/none.com")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Company not found"}}`, rec.Body.String())
}
