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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/icp-lead-service/internal/company/model"
	"github.com/wso2/icp-lead-service/internal/company/provider"
	"github.com/wso2/icp-lead-service/internal/company/service"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/pagination"
	"github.com/wso2/icp-lead-service/internal/system/utils"
)

type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

func NewCompanyHandler(companyProvider provider.CompanyProviderInterface) *CompanyHandler {

	return &CompanyHandler{companyService: companyProvider.GetCompanyService()}
}

// SearchCompanies handles GET /api/companies.
func (h *CompanyHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {

	issues := map[string]interface{}{}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		issues["limit"] = err.Error()
	}
	offset, err := pagination.ParseOffset(r)
	if err != nil {
		issues["offset"] = err.Error()
	}

	params := r.URL.Query()
	filter := model.SearchFilter{
		Domain:    strings.TrimSpace(params.Get("domain")),
		Name:      strings.TrimSpace(params.Get("name")),
		Industry:  strings.TrimSpace(params.Get("industry")),
		Country:   strings.TrimSpace(params.Get("country")),
		SizeRange: strings.TrimSpace(params.Get("size_range")),
	}
	filter.MinEmployees = parseIntParam(params.Get("min_employees"), "min_employees", issues)
	filter.MaxEmployees = parseIntParam(params.Get("max_employees"), "max_employees", issues)
	filter.FoundedAfter = parseIntParam(params.Get("founded_after"), "founded_after", issues)
	filter.FoundedBefore = parseIntParam(params.Get("founded_before"), "founded_before", issues)

	if len(issues) > 0 {
		utils.HandleError(w, r, customerrors.NewValidationError(http.StatusBadRequest,
			"invalid company search parameters", issues))
		return
	}

	page, err := h.companyService.SearchFirmographics(r.Context(), filter, limit, offset)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

// GetFirmographics handles GET /api/companies/firmo/{domain}.
func (h *CompanyHandler) GetFirmographics(w http.ResponseWriter, r *http.Request) {

	firmographics, err := h.companyService.GetFirmographics(r.Context(), r.PathValue("domain"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, firmographics)
}

func parseIntParam(raw, name string, issues map[string]interface{}) *int64 {

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		issues[name] = fmt.Sprintf("%s must be an integer", name)
		return nil
	}
	return &v
}
