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
	"net/http"
	"strings"

	"github.com/wso2/icp-lead-service/internal/person/model"
	"github.com/wso2/icp-lead-service/internal/person/provider"
	"github.com/wso2/icp-lead-service/internal/person/service"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/pagination"
	"github.com/wso2/icp-lead-service/internal/system/utils"
)

type PersonHandler struct {
	personService service.PersonServiceInterface
}

func NewPersonHandler(personProvider provider.PersonProviderInterface) *PersonHandler {

	return &PersonHandler{personService: personProvider.GetPersonService()}
}

// SearchPeople handles GET /api/people.
func (h *PersonHandler) SearchPeople(w http.ResponseWriter, r *http.Request) {

	limit, offset, ok := parsePage(w, r, "invalid people search parameters")
	if !ok {
		return
	}
	params := r.URL.Query()
	filter := model.SearchFilter{
		LinkedinURL:  strings.TrimSpace(params.Get("linkedin_url")),
		LinkedinSlug: strings.TrimSpace(params.Get("linkedin_slug")),
		FullName:     strings.TrimSpace(params.Get("full_name")),
	}

	page, err := h.personService.SearchPeople(r.Context(), filter, limit, offset)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

// GetPerson handles GET /api/people/{slug}.
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {

	details, err := h.personService.GetPerson(r.Context(), r.PathValue("slug"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, details)
}

// GetExperience handles GET /api/people/background/{slug}/experience.
func (h *PersonHandler) GetExperience(w http.ResponseWriter, r *http.Request) {

	experience, err := h.personService.GetExperience(r.Context(), r.PathValue("slug"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, experience)
}

// GetEducation handles GET /api/people/{slug}/education.
func (h *PersonHandler) GetEducation(w http.ResponseWriter, r *http.Request) {

	education, err := h.personService.GetEducation(r.Context(), r.PathValue("slug"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, education)
}

// GetPeopleByPastCompany handles GET /api/people/by-past-company.
func (h *PersonHandler) GetPeopleByPastCompany(w http.ResponseWriter, r *http.Request) {

	limit, offset, ok := parsePage(w, r, "invalid past company parameters")
	if !ok {
		return
	}
	params := r.URL.Query()
	q := model.PastCompanyQuery{
		CompanyDomain:      params.Get("company_domain"),
		CompanyLinkedinURL: params.Get("company_linkedin_url"),
		CompanyName:        params.Get("company_name"),
	}

	page, err := h.personService.GetPeopleByPastCompany(r.Context(), q, limit, offset)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func parsePage(w http.ResponseWriter, r *http.Request, description string) (int, int, bool) {

	issues := map[string]interface{}{}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		issues["limit"] = err.Error()
	}
	offset, err := pagination.ParseOffset(r)
	if err != nil {
		issues["offset"] = err.Error()
	}
	if len(issues) > 0 {
		utils.HandleError(w, r, customerrors.NewValidationError(http.StatusBadRequest, description, issues))
		return 0, 0, false
	}
	return limit, offset, true
}
