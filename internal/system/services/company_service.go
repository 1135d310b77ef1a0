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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/icp-lead-service/internal/company/handler"
	"github.com/wso2/icp-lead-service/internal/company/provider"
	"github.com/wso2/icp-lead-service/internal/system/constants"
)

type CompanyService struct {
	companyHandler *handler.CompanyHandler
}

func NewCompanyService(mux *http.ServeMux, apiBasePath string, companyProvider provider.CompanyProviderInterface) *CompanyService {

	instance := &CompanyService{
		companyHandler: handler.NewCompanyHandler(companyProvider),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *CompanyService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/%s", apiBasePath, constants.CompaniesApiPath), s.companyHandler.SearchCompanies)
	mux.HandleFunc(fmt.Sprintf("GET %s/%s/{domain}", apiBasePath, constants.FirmographicsApiPath),
		s.companyHandler.GetFirmographics)
}
