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

package provider

import (
	"github.com/wso2/icp-lead-service/internal/company/service"
	"github.com/wso2/icp-lead-service/internal/company/store"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
)

type CompanyProviderInterface interface {
	GetCompanyService() service.CompanyServiceInterface
}

type CompanyProvider struct {
	companyService service.CompanyServiceInterface
}

func NewCompanyProvider(dbClient client.DBClientInterface, schemas config.SchemaConfig) CompanyProviderInterface {

	return &CompanyProvider{
		companyService: service.NewCompanyService(store.NewCompanyStore(dbClient, schemas)),
	}
}

// GetCompanyService returns the company service instance.
func (p *CompanyProvider) GetCompanyService() service.CompanyServiceInterface {

	return p.companyService
}
