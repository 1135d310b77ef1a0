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

package managers

import (
	"net/http"

	companyprovider "github.com/wso2/icp-lead-service/internal/company/provider"
	healthprovider "github.com/wso2/icp-lead-service/internal/health_check/provider"
	icpprovider "github.com/wso2/icp-lead-service/internal/icp/provider"
	personprovider "github.com/wso2/icp-lead-service/internal/person/provider"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux      *http.ServeMux
	dbClient client.DBClientInterface
	config   *config.Config
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, dbClient client.DBClientInterface, cfg *config.Config) ServiceManagerInterface {

	return &ServiceManager{
		mux:      mux,
		dbClient: dbClient,
		config:   cfg,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	services.NewLeadService(sm.mux, apiBasePath, icpprovider.NewICPProvider(sm.dbClient, sm.config))
	services.NewCompanyService(sm.mux, apiBasePath, companyprovider.NewCompanyProvider(sm.dbClient, sm.config.Schemas))
	services.NewPersonService(sm.mux, apiBasePath, personprovider.NewPersonProvider(sm.dbClient, sm.config))
	services.NewHealthService(sm.mux, healthprovider.NewHealthCheckProvider(sm.dbClient))
	return nil
}
