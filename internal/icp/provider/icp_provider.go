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
	"github.com/wso2/icp-lead-service/internal/icp/service"
	"github.com/wso2/icp-lead-service/internal/icp/store"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
)

// ICPProviderInterface defines the interface for the ICP provider.
type ICPProviderInterface interface {
	GetICPService() service.ICPServiceInterface
}

// ICPProvider wires the ICP service to its store. The service, and so its profile cache, is built once.
type ICPProvider struct {
	icpService service.ICPServiceInterface
}

// NewICPProvider creates a new instance of ICPProvider.
func NewICPProvider(dbClient client.DBClientInterface, cfg *config.Config) ICPProviderInterface {

	icpStore := store.NewICPStore(dbClient, cfg.Schemas)
	return &ICPProvider{
		icpService: service.NewICPService(icpStore, service.NewMatchPolicy(cfg.Leads), cfg.ProfileCacheTTL()),
	}
}

// GetICPService returns the ICP service instance.
func (p *ICPProvider) GetICPService() service.ICPServiceInterface {

	return p.icpService
}
