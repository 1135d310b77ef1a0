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
	"fmt"

	"github.com/wso2/icp-lead-service/internal/system/database/client"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	dbClient client.DBClientInterface
}

// NewHealthCheckService returns a new instance.
func NewHealthCheckService(dbClient client.DBClientInterface) HealthCheckServiceInterface {
	return &HealthCheckService{dbClient: dbClient}
}

func (h *HealthCheckService) CheckReadiness(ctx context.Context) error {
	if h.dbClient == nil {
		return errors.New("database client not initialized")
	}

	if err := h.dbClient.Ping(ctx); err != nil {
		return fmt.Errorf("database connectivity check failed: %v", err)
	}
	return nil
}
