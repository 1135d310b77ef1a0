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

	"github.com/wso2/icp-lead-service/internal/icp/provider"
	"github.com/wso2/icp-lead-service/internal/icp/service"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/utils"
)

type ICPHandler struct {
	icpService service.ICPServiceInterface
}

func NewICPHandler(icpProvider provider.ICPProviderInterface) *ICPHandler {

	return &ICPHandler{icpService: icpProvider.GetICPService()}
}

// GetLeads handles GET /api/leads/{slug}: leads matching the ICP criteria of the profile.
func (h *ICPHandler) GetLeads(w http.ResponseWriter, r *http.Request) {

	slug := service.NormalizeSlug(r.PathValue("slug"))
	if slug == "" {
		utils.HandleError(w, r, customerrors.NewBadRequestError("ICP slug is required"))
		return
	}

	response, err := h.icpService.GetLeads(r.Context(), slug)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, response)
}
