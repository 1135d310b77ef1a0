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

package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wso2/icp-lead-service/internal/system/constants"
)

// ParseLimit reads ?limit=, defaulting to DefaultPageLimit and rejecting values outside 1..MaxPageLimit.
func ParseLimit(r *http.Request) (int, error) {
	limit := constants.DefaultPageLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("invalid limit")
		}
		if v > constants.MaxPageLimit {
			return 0, fmt.Errorf("limit must not exceed %d", constants.MaxPageLimit)
		}
		limit = v
	}

	return limit, nil
}

// ParseOffset reads ?offset=, defaulting to 0.
func ParseOffset(r *http.Request) (int, error) {

	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid offset")
	}
	return v, nil
}
