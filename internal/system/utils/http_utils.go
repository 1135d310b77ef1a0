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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/internal/system/log"
)

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// HandleError sends an HTTP error response based on the provided error.
// Client errors are rendered as they are. Anything else is logged in full and rendered as an opaque 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		status := clientError.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		if clientError.Description != "" {
			log.FromContext(r.Context()).Debug("Client error", log.String("code", clientError.Code),
				log.String("description", clientError.Description))
		}
		WriteJSON(w, status, errorEnvelope{Error: errorBody{
			Code:    clientError.Code,
			Message: clientError.Message,
			Details: clientError.Details,
		}})
		return
	}

	logger := log.FromContext(r.Context())
	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		logger.Error("Server error", log.String("code", serverError.Code),
			log.String("path", r.URL.Path), log.Error(err))
	} else {
		logger.Error("Unexpected error", log.String("path", r.URL.Path), log.Error(err))
	}
	WriteJSON(w, http.StatusInternalServerError, errorEnvelope{Error: errorBody{
		Code:    customerrors.INTERNAL_ERROR.Code,
		Message: customerrors.INTERNAL_ERROR.Message,
	}})
}
