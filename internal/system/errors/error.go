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

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorMessage struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"-"`
}

type ClientError struct {
	ErrorMessage
	StatusCode int
	Details    map[string]interface{}
}

type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %s: %v", e.Code, e.Message, e.Description, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Description)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// NewNotFoundError builds the 404 error for a missing resource, e.g. "ICP for slug".
func NewNotFoundError(resource string) *ClientError {
	return NewClientError(ErrorMessage{
		Code:    NOT_FOUND.Code,
		Message: fmt.Sprintf("%s not found", resource),
	}, http.StatusNotFound)
}

// NewValidationError builds a validation failure. details is rendered alongside the message.
func NewValidationError(statusCode int, description string, details map[string]interface{}) *ClientError {
	return &ClientError{
		ErrorMessage: ErrorMessage{
			Code:        VALIDATION_ERROR.Code,
			Message:     VALIDATION_ERROR.Message,
			Description: description,
		},
		StatusCode: statusCode,
		Details:    details,
	}
}

func NewBadRequestError(message string) *ClientError {
	return NewClientError(ErrorMessage{
		Code:    BAD_REQUEST.Code,
		Message: message,
	}, http.StatusBadRequest)
}

// IsNotFound reports whether err is a client error carrying the NOT_FOUND code.
func IsNotFound(err error) bool {
	var clientError *ClientError
	return errors.As(err, &clientError) && clientError.Code == NOT_FOUND.Code
}

// IsClientError reports whether err (or anything it wraps) is a ClientError.
func IsClientError(err error) bool {
	var clientError *ClientError
	return errors.As(err, &clientError)
}
