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

const errorPrefix = "ICP-"

var (
	// Server error codes. They are logged, the caller only ever sees INTERNAL_ERROR.

	FETCH_ICP_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while fetching ICP profile.",
	}

	FETCH_CANDIDATE_COMPANIES = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching candidate companies.",
	}

	FETCH_CANDIDATE_PEOPLE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching candidate people.",
	}

	FETCH_COMPANY_DETAILS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching company details.",
	}

	FETCH_OWNER_COMPANY = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while resolving ICP owner company.",
	}

	SEARCH_FIRMOGRAPHICS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while searching company firmographics.",
	}

	COUNT_FIRMOGRAPHICS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while counting company firmographics.",
	}

	FETCH_FIRMOGRAPHICS = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching company firmographics.",
	}

	BUILD_QUERY = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while building store query.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Unable to initialize database client.",
	}

	SEARCH_PEOPLE = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while searching people.",
	}

	COUNT_PEOPLE = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while counting people.",
	}

	FETCH_PERSON_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while fetching person profile.",
	}

	FETCH_PERSON_EXPERIENCE = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while fetching person experience.",
	}

	FETCH_PERSON_EDUCATION = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while fetching person education.",
	}

	// Codes rendered to callers.

	INTERNAL_ERROR = ErrorMessage{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	}

	NOT_FOUND = ErrorMessage{
		Code:    "NOT_FOUND",
		Message: "Resource not found",
	}

	VALIDATION_ERROR = ErrorMessage{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request data",
	}

	BAD_REQUEST = ErrorMessage{
		Code:    "BAD_REQUEST",
		Message: "Bad request",
	}
)
