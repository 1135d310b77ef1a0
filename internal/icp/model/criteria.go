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

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// maxExactFloat is the largest magnitude at which every whole float64 is an exact integer.
const maxExactFloat = 1 << 53

// CriteriaError describes stored criteria that cannot be used for matching.
type CriteriaError struct {
	Field  string
	Reason string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ParseCompanyCriteria decodes company criteria. JSON null or an empty value yields nil.
func ParseCompanyCriteria(raw json.RawMessage) (*CompanyCriteria, error) {

	if IsNullJSON(raw) {
		return nil, nil
	}
	// Numeric bounds are decoded separately so whole numbers written as 50.0 or 5e1 are accepted.
	var doc struct {
		CompanyCriteria
		EmployeeCountMin json.RawMessage `json:"employee_count_min"`
		EmployeeCountMax json.RawMessage `json:"employee_count_max"`
		FoundedMin       json.RawMessage `json:"founded_min"`
		FoundedMax       json.RawMessage `json:"founded_max"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &CriteriaError{Field: "company_criteria", Reason: err.Error()}
	}
	criteria := doc.CompanyCriteria
	var err error
	if criteria.EmployeeCountMin, err = parseWholeNumber("company_criteria.employee_count_min", doc.EmployeeCountMin); err != nil {
		return nil, err
	}
	if criteria.EmployeeCountMax, err = parseWholeNumber("company_criteria.employee_count_max", doc.EmployeeCountMax); err != nil {
		return nil, err
	}
	if criteria.FoundedMin, err = parseWholeNumber("company_criteria.founded_min", doc.FoundedMin); err != nil {
		return nil, err
	}
	if criteria.FoundedMax, err = parseWholeNumber("company_criteria.founded_max", doc.FoundedMax); err != nil {
		return nil, err
	}
	if criteria.EmployeeCountMin != nil && criteria.EmployeeCountMax != nil &&
		*criteria.EmployeeCountMin > *criteria.EmployeeCountMax {
		return nil, &CriteriaError{
			Field:  "company_criteria.employee_count_min",
			Reason: fmt.Sprintf("%d is greater than employee_count_max %d", *criteria.EmployeeCountMin, *criteria.EmployeeCountMax),
		}
	}
	return &criteria, nil
}

// ParsePersonCriteria decodes person criteria. JSON null or an empty value yields nil.
func ParsePersonCriteria(raw json.RawMessage) (*PersonCriteria, error) {

	if IsNullJSON(raw) {
		return nil, nil
	}
	var criteria PersonCriteria
	if err := json.Unmarshal(raw, &criteria); err != nil {
		return nil, &CriteriaError{Field: "person_criteria", Reason: err.Error()}
	}
	return &criteria, nil
}

// parseWholeNumber reads an optional JSON number that must hold an integer value.
func parseWholeNumber(field string, raw json.RawMessage) (*int64, error) {

	if IsNullJSON(raw) {
		return nil, nil
	}
	raw = bytes.TrimSpace(raw)
	var number json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &number) != nil {
		return nil, &CriteriaError{Field: field, Reason: "must be a number"}
	}
	if v, err := strconv.ParseInt(number.String(), 10, 64); err == nil {
		return &v, nil
	}
	f, err := number.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return nil, &CriteriaError{Field: field, Reason: fmt.Sprintf("%s is not an integer", number)}
	}
	v := int64(f)
	return &v, nil
}
