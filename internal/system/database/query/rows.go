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

package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// StringValue reads a nullable text column from a result row.
func StringValue(row map[string]interface{}, column string) *string {

	switch v := row[column].(type) {
	case nil:
		return nil
	case string:
		return &v
	case []byte:
		s := string(v)
		return &s
	default:
		s := fmt.Sprint(v)
		return &s
	}
}

// StringOrEmpty reads a text column, mapping NULL to "".
func StringOrEmpty(row map[string]interface{}, column string) string {
	if s := StringValue(row, column); s != nil {
		return *s
	}
	return ""
}

// Int64Value reads a nullable integer column from a result row.
func Int64Value(row map[string]interface{}, column string) *int64 {

	var n int64
	switch v := row[column].(type) {
	case nil:
		return nil
	case int64:
		n = v
	case int32:
		n = int64(v)
	case int:
		n = int64(v)
	case float64:
		n = int64(v)
	case []byte:
		parsed, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	return &n
}

// JSONValue reads a json/jsonb column without decoding it. SQL NULL yields nil.
func JSONValue(row map[string]interface{}, column string) json.RawMessage {

	switch v := row[column].(type) {
	case nil:
		return nil
	case []byte:
		out := make(json.RawMessage, len(v))
		copy(out, v)
		return out
	case string:
		return json.RawMessage(v)
	default:
		return nil
	}
}

// TimeValue reads a nullable timestamp column.
func TimeValue(row map[string]interface{}, column string) *time.Time {
	if v, ok := row[column].(time.Time); ok {
		return &v
	}
	return nil
}

// BoolValue reads a nullable boolean column.
func BoolValue(row map[string]interface{}, column string) *bool {
	if v, ok := row[column].(bool); ok {
		return &v
	}
	return nil
}

// DateValue reads a nullable date column as YYYY-MM-DD.
func DateValue(row map[string]interface{}, column string) *string {

	switch v := row[column].(type) {
	case time.Time:
		s := v.Format(time.DateOnly)
		return &s
	case nil:
		return nil
	default:
		return StringValue(row, column)
	}
}
