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

package clientmock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDBClient is a testify mock of client.DBClientInterface. ExecuteQuery records the query text and
// the argument slice so callers can assert on both.
type MockDBClient struct {
	mock.Mock
}

func (m *MockDBClient) ExecuteQuery(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	called := m.Called(query, args)
	rows, _ := called.Get(0).([]map[string]interface{})
	return rows, called.Error(1)
}

func (m *MockDBClient) Ping(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockDBClient) Close() error {
	return m.Called().Error(0)
}
