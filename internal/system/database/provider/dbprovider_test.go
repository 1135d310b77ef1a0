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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/icp-lead-service/internal/system/config"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
)

func TestGetDBConfig(t *testing.T) {
	dbConfig := getDBConfig(config.DataSourceConfig{
		Hostname:     "db.internal",
		Port:         6543,
		Name:         "leads",
		Username:     "svc",
		Password:     "pw",
		SSLMode:      "require",
		MaxOpenConns: 20,
	})

	assert.Equal(t, "postgres", dbConfig.driverName)
	assert.Equal(t, "host=db.internal port=6543 user=svc password=pw dbname=leads sslmode=require", dbConfig.dsn)
	assert.Equal(t, 20, dbConfig.maxOpenConns)
	assert.Zero(t, dbConfig.maxIdleConns)
}

func TestOpenDBClient_UnreachableDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbClient, err := NewDBProvider(config.DataSourceConfig{
		Hostname: "127.0.0.1",
		Port:     1,
		Name:     "leads",
		Username: "svc",
		Password: "pw",
		SSLMode:  "disable",
	}).OpenDBClient(ctx)

	assert.Nil(t, dbClient)
	var serverErr *customerrors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, customerrors.DB_CLIENT_INIT.Code, serverErr.Code)
	assert.Equal(t, "failed to ping database", serverErr.Description)
}
