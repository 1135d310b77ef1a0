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
	"database/sql"
	"fmt"

	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn          string
	driverName   string
	maxOpenConns int
	maxIdleConns int
}

// DBProviderInterface defines the interface for opening the shared database client.
type DBProviderInterface interface {
	OpenDBClient(ctx context.Context) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dataSource config.DataSourceConfig
}

// NewDBProvider creates a new instance of DBProvider for the given data source.
func NewDBProvider(dataSource config.DataSourceConfig) DBProviderInterface {

	return &DBProvider{dataSource: dataSource}
}

// OpenDBClient opens the connection pool once. The returned client is shared by every request
// and must be closed by the caller at shutdown.
func (d *DBProvider) OpenDBClient(ctx context.Context) (client.DBClientInterface, error) {

	dbConfig := getDBConfig(d.dataSource)

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, clientInitError("failed to connect to database", err)
	}
	if dbConfig.maxOpenConns > 0 {
		db.SetMaxOpenConns(dbConfig.maxOpenConns)
	}
	if dbConfig.maxIdleConns > 0 {
		db.SetMaxIdleConns(dbConfig.maxIdleConns)
	}

	// Test the database connection.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, clientInitError("failed to ping database", err)
	}

	return client.NewDBClient(db), nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSourceConfig) DBConfig {

	var dbConfig DBConfig

	dbConfig.driverName = "postgres"
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
		dataSource.Name, dataSource.SSLMode)
	dbConfig.maxOpenConns = dataSource.MaxOpenConns
	dbConfig.maxIdleConns = dataSource.MaxIdleConns

	return dbConfig
}

func clientInitError(description string, cause error) error {

	return customerrors.NewServerError(customerrors.ErrorMessage{
		Code:        customerrors.DB_CLIENT_INIT.Code,
		Message:     customerrors.DB_CLIENT_INIT.Message,
		Description: description,
	}, cause)
}
