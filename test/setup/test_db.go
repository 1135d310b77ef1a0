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

package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/database/provider"
)

// TestDatabase contains the running container and a client connected to it.
type TestDatabase struct {
	Container  *postgres.PostgresContainer
	DataSource config.DataSourceConfig
	Client     client.DBClientInterface
}

// SetupTestDB spins up a Postgres container with repository/dbscripts/postgres.sql applied.
func SetupTestDB(ctx context.Context) (*TestDatabase, error) {

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.WithInitScripts(schemaScript()),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	dataSource := config.DataSourceConfig{
		Hostname: host,
		Port:     port.Int(),
		Name:     "testdb",
		Username: "testuser",
		Password: "testpass",
		SSLMode:  "disable",
	}
	dbClient, err := provider.NewDBProvider(dataSource).OpenDBClient(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &TestDatabase{
		Container:  container,
		DataSource: dataSource,
		Client:     dbClient,
	}, nil
}

// Exec runs a statement that returns no rows.
func (t *TestDatabase) Exec(ctx context.Context, statement string, args ...interface{}) error {
	_, err := t.Client.ExecuteQuery(ctx, statement, args...)
	return err
}

// Close releases the client and stops the container.
func (t *TestDatabase) Close(ctx context.Context) {
	_ = t.Client.Close()
	if err := testcontainers.TerminateContainer(t.Container); err != nil {
		fmt.Printf("failed to terminate container: %v\n", err)
	}
}

func schemaScript() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "repository", "dbscripts", "postgres.sql")
}
