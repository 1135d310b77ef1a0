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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wso2/icp-lead-service/internal/system/config"
	"github.com/wso2/icp-lead-service/internal/system/constants"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
	"github.com/wso2/icp-lead-service/internal/system/database/provider"
	"github.com/wso2/icp-lead-service/internal/system/log"
	"github.com/wso2/icp-lead-service/internal/system/managers"
	"github.com/wso2/icp-lead-service/internal/system/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	icpHome := getICPHome()
	const configFile = "/repository/conf/deployment.yaml"

	envFiles, err := filepath.Glob(filepath.Join(icpHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	icpConfig, err := config.LoadConfig(icpHome, configFile)
	if err != nil {
		log.GetLogger().Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize logger
	if err := log.Init(icpConfig.Log.LogLevel, icpConfig.Log.Format); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}
	logger := log.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	dbClient, err := provider.NewDBProvider(icpConfig.DataSource).OpenDBClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize database client", log.Error(err))
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Warn("Failed to close database client", log.Error(err))
		}
	}()
	logger.Info("PostgreSQL database initialized successfully from configuration",
		log.String("host", icpConfig.DataSource.Hostname), log.String("database", icpConfig.DataSource.Name))

	serverAddr := fmt.Sprintf("%s:%d", icpConfig.Addr.Host, icpConfig.Addr.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           initHandler(dbClient, icpConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("ICP lead service started", log.String("address", serverAddr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down ICP lead service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", log.Error(err))
		}
	}
}

// initHandler initializes the HTTP multiplexer, registers the services and wraps it with the
// request middleware.
func initHandler(dbClient client.DBClientInterface, icpConfig *config.Config) http.Handler {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, dbClient, icpConfig)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	handler := utils.WithTimeout(icpConfig.RequestTimeout(), mux)
	handler = utils.WithTrace(handler)
	return utils.EnableCORS(icpConfig.CORS.AllowedOrigins, handler)
}

func getICPHome() string {

	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("icpHome", "", "Path to ICP lead service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		log.GetLogger().Info(fmt.Sprintf("Using %s from command line argument", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			log.GetLogger().Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}
