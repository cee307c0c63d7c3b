/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

// Package main is the entry point for starting the FinSight server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/socar-georgia/finsight/internal/system/config"
	serverconst "github.com/socar-georgia/finsight/internal/system/constants"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/internal/system/log"
	"github.com/socar-georgia/finsight/internal/system/redisclient"
)

const shutdownTimeout = 15 * time.Second

func main() {
	serverHome, err := getServerHome()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to resolve the server home:", err)
		os.Exit(1)
	}

	// Environment overrides, including the log level, must be in place before the logger is built.
	if err := config.LoadEnv(serverHome); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load .env file:", err)
		os.Exit(1)
	}
	logger := log.GetLogger()
	defer logger.Sync()
	logger.Info("Using server home", log.String("serverHome", serverHome))

	cfg := initServerConfigurations(logger, serverHome)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	services := registerServices(ctx, logger, mux, cfg, serverHome)

	server, serverAddr := createHTTPServer(logger, cfg, mux)
	go func() {
		logger.Info("FinSight server started (HTTP)...", log.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve HTTP requests", log.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down FinSight server")
	shutdown(logger, server, services)
}

// getServerHome returns the server home directory from the command line or the working directory.
func getServerHome() (string, error) {
	homeFlag := flag.String("serverHome", "", "Path to the FinSight server home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag, nil
	}
	return os.Getwd()
}

// initServerConfigurations loads the deployment configuration and initializes the runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, serverconst.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}
	return cfg
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}

// shutdown drains in-flight requests and releases the shared resources.
func shutdown(logger *log.Logger, server *http.Server, services *registeredServices) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down the HTTP server gracefully", log.Error(err))
	}

	services.designer.Stop()
	if err := services.broker.Close(); err != nil {
		logger.Error("Failed to close the change broker", log.Error(err))
	}
	if err := provider.GetDBProvider().Close(); err != nil {
		logger.Error("Failed to close database connections", log.Error(err))
	}
	if err := redisclient.Close(); err != nil {
		logger.Error("Failed to close the redis client", log.Error(err))
	}
	logger.Info("FinSight server stopped")
}
