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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/socar-georgia/finsight/internal/system/config"
	"github.com/socar-georgia/finsight/internal/system/database/client"
	"github.com/socar-georgia/finsight/internal/system/database/model"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"

	// FlowDB is the name of the database holding flow documents.
	FlowDB = "flow"
	// LedgerDB is the name of the database holding the financial summary facts.
	LedgerDB = "ledger"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	flowClient   client.DBClientInterface
	flowMutex    sync.RWMutex
	ledgerClient client.DBClientInterface
	ledgerMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case FlowDB:
		return d.getOrInitClient(&d.flowClient, &d.flowMutex, config.GetServerRuntime().Config.Database.Flow)
	case LedgerDB:
		return d.getOrInitClient(&d.ledgerClient, &d.ledgerMutex, config.GetServerRuntime().Config.Database.Ledger)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *client.DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		c := *clientPtr
		mutex.RUnlock()
		return c, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *client.DBClientInterface, dataSource config.DataSource) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := d.getDBConfig(dataSource)
	if err != nil {
		return err
	}
	dbName := dataSource.Name

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	if dbConfig.driverName == dataSourceTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	logger.Debug("Database client initialized", log.String("type", dataSource.Type), log.String("name", dbName))
	*clientPtr = client.NewDBClient(model.NewDB(db), dbConfig.driverName)
	return nil
}

// getDBConfig returns the database configuration based on the provided data source.
func (d *DBProvider) getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	var cfg dbConfig

	switch dataSource.Type {
	case dataSourceTypePostgres:
		cfg.driverName = dataSourceTypePostgres
		cfg.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case dataSourceTypeSQLite:
		cfg.driverName = dataSourceTypeSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		cfg.dsn = fmt.Sprintf("%s%s", path.Join(config.GetServerRuntime().ServerHome, dataSource.Path), options)
	default:
		return cfg, fmt.Errorf("unsupported data source type: %q", dataSource.Type)
	}

	return cfg, nil
}

// Close closes the database connections.
func (d *DBProvider) Close() error {
	flowErr := d.closeClient(&d.flowClient, &d.flowMutex, FlowDB)
	ledgerErr := d.closeClient(&d.ledgerClient, &d.ledgerMutex, LedgerDB)
	return errors.Join(flowErr, ledgerErr)
}

// closeClient is a helper to close a DB client with locking.
func (d *DBProvider) closeClient(clientPtr *client.DBClientInterface, mutex *sync.RWMutex, clientName string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if *clientPtr != nil {
		if err := (*clientPtr).Close(); err != nil {
			return fmt.Errorf("failed to close %s client: %w", clientName, err)
		}
		*clientPtr = nil
	}
	return nil
}
