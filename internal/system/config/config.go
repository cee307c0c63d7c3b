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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

const (
	// AnalyticsURLEnvironmentVariable overrides analytics.base_url.
	AnalyticsURLEnvironmentVariable = "FINSIGHT_ANALYTICS_URL"
	// RedisURLEnvironmentVariable overrides redis.url.
	RedisURLEnvironmentVariable = "FINSIGHT_REDIS_URL"
	// DatabasePasswordEnvironmentVariable overrides the password of every configured data source.
	DatabasePasswordEnvironmentVariable = "FINSIGHT_DB_PASSWORD"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Flow   DataSource `yaml:"flow"`
	Ledger DataSource `yaml:"ledger"`
}

// RedisConfig holds the Redis connection details. An empty URL disables Redis.
type RedisConfig struct {
	URL            string `yaml:"url"`
	ChannelPrefix  string `yaml:"channel_prefix"`
	AppContextTTL  int    `yaml:"app_context_ttl"`
	ConnectTimeout int    `yaml:"connect_timeout"`
}

// AnalyticsConfig holds the analytics backend client details.
type AnalyticsConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// DesignerConfig holds the flow designer configuration details.
type DesignerConfig struct {
	FallbackWaitMillis int    `yaml:"fallback_wait_ms"`
	SessionIdleTimeout int    `yaml:"session_idle_timeout"`
	ConflictPolicy     string `yaml:"conflict_policy"`
}

// IngestionConfig holds the file ingestion configuration details.
type IngestionConfig struct {
	BlobRoot string `yaml:"blob_root"`
	Bucket   string `yaml:"bucket"`
}

// AppDefaults holds the initial application context values for new users.
type AppDefaults struct {
	CompanyID  string `yaml:"company_id"`
	Period     string `yaml:"period"`
	Department string `yaml:"department"`
	Theme      string `yaml:"theme"`
	Language   string `yaml:"language"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Designer  DesignerConfig  `yaml:"designer"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	App       AppDefaults     `yaml:"app"`
}

// LoadEnv loads a .env file from the given directory into the process environment.
// A missing file is not an error; variables already set are not overridden.
func LoadEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyEnvOverrides replaces selected values with environment variables when present.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(AnalyticsURLEnvironmentVariable); v != "" {
		cfg.Analytics.BaseURL = v
	}
	if v := os.Getenv(RedisURLEnvironmentVariable); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv(DatabasePasswordEnvironmentVariable); v != "" {
		cfg.Database.Flow.Password = v
		cfg.Database.Ledger.Password = v
	}
}

// applyDefaults fills values that must never be zero.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Designer.FallbackWaitMillis <= 0 {
		cfg.Designer.FallbackWaitMillis = 1500
	}
	if cfg.Designer.SessionIdleTimeout <= 0 {
		cfg.Designer.SessionIdleTimeout = 1800
	}
	if cfg.Designer.ConflictPolicy == "" {
		cfg.Designer.ConflictPolicy = "last-write-wins"
	}
	if cfg.Analytics.Timeout <= 0 {
		cfg.Analytics.Timeout = 30
	}
	if cfg.Redis.ChannelPrefix == "" {
		cfg.Redis.ChannelPrefix = "finsight"
	}
	if cfg.Ingestion.BlobRoot == "" {
		cfg.Ingestion.BlobRoot = "repository/blobs"
	}
	if cfg.App.Theme == "" {
		cfg.App.Theme = "dark"
	}
	if cfg.App.Language == "" {
		cfg.App.Language = "en"
	}
}

// FallbackWait returns the designer fallback wait as a duration.
func (d DesignerConfig) FallbackWait() time.Duration {
	return time.Duration(d.FallbackWaitMillis) * time.Millisecond
}

// IdleTimeout returns the designer session idle timeout as a duration.
func (d DesignerConfig) IdleTimeout() time.Duration {
	return time.Duration(d.SessionIdleTimeout) * time.Second
}
