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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/wso2/icp-lead-service/internal/system/constants"
)

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DataSourceConfig struct {
	Hostname     string `yaml:"hostname"`
	Port         int    `yaml:"port"`
	Name         string `yaml:"name"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// SchemaConfig names the Postgres schemas that hold each group of tables.
type SchemaConfig struct {
	Core      string `yaml:"core"`
	Reference string `yaml:"reference"`
	Extracted string `yaml:"extracted"`
}

// LeadsConfig holds the ICP matching policy.
type LeadsConfig struct {
	CompanySampleLimit     int    `yaml:"company_sample_limit"`
	CompanyScanLimit       int    `yaml:"company_scan_limit"`
	PeopleScanLimit        int    `yaml:"people_scan_limit"`
	LeadLimit              int    `yaml:"lead_limit"`
	TitleContainsAllMode   string `yaml:"title_contains_all_mode"`
	ProfileCacheTTLSeconds int    `yaml:"profile_cache_ttl_seconds"`
}

// PeopleConfig bounds the people routes.
type PeopleConfig struct {
	PastExperienceScanLimit int `yaml:"past_experience_scan_limit"`
}

type ServerConfig struct {
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Schemas    SchemaConfig     `yaml:"schemas"`
	Leads      LeadsConfig      `yaml:"leads"`
	People     PeopleConfig     `yaml:"people"`
	Server     ServerConfig     `yaml:"server"`
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {

	if c.Addr.Host == "" {
		c.Addr.Host = "0.0.0.0"
	}
	if c.Addr.Port == 0 {
		c.Addr.Port = 8900
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "INFO"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.DataSource.SSLMode == "" {
		c.DataSource.SSLMode = "disable"
	}
	if c.DataSource.Port == 0 {
		c.DataSource.Port = 5432
	}
	if c.Schemas.Core == "" {
		c.Schemas.Core = constants.DefaultCoreSchema
	}
	if c.Schemas.Reference == "" {
		c.Schemas.Reference = constants.DefaultReferenceSchema
	}
	if c.Schemas.Extracted == "" {
		c.Schemas.Extracted = constants.DefaultExtractedSchema
	}
	if c.Leads.CompanySampleLimit <= 0 {
		c.Leads.CompanySampleLimit = constants.DefaultCompanySampleLimit
	}
	if c.Leads.CompanyScanLimit <= 0 {
		c.Leads.CompanyScanLimit = constants.DefaultCompanyScanLimit
	}
	if c.Leads.PeopleScanLimit <= 0 {
		c.Leads.PeopleScanLimit = constants.DefaultPeopleScanLimit
	}
	if c.Leads.LeadLimit <= 0 {
		c.Leads.LeadLimit = constants.DefaultLeadLimit
	}
	if c.Leads.TitleContainsAllMode == "" {
		c.Leads.TitleContainsAllMode = constants.TitleMatchAny
	}
	if c.People.PastExperienceScanLimit <= 0 {
		c.People.PastExperienceScanLimit = constants.DefaultPastExperienceScanLimit
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		c.Server.RequestTimeoutSeconds = constants.DefaultRequestTimeoutSeconds
	}
}

// Validate rejects configuration values that cannot be defaulted.
func (c *Config) Validate() error {

	mode := strings.ToLower(c.Leads.TitleContainsAllMode)
	if !constants.AllowedTitleMatchModes[mode] {
		return fmt.Errorf("unsupported leads.title_contains_all_mode: %q", c.Leads.TitleContainsAllMode)
	}
	c.Leads.TitleContainsAllMode = mode
	if c.Leads.ProfileCacheTTLSeconds < 0 {
		return fmt.Errorf("leads.profile_cache_ttl_seconds must not be negative")
	}
	if c.DataSource.Hostname == "" || c.DataSource.Name == "" || c.DataSource.Username == "" {
		return fmt.Errorf("one or more datasource configuration values are missing")
	}
	return nil
}

// RequestTimeout returns the per-request deadline applied at the HTTP boundary.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

// ProfileCacheTTL returns how long a resolved ICP profile may be reused. Zero disables caching.
func (c *Config) ProfileCacheTTL() time.Duration {
	return time.Duration(c.Leads.ProfileCacheTTLSeconds) * time.Second
}
