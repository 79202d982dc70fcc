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

// Package config provides structures and functions for loading and managing tool configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/appforge/appforge/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ScanConfig holds the model scan configuration details.
type ScanConfig struct {
	OutputFormat      string `yaml:"output_format"`
	SeverityThreshold string `yaml:"severity_threshold"`
}

// AutofixConfig holds the automatic remediation configuration details.
type AutofixConfig struct {
	MaxRiskLevel string `yaml:"max_risk_level"`
	DryRun       bool   `yaml:"dry_run"`
}

// LogConfig holds the logging configuration details.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config holds the complete configuration details of the tool.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Autofix AutofixConfig `yaml:"autofix"`
	Log     LogConfig     `yaml:"log"`
}

// DefaultConfig returns the configuration used when no config file is
// supplied.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			OutputFormat:      "text",
			SeverityThreshold: "critical",
		},
		Autofix: AutofixConfig{
			MaxRiskLevel: "low",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
