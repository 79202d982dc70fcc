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

package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) BeforeTest(suiteName, testName string) {
	runtimeConfig = nil
	once = sync.Once{}
}

func (suite *RuntimeConfigTestSuite) TestInitializeAppForgeRuntime() {
	config := &Config{
		Scan: ScanConfig{
			OutputFormat:      "json",
			SeverityThreshold: "high",
		},
		Autofix: AutofixConfig{
			MaxRiskLevel: "medium",
		},
	}

	err := InitializeAppForgeRuntime("/test/appforge/home", config)

	assert.NoError(suite.T(), err)

	runtime := runtimeConfig
	assert.NotNil(suite.T(), runtime)
	assert.Equal(suite.T(), "/test/appforge/home", runtime.WorkingDir)
	assert.Equal(suite.T(), config.Scan.OutputFormat, runtime.Config.Scan.OutputFormat)
	assert.Equal(suite.T(), config.Scan.SeverityThreshold, runtime.Config.Scan.SeverityThreshold)
	assert.Equal(suite.T(), config.Autofix.MaxRiskLevel, runtime.Config.Autofix.MaxRiskLevel)
}

func (suite *RuntimeConfigTestSuite) TestInitializeAppForgeRuntimeOnlyOnce() {
	// First initialization
	firstConfig := &Config{
		Scan: ScanConfig{OutputFormat: "text"},
	}

	err := InitializeAppForgeRuntime("/first/path", firstConfig)
	assert.NoError(suite.T(), err)

	// Try second initialization
	secondConfig := &Config{
		Scan: ScanConfig{OutputFormat: "json"},
	}

	err = InitializeAppForgeRuntime("/second/path", secondConfig)
	assert.NoError(suite.T(), err) // Should not return error

	// Verify that the first initialization remains
	runtime := GetAppForgeRuntime()
	assert.Equal(suite.T(), "/first/path", runtime.WorkingDir)
	assert.Equal(suite.T(), "text", runtime.Config.Scan.OutputFormat)
}

func (suite *RuntimeConfigTestSuite) TestGetAppForgeRuntime() {
	config := &Config{
		Scan: ScanConfig{OutputFormat: "json"},
	}

	err := InitializeAppForgeRuntime("/get/test/path", config)
	assert.NoError(suite.T(), err)

	runtime := GetAppForgeRuntime()

	assert.NotNil(suite.T(), runtime)
	assert.Equal(suite.T(), "/get/test/path", runtime.WorkingDir)
	assert.Equal(suite.T(), "json", runtime.Config.Scan.OutputFormat)
}

func (suite *RuntimeConfigTestSuite) TestGetAppForgeRuntimePanic() {
	runtimeConfig = nil

	assert.Panics(suite.T(), func() {
		GetAppForgeRuntime()
	})
}
