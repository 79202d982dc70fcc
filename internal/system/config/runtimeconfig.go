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

import "sync"

// AppForgeRuntime holds the runtime configuration for the tool.
type AppForgeRuntime struct {
	WorkingDir string `yaml:"working_dir"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *AppForgeRuntime
	once          sync.Once
)

// InitializeAppForgeRuntime initializes the AppForgeRuntime configuration.
func InitializeAppForgeRuntime(workingDir string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &AppForgeRuntime{
			WorkingDir: workingDir,
			Config:     *config,
		}
	})

	return nil
}

// GetAppForgeRuntime returns the AppForgeRuntime configuration.
func GetAppForgeRuntime() *AppForgeRuntime {
	if runtimeConfig == nil {
		panic("AppForgeRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetAppForgeRuntime resets the AppForgeRuntime.
// This should only be used in tests to reset the singleton state.
func ResetAppForgeRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
