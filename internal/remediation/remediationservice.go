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

// Package remediation provides the model remediation service. It generates
// fix strategies for configuration errors reported by verification and
// executes selected strategies against the model graph in place.
package remediation

import (
	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/remediation/constants"
	"github.com/appforge/appforge/internal/remediation/model"
	"github.com/appforge/appforge/internal/system/error/serviceerror"
	"github.com/appforge/appforge/internal/system/log"
	vermodel "github.com/appforge/appforge/internal/verification/model"
)

// ModelRemediationServiceInterface defines the model remediation service.
type ModelRemediationServiceInterface interface {
	GenerateStrategies(details *vermodel.ConfigurationErrorDetails) (
		[]model.RemediationStrategy, *serviceerror.ServiceError)
	ExecuteStrategy(m *appmodel.Model, strategy *model.RemediationStrategy,
		parameters map[string]string) (*model.RemediationResult, *serviceerror.ServiceError)
}

// ModelRemediationService is the default implementation of the model
// remediation service.
type ModelRemediationService struct{}

// GetModelRemediationService returns the model remediation service.
func GetModelRemediationService() ModelRemediationServiceInterface {
	return &ModelRemediationService{}
}

// GenerateStrategies builds every applicable remediation strategy for one
// configuration error. An empty slice means no automated fix is known.
func (s *ModelRemediationService) GenerateStrategies(
	details *vermodel.ConfigurationErrorDetails,
) ([]model.RemediationStrategy, *serviceerror.ServiceError) {
	if details == nil {
		return nil, &constants.ErrorInvalidErrorDetails
	}

	strategies := generateStrategies(details)

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ModelRemediationService"))
	logger.Debug("Generated remediation strategies",
		log.String(log.LoggerKeyErrorID, details.ID),
		log.Int("strategies", len(strategies)))

	return strategies, nil
}

// ExecuteStrategy applies one strategy to the model graph, mutating it in
// place. Individual operation failures are collected into the result
// rather than aborting execution; the returned service error covers only
// invalid input.
func (s *ModelRemediationService) ExecuteStrategy(
	m *appmodel.Model, strategy *model.RemediationStrategy, parameters map[string]string,
) (*model.RemediationResult, *serviceerror.ServiceError) {
	if m == nil {
		return nil, &constants.ErrorInvalidModel
	}
	if strategy == nil {
		return nil, &constants.ErrorInvalidStrategy
	}
	if parameters == nil {
		parameters = map[string]string{}
	}

	executor := newStrategyExecutor(m, strategy.ID)
	result := executor.execute(strategy, parameters)

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ModelRemediationService"))
	logger.Debug("Executed remediation strategy",
		log.String(log.LoggerKeyStrategyID, strategy.ID),
		log.Bool("success", result.Success),
		log.Int("changes", len(result.ChangesApplied)))

	return result, nil
}
