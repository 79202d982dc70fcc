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

// Package verification provides the model verification service. It scans a
// fully materialized model graph for configuration errors and produces a
// structured error report. Scanning is pure and read-only: a broken model
// yields diagnostics, never a scan failure.
package verification

import (
	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/system/error/serviceerror"
	"github.com/appforge/appforge/internal/system/log"
	"github.com/appforge/appforge/internal/verification/constants"
	"github.com/appforge/appforge/internal/verification/model"
)

// ModelVerificationServiceInterface defines the model verification service.
type ModelVerificationServiceInterface interface {
	ScanModel(m *appmodel.Model) (*model.ConfigurationErrorReport, *serviceerror.ServiceError)
}

// ModelVerificationService is the default implementation of the model
// verification service.
type ModelVerificationService struct{}

// GetModelVerificationService returns the model verification service.
func GetModelVerificationService() ModelVerificationServiceInterface {
	return &ModelVerificationService{}
}

// ScanModel runs all verification passes over the model and returns the
// assembled configuration error report.
func (s *ModelVerificationService) ScanModel(
	m *appmodel.Model,
) (*model.ConfigurationErrorReport, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ModelVerificationService"))

	if m == nil {
		return nil, &constants.ErrorInvalidModel
	}

	scanner := newModelScanner(m)
	report := scanner.scan()

	logger.Debug("Model scan completed",
		log.String(log.LoggerKeyModelID, m.ID),
		log.Int("totalErrors", report.TotalErrors))

	return report, nil
}
