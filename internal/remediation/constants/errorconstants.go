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

// Package constants defines constants for model remediation operations.
package constants

import (
	"github.com/appforge/appforge/internal/system/error/serviceerror"
)

// Client errors for model remediation operations.
var (
	// ErrorInvalidErrorDetails is the error returned when no configuration error is supplied.
	ErrorInvalidErrorDetails = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MREM-1001",
		Error:            "Invalid configuration error",
		ErrorDescription: "A configuration error must be supplied to generate strategies",
	}
	// ErrorInvalidModel is the error returned when no model is supplied for execution.
	ErrorInvalidModel = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MREM-1002",
		Error:            "Invalid model",
		ErrorDescription: "A model graph must be supplied for strategy execution",
	}
	// ErrorInvalidStrategy is the error returned when no strategy is supplied for execution.
	ErrorInvalidStrategy = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MREM-1003",
		Error:            "Invalid strategy",
		ErrorDescription: "A remediation strategy must be supplied for execution",
	}
)
