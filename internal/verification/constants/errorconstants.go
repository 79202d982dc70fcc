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

package constants

import (
	"github.com/appforge/appforge/internal/system/error/serviceerror"
)

// Client errors for model verification operations.
var (
	// ErrorInvalidModel is the error returned when no model is supplied for scanning.
	ErrorInvalidModel = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MVER-1001",
		Error:            "Invalid model",
		ErrorDescription: "A model graph must be supplied for verification",
	}
)
