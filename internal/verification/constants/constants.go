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

// Package constants defines constants for model verification operations.
package constants

const (
	// ComponentTypeDataGrid is the component type scanned for column mismatches.
	ComponentTypeDataGrid = "DataGrid"
	// ComponentTypeForm is the component type scanned for form field mismatches.
	ComponentTypeForm = "AppForm"

	// PropertyKeyEntityType is the component property naming the target entity.
	PropertyKeyEntityType = "entityType"
	// PropertyKeyColumns is the DataGrid property holding the column list.
	PropertyKeyColumns = "columns"
	// PropertyKeyFields is the form property holding the field list.
	PropertyKeyFields = "fields"
	// PropertyKeyField is the column attribute naming the bound entity field.
	PropertyKeyField = "field"
	// PropertyKeyName is the form field attribute naming the bound entity field.
	PropertyKeyName = "name"
	// PropertyKeyEntityID is the flow step configuration key referencing an entity.
	PropertyKeyEntityID = "entity_id"
)
