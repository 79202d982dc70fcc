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

// Package appmodel defines the in-memory model graph for one application:
// entities, fields, relationships, layouts, flows and validation rules.
// The graph is supplied fully materialized by the model service; the
// verification and remediation modules consume it without performing I/O.
package appmodel

// Model is the complete model graph for one application.
type Model struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Version       string              `json:"version,omitempty"`
	Entities      []ModelEntity       `json:"entities"`
	Relationships []ModelRelationship `json:"relationships"`
	Flows         []ModelFlow         `json:"flows"`
	Layouts       []ModelLayout       `json:"layouts"`
	Validations   []ModelValidation   `json:"validations"`
}

// ModelEntity is a single entity definition within a model. Entity names
// are unique within one model.
type ModelEntity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name,omitempty"`
	Description string        `json:"description,omitempty"`
	Fields      []EntityField `json:"fields"`
}

// EntityField is a single field of an entity.
type EntityField struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	FieldType   FieldType `json:"field_type"`
	Required    bool      `json:"required"`
}

// RelationshipType defines the cardinality of a relationship.
type RelationshipType string

const (
	// RelationshipOneToOne denotes a one-to-one relationship.
	RelationshipOneToOne RelationshipType = "one_to_one"
	// RelationshipOneToMany denotes a one-to-many relationship.
	RelationshipOneToMany RelationshipType = "one_to_many"
	// RelationshipManyToOne denotes a many-to-one relationship.
	RelationshipManyToOne RelationshipType = "many_to_one"
	// RelationshipManyToMany denotes a many-to-many relationship.
	RelationshipManyToMany RelationshipType = "many_to_many"
)

// ModelRelationship connects two entities through a pair of fields.
type ModelRelationship struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	RelationshipType RelationshipType `json:"relationship_type"`
	FromEntity       string           `json:"from_entity"`
	ToEntity         string           `json:"to_entity"`
	FromField        string           `json:"from_field"`
	ToField          string           `json:"to_field"`
}

// ModelLayout is a UI layout definition targeting one or more entities.
type ModelLayout struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	TargetEntities []string          `json:"target_entities"`
	Components     []LayoutComponent `json:"components"`
}

// LayoutComponent is a single component placed on a layout. Properties are
// consumer-defined and carried opaquely.
type LayoutComponent struct {
	ID            string     `json:"id"`
	ComponentType string     `json:"component_type"`
	Properties    Properties `json:"properties"`
}

// FlowTriggerType discriminates the flow trigger union.
type FlowTriggerType string

const (
	// FlowTriggerEntityEvent triggers a flow on an entity lifecycle event.
	FlowTriggerEntityEvent FlowTriggerType = "entity_event"
	// FlowTriggerSchedule triggers a flow on a cron schedule.
	FlowTriggerSchedule FlowTriggerType = "schedule"
	// FlowTriggerManual triggers a flow on explicit user action.
	FlowTriggerManual FlowTriggerType = "manual"
	// FlowTriggerWebhook triggers a flow on an incoming webhook call.
	FlowTriggerWebhook FlowTriggerType = "webhook"
)

// FlowTrigger is the tagged trigger definition of a flow. Only the payload
// fields matching the Type are populated.
type FlowTrigger struct {
	Type     FlowTriggerType `json:"type"`
	EntityID string          `json:"entity_id,omitempty"`
	Event    string          `json:"event,omitempty"`
	Schedule string          `json:"schedule,omitempty"`
}

// FlowStep is a single step of a flow. Configuration is consumer-defined
// and carried opaquely.
type FlowStep struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Configuration Properties `json:"configuration"`
}

// ModelFlow is a business-logic flow definition.
type ModelFlow struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Trigger FlowTrigger `json:"trigger"`
	Steps   []FlowStep  `json:"steps"`
}

// ValidationScopeType discriminates the validation scope union.
type ValidationScopeType string

const (
	// ValidationScopeField scopes a validation to a single field.
	ValidationScopeField ValidationScopeType = "field"
	// ValidationScopeEntity scopes a validation to a single entity.
	ValidationScopeEntity ValidationScopeType = "entity"
	// ValidationScopeRelationship scopes a validation to a single relationship.
	ValidationScopeRelationship ValidationScopeType = "relationship"
	// ValidationScopeModel scopes a validation to the whole model.
	ValidationScopeModel ValidationScopeType = "model"
)

// ValidationScope is the tagged scope of a validation rule. Only the id
// matching the Type is populated.
type ValidationScope struct {
	Type           ValidationScopeType `json:"type"`
	FieldID        string              `json:"field_id,omitempty"`
	EntityID       string              `json:"entity_id,omitempty"`
	RelationshipID string              `json:"relationship_id,omitempty"`
}

// ModelValidation is a declarative validation rule attached to the model.
type ModelValidation struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Scope   ValidationScope `json:"scope"`
	Rule    string          `json:"rule"`
	Message string          `json:"message"`
}
