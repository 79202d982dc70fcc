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

// Package model defines remediation strategies and execution results.
// A strategy is a self-contained fix proposal for one configuration error;
// execution applies it to the model graph and reports every change made.
package model

import "github.com/appforge/appforge/internal/appmodel"

// StrategyTypeKind discriminates the strategy type union.
type StrategyTypeKind string

const (
	// StrategyKindCreateMissingEntity creates an entity that components reference.
	StrategyKindCreateMissingEntity StrategyTypeKind = "create_missing_entity"
	// StrategyKindAddMissingFields adds fields to an existing entity.
	StrategyKindAddMissingFields StrategyTypeKind = "add_missing_fields"
	// StrategyKindUpdateComponentConfiguration edits component properties in place.
	StrategyKindUpdateComponentConfiguration StrategyTypeKind = "update_component_configuration"
	// StrategyKindRemoveOrphanedReferences removes references to missing components.
	StrategyKindRemoveOrphanedReferences StrategyTypeKind = "remove_orphaned_references"
	// StrategyKindFixRelationship repairs or removes a broken relationship.
	StrategyKindFixRelationship StrategyTypeKind = "fix_relationship"
	// StrategyKindRemoveInvalidReferences removes invalid references of any kind.
	// Carries no payload.
	StrategyKindRemoveInvalidReferences StrategyTypeKind = "remove_invalid_references"
)

// SuggestedField is a field proposal carried by entity-creating strategies.
// The field type is a default; callers may override it through strategy
// parameters at execution time.
type SuggestedField struct {
	Name        string             `json:"name"`
	DisplayName string             `json:"display_name"`
	FieldType   appmodel.FieldType `json:"field_type"`
	Required    bool               `json:"required"`
	Description string             `json:"description,omitempty"`
}

// UpdateAction names what a configuration update does to its property path.
type UpdateAction string

const (
	// ActionRemove deletes the property or the matching array elements.
	ActionRemove UpdateAction = "remove"
	// ActionUpdate overwrites the property value.
	ActionUpdate UpdateAction = "update"
	// ActionAdd sets a property that is expected to be absent.
	ActionAdd UpdateAction = "add"
)

// ConfigurationUpdate is one edit of a component's properties. PropertyPath
// is either a plain property key or an array element selector of the form
// name[attribute='value'].
type ConfigurationUpdate struct {
	PropertyPath string       `json:"property_path"`
	Action       UpdateAction `json:"action"`
	Value        any          `json:"value,omitempty"`
}

// OrphanedReference identifies one dangling reference to remove.
type OrphanedReference struct {
	SourceID       string `json:"source_id"`
	TargetID       string `json:"target_id"`
	ReferenceField string `json:"reference_field"`
}

// RelationshipFixType discriminates relationship fixes.
type RelationshipFixType string

const (
	// FixRemoveRelationship deletes the relationship from the model.
	FixRemoveRelationship RelationshipFixType = "remove_relationship"
	// FixCreateMissingEntity creates a missing relationship endpoint entity.
	FixCreateMissingEntity RelationshipFixType = "create_missing_entity"
	// FixAddMissingField adds a missing relationship field to an entity.
	FixAddMissingField RelationshipFixType = "add_missing_field"
	// FixUpdateReference redirects the relationship to an existing target.
	FixUpdateReference RelationshipFixType = "update_reference"
)

// RelationshipFix describes one way to repair a broken relationship.
type RelationshipFix struct {
	FixType        RelationshipFixType `json:"fix_type"`
	TargetEntityID string              `json:"target_entity_id,omitempty"`
	TargetField    string              `json:"target_field,omitempty"`
}

// CreateMissingEntityStrategy is the payload of StrategyKindCreateMissingEntity.
type CreateMissingEntityStrategy struct {
	EntityName      string           `json:"entity_name"`
	SuggestedFields []SuggestedField `json:"suggested_fields"`
}

// AddMissingFieldsStrategy is the payload of StrategyKindAddMissingFields.
type AddMissingFieldsStrategy struct {
	EntityID string           `json:"entity_id"`
	Fields   []SuggestedField `json:"fields"`
}

// UpdateComponentConfigurationStrategy is the payload of
// StrategyKindUpdateComponentConfiguration.
type UpdateComponentConfigurationStrategy struct {
	LayoutID    string                `json:"layout_id"`
	ComponentID string                `json:"component_id"`
	Updates     []ConfigurationUpdate `json:"updates"`
}

// RemoveOrphanedReferencesStrategy is the payload of
// StrategyKindRemoveOrphanedReferences. ReferenceType names the source and
// target component kinds, e.g. "Layout -> Entity".
type RemoveOrphanedReferencesStrategy struct {
	ReferenceType string              `json:"reference_type"`
	References    []OrphanedReference `json:"references"`
}

// FixRelationshipStrategy is the payload of StrategyKindFixRelationship.
// One strategy carries every fix of the same kind for the relationship;
// the executor applies them in order.
type FixRelationshipStrategy struct {
	RelationshipID string            `json:"relationship_id"`
	Fixes          []RelationshipFix `json:"fixes"`
}

// StrategyType is the tagged strategy type union. Exactly the payload
// matching the Kind is populated; StrategyKindRemoveInvalidReferences
// carries none.
type StrategyType struct {
	Kind                         StrategyTypeKind                      `json:"kind"`
	CreateMissingEntity          *CreateMissingEntityStrategy          `json:"create_missing_entity,omitempty"`
	AddMissingFields             *AddMissingFieldsStrategy             `json:"add_missing_fields,omitempty"`
	UpdateComponentConfiguration *UpdateComponentConfigurationStrategy `json:"update_component_configuration,omitempty"`
	RemoveOrphanedReferences     *RemoveOrphanedReferencesStrategy     `json:"remove_orphaned_references,omitempty"`
	FixRelationship              *FixRelationshipStrategy              `json:"fix_relationship,omitempty"`
}

// ParameterTypeKind discriminates parameter types.
type ParameterTypeKind string

const (
	// ParameterText accepts free-form text.
	ParameterText ParameterTypeKind = "text"
	// ParameterNumber accepts a numeric value.
	ParameterNumber ParameterTypeKind = "number"
	// ParameterBoolean accepts true or false.
	ParameterBoolean ParameterTypeKind = "boolean"
	// ParameterSelect accepts one value from a closed option list.
	ParameterSelect ParameterTypeKind = "select"
)

// SelectOption is one choice of a select parameter.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParameterType describes the value space of a remediation parameter.
// Options is populated only for select parameters.
type ParameterType struct {
	Kind    ParameterTypeKind `json:"kind"`
	Options []SelectOption    `json:"options,omitempty"`
}

// RemediationParameter is a user-suppliable input of a strategy. Validation
// holds a regular expression constraining text parameters.
type RemediationParameter struct {
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ParameterType ParameterType `json:"parameter_type"`
	Required      bool          `json:"required"`
	DefaultValue  string        `json:"default_value,omitempty"`
	Validation    string        `json:"validation,omitempty"`
}

// RiskLevel ranks how likely a strategy is to cause unintended changes.
type RiskLevel string

const (
	// RiskLow strategies are safe to apply automatically.
	RiskLow RiskLevel = "low"
	// RiskMedium strategies should be reviewed before applying.
	RiskMedium RiskLevel = "medium"
	// RiskHigh strategies need careful review and may lose data.
	RiskHigh RiskLevel = "high"
)

// EstimatedEffort ranks how long a strategy takes to review and apply.
type EstimatedEffort string

const (
	// EffortLow is under five minutes.
	EffortLow EstimatedEffort = "low"
	// EffortMedium is five to thirty minutes.
	EffortMedium EstimatedEffort = "medium"
	// EffortHigh is over thirty minutes.
	EffortHigh EstimatedEffort = "high"
)

// RemediationStrategy is one executable fix proposal for a configuration
// error. ErrorType carries the kind of the error it addresses.
type RemediationStrategy struct {
	ID              string                 `json:"id"`
	ErrorType       string                 `json:"error_type"`
	StrategyType    StrategyType           `json:"strategy_type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Parameters      []RemediationParameter `json:"parameters"`
	EstimatedEffort EstimatedEffort        `json:"estimated_effort"`
	RiskLevel       RiskLevel              `json:"risk_level"`
	Prerequisites   []string               `json:"prerequisites"`
}

// ModelChangeType names the kind of change applied to the model graph.
type ModelChangeType string

const (
	// ChangeEntityCreated marks a newly created entity.
	ChangeEntityCreated ModelChangeType = "entity_created"
	// ChangeEntityUpdated marks fields added to an existing entity.
	ChangeEntityUpdated ModelChangeType = "entity_updated"
	// ChangeComponentUpdated marks edited component properties.
	ChangeComponentUpdated ModelChangeType = "component_updated"
	// ChangeReferenceRemoved marks removed dangling references.
	ChangeReferenceRemoved ModelChangeType = "reference_removed"
	// ChangeRelationshipRemoved marks a deleted relationship.
	ChangeRelationshipRemoved ModelChangeType = "relationship_removed"
)

// ModelChange records one change the executor applied to the model graph.
type ModelChange struct {
	ChangeType    ModelChangeType `json:"change_type"`
	ComponentType string          `json:"component_type"`
	ComponentID   string          `json:"component_id"`
	Description   string          `json:"description"`
	Details       string          `json:"details,omitempty"`
}

// RemediationResult is the outcome of executing one strategy. Success is
// true exactly when no errors were collected; partial application with
// errors reports Success false while keeping the changes that did apply.
type RemediationResult struct {
	StrategyID     string        `json:"strategy_id"`
	Success        bool          `json:"success"`
	ChangesApplied []ModelChange `json:"changes_applied"`
	Errors         []string      `json:"errors"`
	Warnings       []string      `json:"warnings"`
}
