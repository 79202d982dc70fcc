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

// Package model defines the configuration error taxonomy and the error
// report produced by model verification. Configuration errors are the
// scanner's primary output, not failures: a structurally broken model
// graph yields more diagnostics, never a scan failure.
package model

import "time"

// ConfigurationErrorKind discriminates the configuration error union.
type ConfigurationErrorKind string

const (
	// ErrorKindMissingEntity is reported when a component references an entity that does not exist.
	ErrorKindMissingEntity ConfigurationErrorKind = "missing_entity"
	// ErrorKindMissingEntityField is reported when a component references a field missing from an entity.
	ErrorKindMissingEntityField ConfigurationErrorKind = "missing_entity_field"
	// ErrorKindMissingStartPageLayout is reported when the application has no start page layout.
	ErrorKindMissingStartPageLayout ConfigurationErrorKind = "missing_start_page_layout"
	// ErrorKindLayoutEntityMismatch is reported when a layout component targets a missing entity.
	ErrorKindLayoutEntityMismatch ConfigurationErrorKind = "layout_entity_mismatch"
	// ErrorKindDataGridColumnMismatch is reported when DataGrid columns reference nonexistent fields.
	ErrorKindDataGridColumnMismatch ConfigurationErrorKind = "data_grid_column_mismatch"
	// ErrorKindFormFieldMismatch is reported when form fields reference nonexistent entity fields.
	ErrorKindFormFieldMismatch ConfigurationErrorKind = "form_field_mismatch"
	// ErrorKindBrokenRelationship is reported when a relationship endpoint cannot be resolved.
	ErrorKindBrokenRelationship ConfigurationErrorKind = "broken_relationship"
	// ErrorKindFlowEntityReference is reported when a flow references a nonexistent entity.
	ErrorKindFlowEntityReference ConfigurationErrorKind = "flow_entity_reference"
	// ErrorKindOrphanedReference is reported when a reference points at a component no longer present.
	ErrorKindOrphanedReference ConfigurationErrorKind = "orphaned_reference"
	// ErrorKindFieldTypeMismatch is reported when a referenced field has an incompatible type.
	ErrorKindFieldTypeMismatch ConfigurationErrorKind = "field_type_mismatch"
	// ErrorKindInvalidValidationRule is reported when a validation rule references missing components.
	ErrorKindInvalidValidationRule ConfigurationErrorKind = "invalid_validation_rule"
	// ErrorKindInvalidComponentConfiguration is reported when component properties are malformed.
	ErrorKindInvalidComponentConfiguration ConfigurationErrorKind = "invalid_component_configuration"
	// ErrorKindCircularDependency is reported when entity relationships form a cycle.
	ErrorKindCircularDependency ConfigurationErrorKind = "circular_dependency"
)

// ReferenceType identifies the kind of component holding a reference.
type ReferenceType string

const (
	// ReferenceTypeLayoutComponent marks a reference held by a layout component.
	ReferenceTypeLayoutComponent ReferenceType = "layout_component"
	// ReferenceTypeDataGridColumn marks a reference held by a DataGrid column.
	ReferenceTypeDataGridColumn ReferenceType = "data_grid_column"
	// ReferenceTypeFormField marks a reference held by a form field.
	ReferenceTypeFormField ReferenceType = "form_field"
	// ReferenceTypeRelationship marks a reference held by a relationship.
	ReferenceTypeRelationship ReferenceType = "relationship"
	// ReferenceTypeFlowStep marks a reference held by a flow step.
	ReferenceTypeFlowStep ReferenceType = "flow_step"
	// ReferenceTypeValidationRule marks a reference held by a validation rule.
	ReferenceTypeValidationRule ReferenceType = "validation_rule"
)

// MissingEntityError is the payload of ErrorKindMissingEntity.
type MissingEntityError struct {
	EntityID      string        `json:"entity_id"`
	EntityName    string        `json:"entity_name"`
	ReferencedBy  string        `json:"referenced_by"`
	ReferenceType ReferenceType `json:"reference_type"`
}

// MissingEntityFieldError is the payload of ErrorKindMissingEntityField.
type MissingEntityFieldError struct {
	EntityID      string        `json:"entity_id"`
	EntityName    string        `json:"entity_name"`
	FieldName     string        `json:"field_name"`
	ReferencedBy  string        `json:"referenced_by"`
	ReferenceType ReferenceType `json:"reference_type"`
}

// MissingStartPageLayoutError is the payload of ErrorKindMissingStartPageLayout.
type MissingStartPageLayoutError struct {
	ExpectedLayoutID string `json:"expected_layout_id,omitempty"`
	ConfigLocation   string `json:"config_location"`
}

// LayoutEntityMismatchError is the payload of ErrorKindLayoutEntityMismatch.
type LayoutEntityMismatchError struct {
	LayoutID         string `json:"layout_id"`
	LayoutName       string `json:"layout_name"`
	ComponentID      string `json:"component_id"`
	ComponentType    string `json:"component_type"`
	ExpectedEntityID string `json:"expected_entity_id"`
	MissingEntity    bool   `json:"missing_entity"`
}

// ColumnIssue identifies why a DataGrid column is invalid.
type ColumnIssue string

const (
	// ColumnIssueFieldNotFound marks a column whose field does not exist on the entity.
	ColumnIssueFieldNotFound ColumnIssue = "field_not_found"
	// ColumnIssueTypeMismatch marks a column whose field type conflicts with the column config.
	ColumnIssueTypeMismatch ColumnIssue = "type_mismatch"
	// ColumnIssueInvalidFormatter marks a column with an unknown formatter.
	ColumnIssueInvalidFormatter ColumnIssue = "invalid_formatter"
)

// InvalidColumn describes one invalid DataGrid column.
type InvalidColumn struct {
	ColumnName string      `json:"column_name"`
	FieldName  string      `json:"field_name"`
	Issue      ColumnIssue `json:"issue"`
}

// FieldIssue identifies why a form field is invalid.
type FieldIssue string

const (
	// FieldIssueFieldNotFound marks a form field whose entity field does not exist.
	FieldIssueFieldNotFound FieldIssue = "field_not_found"
	// FieldIssueTypeMismatch marks a form field whose entity field type conflicts with its config.
	FieldIssueTypeMismatch FieldIssue = "type_mismatch"
	// FieldIssueRequiredFieldMissing marks a required entity field absent from the form.
	FieldIssueRequiredFieldMissing FieldIssue = "required_field_missing"
)

// InvalidField describes one invalid form field.
type InvalidField struct {
	FieldName string     `json:"field_name"`
	Issue     FieldIssue `json:"issue"`
}

// DataGridColumnMismatchError is the payload of ErrorKindDataGridColumnMismatch.
// All invalid columns of one component are batched into one error.
type DataGridColumnMismatchError struct {
	LayoutID       string          `json:"layout_id"`
	ComponentID    string          `json:"component_id"`
	EntityID       string          `json:"entity_id"`
	EntityName     string          `json:"entity_name"`
	InvalidColumns []InvalidColumn `json:"invalid_columns"`
}

// FormFieldMismatchError is the payload of ErrorKindFormFieldMismatch.
// All invalid fields of one component are batched into one error.
type FormFieldMismatchError struct {
	LayoutID      string         `json:"layout_id"`
	ComponentID   string         `json:"component_id"`
	EntityID      string         `json:"entity_id"`
	EntityName    string         `json:"entity_name"`
	InvalidFields []InvalidField `json:"invalid_fields"`
}

// BrokenRelationshipError is the payload of ErrorKindBrokenRelationship.
// The four missing flags are computed independently: a field is missing
// whenever it cannot be resolved, including because its entity is missing.
type BrokenRelationshipError struct {
	RelationshipID    string `json:"relationship_id"`
	RelationshipName  string `json:"relationship_name"`
	FromEntityMissing bool   `json:"from_entity_missing"`
	ToEntityMissing   bool   `json:"to_entity_missing"`
	FromFieldMissing  bool   `json:"from_field_missing"`
	ToFieldMissing    bool   `json:"to_field_missing"`
	FromEntityID      string `json:"from_entity_id"`
	ToEntityID        string `json:"to_entity_id"`
	FromField         string `json:"from_field"`
	ToField           string `json:"to_field"`
}

// FlowEntityReferenceError is the payload of ErrorKindFlowEntityReference.
type FlowEntityReferenceError struct {
	FlowID          string `json:"flow_id"`
	FlowName        string `json:"flow_name"`
	MissingEntityID string `json:"missing_entity_id"`
	StepID          string `json:"step_id,omitempty"`
}

// OrphanedReferenceError is the payload of ErrorKindOrphanedReference.
type OrphanedReferenceError struct {
	SourceType     string `json:"source_type"`
	SourceID       string `json:"source_id"`
	TargetType     string `json:"target_type"`
	TargetID       string `json:"target_id"`
	ReferenceField string `json:"reference_field"`
}

// FieldTypeMismatchError is the payload of ErrorKindFieldTypeMismatch.
type FieldTypeMismatchError struct {
	EntityID     string `json:"entity_id"`
	EntityName   string `json:"entity_name"`
	FieldName    string `json:"field_name"`
	ExpectedType string `json:"expected_type"`
	ActualType   string `json:"actual_type"`
	ReferencedBy string `json:"referenced_by"`
}

// InvalidValidationRuleError is the payload of ErrorKindInvalidValidationRule.
type InvalidValidationRuleError struct {
	ValidationID   string `json:"validation_id"`
	EntityID       string `json:"entity_id,omitempty"`
	FieldID        string `json:"field_id,omitempty"`
	RuleExpression string `json:"rule_expression"`
	ErrorMessage   string `json:"error_message"`
}

// InvalidComponentConfigurationError is the payload of ErrorKindInvalidComponentConfiguration.
type InvalidComponentConfigurationError struct {
	LayoutID            string   `json:"layout_id"`
	ComponentID         string   `json:"component_id"`
	ComponentType       string   `json:"component_type"`
	ConfigurationErrors []string `json:"configuration_errors"`
}

// DependencyType identifies the graph a circular dependency was found in.
type DependencyType string

const (
	// DependencyTypeEntityRelationship marks a cycle in the entity relationship graph.
	DependencyTypeEntityRelationship DependencyType = "entity_relationship"
	// DependencyTypeComponentEntity marks a cycle between components and entities.
	DependencyTypeComponentEntity DependencyType = "component_entity"
	// DependencyTypeFlowEntity marks a cycle between flows and entities.
	DependencyTypeFlowEntity DependencyType = "flow_entity"
)

// DependencyNode identifies one node of a dependency cycle.
type DependencyNode struct {
	NodeType string `json:"node_type"`
	NodeID   string `json:"node_id"`
	NodeName string `json:"node_name"`
}

// CircularDependencyError is the payload of ErrorKindCircularDependency.
// CyclePath holds the two nodes of the first back edge found, not the full
// cycle.
type CircularDependencyError struct {
	DependencyType DependencyType   `json:"dependency_type"`
	CyclePath      []DependencyNode `json:"cycle_path"`
}

// ConfigurationError is the tagged configuration error union. Exactly the
// payload matching the Kind is populated.
type ConfigurationError struct {
	Kind                          ConfigurationErrorKind              `json:"kind"`
	MissingEntity                 *MissingEntityError                 `json:"missing_entity,omitempty"`
	MissingEntityField            *MissingEntityFieldError            `json:"missing_entity_field,omitempty"`
	MissingStartPageLayout        *MissingStartPageLayoutError        `json:"missing_start_page_layout,omitempty"`
	LayoutEntityMismatch          *LayoutEntityMismatchError          `json:"layout_entity_mismatch,omitempty"`
	DataGridColumnMismatch        *DataGridColumnMismatchError        `json:"data_grid_column_mismatch,omitempty"`
	FormFieldMismatch             *FormFieldMismatchError             `json:"form_field_mismatch,omitempty"`
	BrokenRelationship            *BrokenRelationshipError            `json:"broken_relationship,omitempty"`
	FlowEntityReference           *FlowEntityReferenceError           `json:"flow_entity_reference,omitempty"`
	OrphanedReference             *OrphanedReferenceError             `json:"orphaned_reference,omitempty"`
	FieldTypeMismatch             *FieldTypeMismatchError             `json:"field_type_mismatch,omitempty"`
	InvalidValidationRule         *InvalidValidationRuleError         `json:"invalid_validation_rule,omitempty"`
	InvalidComponentConfiguration *InvalidComponentConfigurationError `json:"invalid_component_configuration,omitempty"`
	CircularDependency            *CircularDependencyError            `json:"circular_dependency,omitempty"`
}

// ErrorSeverity ranks how badly a configuration error breaks the
// generated application.
type ErrorSeverity string

const (
	// SeverityCritical means the application will not work at all.
	SeverityCritical ErrorSeverity = "critical"
	// SeverityHigh means major functionality is broken.
	SeverityHigh ErrorSeverity = "high"
	// SeverityMedium means partial functionality is affected.
	SeverityMedium ErrorSeverity = "medium"
	// SeverityLow means minor issues or warnings.
	SeverityLow ErrorSeverity = "low"
)

// ErrorCategory classifies the area of the model an error belongs to.
type ErrorCategory string

const (
	// CategoryDataModel groups errors in entities, fields and relationships.
	CategoryDataModel ErrorCategory = "data_model"
	// CategoryUserInterface groups errors in layouts and components.
	CategoryUserInterface ErrorCategory = "user_interface"
	// CategoryBusinessLogic groups errors in flows and rules.
	CategoryBusinessLogic ErrorCategory = "business_logic"
	// CategoryIntegration groups errors in external integrations.
	CategoryIntegration ErrorCategory = "integration"
	// CategoryPerformance groups errors affecting performance.
	CategoryPerformance ErrorCategory = "performance"
	// CategorySecurity groups errors affecting security.
	CategorySecurity ErrorCategory = "security"
)

// ErrorImpactType discriminates the error impact union.
type ErrorImpactType string

const (
	// ImpactApplicationUnstartable means the generated application cannot start.
	ImpactApplicationUnstartable ErrorImpactType = "application_unstartable"
	// ImpactFeatureUnavailable means a named feature is unavailable.
	ImpactFeatureUnavailable ErrorImpactType = "feature_unavailable"
	// ImpactDataIntegrityIssue means stored data may become inconsistent.
	ImpactDataIntegrityIssue ErrorImpactType = "data_integrity_issue"
	// ImpactPerformanceImpact means the application degrades under load.
	ImpactPerformanceImpact ErrorImpactType = "performance_impact"
	// ImpactUserExperienceIssue means users see degraded behavior.
	ImpactUserExperienceIssue ErrorImpactType = "user_experience_issue"
	// ImpactSecurityVulnerability means the application is exposed to attack.
	ImpactSecurityVulnerability ErrorImpactType = "security_vulnerability"
)

// ErrorImpact describes the runtime consequence of a configuration error.
type ErrorImpact struct {
	Type    ErrorImpactType `json:"type"`
	Feature string          `json:"feature,omitempty"`
}

// ErrorLocation is a best-effort pointer at the offending component.
type ErrorLocation struct {
	ComponentType string   `json:"component_type"`
	ComponentID   string   `json:"component_id"`
	ComponentName string   `json:"component_name"`
	Path          []string `json:"path"`
}

// ConfigurationErrorDetails wraps a raw configuration error with advisory
// metadata. Severity, impact and auto-fixability never gate whether a
// remediation strategy can be generated or executed.
type ConfigurationErrorDetails struct {
	ID             string             `json:"id"`
	Error          ConfigurationError `json:"error"`
	Severity       ErrorSeverity      `json:"severity"`
	Category       ErrorCategory      `json:"category"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Impact         ErrorImpact        `json:"impact"`
	Location       ErrorLocation      `json:"location"`
	SuggestedFixes []string           `json:"suggested_fixes"`
	AutoFixable    bool               `json:"auto_fixable"`
}

// ErrorSeverityCount tallies errors per severity.
type ErrorSeverityCount struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// SuggestionActionType names the consolidated action a suggestion proposes.
type SuggestionActionType string

const (
	// SuggestionCreateMissingEntity proposes creating all missing entities at once.
	SuggestionCreateMissingEntity SuggestionActionType = "create_missing_entity"
	// SuggestionUpdateEntitySchema proposes updating entity schemas.
	SuggestionUpdateEntitySchema SuggestionActionType = "update_entity_schema"
	// SuggestionFixLayoutConfiguration proposes fixing layout configurations.
	SuggestionFixLayoutConfiguration SuggestionActionType = "fix_layout_configuration"
	// SuggestionRemoveInvalidReferences proposes removing invalid references.
	SuggestionRemoveInvalidReferences SuggestionActionType = "remove_invalid_references"
	// SuggestionRefactorRelationships proposes refactoring relationships.
	SuggestionRefactorRelationships SuggestionActionType = "refactor_relationships"
)

// EstimatedEffort ranks how long a fix is expected to take.
type EstimatedEffort string

const (
	// EffortLow is under five minutes.
	EffortLow EstimatedEffort = "low"
	// EffortMedium is five to thirty minutes.
	EffortMedium EstimatedEffort = "medium"
	// EffortHigh is over thirty minutes.
	EffortHigh EstimatedEffort = "high"
	// EffortComplex requires design decisions.
	EffortComplex EstimatedEffort = "complex"
)

// ErrorSuggestion consolidates a family of errors into one proposed action.
type ErrorSuggestion struct {
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	ActionType      SuggestionActionType `json:"action_type"`
	AffectedErrors  []string             `json:"affected_errors"`
	EstimatedEffort EstimatedEffort      `json:"estimated_effort"`
}

// ConfigurationErrorReport is the complete result of one model scan.
type ConfigurationErrorReport struct {
	ModelID          string                      `json:"model_id"`
	ModelName        string                      `json:"model_name"`
	GeneratedAt      time.Time                   `json:"generated_at"`
	TotalErrors      int                         `json:"total_errors"`
	ErrorsBySeverity ErrorSeverityCount          `json:"errors_by_severity"`
	Errors           []ConfigurationErrorDetails `json:"errors"`
	Suggestions      []ErrorSuggestion           `json:"suggestions"`
}
