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

package verification

import (
	"fmt"

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/verification/constants"
	"github.com/appforge/appforge/internal/verification/model"
)

// modelScanner walks one model graph and collects configuration errors.
// All passes are read-only; the scanner never assumes referential
// integrity holds, since its violations are exactly the output.
type modelScanner struct {
	model          *appmodel.Model
	entityByID     map[string]*appmodel.ModelEntity
	entityByName   map[string]*appmodel.ModelEntity
	fieldsByEntity map[string]map[string]*appmodel.EntityField
}

func newModelScanner(m *appmodel.Model) *modelScanner {
	scanner := &modelScanner{
		model:          m,
		entityByID:     make(map[string]*appmodel.ModelEntity, len(m.Entities)),
		entityByName:   make(map[string]*appmodel.ModelEntity, len(m.Entities)),
		fieldsByEntity: make(map[string]map[string]*appmodel.EntityField, len(m.Entities)),
	}

	for i := range m.Entities {
		entity := &m.Entities[i]
		scanner.entityByID[entity.ID] = entity
		scanner.entityByName[entity.Name] = entity

		fieldByName := make(map[string]*appmodel.EntityField, len(entity.Fields))
		for j := range entity.Fields {
			field := &entity.Fields[j]
			fieldByName[field.Name] = field
		}
		scanner.fieldsByEntity[entity.ID] = fieldByName
	}

	return scanner
}

// scan runs all verification passes and assembles the error report. The
// passes are independent; their order affects only error id generation
// order, not which errors are found.
func (s *modelScanner) scan() *model.ConfigurationErrorReport {
	var errors []model.ConfigurationErrorDetails

	errors = append(errors, s.scanMissingEntities()...)
	errors = append(errors, s.scanComponentFieldMismatches()...)
	errors = append(errors, s.scanRelationshipIntegrity()...)
	errors = append(errors, s.scanFlowReferences()...)
	errors = append(errors, s.scanValidationScopes()...)
	errors = append(errors, s.scanCircularDependencies()...)
	errors = append(errors, s.scanOrphanedReferences()...)

	return buildErrorReport(s.model, errors)
}

// scanMissingEntities reports layout components whose entityType property
// names an entity that does not exist in the model.
func (s *modelScanner) scanMissingEntities() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, layout := range s.model.Layouts {
		for _, component := range layout.Components {
			entityName, ok := component.Properties.GetString(constants.PropertyKeyEntityType)
			if !ok {
				continue
			}
			if _, exists := s.entityByName[entityName]; exists {
				continue
			}

			configErr := model.ConfigurationError{
				Kind: model.ErrorKindMissingEntity,
				MissingEntity: &model.MissingEntityError{
					EntityName:    entityName,
					ReferencedBy:  fmt.Sprintf("Layout Component (%s)", component.ID),
					ReferenceType: model.ReferenceTypeLayoutComponent,
				},
			}
			errors = append(errors, newErrorDetails(
				configErr,
				model.SeverityCritical,
				model.CategoryDataModel,
				fmt.Sprintf("Missing entity: %s", entityName),
				fmt.Sprintf("Layout component references non-existent entity '%s'", entityName),
			))
		}
	}

	return errors
}

// scanComponentFieldMismatches checks DataGrid columns and form fields
// against the fields of their referenced entities. All mismatches of one
// component are batched into a single error.
func (s *modelScanner) scanComponentFieldMismatches() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, layout := range s.model.Layouts {
		for _, component := range layout.Components {
			switch component.ComponentType {
			case constants.ComponentTypeDataGrid:
				if details := s.scanDataGridComponent(layout, component); details != nil {
					errors = append(errors, *details)
				}
			case constants.ComponentTypeForm:
				if details := s.scanFormComponent(layout, component); details != nil {
					errors = append(errors, *details)
				}
			}
		}
	}

	return errors
}

func (s *modelScanner) scanDataGridComponent(
	layout appmodel.ModelLayout, component appmodel.LayoutComponent,
) *model.ConfigurationErrorDetails {
	entity := s.componentEntity(component)
	if entity == nil {
		return nil
	}
	columns, ok := component.Properties.GetArray(constants.PropertyKeyColumns)
	if !ok {
		return nil
	}

	fieldByName := s.fieldsByEntity[entity.ID]
	var invalidColumns []model.InvalidColumn
	for _, column := range columns {
		fieldName, ok := objectStringAttribute(column, constants.PropertyKeyField)
		if !ok {
			continue
		}
		if _, exists := fieldByName[fieldName]; !exists {
			invalidColumns = append(invalidColumns, model.InvalidColumn{
				ColumnName: fieldName,
				FieldName:  fieldName,
				Issue:      model.ColumnIssueFieldNotFound,
			})
		}
	}

	if len(invalidColumns) == 0 {
		return nil
	}

	configErr := model.ConfigurationError{
		Kind: model.ErrorKindDataGridColumnMismatch,
		DataGridColumnMismatch: &model.DataGridColumnMismatchError{
			LayoutID:       layout.ID,
			ComponentID:    component.ID,
			EntityID:       entity.ID,
			EntityName:     entity.Name,
			InvalidColumns: invalidColumns,
		},
	}
	details := newErrorDetails(
		configErr,
		model.SeverityHigh,
		model.CategoryUserInterface,
		"DataGrid has invalid column configuration",
		fmt.Sprintf("DataGrid component '%s' references non-existent fields in entity '%s'",
			component.ID, entity.Name),
	)
	return &details
}

func (s *modelScanner) scanFormComponent(
	layout appmodel.ModelLayout, component appmodel.LayoutComponent,
) *model.ConfigurationErrorDetails {
	entity := s.componentEntity(component)
	if entity == nil {
		return nil
	}
	fields, ok := component.Properties.GetArray(constants.PropertyKeyFields)
	if !ok {
		return nil
	}

	fieldByName := s.fieldsByEntity[entity.ID]
	var invalidFields []model.InvalidField
	for _, fieldConfig := range fields {
		fieldName, ok := objectStringAttribute(fieldConfig, constants.PropertyKeyName)
		if !ok {
			continue
		}
		if _, exists := fieldByName[fieldName]; !exists {
			invalidFields = append(invalidFields, model.InvalidField{
				FieldName: fieldName,
				Issue:     model.FieldIssueFieldNotFound,
			})
		}
	}

	if len(invalidFields) == 0 {
		return nil
	}

	configErr := model.ConfigurationError{
		Kind: model.ErrorKindFormFieldMismatch,
		FormFieldMismatch: &model.FormFieldMismatchError{
			LayoutID:      layout.ID,
			ComponentID:   component.ID,
			EntityID:      entity.ID,
			EntityName:    entity.Name,
			InvalidFields: invalidFields,
		},
	}
	details := newErrorDetails(
		configErr,
		model.SeverityHigh,
		model.CategoryUserInterface,
		"Form has invalid field configuration",
		fmt.Sprintf("Form component '%s' references non-existent fields in entity '%s'",
			component.ID, entity.Name),
	)
	return &details
}

// componentEntity resolves the entity a component is bound to through its
// entityType property, or nil when unset or unresolvable. Unresolvable
// bindings are reported by the missing entity pass, not here.
func (s *modelScanner) componentEntity(component appmodel.LayoutComponent) *appmodel.ModelEntity {
	entityName, ok := component.Properties.GetString(constants.PropertyKeyEntityType)
	if !ok {
		return nil
	}
	return s.entityByName[entityName]
}

// scanRelationshipIntegrity evaluates the four endpoint flags of every
// relationship independently. Field checks do not short-circuit on missing
// entities: a field is missing whenever it cannot be resolved.
func (s *modelScanner) scanRelationshipIntegrity() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, relationship := range s.model.Relationships {
		_, fromEntityExists := s.entityByID[relationship.FromEntity]
		_, toEntityExists := s.entityByID[relationship.ToEntity]

		fromFieldMissing := !s.fieldExists(relationship.FromEntity, relationship.FromField)
		toFieldMissing := !s.fieldExists(relationship.ToEntity, relationship.ToField)

		if fromEntityExists && toEntityExists && !fromFieldMissing && !toFieldMissing {
			continue
		}

		configErr := model.ConfigurationError{
			Kind: model.ErrorKindBrokenRelationship,
			BrokenRelationship: &model.BrokenRelationshipError{
				RelationshipID:    relationship.ID,
				RelationshipName:  relationship.Name,
				FromEntityMissing: !fromEntityExists,
				ToEntityMissing:   !toEntityExists,
				FromFieldMissing:  fromFieldMissing,
				ToFieldMissing:    toFieldMissing,
				FromEntityID:      relationship.FromEntity,
				ToEntityID:        relationship.ToEntity,
				FromField:         relationship.FromField,
				ToField:           relationship.ToField,
			},
		}
		errors = append(errors, newErrorDetails(
			configErr,
			model.SeverityCritical,
			model.CategoryDataModel,
			fmt.Sprintf("Broken relationship: %s", relationship.Name),
			fmt.Sprintf("Relationship '%s' references missing entities or fields", relationship.Name),
		))
	}

	return errors
}

func (s *modelScanner) fieldExists(entityID, fieldName string) bool {
	fieldByName, ok := s.fieldsByEntity[entityID]
	if !ok {
		return false
	}
	_, exists := fieldByName[fieldName]
	return exists
}

// scanFlowReferences checks entity references held by flow triggers and
// flow step configurations. Each unresolved reference is its own error.
func (s *modelScanner) scanFlowReferences() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, flow := range s.model.Flows {
		if flow.Trigger.Type == appmodel.FlowTriggerEntityEvent {
			if _, exists := s.entityByID[flow.Trigger.EntityID]; !exists {
				configErr := model.ConfigurationError{
					Kind: model.ErrorKindFlowEntityReference,
					FlowEntityReference: &model.FlowEntityReferenceError{
						FlowID:          flow.ID,
						FlowName:        flow.Name,
						MissingEntityID: flow.Trigger.EntityID,
					},
				}
				errors = append(errors, newErrorDetails(
					configErr,
					model.SeverityHigh,
					model.CategoryBusinessLogic,
					"Flow references missing entity",
					fmt.Sprintf("Flow '%s' trigger references non-existent entity", flow.Name),
				))
			}
		}

		for _, step := range flow.Steps {
			entityID, ok := step.Configuration.GetString(constants.PropertyKeyEntityID)
			if !ok || entityID == "" {
				continue
			}
			if _, exists := s.entityByID[entityID]; exists {
				continue
			}

			configErr := model.ConfigurationError{
				Kind: model.ErrorKindFlowEntityReference,
				FlowEntityReference: &model.FlowEntityReferenceError{
					FlowID:          flow.ID,
					FlowName:        flow.Name,
					MissingEntityID: entityID,
					StepID:          step.ID,
				},
			}
			errors = append(errors, newErrorDetails(
				configErr,
				model.SeverityMedium,
				model.CategoryBusinessLogic,
				"Flow step references missing entity",
				fmt.Sprintf("Flow '%s' step '%s' references non-existent entity", flow.Name, step.Name),
			))
		}
	}

	return errors
}

// scanValidationScopes checks that entity- and field-scoped validations
// reference existing ids.
func (s *modelScanner) scanValidationScopes() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, validation := range s.model.Validations {
		switch validation.Scope.Type {
		case appmodel.ValidationScopeEntity:
			if _, exists := s.entityByID[validation.Scope.EntityID]; exists {
				continue
			}
			configErr := model.ConfigurationError{
				Kind: model.ErrorKindInvalidValidationRule,
				InvalidValidationRule: &model.InvalidValidationRuleError{
					ValidationID:   validation.ID,
					EntityID:       validation.Scope.EntityID,
					RuleExpression: validation.Rule,
					ErrorMessage:   "Entity referenced by validation rule does not exist",
				},
			}
			errors = append(errors, newErrorDetails(
				configErr,
				model.SeverityMedium,
				model.CategoryDataModel,
				"Validation rule references missing entity",
				fmt.Sprintf("Validation '%s' references non-existent entity", validation.Name),
			))
		case appmodel.ValidationScopeField:
			if s.fieldIDExists(validation.Scope.FieldID) {
				continue
			}
			configErr := model.ConfigurationError{
				Kind: model.ErrorKindInvalidValidationRule,
				InvalidValidationRule: &model.InvalidValidationRuleError{
					ValidationID:   validation.ID,
					FieldID:        validation.Scope.FieldID,
					RuleExpression: validation.Rule,
					ErrorMessage:   "Field referenced by validation rule does not exist",
				},
			}
			errors = append(errors, newErrorDetails(
				configErr,
				model.SeverityMedium,
				model.CategoryDataModel,
				"Validation rule references missing field",
				fmt.Sprintf("Validation '%s' references non-existent field", validation.Name),
			))
		}
	}

	return errors
}

func (s *modelScanner) fieldIDExists(fieldID string) bool {
	for _, entity := range s.model.Entities {
		for _, field := range entity.Fields {
			if field.ID == fieldID {
				return true
			}
		}
	}
	return false
}

// scanCircularDependencies runs a DFS with visited and in-progress marking
// over the directed graph induced by relationships (from_entity to
// to_entity). The first back edge found for a component terminates that
// search; only the two nodes of the closing edge are reported.
func (s *modelScanner) scanCircularDependencies() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	graph := make(map[string][]string)
	for _, relationship := range s.model.Relationships {
		graph[relationship.FromEntity] = append(graph[relationship.FromEntity], relationship.ToEntity)
	}

	visited := make(map[string]bool)
	inProgress := make(map[string]bool)

	for i := range s.model.Entities {
		entityID := s.model.Entities[i].ID
		if visited[entityID] {
			continue
		}
		cycle, found := s.detectCycle(entityID, graph, visited, inProgress)
		if !found {
			continue
		}

		configErr := model.ConfigurationError{
			Kind: model.ErrorKindCircularDependency,
			CircularDependency: &model.CircularDependencyError{
				DependencyType: model.DependencyTypeEntityRelationship,
				CyclePath:      cycle,
			},
		}
		errors = append(errors, newErrorDetails(
			configErr,
			model.SeverityHigh,
			model.CategoryDataModel,
			"Circular dependency detected in entity relationships",
			"Circular dependency found in entity relationship chain",
		))
	}

	return errors
}

// detectCycle reports whether a back edge is reachable from node. The
// returned path holds the resolvable nodes of the closing edge; a cycle
// through ids absent from the entity index still reports found with an
// empty path.
func (s *modelScanner) detectCycle(
	node string, graph map[string][]string, visited, inProgress map[string]bool,
) ([]model.DependencyNode, bool) {
	visited[node] = true
	inProgress[node] = true

	for _, neighbor := range graph[node] {
		if !visited[neighbor] {
			if cycle, found := s.detectCycle(neighbor, graph, visited, inProgress); found {
				return cycle, true
			}
		} else if inProgress[neighbor] {
			// Back edge found; report the closing edge only.
			var cycle []model.DependencyNode
			if entity, ok := s.entityByID[neighbor]; ok {
				cycle = append(cycle, model.DependencyNode{
					NodeType: "Entity",
					NodeID:   neighbor,
					NodeName: entity.Name,
				})
			}
			if entity, ok := s.entityByID[node]; ok {
				cycle = append(cycle, model.DependencyNode{
					NodeType: "Entity",
					NodeID:   node,
					NodeName: entity.Name,
				})
			}
			return cycle, true
		}
	}

	inProgress[node] = false
	return nil, false
}

// scanOrphanedReferences reports layout target entity ids absent from the
// entity index.
func (s *modelScanner) scanOrphanedReferences() []model.ConfigurationErrorDetails {
	var errors []model.ConfigurationErrorDetails

	for _, layout := range s.model.Layouts {
		for _, entityID := range layout.TargetEntities {
			if _, exists := s.entityByID[entityID]; exists {
				continue
			}

			configErr := model.ConfigurationError{
				Kind: model.ErrorKindOrphanedReference,
				OrphanedReference: &model.OrphanedReferenceError{
					SourceType:     "Layout",
					SourceID:       layout.ID,
					TargetType:     "Entity",
					TargetID:       entityID,
					ReferenceField: "target_entities",
				},
			}
			errors = append(errors, newErrorDetails(
				configErr,
				model.SeverityMedium,
				model.CategoryUserInterface,
				"Layout references missing entity",
				fmt.Sprintf("Layout '%s' references non-existent entity in target_entities", layout.Name),
			))
		}
	}

	return errors
}

// objectStringAttribute reads a string attribute from an opaque JSON
// object value.
func objectStringAttribute(value any, key string) (string, bool) {
	object, ok := value.(map[string]any)
	if !ok {
		return "", false
	}
	attribute, ok := object[key]
	if !ok {
		return "", false
	}
	str, ok := attribute.(string)
	return str, ok
}
