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

package remediation

import (
	"fmt"
	"strings"

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/remediation/model"
	"github.com/appforge/appforge/internal/system/utils"
)

// strategyExecutor applies one remediation strategy to a model graph in
// place. Failures of individual operations are collected into the result;
// execution never aborts on a missing target, so partial application is
// observable through ChangesApplied alongside Errors.
type strategyExecutor struct {
	model  *appmodel.Model
	result *model.RemediationResult
}

func newStrategyExecutor(m *appmodel.Model, strategyID string) *strategyExecutor {
	return &strategyExecutor{
		model: m,
		result: &model.RemediationResult{
			StrategyID:     strategyID,
			ChangesApplied: []model.ModelChange{},
			Errors:         []string{},
			Warnings:       []string{},
		},
	}
}

// execute dispatches on the strategy type, finalizes the success flag and
// returns the result.
func (e *strategyExecutor) execute(
	strategy *model.RemediationStrategy, parameters map[string]string,
) *model.RemediationResult {
	switch strategy.StrategyType.Kind {
	case model.StrategyKindCreateMissingEntity:
		e.createMissingEntity(strategy.StrategyType.CreateMissingEntity, parameters)
	case model.StrategyKindAddMissingFields:
		e.addMissingFields(strategy.StrategyType.AddMissingFields, parameters)
	case model.StrategyKindUpdateComponentConfiguration:
		e.updateComponentConfiguration(strategy.StrategyType.UpdateComponentConfiguration)
	case model.StrategyKindRemoveOrphanedReferences:
		e.removeOrphanedReferences(strategy.StrategyType.RemoveOrphanedReferences)
	case model.StrategyKindFixRelationship:
		e.fixRelationship(strategy.StrategyType.FixRelationship)
	case model.StrategyKindRemoveInvalidReferences:
		e.removeInvalidReferences()
	default:
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("Unknown strategy type '%s'", strategy.StrategyType.Kind))
	}

	e.result.Success = len(e.result.Errors) == 0
	return e.result
}

func (e *strategyExecutor) createMissingEntity(
	payload *model.CreateMissingEntityStrategy, parameters map[string]string,
) {
	entityName := parameters[ParameterEntityName]
	if entityName == "" {
		entityName = payload.EntityName
	}
	displayName := parameters[ParameterEntityDisplayName]
	if displayName == "" {
		displayName = entityName
	}

	for _, entity := range e.model.Entities {
		if entity.Name == entityName {
			e.result.Errors = append(e.result.Errors,
				fmt.Sprintf("Entity '%s' already exists", entityName))
			return
		}
	}

	fields := make([]appmodel.EntityField, 0, len(payload.SuggestedFields))
	for _, suggested := range payload.SuggestedFields {
		fields = append(fields, appmodel.EntityField{
			ID:          utils.GenerateUUID(),
			Name:        suggested.Name,
			DisplayName: suggested.DisplayName,
			FieldType:   resolveFieldType(suggested, parameters),
			Required:    suggested.Required,
		})
	}

	entity := appmodel.ModelEntity{
		ID:          utils.GenerateUUID(),
		Name:        entityName,
		DisplayName: displayName,
		Fields:      fields,
	}
	e.model.Entities = append(e.model.Entities, entity)

	e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
		ChangeType:    model.ChangeEntityCreated,
		ComponentType: "Entity",
		ComponentID:   entity.ID,
		Description:   fmt.Sprintf("Created entity '%s'", entityName),
		Details:       fmt.Sprintf("%d fields", len(fields)),
	})
}

func (e *strategyExecutor) addMissingFields(
	payload *model.AddMissingFieldsStrategy, parameters map[string]string,
) {
	entity := e.findEntity(payload.EntityID)
	if entity == nil {
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("Entity '%s' not found", payload.EntityID))
		return
	}

	existing := make(map[string]bool, len(entity.Fields))
	for _, field := range entity.Fields {
		existing[field.Name] = true
	}

	added := 0
	for _, suggested := range payload.Fields {
		if existing[suggested.Name] {
			e.result.Errors = append(e.result.Errors,
				fmt.Sprintf("Field '%s' already exists on entity '%s'", suggested.Name, entity.Name))
			continue
		}
		entity.Fields = append(entity.Fields, appmodel.EntityField{
			ID:          utils.GenerateUUID(),
			Name:        suggested.Name,
			DisplayName: suggested.DisplayName,
			FieldType:   resolveFieldType(suggested, parameters),
			Required:    suggested.Required,
		})
		existing[suggested.Name] = true
		added++
	}

	if added > 0 {
		e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
			ChangeType:    model.ChangeEntityUpdated,
			ComponentType: "Entity",
			ComponentID:   entity.ID,
			Description:   fmt.Sprintf("Added %d fields to entity '%s'", added, entity.Name),
		})
	}
}

func (e *strategyExecutor) updateComponentConfiguration(
	payload *model.UpdateComponentConfigurationStrategy,
) {
	component := e.findComponent(payload.LayoutID, payload.ComponentID)
	if component == nil {
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("Component '%s' not found in layout '%s'",
				payload.ComponentID, payload.LayoutID))
		return
	}

	applied := 0
	for _, update := range payload.Updates {
		if e.applyConfigurationUpdate(component, update) {
			applied++
		}
	}

	if applied > 0 {
		e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
			ChangeType:    model.ChangeComponentUpdated,
			ComponentType: component.ComponentType,
			ComponentID:   component.ID,
			Description:   fmt.Sprintf("Applied %d configuration updates", applied),
		})
	}
}

func (e *strategyExecutor) applyConfigurationUpdate(
	component *appmodel.LayoutComponent, update model.ConfigurationUpdate,
) bool {
	switch update.Action {
	case model.ActionRemove:
		if selector, ok := parseArraySelector(update.PropertyPath); ok {
			return e.removeArrayElements(component, selector)
		}
		if !component.Properties.Delete(update.PropertyPath) {
			e.result.Errors = append(e.result.Errors,
				fmt.Sprintf("Property '%s' not found on component '%s'",
					update.PropertyPath, component.ID))
			return false
		}
		return true
	case model.ActionUpdate, model.ActionAdd:
		component.Properties.Set(update.PropertyPath, update.Value)
		return true
	default:
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("Unknown update action '%s'", update.Action))
		return false
	}
}

func (e *strategyExecutor) removeArrayElements(
	component *appmodel.LayoutComponent, selector arraySelector,
) bool {
	elements, ok := component.Properties.GetArray(selector.Array)
	if !ok {
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("Property '%s' is not an array on component '%s'",
				selector.Array, component.ID))
		return false
	}

	retained := make([]any, 0, len(elements))
	for _, element := range elements {
		object, isObject := element.(map[string]any)
		if isObject {
			if attribute, exists := object[selector.Attribute]; exists {
				if str, isString := attribute.(string); isString && str == selector.Value {
					continue
				}
			}
		}
		retained = append(retained, element)
	}

	if len(retained) == len(elements) {
		e.result.Errors = append(e.result.Errors,
			fmt.Sprintf("No element matching %s='%s' in property '%s'",
				selector.Attribute, selector.Value, selector.Array))
		return false
	}

	component.Properties.Set(selector.Array, retained)
	return true
}

func (e *strategyExecutor) removeOrphanedReferences(
	payload *model.RemoveOrphanedReferencesStrategy,
) {
	if !strings.Contains(payload.ReferenceType, "Layout") {
		e.result.Warnings = append(e.result.Warnings,
			fmt.Sprintf("Reference type '%s' is not supported; no changes applied",
				payload.ReferenceType))
		return
	}

	removed := 0
	for _, reference := range payload.References {
		layout := e.findLayout(reference.SourceID)
		if layout == nil {
			e.result.Errors = append(e.result.Errors,
				fmt.Sprintf("Layout '%s' not found", reference.SourceID))
			continue
		}

		retained := make([]string, 0, len(layout.TargetEntities))
		for _, entityID := range layout.TargetEntities {
			if entityID == reference.TargetID {
				removed++
				continue
			}
			retained = append(retained, entityID)
		}
		layout.TargetEntities = retained
	}

	if removed > 0 {
		e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
			ChangeType:    model.ChangeReferenceRemoved,
			ComponentType: "Layout",
			Description:   fmt.Sprintf("Removed %d orphaned references", removed),
		})
	}
}

// removeInvalidReferences is a generic fallback for reference cleanup
// strategies that carry no payload. The specific removal depends on the
// error the strategy was generated for; only the change record is emitted.
func (e *strategyExecutor) removeInvalidReferences() {
	e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
		ChangeType:    model.ChangeReferenceRemoved,
		ComponentType: "Generic",
		ComponentID:   utils.GenerateUUID(),
		Description:   "Removed invalid references",
	})
}

// fixRelationship applies the strategy's fixes in order; a failed fix is
// recorded and the remaining fixes still run.
func (e *strategyExecutor) fixRelationship(payload *model.FixRelationshipStrategy) {
	for _, fix := range payload.Fixes {
		switch fix.FixType {
		case model.FixRemoveRelationship:
			e.removeRelationship(payload.RelationshipID)
		case model.FixCreateMissingEntity, model.FixAddMissingField, model.FixUpdateReference:
			e.result.Warnings = append(e.result.Warnings,
				fmt.Sprintf("Relationship fix '%s' is not yet implemented; no changes applied",
					fix.FixType))
		default:
			e.result.Errors = append(e.result.Errors,
				fmt.Sprintf("Unknown relationship fix '%s'", fix.FixType))
		}
	}
}

func (e *strategyExecutor) removeRelationship(relationshipID string) {
	for i, relationship := range e.model.Relationships {
		if relationship.ID == relationshipID {
			e.model.Relationships = append(
				e.model.Relationships[:i], e.model.Relationships[i+1:]...)
			e.result.ChangesApplied = append(e.result.ChangesApplied, model.ModelChange{
				ChangeType:    model.ChangeRelationshipRemoved,
				ComponentType: "Relationship",
				ComponentID:   relationship.ID,
				Description:   fmt.Sprintf("Removed relationship '%s'", relationship.Name),
			})
			return
		}
	}
	e.result.Errors = append(e.result.Errors,
		fmt.Sprintf("Relationship '%s' not found", relationshipID))
}

func (e *strategyExecutor) findEntity(entityID string) *appmodel.ModelEntity {
	for i := range e.model.Entities {
		if e.model.Entities[i].ID == entityID {
			return &e.model.Entities[i]
		}
	}
	return nil
}

func (e *strategyExecutor) findLayout(layoutID string) *appmodel.ModelLayout {
	for i := range e.model.Layouts {
		if e.model.Layouts[i].ID == layoutID {
			return &e.model.Layouts[i]
		}
	}
	return nil
}

func (e *strategyExecutor) findComponent(layoutID, componentID string) *appmodel.LayoutComponent {
	layout := e.findLayout(layoutID)
	if layout == nil {
		return nil
	}
	for i := range layout.Components {
		if layout.Components[i].ID == componentID {
			return &layout.Components[i]
		}
	}
	return nil
}

// resolveFieldType resolves the final type of a suggested field. A valid
// field_type_<name> parameter overrides the suggestion's default; anything
// outside the closed type table keeps the default.
func resolveFieldType(
	suggested model.SuggestedField, parameters map[string]string,
) appmodel.FieldType {
	if name, ok := parameters[FieldTypeParameterName(suggested.Name)]; ok {
		if fieldType, valid := appmodel.ParseFieldTypeName(name); valid {
			return fieldType
		}
	}
	return suggested.FieldType
}
