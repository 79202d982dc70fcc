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

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/remediation/model"
	"github.com/appforge/appforge/internal/system/utils"
	vermodel "github.com/appforge/appforge/internal/verification/model"
)

// ParameterEntityName is the parameter overriding the created entity name.
const ParameterEntityName = "entity_name"

// ParameterEntityDisplayName is the parameter overriding the created entity
// display name.
const ParameterEntityDisplayName = "entity_display_name"

// FieldTypeParameterName returns the name of the parameter selecting the
// type of one field to be added.
func FieldTypeParameterName(fieldName string) string {
	return "field_type_" + fieldName
}

// entityNamePattern constrains entity name parameters.
const entityNamePattern = `^[A-Za-z][A-Za-z0-9_]*$`

// fieldTypeOptions is the closed option set of field type select
// parameters. Values feed appmodel.ParseFieldTypeName at execution time.
func fieldTypeOptions() []model.SelectOption {
	return []model.SelectOption{
		{Value: "String", Label: "Text"},
		{Value: "Integer", Label: "Number"},
		{Value: "Float", Label: "Decimal"},
		{Value: "Boolean", Label: "True/False"},
		{Value: "DateTime", Label: "Date & Time"},
	}
}

// generateStrategies builds every applicable remediation strategy for one
// configuration error. Errors with no strategy mapping yield an empty
// slice, never an error: absence of a fix proposal is a valid answer.
func generateStrategies(details *vermodel.ConfigurationErrorDetails) []model.RemediationStrategy {
	switch details.Error.Kind {
	case vermodel.ErrorKindDataGridColumnMismatch:
		return dataGridStrategies(details.Error.DataGridColumnMismatch)
	case vermodel.ErrorKindFormFieldMismatch:
		return formFieldStrategies(details.Error.FormFieldMismatch)
	case vermodel.ErrorKindMissingEntity:
		return missingEntityStrategies(details.Error.MissingEntity)
	case vermodel.ErrorKindOrphanedReference:
		return orphanedReferenceStrategies(details.Error.OrphanedReference)
	case vermodel.ErrorKindBrokenRelationship:
		return brokenRelationshipStrategies(details.Error.BrokenRelationship)
	default:
		return []model.RemediationStrategy{}
	}
}

func dataGridStrategies(mismatch *vermodel.DataGridColumnMismatchError) []model.RemediationStrategy {
	var strategies []model.RemediationStrategy

	updates := make([]model.ConfigurationUpdate, 0, len(mismatch.InvalidColumns))
	for _, column := range mismatch.InvalidColumns {
		updates = append(updates, model.ConfigurationUpdate{
			PropertyPath: fmt.Sprintf("columns[field='%s']", column.FieldName),
			Action:       model.ActionRemove,
		})
	}
	strategies = append(strategies, model.RemediationStrategy{
		ID:        utils.GenerateUUID(),
		ErrorType: string(vermodel.ErrorKindDataGridColumnMismatch),
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindUpdateComponentConfiguration,
			UpdateComponentConfiguration: &model.UpdateComponentConfigurationStrategy{
				LayoutID:    mismatch.LayoutID,
				ComponentID: mismatch.ComponentID,
				Updates:     updates,
			},
		},
		Title: "Remove Invalid Columns",
		Description: fmt.Sprintf(
			"Remove columns referencing non-existent fields from the DataGrid bound to entity '%s'",
			mismatch.EntityName),
		Parameters:      []model.RemediationParameter{},
		EstimatedEffort: model.EffortLow,
		RiskLevel:       model.RiskLow,
		Prerequisites:   []string{},
	})

	if fields, parameters := missingFieldProposals(columnFieldNames(mismatch.InvalidColumns)); len(fields) > 0 {
		strategies = append(strategies, model.RemediationStrategy{
			ID:        utils.GenerateUUID(),
			ErrorType: string(vermodel.ErrorKindDataGridColumnMismatch),
			StrategyType: model.StrategyType{
				Kind: model.StrategyKindAddMissingFields,
				AddMissingFields: &model.AddMissingFieldsStrategy{
					EntityID: mismatch.EntityID,
					Fields:   fields,
				},
			},
			Title: "Add Missing Fields",
			Description: fmt.Sprintf(
				"Add the missing fields to entity '%s' so the DataGrid columns resolve",
				mismatch.EntityName),
			Parameters:      parameters,
			EstimatedEffort: model.EffortMedium,
			RiskLevel:       model.RiskMedium,
			Prerequisites:   []string{"Review field types before adding"},
		})
	}

	return strategies
}

func formFieldStrategies(mismatch *vermodel.FormFieldMismatchError) []model.RemediationStrategy {
	var strategies []model.RemediationStrategy

	updates := make([]model.ConfigurationUpdate, 0, len(mismatch.InvalidFields))
	for _, field := range mismatch.InvalidFields {
		updates = append(updates, model.ConfigurationUpdate{
			PropertyPath: fmt.Sprintf("fields[name='%s']", field.FieldName),
			Action:       model.ActionRemove,
		})
	}
	strategies = append(strategies, model.RemediationStrategy{
		ID:        utils.GenerateUUID(),
		ErrorType: string(vermodel.ErrorKindFormFieldMismatch),
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindUpdateComponentConfiguration,
			UpdateComponentConfiguration: &model.UpdateComponentConfigurationStrategy{
				LayoutID:    mismatch.LayoutID,
				ComponentID: mismatch.ComponentID,
				Updates:     updates,
			},
		},
		Title: "Remove Invalid Form Fields",
		Description: fmt.Sprintf(
			"Remove fields referencing non-existent entity fields from the form bound to entity '%s'",
			mismatch.EntityName),
		Parameters:      []model.RemediationParameter{},
		EstimatedEffort: model.EffortLow,
		RiskLevel:       model.RiskLow,
		Prerequisites:   []string{},
	})

	if fields, parameters := missingFieldProposals(formFieldNames(mismatch.InvalidFields)); len(fields) > 0 {
		strategies = append(strategies, model.RemediationStrategy{
			ID:        utils.GenerateUUID(),
			ErrorType: string(vermodel.ErrorKindFormFieldMismatch),
			StrategyType: model.StrategyType{
				Kind: model.StrategyKindAddMissingFields,
				AddMissingFields: &model.AddMissingFieldsStrategy{
					EntityID: mismatch.EntityID,
					Fields:   fields,
				},
			},
			Title: "Add Missing Fields to Entity",
			Description: fmt.Sprintf(
				"Add the missing fields to entity '%s' so the form fields resolve",
				mismatch.EntityName),
			Parameters:      parameters,
			EstimatedEffort: model.EffortMedium,
			RiskLevel:       model.RiskMedium,
			Prerequisites:   []string{"Review field types before adding"},
		})
	}

	return strategies
}

func columnFieldNames(columns []vermodel.InvalidColumn) []string {
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		if column.Issue == vermodel.ColumnIssueFieldNotFound {
			names = append(names, column.FieldName)
		}
	}
	return names
}

func formFieldNames(fields []vermodel.InvalidField) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.Issue == vermodel.FieldIssueFieldNotFound {
			names = append(names, field.FieldName)
		}
	}
	return names
}

// missingFieldProposals proposes one optional String(255) field per missing
// field name, plus a required select parameter per field so the caller can
// pick the final type at execution time.
func missingFieldProposals(names []string) ([]model.SuggestedField, []model.RemediationParameter) {
	fields := make([]model.SuggestedField, 0, len(names))
	parameters := make([]model.RemediationParameter, 0, len(names))
	for _, name := range names {
		fields = append(fields, model.SuggestedField{
			Name:        name,
			DisplayName: name,
			FieldType:   appmodel.StringFieldType(255),
			Required:    false,
		})
		parameters = append(parameters, model.RemediationParameter{
			Name:        FieldTypeParameterName(name),
			Description: fmt.Sprintf("Field type for '%s'", name),
			ParameterType: model.ParameterType{
				Kind:    model.ParameterSelect,
				Options: fieldTypeOptions(),
			},
			Required:     true,
			DefaultValue: "String",
		})
	}
	return fields, parameters
}

func missingEntityStrategies(missing *vermodel.MissingEntityError) []model.RemediationStrategy {
	entityName := missing.EntityName
	if entityName == "" {
		entityName = "NewEntity"
	}

	return []model.RemediationStrategy{{
		ID:        utils.GenerateUUID(),
		ErrorType: string(vermodel.ErrorKindMissingEntity),
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindCreateMissingEntity,
			CreateMissingEntity: &model.CreateMissingEntityStrategy{
				EntityName: entityName,
				SuggestedFields: []model.SuggestedField{
					{
						Name:        "id",
						DisplayName: "ID",
						FieldType:   appmodel.IntegerFieldType(),
						Required:    true,
					},
					{
						Name:        "name",
						DisplayName: "Name",
						FieldType:   appmodel.StringFieldType(255),
						Required:    true,
					},
				},
			},
		},
		Title:       fmt.Sprintf("Create Entity '%s'", entityName),
		Description: fmt.Sprintf("Create the missing entity '%s' referenced by %s", entityName, missing.ReferencedBy),
		Parameters: []model.RemediationParameter{
			{
				Name:          ParameterEntityName,
				Description:   "Name of the entity to create",
				ParameterType: model.ParameterType{Kind: model.ParameterText},
				Required:      true,
				DefaultValue:  entityName,
				Validation:    entityNamePattern,
			},
			{
				Name:          ParameterEntityDisplayName,
				Description:   "Display name of the entity to create",
				ParameterType: model.ParameterType{Kind: model.ParameterText},
				Required:      true,
				DefaultValue:  entityName,
			},
		},
		EstimatedEffort: model.EffortMedium,
		RiskLevel:       model.RiskMedium,
		Prerequisites:   []string{},
	}}
}

func orphanedReferenceStrategies(orphan *vermodel.OrphanedReferenceError) []model.RemediationStrategy {
	return []model.RemediationStrategy{{
		ID:        utils.GenerateUUID(),
		ErrorType: string(vermodel.ErrorKindOrphanedReference),
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindRemoveOrphanedReferences,
			RemoveOrphanedReferences: &model.RemoveOrphanedReferencesStrategy{
				ReferenceType: fmt.Sprintf("%s -> %s", orphan.SourceType, orphan.TargetType),
				References: []model.OrphanedReference{{
					SourceID:       orphan.SourceID,
					TargetID:       orphan.TargetID,
					ReferenceField: orphan.ReferenceField,
				}},
			},
		},
		Title: "Remove Orphaned Reference",
		Description: fmt.Sprintf("Remove the dangling reference from %s '%s' to missing %s '%s'",
			orphan.SourceType, orphan.SourceID, orphan.TargetType, orphan.TargetID),
		Parameters:      []model.RemediationParameter{},
		EstimatedEffort: model.EffortLow,
		RiskLevel:       model.RiskLow,
		Prerequisites:   []string{},
	}}
}

// brokenRelationshipStrategies always proposes removing the relationship.
// When an endpoint entity is missing it additionally proposes one strategy
// creating every missing entity; only when both entities exist does it
// propose one strategy adding the missing fields instead. Related fixes
// are batched into a single strategy so the executor applies them together.
func brokenRelationshipStrategies(broken *vermodel.BrokenRelationshipError) []model.RemediationStrategy {
	strategies := []model.RemediationStrategy{{
		ID:        utils.GenerateUUID(),
		ErrorType: string(vermodel.ErrorKindBrokenRelationship),
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindFixRelationship,
			FixRelationship: &model.FixRelationshipStrategy{
				RelationshipID: broken.RelationshipID,
				Fixes:          []model.RelationshipFix{{FixType: model.FixRemoveRelationship}},
			},
		},
		Title:           "Remove Broken Relationship",
		Description:     fmt.Sprintf("Remove the broken relationship '%s' from the model", broken.RelationshipName),
		Parameters:      []model.RemediationParameter{},
		EstimatedEffort: model.EffortLow,
		RiskLevel:       model.RiskMedium,
		Prerequisites:   []string{"Ensure relationship removal won't break other components"},
	}}

	if broken.FromEntityMissing || broken.ToEntityMissing {
		var fixes []model.RelationshipFix
		if broken.FromEntityMissing {
			fixes = append(fixes, model.RelationshipFix{
				FixType:        model.FixCreateMissingEntity,
				TargetEntityID: broken.FromEntityID,
			})
		}
		if broken.ToEntityMissing {
			fixes = append(fixes, model.RelationshipFix{
				FixType:        model.FixCreateMissingEntity,
				TargetEntityID: broken.ToEntityID,
			})
		}

		strategies = append(strategies, model.RemediationStrategy{
			ID:        utils.GenerateUUID(),
			ErrorType: string(vermodel.ErrorKindBrokenRelationship),
			StrategyType: model.StrategyType{
				Kind: model.StrategyKindFixRelationship,
				FixRelationship: &model.FixRelationshipStrategy{
					RelationshipID: broken.RelationshipID,
					Fixes:          fixes,
				},
			},
			Title: "Create Missing Entities",
			Description: fmt.Sprintf(
				"Create missing entities for relationship '%s'", broken.RelationshipName),
			Parameters:      []model.RemediationParameter{},
			EstimatedEffort: model.EffortHigh,
			RiskLevel:       model.RiskHigh,
			Prerequisites:   []string{"Define entity structures and purposes"},
		})
		return strategies
	}

	if broken.FromFieldMissing || broken.ToFieldMissing {
		var fixes []model.RelationshipFix
		if broken.FromFieldMissing {
			fixes = append(fixes, model.RelationshipFix{
				FixType:        model.FixAddMissingField,
				TargetEntityID: broken.FromEntityID,
				TargetField:    broken.FromField,
			})
		}
		if broken.ToFieldMissing {
			fixes = append(fixes, model.RelationshipFix{
				FixType:        model.FixAddMissingField,
				TargetEntityID: broken.ToEntityID,
				TargetField:    broken.ToField,
			})
		}

		strategies = append(strategies, model.RemediationStrategy{
			ID:        utils.GenerateUUID(),
			ErrorType: string(vermodel.ErrorKindBrokenRelationship),
			StrategyType: model.StrategyType{
				Kind: model.StrategyKindFixRelationship,
				FixRelationship: &model.FixRelationshipStrategy{
					RelationshipID: broken.RelationshipID,
					Fixes:          fixes,
				},
			},
			Title: "Add Missing Fields",
			Description: fmt.Sprintf(
				"Add missing fields for relationship '%s'", broken.RelationshipName),
			Parameters:      []model.RemediationParameter{},
			EstimatedEffort: model.EffortMedium,
			RiskLevel:       model.RiskMedium,
			Prerequisites:   []string{"Review field types and constraints"},
		})
	}

	return strategies
}
