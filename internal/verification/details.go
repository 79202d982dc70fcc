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
	"time"

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/system/utils"
	"github.com/appforge/appforge/internal/verification/model"
)

// newErrorDetails wraps a raw configuration error with its advisory
// metadata: impact, location, suggested fixes and auto-fixability.
func newErrorDetails(
	configErr model.ConfigurationError,
	severity model.ErrorSeverity,
	category model.ErrorCategory,
	title, description string,
) model.ConfigurationErrorDetails {
	return model.ConfigurationErrorDetails{
		ID:             utils.GenerateUUID(),
		Error:          configErr,
		Severity:       severity,
		Category:       category,
		Title:          title,
		Description:    description,
		Impact:         errorImpact(configErr),
		Location:       errorLocation(configErr),
		SuggestedFixes: suggestedFixes(configErr),
		AutoFixable:    isAutoFixable(configErr),
	}
}

func errorImpact(configErr model.ConfigurationError) model.ErrorImpact {
	switch configErr.Kind {
	case model.ErrorKindMissingStartPageLayout:
		return model.ErrorImpact{Type: model.ImpactApplicationUnstartable}
	case model.ErrorKindMissingEntity:
		return model.ErrorImpact{
			Type:    model.ImpactFeatureUnavailable,
			Feature: "Entity Operations",
		}
	case model.ErrorKindBrokenRelationship:
		return model.ErrorImpact{Type: model.ImpactDataIntegrityIssue}
	case model.ErrorKindDataGridColumnMismatch:
		return model.ErrorImpact{
			Type:    model.ImpactFeatureUnavailable,
			Feature: "Data Display",
		}
	case model.ErrorKindFormFieldMismatch:
		return model.ErrorImpact{
			Type:    model.ImpactFeatureUnavailable,
			Feature: "Data Entry",
		}
	case model.ErrorKindCircularDependency:
		return model.ErrorImpact{Type: model.ImpactDataIntegrityIssue}
	default:
		return model.ErrorImpact{Type: model.ImpactUserExperienceIssue}
	}
}

func errorLocation(configErr model.ConfigurationError) model.ErrorLocation {
	switch configErr.Kind {
	case model.ErrorKindMissingEntity:
		return model.ErrorLocation{
			ComponentType: "Entity Reference",
			ComponentName: configErr.MissingEntity.ReferencedBy,
			Path:          []string{"Model", "Entities"},
		}
	case model.ErrorKindDataGridColumnMismatch:
		mismatch := configErr.DataGridColumnMismatch
		return model.ErrorLocation{
			ComponentType: "DataGrid",
			ComponentID:   mismatch.ComponentID,
			ComponentName: fmt.Sprintf("DataGrid-%s", mismatch.ComponentID),
			Path:          []string{"Model", "Layouts", mismatch.LayoutID},
		}
	case model.ErrorKindFormFieldMismatch:
		mismatch := configErr.FormFieldMismatch
		return model.ErrorLocation{
			ComponentType: "Form",
			ComponentID:   mismatch.ComponentID,
			ComponentName: fmt.Sprintf("Form-%s", mismatch.ComponentID),
			Path:          []string{"Model", "Layouts", mismatch.LayoutID},
		}
	case model.ErrorKindBrokenRelationship:
		broken := configErr.BrokenRelationship
		return model.ErrorLocation{
			ComponentType: "Relationship",
			ComponentID:   broken.RelationshipID,
			ComponentName: broken.RelationshipName,
			Path:          []string{"Model", "Relationships"},
		}
	case model.ErrorKindFlowEntityReference:
		flowRef := configErr.FlowEntityReference
		return model.ErrorLocation{
			ComponentType: "Flow",
			ComponentID:   flowRef.FlowID,
			ComponentName: flowRef.FlowName,
			Path:          []string{"Model", "Flows"},
		}
	case model.ErrorKindOrphanedReference:
		orphan := configErr.OrphanedReference
		return model.ErrorLocation{
			ComponentType: orphan.SourceType,
			ComponentID:   orphan.SourceID,
			ComponentName: orphan.SourceType,
			Path:          []string{"Model", "Layouts", orphan.SourceID},
		}
	default:
		return model.ErrorLocation{
			ComponentType: "Unknown",
			ComponentName: "Unknown",
			Path:          []string{"Model"},
		}
	}
}

func suggestedFixes(configErr model.ConfigurationError) []string {
	switch configErr.Kind {
	case model.ErrorKindMissingEntity:
		missing := configErr.MissingEntity
		return []string{
			fmt.Sprintf("Create the missing entity '%s'", missing.EntityName),
			fmt.Sprintf("Remove the component referencing '%s'", missing.EntityName),
			"Update the component to reference an existing entity",
		}
	case model.ErrorKindDataGridColumnMismatch:
		mismatch := configErr.DataGridColumnMismatch
		fixes := make([]string, 0, len(mismatch.InvalidColumns))
		for _, column := range mismatch.InvalidColumns {
			fixes = append(fixes, fmt.Sprintf(
				"Remove column '%s' or add field '%s' to the entity",
				column.FieldName, column.FieldName))
		}
		return fixes
	case model.ErrorKindFormFieldMismatch:
		mismatch := configErr.FormFieldMismatch
		fixes := make([]string, 0, len(mismatch.InvalidFields))
		for _, field := range mismatch.InvalidFields {
			fixes = append(fixes, fmt.Sprintf(
				"Remove field '%s' or add field '%s' to the entity",
				field.FieldName, field.FieldName))
		}
		return fixes
	case model.ErrorKindBrokenRelationship:
		return []string{
			"Create the missing entities or fields",
			"Remove the broken relationship",
			"Update the relationship to reference existing entities and fields",
		}
	default:
		return []string{"Review and fix the configuration manually"}
	}
}

// isAutoFixable reports whether the executor can repair this error without
// human review.
func isAutoFixable(configErr model.ConfigurationError) bool {
	switch configErr.Kind {
	case model.ErrorKindOrphanedReference,
		model.ErrorKindDataGridColumnMismatch,
		model.ErrorKindFormFieldMismatch:
		return true
	default:
		return false
	}
}

// buildErrorReport tallies severities and consolidates related errors into
// suggestions.
func buildErrorReport(
	m *appmodel.Model, errors []model.ConfigurationErrorDetails,
) *model.ConfigurationErrorReport {
	var severityCount model.ErrorSeverityCount
	for _, details := range errors {
		switch details.Severity {
		case model.SeverityCritical:
			severityCount.Critical++
		case model.SeverityHigh:
			severityCount.High++
		case model.SeverityMedium:
			severityCount.Medium++
		case model.SeverityLow:
			severityCount.Low++
		}
	}

	return &model.ConfigurationErrorReport{
		ModelID:          m.ID,
		ModelName:        m.Name,
		GeneratedAt:      time.Now(),
		TotalErrors:      len(errors),
		ErrorsBySeverity: severityCount,
		Errors:           errors,
		Suggestions:      buildSuggestions(errors),
	}
}

// buildSuggestions groups error families into consolidated actions. Each
// family with at least one member yields one suggestion carrying the ids
// of all affected errors.
func buildSuggestions(errors []model.ConfigurationErrorDetails) []model.ErrorSuggestion {
	var missingEntityIDs []string
	var orphanedIDs []string
	for _, details := range errors {
		switch details.Error.Kind {
		case model.ErrorKindMissingEntity:
			missingEntityIDs = append(missingEntityIDs, details.ID)
		case model.ErrorKindOrphanedReference:
			orphanedIDs = append(orphanedIDs, details.ID)
		}
	}

	var suggestions []model.ErrorSuggestion
	if len(missingEntityIDs) > 0 {
		suggestions = append(suggestions, model.ErrorSuggestion{
			Title:           "Create Missing Entities",
			Description:     "Multiple components reference entities that don't exist. Create these entities to resolve the errors.",
			ActionType:      model.SuggestionCreateMissingEntity,
			AffectedErrors:  missingEntityIDs,
			EstimatedEffort: model.EffortMedium,
		})
	}
	if len(orphanedIDs) > 0 {
		suggestions = append(suggestions, model.ErrorSuggestion{
			Title:           "Remove Invalid References",
			Description:     "Layouts reference entities that don't exist. Remove these references to resolve the errors.",
			ActionType:      model.SuggestionRemoveInvalidReferences,
			AffectedErrors:  orphanedIDs,
			EstimatedEffort: model.EffortLow,
		})
	}
	return suggestions
}
