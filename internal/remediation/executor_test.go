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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/remediation/model"
)

type StrategyExecutorTestSuite struct {
	suite.Suite
	service ModelRemediationServiceInterface
}

func TestStrategyExecutorSuite(t *testing.T) {
	suite.Run(t, new(StrategyExecutorTestSuite))
}

func (suite *StrategyExecutorTestSuite) SetupTest() {
	suite.service = GetModelRemediationService()
}

func newExecutorModel() *appmodel.Model {
	gridProps := appmodel.NewProperties()
	gridProps.Set("entityType", "Customer")
	gridProps.Set("columns", []any{
		map[string]any{"field": "name"},
		map[string]any{"field": "email"},
	})

	return &appmodel.Model{
		ID:   "model-1",
		Name: "CRM",
		Entities: []appmodel.ModelEntity{{
			ID:   "entity-customer",
			Name: "Customer",
			Fields: []appmodel.EntityField{
				{ID: "field-id", Name: "id", FieldType: appmodel.IntegerFieldType(), Required: true},
				{ID: "field-name", Name: "name", FieldType: appmodel.StringFieldType(255)},
			},
		}},
		Relationships: []appmodel.ModelRelationship{{
			ID: "rel-1", Name: "customer_orders",
			FromEntity: "entity-customer", ToEntity: "entity-order",
			FromField: "id", ToField: "customer_id",
		}},
		Layouts: []appmodel.ModelLayout{{
			ID:             "layout-1",
			Name:           "Main",
			TargetEntities: []string{"entity-customer", "entity-gone"},
			Components: []appmodel.LayoutComponent{{
				ID:            "component-1",
				ComponentType: "DataGrid",
				Properties:    gridProps,
			}},
		}},
	}
}

func (suite *StrategyExecutorTestSuite) TestExecuteStrategyNilInputs() {
	strategy := &model.RemediationStrategy{ID: "strategy-1"}

	result, svcErr := suite.service.ExecuteStrategy(nil, strategy, nil)
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), "MREM-1002", svcErr.Code)

	result, svcErr = suite.service.ExecuteStrategy(newExecutorModel(), nil, nil)
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), "MREM-1003", svcErr.Code)
}

func createEntityStrategy() *model.RemediationStrategy {
	return &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindCreateMissingEntity,
			CreateMissingEntity: &model.CreateMissingEntityStrategy{
				EntityName: "Invoice",
				SuggestedFields: []model.SuggestedField{
					{Name: "id", DisplayName: "ID", FieldType: appmodel.IntegerFieldType(), Required: true},
					{Name: "name", DisplayName: "Name", FieldType: appmodel.StringFieldType(255), Required: true},
				},
			},
		},
	}
}

func (suite *StrategyExecutorTestSuite) TestCreateMissingEntity() {
	m := newExecutorModel()

	result, svcErr := suite.service.ExecuteStrategy(m, createEntityStrategy(), nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Empty(suite.T(), result.Errors)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeEntityCreated, result.ChangesApplied[0].ChangeType)

	assert.Len(suite.T(), m.Entities, 2)
	created := m.Entities[1]
	assert.Equal(suite.T(), "Invoice", created.Name)
	assert.Equal(suite.T(), "Invoice", created.DisplayName)
	assert.NotEmpty(suite.T(), created.ID)
	assert.Len(suite.T(), created.Fields, 2)
	assert.Equal(suite.T(), appmodel.FieldKindInteger, created.Fields[0].FieldType.Kind)
	assert.NotEmpty(suite.T(), created.Fields[0].ID)
}

func (suite *StrategyExecutorTestSuite) TestCreateMissingEntityWithParameters() {
	m := newExecutorModel()
	parameters := map[string]string{
		ParameterEntityName:        "Billing",
		ParameterEntityDisplayName: "Billing Records",
		"field_type_name":          "DateTime",
	}

	result, svcErr := suite.service.ExecuteStrategy(m, createEntityStrategy(), parameters)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)

	created := m.Entities[1]
	assert.Equal(suite.T(), "Billing", created.Name)
	assert.Equal(suite.T(), "Billing Records", created.DisplayName)
	assert.Equal(suite.T(), appmodel.FieldKindDateTime, created.Fields[1].FieldType.Kind)
}

func (suite *StrategyExecutorTestSuite) TestCreateMissingEntityInvalidTypeKeepsDefault() {
	m := newExecutorModel()
	parameters := map[string]string{"field_type_name": "Decimal128"}

	result, svcErr := suite.service.ExecuteStrategy(m, createEntityStrategy(), parameters)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Equal(suite.T(), appmodel.FieldKindString, m.Entities[1].Fields[1].FieldType.Kind)
}

func (suite *StrategyExecutorTestSuite) TestCreateMissingEntityDuplicateName() {
	m := newExecutorModel()
	parameters := map[string]string{ParameterEntityName: "Customer"}

	result, svcErr := suite.service.ExecuteStrategy(m, createEntityStrategy(), parameters)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success)
	assert.Contains(suite.T(), result.Errors, "Entity 'Customer' already exists")
	assert.Empty(suite.T(), result.ChangesApplied)
	assert.Len(suite.T(), m.Entities, 1)
}

func (suite *StrategyExecutorTestSuite) TestAddMissingFields() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindAddMissingFields,
			AddMissingFields: &model.AddMissingFieldsStrategy{
				EntityID: "entity-customer",
				Fields: []model.SuggestedField{
					{Name: "email", DisplayName: "email", FieldType: appmodel.StringFieldType(255)},
					{Name: "name", DisplayName: "name", FieldType: appmodel.StringFieldType(255)},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success, "existing field must be reported")
	assert.Contains(suite.T(), result.Errors, "Field 'name' already exists on entity 'Customer'")
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeEntityUpdated, result.ChangesApplied[0].ChangeType)

	assert.Len(suite.T(), m.Entities[0].Fields, 3)
	assert.Equal(suite.T(), "email", m.Entities[0].Fields[2].Name)
}

func (suite *StrategyExecutorTestSuite) TestAddMissingFieldsEntityNotFound() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindAddMissingFields,
			AddMissingFields: &model.AddMissingFieldsStrategy{
				EntityID: "entity-gone",
				Fields: []model.SuggestedField{
					{Name: "email", FieldType: appmodel.StringFieldType(255)},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success)
	assert.Contains(suite.T(), result.Errors, "Entity 'entity-gone' not found")
	assert.Empty(suite.T(), result.ChangesApplied)
}

func (suite *StrategyExecutorTestSuite) TestUpdateComponentConfigurationRemoveSelector() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindUpdateComponentConfiguration,
			UpdateComponentConfiguration: &model.UpdateComponentConfigurationStrategy{
				LayoutID:    "layout-1",
				ComponentID: "component-1",
				Updates: []model.ConfigurationUpdate{
					{PropertyPath: "columns[field='email']", Action: model.ActionRemove},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeComponentUpdated, result.ChangesApplied[0].ChangeType)

	columns, ok := m.Layouts[0].Components[0].Properties.GetArray("columns")
	assert.True(suite.T(), ok)
	assert.Len(suite.T(), columns, 1)
	assert.Equal(suite.T(), map[string]any{"field": "name"}, columns[0])
}

func (suite *StrategyExecutorTestSuite) TestUpdateComponentConfigurationMixedResults() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindUpdateComponentConfiguration,
			UpdateComponentConfiguration: &model.UpdateComponentConfigurationStrategy{
				LayoutID:    "layout-1",
				ComponentID: "component-1",
				Updates: []model.ConfigurationUpdate{
					{PropertyPath: "columns[field='missing']", Action: model.ActionRemove},
					{PropertyPath: "pageSize", Action: model.ActionAdd, Value: float64(25)},
					{PropertyPath: "entityType", Action: model.ActionRemove},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success)
	assert.Len(suite.T(), result.Errors, 1)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), "Applied 2 configuration updates", result.ChangesApplied[0].Description)

	properties := &m.Layouts[0].Components[0].Properties
	pageSize, ok := properties.Get("pageSize")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(25), pageSize)
	_, ok = properties.Get("entityType")
	assert.False(suite.T(), ok)
}

func (suite *StrategyExecutorTestSuite) TestUpdateComponentConfigurationComponentNotFound() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindUpdateComponentConfiguration,
			UpdateComponentConfiguration: &model.UpdateComponentConfigurationStrategy{
				LayoutID:    "layout-1",
				ComponentID: "component-gone",
				Updates: []model.ConfigurationUpdate{
					{PropertyPath: "columns[field='email']", Action: model.ActionRemove},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success)
	assert.Contains(suite.T(), result.Errors,
		"Component 'component-gone' not found in layout 'layout-1'")
	assert.Empty(suite.T(), result.ChangesApplied)
}

func (suite *StrategyExecutorTestSuite) TestRemoveOrphanedReferences() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindRemoveOrphanedReferences,
			RemoveOrphanedReferences: &model.RemoveOrphanedReferencesStrategy{
				ReferenceType: "Layout -> Entity",
				References: []model.OrphanedReference{
					{SourceID: "layout-1", TargetID: "entity-gone", ReferenceField: "target_entities"},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeReferenceRemoved, result.ChangesApplied[0].ChangeType)
	assert.Equal(suite.T(), []string{"entity-customer"}, m.Layouts[0].TargetEntities)
}

func (suite *StrategyExecutorTestSuite) TestRemoveOrphanedReferencesUnsupportedType() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindRemoveOrphanedReferences,
			RemoveOrphanedReferences: &model.RemoveOrphanedReferencesStrategy{
				ReferenceType: "Flow -> Entity",
				References: []model.OrphanedReference{
					{SourceID: "flow-1", TargetID: "entity-gone"},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Empty(suite.T(), result.ChangesApplied)
	assert.Len(suite.T(), result.Warnings, 1)
}

func (suite *StrategyExecutorTestSuite) TestFixRelationshipRemove() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindFixRelationship,
			FixRelationship: &model.FixRelationshipStrategy{
				RelationshipID: "rel-1",
				Fixes:          []model.RelationshipFix{{FixType: model.FixRemoveRelationship}},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeRelationshipRemoved, result.ChangesApplied[0].ChangeType)
	assert.Empty(suite.T(), m.Relationships)
}

func (suite *StrategyExecutorTestSuite) TestFixRelationshipNotFound() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindFixRelationship,
			FixRelationship: &model.FixRelationshipStrategy{
				RelationshipID: "rel-gone",
				Fixes:          []model.RelationshipFix{{FixType: model.FixRemoveRelationship}},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.Success)
	assert.Contains(suite.T(), result.Errors, "Relationship 'rel-gone' not found")
	assert.Len(suite.T(), m.Relationships, 1)
}

func (suite *StrategyExecutorTestSuite) TestFixRelationshipUnimplementedFix() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindFixRelationship,
			FixRelationship: &model.FixRelationshipStrategy{
				RelationshipID: "rel-1",
				Fixes: []model.RelationshipFix{{
					FixType:        model.FixAddMissingField,
					TargetEntityID: "entity-order",
					TargetField:    "customer_id",
				}},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Empty(suite.T(), result.ChangesApplied)
	assert.Len(suite.T(), result.Warnings, 1)
	assert.Len(suite.T(), m.Relationships, 1)
}

func (suite *StrategyExecutorTestSuite) TestFixRelationshipAppliesAllFixes() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindFixRelationship,
			FixRelationship: &model.FixRelationshipStrategy{
				RelationshipID: "rel-1",
				Fixes: []model.RelationshipFix{
					{FixType: model.FixRemoveRelationship},
					{
						FixType:        model.FixAddMissingField,
						TargetEntityID: "entity-order",
						TargetField:    "customer_id",
					},
				},
			},
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	assert.Equal(suite.T(), model.ChangeRelationshipRemoved, result.ChangesApplied[0].ChangeType)
	assert.Len(suite.T(), result.Warnings, 1)
	assert.Empty(suite.T(), m.Relationships)
}

func (suite *StrategyExecutorTestSuite) TestRemoveInvalidReferences() {
	m := newExecutorModel()
	strategy := &model.RemediationStrategy{
		ID: "strategy-1",
		StrategyType: model.StrategyType{
			Kind: model.StrategyKindRemoveInvalidReferences,
		},
	}

	result, svcErr := suite.service.ExecuteStrategy(m, strategy, nil)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.Success)
	assert.Len(suite.T(), result.ChangesApplied, 1)
	change := result.ChangesApplied[0]
	assert.Equal(suite.T(), model.ChangeReferenceRemoved, change.ChangeType)
	assert.Equal(suite.T(), "Generic", change.ComponentType)
	assert.NotEmpty(suite.T(), change.ComponentID)
	assert.Equal(suite.T(), "Removed invalid references", change.Description)
}

func TestParseArraySelector(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected arraySelector
		ok       bool
	}{
		{
			name:     "ColumnSelector",
			path:     "columns[field='email']",
			expected: arraySelector{Array: "columns", Attribute: "field", Value: "email"},
			ok:       true,
		},
		{
			name:     "FieldSelector",
			path:     "fields[name='address']",
			expected: arraySelector{Array: "fields", Attribute: "name", Value: "address"},
			ok:       true,
		},
		{name: "PlainKey", path: "entityType", ok: false},
		{name: "MissingQuotes", path: "columns[field=email]", ok: false},
		{name: "MissingBracket", path: "columns[field='email'", ok: false},
		{name: "EmptyArrayName", path: "[field='email']", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selector, ok := parseArraySelector(tc.path)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, selector)
			}
		})
	}
}
