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

package appmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type FieldTypeTestSuite struct {
	suite.Suite
}

func TestFieldTypeSuite(t *testing.T) {
	suite.Run(t, new(FieldTypeTestSuite))
}

func (suite *FieldTypeTestSuite) TestParseFieldTypeName() {
	testCases := []struct {
		name         string
		input        string
		expectedKind FieldTypeKind
		expectedOK   bool
	}{
		{"String", "String", FieldKindString, true},
		{"Integer", "Integer", FieldKindInteger, true},
		{"Float", "Float", FieldKindFloat, true},
		{"Boolean", "Boolean", FieldKindBoolean, true},
		{"DateTime", "DateTime", FieldKindDateTime, true},
		{"Date", "Date", FieldKindDate, true},
		{"Time", "Time", FieldKindTime, true},
		{"Json", "Json", FieldKindJSON, true},
		{"UnknownName", "Decimal", "", false},
		{"Lowercase", "string", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			fieldType, ok := ParseFieldTypeName(tc.input)
			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedKind, fieldType.Kind)
			}
		})
	}
}

func (suite *FieldTypeTestSuite) TestStringFieldTypeMaxLength() {
	fieldType := StringFieldType(255)
	assert.Equal(suite.T(), FieldKindString, fieldType.Kind)
	if assert.NotNil(suite.T(), fieldType.MaxLength) {
		assert.Equal(suite.T(), 255, *fieldType.MaxLength)
	}
}

func (suite *FieldTypeTestSuite) TestFieldTypeJSONShape() {
	fieldType := StringFieldType(100)

	data, err := json.Marshal(fieldType)
	assert.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), `{"type":"string","max_length":100}`, string(data))

	var decoded FieldType
	assert.NoError(suite.T(), json.Unmarshal(data, &decoded))
	assert.Equal(suite.T(), fieldType, decoded)
}

func (suite *FieldTypeTestSuite) TestNestedArrayFieldType() {
	element := IntegerFieldType()
	fieldType := FieldType{Kind: FieldKindArray, Element: &element}

	data, err := json.Marshal(fieldType)
	assert.NoError(suite.T(), err)

	var decoded FieldType
	assert.NoError(suite.T(), json.Unmarshal(data, &decoded))
	if assert.NotNil(suite.T(), decoded.Element) {
		assert.Equal(suite.T(), FieldKindInteger, decoded.Element.Kind)
	}
}
