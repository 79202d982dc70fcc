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

// FieldTypeKind discriminates the field type union.
type FieldTypeKind string

const (
	// FieldKindString denotes a text field with an optional maximum length.
	FieldKindString FieldTypeKind = "string"
	// FieldKindInteger denotes a whole number field with optional bounds.
	FieldKindInteger FieldTypeKind = "integer"
	// FieldKindFloat denotes a decimal number field with optional bounds.
	FieldKindFloat FieldTypeKind = "float"
	// FieldKindBoolean denotes a true/false field.
	FieldKindBoolean FieldTypeKind = "boolean"
	// FieldKindDateTime denotes a combined date and time field.
	FieldKindDateTime FieldTypeKind = "datetime"
	// FieldKindDate denotes a date-only field.
	FieldKindDate FieldTypeKind = "date"
	// FieldKindTime denotes a time-only field.
	FieldKindTime FieldTypeKind = "time"
	// FieldKindJSON denotes an opaque JSON document field.
	FieldKindJSON FieldTypeKind = "json"
	// FieldKindBinary denotes a binary blob field.
	FieldKindBinary FieldTypeKind = "binary"
	// FieldKindEnum denotes a field restricted to a closed value set.
	FieldKindEnum FieldTypeKind = "enum"
	// FieldKindReference denotes a field referencing another entity.
	FieldKindReference FieldTypeKind = "reference"
	// FieldKindArray denotes a field holding a list of element values.
	FieldKindArray FieldTypeKind = "array"
)

// FieldType is the tagged field type union. Only the payload fields
// matching the Kind are populated.
type FieldType struct {
	Kind      FieldTypeKind `json:"type"`
	MaxLength *int          `json:"max_length,omitempty"`
	Min       *float64      `json:"min,omitempty"`
	Max       *float64      `json:"max,omitempty"`
	Values    []string      `json:"values,omitempty"`
	EntityID  string        `json:"entity_id,omitempty"`
	Element   *FieldType    `json:"element,omitempty"`
}

// StringFieldType builds a string field type with a maximum length.
func StringFieldType(maxLength int) FieldType {
	return FieldType{Kind: FieldKindString, MaxLength: &maxLength}
}

// IntegerFieldType builds an unbounded integer field type.
func IntegerFieldType() FieldType {
	return FieldType{Kind: FieldKindInteger}
}

// FloatFieldType builds an unbounded float field type.
func FloatFieldType() FieldType {
	return FieldType{Kind: FieldKindFloat}
}

// ParseFieldTypeName maps a field type name from remediation parameters to
// a concrete field type. The mapping is closed; the second return value is
// false for any name outside it, in which case callers keep their default.
func ParseFieldTypeName(name string) (FieldType, bool) {
	switch name {
	case "String":
		return StringFieldType(255), true
	case "Integer":
		return IntegerFieldType(), true
	case "Float":
		return FloatFieldType(), true
	case "Boolean":
		return FieldType{Kind: FieldKindBoolean}, true
	case "DateTime":
		return FieldType{Kind: FieldKindDateTime}, true
	case "Date":
		return FieldType{Kind: FieldKindDate}, true
	case "Time":
		return FieldType{Kind: FieldKindTime}, true
	case "Json":
		return FieldType{Kind: FieldKindJSON}, true
	default:
		return FieldType{}, false
	}
}
