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
	"bytes"
	"encoding/json"
	"fmt"
)

// Properties is an insertion-ordered string-keyed map of opaque JSON
// values (string, number, bool, array or object). Component properties and
// flow step configurations are consumer-defined, so no schema is enforced
// at this layer. The zero value is an empty, usable map.
type Properties struct {
	keys   []string
	values map[string]any
}

// NewProperties creates an empty property map.
func NewProperties() Properties {
	return Properties{values: make(map[string]any)}
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns the property keys in insertion order.
func (p *Properties) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetString returns the value under key if it is a string.
func (p *Properties) GetString(key string) (string, bool) {
	v, ok := p.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetArray returns the value under key if it is an array.
func (p *Properties) GetArray(key string) ([]any, bool) {
	v, ok := p.values[key]
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	return a, ok
}

// Set stores value under key, overwriting any previous value. A new key is
// appended after all existing keys.
func (p *Properties) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key and reports whether it was present.
func (p *Properties) Delete(key string) bool {
	if _, exists := p.values[key]; !exists {
		return false
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// MarshalJSON encodes the properties as a JSON object with keys in
// insertion order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal property %q: %w", key, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties must be a JSON object, got %v", tok)
	}

	p.keys = nil
	p.values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected property key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode property %q: %w", key, err)
		}
		p.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
