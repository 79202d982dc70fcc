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

import "strings"

// arraySelector addresses the elements of an array property whose named
// attribute equals a literal value, parsed from paths of the form
// array[attribute='value'].
type arraySelector struct {
	Array     string
	Attribute string
	Value     string
}

// parseArraySelector parses a property path as an array element selector.
// It returns false when the path is a plain property key. Matching is
// exact string comparison; no escaping is supported inside the quoted
// value.
func parseArraySelector(path string) (arraySelector, bool) {
	open := strings.Index(path, "[")
	if open <= 0 || !strings.HasSuffix(path, "]") {
		return arraySelector{}, false
	}

	filter := path[open+1 : len(path)-1]
	eq := strings.Index(filter, "=")
	if eq <= 0 {
		return arraySelector{}, false
	}

	value := filter[eq+1:]
	if len(value) < 2 || !strings.HasPrefix(value, "'") || !strings.HasSuffix(value, "'") {
		return arraySelector{}, false
	}

	return arraySelector{
		Array:     path[:open],
		Attribute: filter[:eq],
		Value:     value[1 : len(value)-1],
	}, true
}
