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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	vermodel "github.com/appforge/appforge/internal/verification/model"
)

func renderReport(report *vermodel.ConfigurationErrorReport, format string) error {
	switch format {
	case "json":
		return renderJSONReport(report)
	case "text", "":
		renderTextReport(report)
		return nil
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func renderJSONReport(report *vermodel.ConfigurationErrorReport) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func renderTextReport(report *vermodel.ConfigurationErrorReport) {
	fmt.Printf("Model: %s (%s)\n", report.ModelName, report.ModelID)
	fmt.Printf("Errors: %d (critical: %d, high: %d, medium: %d, low: %d)\n",
		report.TotalErrors,
		report.ErrorsBySeverity.Critical,
		report.ErrorsBySeverity.High,
		report.ErrorsBySeverity.Medium,
		report.ErrorsBySeverity.Low)

	for _, details := range report.Errors {
		marker := " "
		if details.AutoFixable {
			marker = "*"
		}
		fmt.Printf("\n[%s]%s %s\n", details.Severity, marker, details.Title)
		fmt.Printf("    %s\n", details.Description)
		fmt.Printf("    at %s\n", locationString(details.Location))
		for _, fix := range details.SuggestedFixes {
			fmt.Printf("    - %s\n", fix)
		}
	}

	if len(report.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range report.Suggestions {
			fmt.Printf("  %s (%d errors, %s effort)\n",
				suggestion.Title, len(suggestion.AffectedErrors), suggestion.EstimatedEffort)
		}
	}

	if report.TotalErrors > 0 {
		fmt.Println("\n(* marks auto-fixable errors)")
	}
}

func locationString(location vermodel.ErrorLocation) string {
	path := ""
	for i, segment := range location.Path {
		if i > 0 {
			path += " > "
		}
		path += segment
	}
	if location.ComponentID != "" {
		return fmt.Sprintf("%s [%s] (%s)", path, location.ComponentType, location.ComponentID)
	}
	return fmt.Sprintf("%s [%s]", path, location.ComponentType)
}
