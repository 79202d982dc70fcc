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

// Package main is the entry point of the appforge command line tool. It
// loads model graphs from JSON files, runs verification and applies
// remediation strategies; all file and terminal I/O lives here.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/appforge/appforge/internal/appmodel"
	"github.com/appforge/appforge/internal/remediation"
	remmodel "github.com/appforge/appforge/internal/remediation/model"
	"github.com/appforge/appforge/internal/system/config"
	"github.com/appforge/appforge/internal/system/log"
	"github.com/appforge/appforge/internal/verification"
	vermodel "github.com/appforge/appforge/internal/verification/model"
)

func main() {
	app := &cli.App{
		Name:  "appforge",
		Usage: "verify and repair application model configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the appforge configuration file",
			},
		},
		Before: initRuntime,
		Commands: []*cli.Command{
			scanCommand(),
			autofixCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.GetLogger().Error("Command failed", log.Error(err))
		os.Exit(1)
	}
}

// initRuntime loads the configuration file when one is supplied and seeds
// the runtime singleton.
func initRuntime(cliCtx *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := cliCtx.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return config.InitializeAppForgeRuntime(workingDir, cfg)
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "scan a model file for configuration errors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the model JSON file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json",
			},
			&cli.StringFlag{
				Name:  "severity-threshold",
				Usage: "exit with a non-zero status when errors at or above this severity exist",
			},
		},
		Action: runScan,
	}
}

func runScan(cliCtx *cli.Context) error {
	cfg := config.GetAppForgeRuntime().Config

	format := cliCtx.String("format")
	if format == "" {
		format = cfg.Scan.OutputFormat
	}
	threshold := cliCtx.String("severity-threshold")
	if threshold == "" {
		threshold = cfg.Scan.SeverityThreshold
	}

	m, err := loadModel(cliCtx.String("file"))
	if err != nil {
		return err
	}

	report, svcErr := verification.GetModelVerificationService().ScanModel(m)
	if svcErr != nil {
		return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
	}

	if err := renderReport(report, format); err != nil {
		return err
	}

	if exceedsThreshold(report, threshold) {
		return cli.Exit("", 2)
	}
	return nil
}

func autofixCommand() *cli.Command {
	return &cli.Command{
		Name:  "autofix",
		Usage: "apply low-risk remediation strategies to a model file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the model JSON file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "path to write the repaired model to (defaults to the input file)",
			},
			&cli.StringFlag{
				Name:  "max-risk",
				Usage: "highest strategy risk level to apply: low, medium or high",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "report the strategies that would be applied without writing changes",
			},
		},
		Action: runAutofix,
	}
}

func runAutofix(cliCtx *cli.Context) error {
	cfg := config.GetAppForgeRuntime().Config

	maxRisk := cliCtx.String("max-risk")
	if maxRisk == "" {
		maxRisk = cfg.Autofix.MaxRiskLevel
	}
	dryRun := cliCtx.Bool("dry-run") || cfg.Autofix.DryRun

	inputPath := cliCtx.String("file")
	outputPath := cliCtx.String("output")
	if outputPath == "" {
		outputPath = inputPath
	}

	m, err := loadModel(inputPath)
	if err != nil {
		return err
	}

	report, svcErr := verification.GetModelVerificationService().ScanModel(m)
	if svcErr != nil {
		return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
	}

	remediationService := remediation.GetModelRemediationService()
	applied := 0
	failed := 0

	for i := range report.Errors {
		details := &report.Errors[i]
		if !details.AutoFixable {
			continue
		}

		strategies, svcErr := remediationService.GenerateStrategies(details)
		if svcErr != nil {
			return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
		}

		strategy := pickStrategy(strategies, maxRisk)
		if strategy == nil {
			continue
		}

		if dryRun {
			fmt.Printf("would apply: %s (%s risk)\n", strategy.Title, strategy.RiskLevel)
			applied++
			continue
		}

		result, svcErr := remediationService.ExecuteStrategy(m, strategy, nil)
		if svcErr != nil {
			return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
		}
		if result.Success {
			applied++
			for _, change := range result.ChangesApplied {
				fmt.Printf("applied: %s\n", change.Description)
			}
		} else {
			failed++
			for _, execErr := range result.Errors {
				fmt.Printf("failed: %s\n", execErr)
			}
		}
	}

	fmt.Printf("%d of %d errors auto-fixable, %d strategies applied, %d failed\n",
		countAutoFixable(report), report.TotalErrors, applied, failed)

	if dryRun {
		return nil
	}
	if err := writeModel(m, outputPath); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit("", 2)
	}
	return nil
}

// pickStrategy selects the first strategy within the risk budget; the
// generator orders strategies least intrusive first.
func pickStrategy(strategies []remmodel.RemediationStrategy, maxRisk string) *remmodel.RemediationStrategy {
	budget := riskRank(remmodel.RiskLevel(maxRisk))
	for i := range strategies {
		if riskRank(strategies[i].RiskLevel) <= budget {
			return &strategies[i]
		}
	}
	return nil
}

func riskRank(risk remmodel.RiskLevel) int {
	switch risk {
	case remmodel.RiskLow:
		return 0
	case remmodel.RiskMedium:
		return 1
	case remmodel.RiskHigh:
		return 2
	default:
		return 3
	}
}

func severityRank(severity vermodel.ErrorSeverity) int {
	switch severity {
	case vermodel.SeverityCritical:
		return 0
	case vermodel.SeverityHigh:
		return 1
	case vermodel.SeverityMedium:
		return 2
	case vermodel.SeverityLow:
		return 3
	default:
		return 4
	}
}

func exceedsThreshold(report *vermodel.ConfigurationErrorReport, threshold string) bool {
	limit := severityRank(vermodel.ErrorSeverity(threshold))
	for _, details := range report.Errors {
		if severityRank(details.Severity) <= limit {
			return true
		}
	}
	return false
}

func countAutoFixable(report *vermodel.ConfigurationErrorReport) int {
	count := 0
	for _, details := range report.Errors {
		if details.AutoFixable {
			count++
		}
	}
	return count
}

func loadModel(path string) (*appmodel.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var m appmodel.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	return &m, nil
}

func writeModel(m *appmodel.Model, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	return nil
}
