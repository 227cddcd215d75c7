// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grimm.is/aclcheck/internal/analyzer"
	"grimm.is/aclcheck/internal/format"
	"grimm.is/aclcheck/internal/ingest"
	"grimm.is/aclcheck/internal/logging"
	"grimm.is/aclcheck/internal/metrics"
)

var (
	analyzeFormat string
	analyzeDetail int
	analyzeInput  string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one batch of ACLs for conflicts",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "input format: yaml or json")
	analyzeCmd.Flags().IntVar(&analyzeDetail, "detail", 0, "output detail level: 1-4")
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "input file path (required)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "output file path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitCode = 1
		return err
	}

	inputFormat := cfg.Format
	if analyzeFormat != "" {
		inputFormat = analyzeFormat
	}
	detail := cfg.Detail
	if analyzeDetail != 0 {
		detail = analyzeDetail
	}
	inputPath := cfg.InputPath
	if analyzeInput != "" {
		inputPath = analyzeInput
	}
	outputPath := cfg.OutputPath
	if analyzeOutput != "" {
		outputPath = analyzeOutput
	}
	if inputPath == "" {
		exitCode = 1
		return fmt.Errorf("analyze: --input is required")
	}

	in, err := os.Open(inputPath)
	if err != nil {
		exitCode = 1
		return err
	}
	defer in.Close()

	parser, err := ingest.ForFormat(inputFormat)
	if err != nil {
		exitCode = 1
		return err
	}

	acls, parseErr := parser.Parse(in)
	if parseErr != nil {
		logging.Warnf("[ACLCHECK] ingestion reported errors: %v", parseErr)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		exitCode = 1
		return err
	}
	defer out.Close()

	writer, err := format.NewTextWriter(out, detail)
	if err != nil {
		exitCode = 1
		return err
	}

	m := metrics.NewMetrics(cfg.StaticLabels)
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		m.Register()
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Listen); err != nil {
				logging.Errorf("[ACLCHECK] metrics server error: %v", err)
			}
		}()
	}

	a := analyzer.New(m)
	results, analyzeErr := a.AnalyzeBatch(acls)
	if analyzeErr != nil {
		logging.Warnf("[ACLCHECK] analysis reported errors: %v", analyzeErr)
	}

	for _, res := range results {
		if res == nil {
			continue
		}
		if err := writer.WriteNewACL(res.ACLName); err != nil {
			exitCode = 1
			return err
		}
		for _, c := range res.Conflicts {
			if err := writer.WriteConflict(c); err != nil {
				exitCode = 1
				return err
			}
		}
	}
	if err := writer.Flush(); err != nil {
		exitCode = 1
		return err
	}

	if parseErr != nil || analyzeErr != nil {
		exitCode = 1
	}
	return nil
}
