// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grimm.is/aclcheck/internal/config"
	"grimm.is/aclcheck/internal/logging"
)

var (
	cfgPath  string
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "aclcheck",
	Short: "Static conflict analysis for network access control lists",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to an HCL configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "rotate logs to this file in addition to stderr")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configured HCL file (if any) and applies the
// logging flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	file := cfg.LogFile
	if logFile != "" {
		file = logFile
	}

	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := logging.Configure(parsed, file); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// exitCode lets subcommands signal a non-zero exit without calling
// os.Exit directly, so deferred cleanup still runs.
var exitCode int
