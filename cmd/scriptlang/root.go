// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/scriptlang/internal/config"
	"github.com/holomush/scriptlang/internal/logging"
)

var configFile string

// NewRootCmd creates the root command for the scriptlang CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scriptlang",
		Short:         "scriptlang - a grammar-configurable scripting language runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetDefault("scriptlang", version, cfg.LogFormat)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("log-format", "text", "log output format (text or json)")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewASTCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewRegistryCmd())

	return cmd
}
