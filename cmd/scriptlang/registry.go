// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/scriptlang/internal/config"
	"github.com/holomush/scriptlang/internal/registry"
	"github.com/holomush/scriptlang/pkg/errutil"
)

// NewRegistryCmd groups the optional Postgres-backed script run registry's
// subcommands. Every subcommand reads its DSN from the resolved
// configuration; none of them are reachable unless registry_enabled is set.
func NewRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Manage the optional script run registry",
	}
	cmd.AddCommand(newRegistryMigrateCmd())
	cmd.AddCommand(newRegistryRecordCmd())
	cmd.AddCommand(newRegistryHistoryCmd())
	return cmd
}

func loadRegistryConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if !cfg.RegistryEnabled {
		return nil, oops.Code("REGISTRY_DISABLED").Errorf("registry_enabled is false; set it to true in the config file to use registry commands")
	}
	if cfg.RegistryDSN == "" {
		return nil, oops.Code("CONFIG_INVALID").Errorf("registry_dsn is required when registry_enabled is true")
	}
	return cfg, nil
}

func newRegistryMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending registry schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRegistryConfig(cmd)
			if err != nil {
				return err
			}
			m, err := registry.NewMigrator(cfg.RegistryDSN)
			if err != nil {
				return err
			}
			defer m.Close()
			if err := m.Up(); err != nil {
				return err
			}
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			cmd.Printf("registry schema at version %d (dirty=%v)\n", version, dirty)
			return nil
		},
	}
}

func newRegistryRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <grammar-path> <code-path>",
		Short: "Run a script and record the outcome in the registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRegistryConfig(cmd)
			if err != nil {
				return err
			}
			return recordRun(cmd, cfg.RegistryDSN, args[0], args[1])
		},
	}
}

func recordRun(cmd *cobra.Command, dsn, grammarPath, codePath string) error {
	ctx := context.Background()

	sourceText, err := os.ReadFile(codePath)
	if err != nil {
		return oops.Code("SOURCE_READ_FAILED").With("path", codePath).Wrap(err)
	}

	store, err := registry.NewStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	hash := sha256.Sum256(sourceText)
	run := registry.Run{
		ID:             ulid.Make().String(),
		GrammarName:    grammarPath,
		GrammarVersion: "scriptlang/ast/v1",
		SourceHash:     hex.EncodeToString(hash[:]),
		CreatedAt:      time.Now().UTC(),
	}

	start := time.Now()
	runErr := runScript(cmd, grammarPath, codePath)
	run.Duration = time.Since(start)

	switch {
	case runErr == nil:
		run.Outcome = registry.OutcomeSuccess
	case isRuntimeError(runErr):
		run.Outcome = registry.OutcomeRuntimeErr
	default:
		run.Outcome = registry.OutcomeParseError
	}

	if recordErr := store.RecordRun(ctx, run); recordErr != nil {
		return recordErr
	}
	cmd.Printf("recorded run %s (%s, %s)\n", run.ID, run.Outcome, run.Duration)
	return runErr
}

func isRuntimeError(err error) bool {
	return errutil.ErrorCode(err) == "RUNTIME_ERROR"
}

func newRegistryHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <grammar-path>",
		Short: "List recent runs recorded for a grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRegistryConfig(cmd)
			if err != nil {
				return err
			}
			store, err := registry.NewStore(context.Background(), cfg.RegistryDSN)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				cmd.Println(formatRun(r))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}

func formatRun(r registry.Run) string {
	return fmt.Sprintf("%s  %-14s %8s  %s", r.CreatedAt.Format(time.RFC3339), r.Outcome, r.Duration, r.ID)
}
