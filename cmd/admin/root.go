package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

// deps are the collaborators commands run against. Stores are opened per
// command so commands that do not touch them work without a database.
type deps struct {
	logger    *logger.Logger
	openStore func(ctx context.Context) (model.DocumentStore, func(), error)
	generator func() model.Generator
	tokens    model.TokenManager
	migrate   func(ctx context.Context) error
}

func newRootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "quizzme-admin",
		Short:         "Administer quizzme decks and accounts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newMigrateCmd(d),
		newTokenCmd(d),
		newDecksCmd(d),
		newStudyCmd(d),
	)
	return root
}

func newMigrateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := d.migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
