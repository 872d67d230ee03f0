package main

import (
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/config"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var listOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema using the DB_* environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listOnly {
				for _, t := range postgresql.Tables {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.NewPostgreSQLDB(cmd.Context(), cfg.DatabaseURL(), database.PoolConfig{MaxConns: 2, MinConns: 1})
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			if err := postgresql.EnsureSchema(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&listOnly, "tables", false, "List the tables the schema creates and exit")
	return cmd
}
