package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vastra/config"
	_ "github.com/shashiranjanraj/vastra/database/migrations" // register migrations
	_ "github.com/shashiranjanraj/vastra/database/seeders"    // register seeders
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/migration"
	"github.com/shashiranjanraj/vastra/pkg/seeder"
)

const dbCommandTimeout = 2 * time.Minute

func init() {
	rootCmd.AddCommand(migrateCmd, rollbackCmd, migrateStatusCmd, seedCmd)
}

// withDB connects, runs fn, and tears the connection down again.
func withDB(fn func(ctx context.Context) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbCommandTimeout)
	defer cancel()
	defer database.Disconnect(ctx) //nolint:errcheck

	return fn(ctx)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending index migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context) error {
			fmt.Println("Running migrations:")
			return migration.New(database.DB).Run(ctx)
		})
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Revert the last migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context) error {
			fmt.Println("Rolling back last batch:")
			return migration.New(database.DB).Rollback(ctx)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context) error {
			return migration.New(database.DB).Status(ctx)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the admin account and demo catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context) error {
			fmt.Println("Seeding:")
			return seeder.RunAll(ctx, database.DB)
		})
	},
}
