package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/database/seeders"
	"github.com/shashiranjanraj/kashvi-admin/internal/server"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/migration"

	_ "github.com/shashiranjanraj/kashvi-admin/database/migrations"
)

func main() {
	root := &cobra.Command{
		Use:          "kashvi-admin",
		Short:        "Admin API for the Kashvi idol storefront",
		SilenceUsage: true,
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}
}

func connectDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Run()
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Revert the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Rollback()
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}

			rows, err := migration.New(database.DB).Status()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MIGRATION\tAPPLIED")
			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%v\n", row.Name, row.Applied)
			}
			return tw.Flush()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with development data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			if err := migration.New(database.DB).Run(); err != nil {
				return err
			}
			return seeders.Run(database.DB)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.BuildApp(nil, services.NewMemoryOTPStore())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH\tNAME")
			for _, route := range app.Router.Routes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
			}
			return tw.Flush()
		},
	}
}
