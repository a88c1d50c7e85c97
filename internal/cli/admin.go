package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jengzang/bodymap-backend-go/internal/config"
	"github.com/jengzang/bodymap-backend-go/internal/database"
	"github.com/jengzang/bodymap-backend-go/internal/middleware"
)

func newTokenCmd(opts *RootOptions) *cobra.Command {
	var (
		user       string
		secret     string
		configPath string
		ttl        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return errors.New("--user is required")
			}
			if secret == "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				secret = cfg.Auth.JWTSecret
			}
			token, err := middleware.IssueToken(secret, user, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			if opts.OutputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{"user_id": user, "token": token})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id the token is issued for")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 secret (default: auth.jwt_secret from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func newMigrateCmd(opts *RootOptions) *cobra.Command {
	var dbPath string

	open := func() (*database.DB, error) {
		if dbPath == "" {
			return nil, errors.New("--db is required")
		}
		return database.Open(database.Config{Path: dbPath}, opts.logger)
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the symptom database schema",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.MigrateUp(); err != nil {
				return err
			}
			return printVersion(cmd, db)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.MigrateDown(); err != nil {
				return err
			}
			return printVersion(cmd, db)
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()
			return printVersion(cmd, db)
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func printVersion(cmd *cobra.Command, db *database.DB) error {
	v, dirty, err := db.MigrateVersion()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
	return err
}
