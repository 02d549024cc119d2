package main

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/limbo/lifedash/pkg/config"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

const defaultMigrationsDir = "./migrations"

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down|status",
		Short:     "Apply, roll back or list database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("postgres", pgConfig(cfg).ConnString())
			if err != nil {
				return errors.New("opening database error: " + err.Error())
			}
			defer db.Close()
			if err = goose.SetDialect("postgres"); err != nil {
				return err
			}
			dir := cfg.GetStringOr("MIGRATIONS_DIR", defaultMigrationsDir)
			switch args[0] {
			case "up":
				err = goose.Up(db, dir)
			case "down":
				err = goose.Down(db, dir)
			default:
				err = goose.Status(db, dir)
			}
			if err != nil {
				return errors.New("migrate " + args[0] + " error: " + err.Error())
			}
			return nil
		},
	}
}
