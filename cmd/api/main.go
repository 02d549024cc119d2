// @title Lifedash API
// @description Personal dashboard over todos, habits, goals, health, meals, screen time and watchlist
// @BasePath /api/v1
// @schemes http
package main

import (
	"log/slog"
	"os"

	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/cleanup"
	"github.com/limbo/lifedash/pkg/config"
	"github.com/spf13/cobra"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	root := &cobra.Command{
		Use:           "lifedash",
		Short:         "Personal life dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	root.AddCommand(newServeCmd(cfg), newMigrateCmd(cfg), newExportCmd(cfg))

	err := root.Execute()
	cleanup.CleanUp()
	if err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
