package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/limbo/lifedash/pkg/config"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every collection to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			services, err := buildServices(ctx, cfg)
			if err != nil {
				return err
			}
			bundle, err := services.ExportService.Bundle(ctx)
			if err != nil {
				return err
			}
			data, err := sonic.ConfigDefault.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return errors.New("marshalling export error: " + err.Error())
			}
			if err = atomic.WriteFile(out, bytes.NewReader(data)); err != nil {
				return errors.New("writing export error: " + err.Error())
			}
			slog.Info("export written", slog.String("file", out), slog.Int("bytes", len(data)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lifedash-export.json", "destination file")
	return cmd
}
