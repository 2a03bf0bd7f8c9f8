package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/app"
	"github.com/nsien-prestige/Eventful-Backend/internal/config"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

// withCore loads the service config, connects and hands the core to fn.
func withCore(ctx context.Context, fn func(ctx context.Context, core *app.Core, log logger.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ticketctl",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := app.OpenDB(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer db.Master.Close()

	core, err := app.NewCore(ctx, cfg, db, log)
	if err != nil {
		return err
	}
	defer core.Close(ctx)

	return fn(ctx, core, log)
}

func unadmittedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unadmitted",
		Short: "List settled payments that could not be admitted",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			return withCore(cmd.Context(), func(ctx context.Context, core *app.Core, _ logger.Logger) error {
				payments, err := core.Reconciler.Unadmitted(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(payments)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "REFERENCE\tEVENT\tPAYER\tAMOUNT\tFLAGGED")
				for _, p := range payments {
					flagged := "-"
					if p.UnadmittedAt != nil {
						flagged = p.UnadmittedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.Reference, p.EventID, p.PayerID, p.AmountMinor, flagged)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one reconciliation pass now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd.Context(), func(ctx context.Context, core *app.Core, _ logger.Logger) error {
				report, err := core.Reconciler.Sweep(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "resumed=%d settled=%d failed=%d unadmitted=%d integrity_faults=%d errors=%d\n",
					report.Resumed, report.Settled, report.Failed, report.Unadmitted, report.IntegrityFaults, report.Errors)
				return nil
			})
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := app.Migrate(cfg.Postgres.DSN(), dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().String("dir", "migrations", "Migrations directory")

	return cmd
}
