package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/app"
	"github.com/heartmarshall/ebms-backend/internal/config"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if cfg.Storage != config.StoragePostgres {
				return cli.Exit("migrate requires postgres storage", 2)
			}
			logger := app.NewLogger(cfg.Log)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.InfoContext(ctx, "migrations applied", slog.Int("count", len(applied)))
			for _, v := range applied {
				fmt.Fprintf(c.App.Writer, "applied %05d\n", v)
			}
			return nil
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Print state change events published to redis until interrupted",
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				if a.Events == nil {
					return cli.Exit("watch requires redis.enabled", 2)
				}
				err := a.Events.Subscribe(ctx, func(e domain.StateEvent) {
					line := fmt.Sprintf("%s %s record=%s article=%s topic=%s board=%s state=%s",
						formatTime(e.OccurredAt), e.Kind, e.RecordID, e.ArticleID, e.TopicID, e.BoardID, e.State)
					if e.PromotedID != nil {
						line += " promoted=" + e.PromotedID.String()
					}
					fmt.Fprintln(c.App.Writer, line)
				})
				if err != nil {
					return err
				}
				printNote(c.App.Writer, "watching %s, press Ctrl+C to stop", a.Config.Redis.Channel)
				<-ctx.Done()
				if errors.Is(ctx.Err(), context.Canceled) {
					return nil
				}
				return ctx.Err()
			})
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, app.BuildVersion())
			return nil
		},
	}
}
