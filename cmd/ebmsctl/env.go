package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ebms-backend/internal/app"
	"github.com/heartmarshall/ebms-backend/internal/config"
	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// loadConfig reads configuration, honouring --memory.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var overrides []config.Override
	if c.Bool("memory") {
		overrides = append(overrides, config.WithStorage(config.StorageMemory))
	}
	return config.LoadPath(c.String("config"), overrides...)
}

// withApp builds the application for one command and tears it down after fn
// returns. The context is cancelled on SIGINT/SIGTERM and carries the acting
// user when --user is set.
func withApp(c *cli.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = ctxutil.WithCorrelationID(ctx, uuid.NewString())
	if raw := c.String("user"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("--user: %w", err)
		}
		ctx = ctxutil.WithUserID(ctx, userID)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return explain(fn(ctx, a))
}

// explain turns domain errors into messages for the terminal.
func explain(err error) error {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return cli.Exit(ve.Error(), 2)
	case errors.Is(err, domain.ErrUnauthorized):
		return cli.Exit("acting user required: pass --user or set EBMS_USER", 2)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidState):
		return cli.Exit(err.Error(), 3)
	case errors.Is(err, domain.ErrConflict):
		return cli.Exit("concurrent update, try again: "+err.Error(), 4)
	default:
		return err
	}
}

func uuidFlag(c *cli.Context, name string) (uuid.UUID, error) {
	raw := c.String(name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s: %w", name, err)
	}
	return id, nil
}

func uuidSliceFlag(c *cli.Context, name string) ([]uuid.UUID, error) {
	raw := c.StringSlice(name)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("--%s %q: %w", name, s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveArticle accepts either an article UUID or a source id such as a
// PubMed id.
func resolveArticle(ctx context.Context, c *cli.Context, a *app.App) (uuid.UUID, error) {
	raw := c.String("article")
	if raw == "" {
		return uuid.Nil, errors.New("--article is required")
	}
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}
	article, err := a.Catalog.GetArticleBySourceID(ctx, raw)
	if err != nil {
		return uuid.Nil, err
	}
	return article.ID, nil
}

var articleFlag = &cli.StringFlag{
	Name:     "article",
	Aliases:  []string{"a"},
	Usage:    "Article `ID` or source id",
	Required: true,
}

var topicFlag = &cli.StringFlag{
	Name:     "topic",
	Aliases:  []string{"t"},
	Usage:    "Topic `UUID`",
	Required: true,
}

var recordFlag = &cli.StringFlag{
	Name:     "record",
	Aliases:  []string{"r"},
	Usage:    "State record `UUID`",
	Required: true,
}

var thresholdFlag = &cli.IntFlag{
	Name:  "threshold",
	Usage: "Sequence `N` a state must exceed; unset or negative uses the configured default",
}

// threshold returns the --threshold value, or nil when the configured
// default applies.
func threshold(c *cli.Context) *int {
	if !c.IsSet("threshold") || c.Int("threshold") < 0 {
		return nil
	}
	v := c.Int("threshold")
	return &v
}
