package main

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ebms-backend/internal/app"
	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/internal/service/report"
)

func statesCommand() *cli.Command {
	return &cli.Command{
		Name:  "states",
		Usage: "List an article's state records across all topics",
		Flags: []cli.Flag{
			articleFlag,
			&cli.StringFlag{Name: "board", Usage: "Only records attributed to board `UUID`"},
			&cli.BoolFlag{Name: "all", Usage: "Include voided records"},
			&cli.BoolFlag{Name: "current", Usage: "Only current records"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				articleID, err := resolveArticle(ctx, c, a)
				if err != nil {
					return err
				}
				input := report.ArticleStatesInput{
					ArticleID:       articleID,
					IncludeInactive: c.Bool("all"),
					CurrentOnly:     c.Bool("current"),
				}
				if c.IsSet("board") {
					boardID, err := uuidFlag(c, "board")
					if err != nil {
						return err
					}
					input.BoardID = &boardID
				}

				rows, err := a.Reports.ArticleStates(ctx, input)
				if err != nil {
					return err
				}
				out := make([][]string, len(rows))
				dim := make(map[int]bool)
				for i, row := range rows {
					out[i] = []string{
						row.TopicName,
						row.BoardName,
						row.Record.Value.TextID,
						formatTime(row.Record.EnteredAt),
						flags(row.Record),
					}
					dim[i] = !row.Record.Active
				}
				printTable(c.App.Writer, []string{"TOPIC", "BOARD", "STATE", "ENTERED", "FLAGS"}, out, dim)
				return nil
			})
		},
	}
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show the current state and later state description per topic",
		Flags: []cli.Flag{
			articleFlag,
			thresholdFlag,
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				articleID, err := resolveArticle(ctx, c, a)
				if err != nil {
					return err
				}
				summaries, err := a.Reports.TopicSummaries(ctx, articleID, threshold(c))
				if err != nil {
					return err
				}
				rows := make([][]string, len(summaries))
				for i, s := range summaries {
					rows[i] = []string{s.TopicName, s.BoardName, s.StateName, formatTime(s.EnteredAt), s.Description}
				}
				printTable(c.App.Writer, []string{"TOPIC", "BOARD", "STATE", "ENTERED", "DESCRIPTION"}, rows, nil)
				return nil
			})
		},
	}
}

func queueCommand() *cli.Command {
	return &cli.Command{
		Name:  "queue",
		Usage: "List articles currently in a state for a board, oldest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "Board `UUID`", Required: true},
			&cli.StringFlag{Name: "state", Aliases: []string{"s"}, Usage: "State text `ID` (all states if empty)"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				boardID, err := uuidFlag(c, "board")
				if err != nil {
					return err
				}
				queue, err := a.Reports.BoardQueue(ctx, boardID, c.String("state"))
				if err != nil {
					return err
				}
				rows := make([][]string, len(queue))
				for i, q := range queue {
					rows[i] = []string{q.SourceID, q.TopicName, q.Record.Value.TextID, formatTime(q.Record.EnteredAt), q.Record.ID.String()}
				}
				printTable(c.App.Writer, []string{"ARTICLE", "TOPIC", "STATE", "ENTERED", "RECORD"}, rows, nil)
				return nil
			})
		},
	}
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Show the audit trail of an entity",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "Entity `TYPE`: BOARD, TOPIC, ARTICLE, MEETING or STATE_RECORD", Value: string(domain.EntityTypeStateRecord)},
			&cli.StringFlag{Name: "id", Usage: "Entity `UUID`", Required: true},
			&cli.IntFlag{Name: "limit", Usage: "Maximum entries", Value: 50},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				entityType := domain.EntityType(c.String("type"))
				if !entityType.IsValid() {
					return domain.NewValidationError("type", "unknown entity type")
				}
				id, err := uuidFlag(c, "id")
				if err != nil {
					return err
				}
				records, err := a.Audit.GetByEntity(ctx, entityType, id, c.Int("limit"))
				if err != nil {
					return err
				}
				rows := make([][]string, len(records))
				for i, r := range records {
					rows[i] = []string{formatTime(r.CreatedAt), r.Action.String(), r.UserID.String(), strconv.Itoa(len(r.Changes)) + " field(s)"}
				}
				printTable(c.App.Writer, []string{"AT", "ACTION", "USER", "CHANGES"}, rows, nil)
				return nil
			})
		},
	}
}

func vocabularyCommand() *cli.Command {
	return &cli.Command{
		Name:    "vocabulary",
		Aliases: []string{"vocab"},
		Usage:   "List state values and board decision terms",
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				states, err := a.Vocab.ListStateValues(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, len(states))
				for i, v := range states {
					rows[i] = []string{strconv.Itoa(v.Sequence), v.TextID, v.Name}
				}
				printTable(c.App.Writer, []string{"SEQ", "TEXT ID", "NAME"}, rows, nil)

				decisions, err := a.Vocab.ListDecisionValues(ctx)
				if err != nil {
					return err
				}
				rows = make([][]string, len(decisions))
				for i, d := range decisions {
					rows[i] = []string{d.Name, d.ID.String()}
				}
				printTable(c.App.Writer, []string{"DECISION", "ID"}, rows, nil)
				return nil
			})
		},
	}
}

// optionalUUID parses an optional uuid flag.
func optionalUUID(c *cli.Context, name string) (*uuid.UUID, error) {
	if !c.IsSet(name) {
		return nil, nil
	}
	id, err := uuidFlag(c, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
