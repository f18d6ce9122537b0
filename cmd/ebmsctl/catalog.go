package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ebms-backend/internal/app"
	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/internal/service/catalog"
)

func boardCommand() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Manage editorial boards",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Board `NAME`", Required: true},
					&cli.StringFlag{Name: "manager", Usage: "Board manager `UUID`", Required: true},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						manager, err := uuidFlag(c, "manager")
						if err != nil {
							return err
						}
						b, err := a.Catalog.CreateBoard(ctx, catalog.CreateBoardInput{Name: c.String("name"), ManagerID: manager})
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, b.ID)
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "List boards",
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						boards, err := a.Catalog.ListBoards(ctx)
						if err != nil {
							return err
						}
						rows := make([][]string, len(boards))
						dim := make(map[int]bool)
						for i, b := range boards {
							rows[i] = []string{b.ID.String(), b.Name, b.ManagerID.String()}
							dim[i] = !b.Active
						}
						printTable(c.App.Writer, []string{"ID", "NAME", "MANAGER"}, rows, dim)
						return nil
					})
				},
			},
		},
	}
}

func topicCommand() *cli.Command {
	return &cli.Command{
		Name:  "topic",
		Usage: "Manage review topics",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a topic under a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Topic `NAME`", Required: true},
					&cli.StringFlag{Name: "board", Usage: "Board `UUID`", Required: true},
					&cli.StringFlag{Name: "reviewer", Usage: "Default reviewer `UUID`"},
					&cli.StringFlag{Name: "group", Usage: "Topic group `NAME`"},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						boardID, err := uuidFlag(c, "board")
						if err != nil {
							return err
						}
						input := catalog.CreateTopicInput{Name: c.String("name"), BoardID: boardID}
						reviewer, err := optionalUUID(c, "reviewer")
						if err != nil {
							return err
						}
						if reviewer != nil {
							input.DefaultReviewerID = *reviewer
						}
						if c.IsSet("group") {
							g := c.String("group")
							input.TopicGroup = &g
						}
						t, err := a.Catalog.CreateTopic(ctx, input)
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, t.ID)
						return nil
					})
				},
			},
			{
				Name:  "reassign",
				Usage: "Move a topic to another board; existing records keep their board",
				Flags: []cli.Flag{
					topicFlag,
					&cli.StringFlag{Name: "board", Usage: "Target board `UUID`", Required: true},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						topicID, err := uuidFlag(c, "topic")
						if err != nil {
							return err
						}
						boardID, err := uuidFlag(c, "board")
						if err != nil {
							return err
						}
						_, err = a.Catalog.ReassignTopic(ctx, catalog.ReassignTopicInput{TopicID: topicID, BoardID: boardID})
						return err
					})
				},
			},
			{
				Name:  "activate",
				Usage: "Set a topic's active flag",
				Flags: []cli.Flag{
					topicFlag,
					&cli.BoolFlag{Name: "active", Usage: "Active flag", Value: true},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						topicID, err := uuidFlag(c, "topic")
						if err != nil {
							return err
						}
						_, err = a.Catalog.SetTopicActive(ctx, topicID, c.Bool("active"))
						return err
					})
				},
			},
			{
				Name:  "list",
				Usage: "List topics",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Usage: "Only topics of board `UUID`"},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						boardID, err := optionalUUID(c, "board")
						if err != nil {
							return err
						}
						topics, err := a.Catalog.ListTopics(ctx, boardID)
						if err != nil {
							return err
						}
						rows := make([][]string, len(topics))
						dim := make(map[int]bool)
						for i, t := range topics {
							group := ""
							if t.TopicGroup != nil {
								group = *t.TopicGroup
							}
							rows[i] = []string{t.ID.String(), t.Name, t.BoardID.String(), group}
							dim[i] = !t.Active
						}
						printTable(c.App.Writer, []string{"ID", "NAME", "BOARD", "GROUP"}, rows, dim)
						return nil
					})
				},
			},
		},
	}
}

func articleCommand() *cli.Command {
	return &cli.Command{
		Name:  "article",
		Usage: "Register articles and link them to topics",
		Subcommands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register an article by source id",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "Source `ID`, e.g. a PubMed id", Required: true},
					&cli.StringSliceFlag{Name: "topic", Usage: "Topic `UUID` (repeatable)"},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						topics, err := uuidSliceFlag(c, "topic")
						if err != nil {
							return err
						}
						art, err := a.Catalog.RegisterArticle(ctx, catalog.RegisterArticleInput{SourceID: c.String("source"), TopicIDs: topics})
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, art.ID)
						return nil
					})
				},
			},
			{
				Name:  "link",
				Usage: "Associate an article with a topic",
				Flags: []cli.Flag{articleFlag, topicFlag},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						articleID, err := resolveArticle(ctx, c, a)
						if err != nil {
							return err
						}
						topicID, err := uuidFlag(c, "topic")
						if err != nil {
							return err
						}
						return a.Catalog.LinkArticleTopic(ctx, catalog.LinkArticleInput{ArticleID: articleID, TopicID: topicID})
					})
				},
			},
		},
	}
}

func meetingCommand() *cli.Command {
	return &cli.Command{
		Name:  "meeting",
		Usage: "Schedule board meetings",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a meeting",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Meeting `NAME`", Required: true},
					&cli.TimestampFlag{Name: "date", Usage: "Meeting `DATE` (YYYY-MM-DD)", Layout: time.DateOnly, Required: true},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						date := c.Timestamp("date")
						if date == nil {
							return domain.NewValidationError("date", "required")
						}
						m, err := a.Catalog.CreateMeeting(ctx, catalog.CreateMeetingInput{Name: c.String("name"), Date: *date})
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, m.ID)
						return nil
					})
				},
			},
		},
	}
}
