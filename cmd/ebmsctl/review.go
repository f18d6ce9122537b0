package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ebms-backend/internal/app"
	"github.com/heartmarshall/ebms-backend/internal/service/review"
)

func enterCommand() *cli.Command {
	return &cli.Command{
		Name:  "enter",
		Usage: "Move an article/topic pair into a new state",
		Flags: []cli.Flag{
			articleFlag,
			topicFlag,
			&cli.StringFlag{Name: "state", Aliases: []string{"s"}, Usage: "State text `ID`, e.g. on_agenda", Required: true},
			&cli.StringSliceFlag{Name: "decision", Usage: "Board decision `NAME` (final_board_decision only, repeatable)"},
			&cli.BoolFlag{Name: "discussed", Usage: "Mark the decisions as discussed"},
			&cli.StringFlag{Name: "cycle", Usage: "Review cycle `LABEL` recorded on decisions"},
			&cli.StringSliceFlag{Name: "meeting", Usage: "Meeting `UUID` (on_agenda only, repeatable)"},
			&cli.StringSliceFlag{Name: "decider", Usage: "Deciding user `UUID` (repeatable)"},
			&cli.StringFlag{Name: "comment", Usage: "Comment `TEXT` attached to the new record"},
		},
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
				meetings, err := uuidSliceFlag(c, "meeting")
				if err != nil {
					return err
				}
				deciders, err := uuidSliceFlag(c, "decider")
				if err != nil {
					return err
				}
				decisions, err := decisionInputs(ctx, a, c.StringSlice("decision"), c.String("cycle"), c.Bool("discussed"))
				if err != nil {
					return err
				}

				input := review.EnterStateInput{
					ArticleID:   articleID,
					TopicID:     topicID,
					StateTextID: c.String("state"),
					Decisions:   decisions,
					MeetingIDs:  meetings,
					DeciderIDs:  deciders,
				}
				if c.IsSet("comment") {
					body := c.String("comment")
					input.Comment = &body
				}

				rec, err := a.Reviews.EnterState(ctx, input)
				if err != nil {
					return err
				}
				printRecord(c.App.Writer, rec)
				return nil
			})
		},
	}
}

// decisionInputs maps decision names to vocabulary ids, case-insensitively.
func decisionInputs(ctx context.Context, a *app.App, names []string, cycle string, discussed bool) ([]review.DecisionInput, error) {
	if len(names) == 0 {
		return nil, nil
	}
	values, err := a.Vocab.ListDecisionValues(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]review.DecisionInput, 0, len(names))
	for _, name := range names {
		var id uuid.UUID
		for _, v := range values {
			if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
				id = v.ID
				break
			}
		}
		if id == uuid.Nil {
			return nil, fmt.Errorf("unknown decision %q (see `ebmsctl vocabulary`)", name)
		}
		out = append(out, review.DecisionInput{DecisionValueID: id, MeetingDate: cycle, Discussed: discussed})
	}
	return out, nil
}

func voidCommand() *cli.Command {
	return &cli.Command{
		Name:  "void",
		Usage: "Mark a state record as entered in error",
		Flags: []cli.Flag{recordFlag},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				id, err := uuidFlag(c, "record")
				if err != nil {
					return err
				}
				res, err := a.Reviews.VoidState(ctx, review.VoidStateInput{RecordID: id})
				if err != nil {
					return err
				}
				printRecord(c.App.Writer, res.Voided)
				if res.Promoted != nil {
					printNote(c.App.Writer, "promoted %s (%s) to current", res.Promoted.ID, res.Promoted.Value.TextID)
				}
				return nil
			})
		},
	}
}

func commentCommand() *cli.Command {
	body := &cli.StringFlag{Name: "body", Aliases: []string{"m"}, Usage: "Comment `TEXT`", Required: true}
	return &cli.Command{
		Name:  "comment",
		Usage: "Add or edit comments on a state record",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Append a comment",
				Flags: []cli.Flag{recordFlag, body},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						id, err := uuidFlag(c, "record")
						if err != nil {
							return err
						}
						cm, err := a.Reviews.AddComment(ctx, review.AddCommentInput{RecordID: id, Body: c.String("body")})
						if err != nil {
							return err
						}
						printNote(c.App.Writer, "comment %s added", cm.ID)
						return nil
					})
				},
			},
			{
				Name:  "edit",
				Usage: "Rewrite a comment, recording who changed it",
				Flags: []cli.Flag{
					recordFlag,
					&cli.StringFlag{Name: "id", Usage: "Comment `UUID`", Required: true},
					body,
				},
				Action: func(c *cli.Context) error {
					return withApp(c, func(ctx context.Context, a *app.App) error {
						recordID, err := uuidFlag(c, "record")
						if err != nil {
							return err
						}
						commentID, err := uuidFlag(c, "id")
						if err != nil {
							return err
						}
						cm, err := a.Reviews.EditComment(ctx, review.EditCommentInput{
							RecordID:  recordID,
							CommentID: commentID,
							Body:      c.String("body"),
						})
						if err != nil {
							return err
						}
						printNote(c.App.Writer, "comment %s updated", cm.ID)
						return nil
					})
				},
			},
		},
	}
}

func currentCommand() *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "Show the current state of an article/topic pair",
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
				rec, err := a.Reviews.FindCurrent(ctx, articleID, topicID)
				if err != nil {
					return err
				}
				if rec == nil {
					printNote(c.App.Writer, "no current state")
					return nil
				}
				printRecord(c.App.Writer, rec)
				return nil
			})
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List every state an article/topic pair passed through, newest first",
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
				history, err := a.Reviews.FindHistory(ctx, articleID, topicID)
				if err != nil {
					return err
				}
				rows, dim := recordRows(history)
				printTable(c.App.Writer, recordHeaders, rows, dim)
				return nil
			})
		},
	}
}

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "Print the later state description of a record",
		Flags: []cli.Flag{
			recordFlag,
			thresholdFlag,
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				id, err := uuidFlag(c, "record")
				if err != nil {
					return err
				}
				desc, err := a.Reviews.DescribeLaterState(ctx, id, threshold(c))
				if err != nil {
					return err
				}
				if desc == "" {
					printNote(c.App.Writer, "state has not progressed past the threshold")
					return nil
				}
				fmt.Fprintln(c.App.Writer, desc)
				return nil
			})
		},
	}
}
