// Command ebmsctl drives the EBMS review state lifecycle from the shell:
// it manages boards, topics, articles and meetings, records state
// transitions and prints the derived reports.
//
// Usage:
//
//	ebmsctl --user=<uuid> enter --article=31415926 --topic=<uuid> --state=on_agenda --meeting=<uuid>
//	ebmsctl history --article=31415926 --topic=<uuid>
//	ebmsctl queue --board=<uuid> --state=passed_bm_review
//
// Configuration is read from --config (or CONFIG_PATH) and the environment.
// --memory runs against a throwaway in-process store.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ebms-backend/internal/app"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ebmsctl",
		Usage:   "EBMS board review state lifecycle",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "Acting user `UUID`",
				EnvVars: []string{"EBMS_USER"},
			},
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "Use an in-memory store instead of PostgreSQL",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			boardCommand(),
			topicCommand(),
			articleCommand(),
			meetingCommand(),
			enterCommand(),
			voidCommand(),
			commentCommand(),
			currentCommand(),
			historyCommand(),
			describeCommand(),
			statesCommand(),
			summaryCommand(),
			queueCommand(),
			auditCommand(),
			vocabularyCommand(),
			watchCommand(),
			versionCommand(),
		},
	}
}
