package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	var opts options

	return &cli.App{
		Name:      "rosterctl",
		Usage:     "Query, validate and import duty roster tables",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Value:       "schedule.csv",
				Usage:       "CSV file path, http(s) URL, or \"sqlite\" for the imported snapshot",
				EnvVars:     []string{"ROSTER_SOURCE"},
				Destination: &opts.source,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "roster.toml",
				Usage:       "Roster definition file",
				EnvVars:     []string{"ROSTER_CONFIG"},
				Destination: &opts.configPath,
			},
			&cli.StringFlag{
				Name:        "db",
				Value:       "./roster.db",
				Usage:       "SQLite database path",
				EnvVars:     []string{"DATABASE_PATH"},
				Destination: &opts.dbPath,
			},
			&cli.StringFlag{
				Name:        "timezone",
				Aliases:     []string{"tz"},
				Value:       "Europe/Moscow",
				Usage:       "Timezone of the table's dates and times",
				EnvVars:     []string{"TIMEZONE"},
				Destination: &opts.timezone,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Value:       defaultTimeout,
				Usage:       "Timeout for fetching a remote table",
				EnvVars:     []string{"FETCH_TIMEOUT"},
				Destination: &opts.timeout,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "warn",
				Usage:       "Log level for ingestion warnings",
				EnvVars:     []string{"LOG_LEVEL"},
				Destination: &opts.logLevel,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "now",
				Usage: "Print who is on duty",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:   "at",
						Usage:  "Moment to resolve instead of now (RFC 3339)",
						Layout: time.RFC3339,
					},
				},
				Action: func(cCtx *cli.Context) error {
					return runNow(cCtx, opts)
				},
			},
			{
				Name:    "schedule",
				Aliases: []string{"sched"},
				Usage:   "Print a person's schedule",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "person",
						Aliases:  []string{"p"},
						Usage:    "Person name or unique prefix",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "days",
						Aliases: []string{"d"},
						Value:   7,
						Usage:   "Number of days, clamped to the end of the month",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "First day (YYYY-MM-DD), today when empty",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return runSchedule(cCtx, opts)
				},
			},
			{
				Name:  "check",
				Usage: "Validate the table and print every recovered parse problem",
				Action: func(cCtx *cli.Context) error {
					return runCheck(cCtx, opts)
				},
			},
			{
				Name:  "import",
				Usage: "Replace the SQLite snapshot with the rows of a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "CSV file to import",
						Required: true,
					},
				},
				Action: func(cCtx *cli.Context) error {
					return runImport(cCtx, opts)
				},
			},
		},
	}
}
