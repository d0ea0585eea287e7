package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	quizcli "github.com/remaimber-it/quiz/internal/cli"
	quizsession "github.com/remaimber-it/quiz/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz/internal/infrastructure/config"
	"github.com/remaimber-it/quiz/internal/service"
	"github.com/remaimber-it/quiz/internal/store"
)

// app bundles the dependencies every command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	backend store.Backend
	handler *quizcli.Handler
}

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	a := &app{cfg: cfg, logger: logger}
	if err := a.command().RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) command() *cli.App {
	return &cli.App{
		Name:  "quiz",
		Usage: "multiple-choice quiz with score history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "questions",
				Aliases: []string{"q"},
				Usage:   "question file to use instead of the built-in pool",
				Value:   a.cfg.QuestionFile,
			},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "answer a randomly drawn set of questions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "sample-size",
						Aliases: []string{"n"},
						Usage:   "number of questions per session",
						Value:   a.cfg.SampleSize,
					},
					&cli.DurationFlag{
						Name:  "time-limit",
						Usage: "abandon the session when it runs longer than this (0 = no limit)",
						Value: derefDuration(a.cfg.TimeLimit),
					},
				},
				Action: func(c *cli.Context) error {
					config := quizsession.SessionConfig{SampleSize: c.Int("sample-size")}
					if d := c.Duration("time-limit"); d > 0 {
						config.MaxDuration = &d
					}
					return a.handler.Play(c.Context, config)
				},
			},
			{
				Name:   "history",
				Usage:  "list past sessions, newest first",
				Action: func(c *cli.Context) error { return a.handler.History(c.Context) },
			},
			{
				Name:   "stats",
				Usage:  "show totals and accuracy over all sessions",
				Action: func(c *cli.Context) error { return a.handler.Stats(c.Context) },
			},
			{
				Name:  "clear",
				Usage: "delete all recorded sessions",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
				},
				Action: func(c *cli.Context) error { return a.handler.Clear(c.Context, c.Bool("yes")) },
			},
			{
				Name:      "check",
				Usage:     "validate question files",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("check needs at least one FILE", 2)
					}
					return a.handler.Check(c.Args().Slice()...)
				},
			},
			{
				Name:   "sample",
				Usage:  "print an example question file",
				Action: func(c *cli.Context) error { return a.handler.Sample() },
			},
		},
	}
}

// offlineCommands never touch the record history.
var offlineCommands = map[string]bool{"": true, "check": true, "sample": true, "help": true, "h": true}

// offline reports whether args, the command line after global flags, can
// run without the configured record store.
func offline(args []string) bool {
	if len(args) == 0 || offlineCommands[args[0]] {
		return true
	}
	for _, arg := range args[1:] {
		if arg == "--" {
			break
		}
		if arg == "-h" || arg == "--help" || arg == "-help" {
			return true
		}
	}
	return false
}

// storeOptions maps the configuration onto store options. Offline command
// lines get a memory backend.
func (a *app) storeOptions(args []string) store.Options {
	if offline(args) {
		return store.Options{Driver: store.DriverMemory}
	}
	return store.Options{
		Driver:        store.Driver(a.cfg.StoreDriver),
		DSN:           a.cfg.StoreDSN,
		Dir:           a.cfg.StoreDir,
		RedisAddr:     a.cfg.RedisAddr,
		MongoURI:      a.cfg.MongoURI,
		MongoDatabase: a.cfg.MongoDatabase,
	}
}

// setup opens the record store and loads the question pool.
func (a *app) setup(c *cli.Context) error {
	opts := a.storeOptions(c.Args().Slice())
	backend, err := store.Open(c.Context, opts)
	if err != nil {
		return err
	}
	a.backend = backend

	records := store.NewRecordStore(backend, a.logger)
	controller := quizsession.NewController()
	svc := service.NewQuizService(records, controller, a.logger)

	if path := c.String("questions"); path != "" {
		if _, err := svc.LoadQuestionFile(path); err != nil {
			return err
		}
	}

	a.handler = quizcli.NewHandler(svc, os.Stdin, os.Stdout, a.logger)
	return nil
}

func (a *app) teardown(c *cli.Context) error {
	if a.backend == nil {
		return nil
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("failed to close store", "error", err)
	}
	return nil
}

func derefDuration(d *time.Duration) time.Duration {
	if d == nil {
		return 0
	}
	return *d
}
