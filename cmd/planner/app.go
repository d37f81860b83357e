package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseplanner/internal/bootstrap"
	"github.com/yigit/courseplanner/internal/config"
	"github.com/yigit/courseplanner/internal/menu"
	"github.com/yigit/courseplanner/internal/server"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "planner",
		Usage: "look up and list courses from a course catalog file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path of the YAML configuration file",
				Value:   config.DefaultPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:  "courses-file",
				Usage: "course catalog to load, overrides data.courses_file",
			},
			&cli.UintFlag{
				Name:  "table-size",
				Usage: "number of hash table buckets, overrides table.size",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "menu",
				Usage:  "run the interactive menu (default)",
				Action: runMenu,
			},
			{
				Name:  "serve",
				Usage: "serve the course table over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "port",
						Usage: "listen port, overrides server.port",
					},
				},
				Action: runServe,
			},
		},
		Action: runMenu,
	}
}

// loadConfig reads the configuration file and applies command line overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("courses-file") {
		cfg.Data.CoursesFile = c.String("courses-file")
	}
	if c.IsSet("table-size") {
		cfg.Table.Size = c.Uint("table-size")
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.String("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runMenu(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// The menu owns stdout, so logs go to stderr.
	lgr := bootstrap.SetupLogger(cfg, c.App.ErrWriter)

	deps, err := bootstrap.BuildDependencies(cfg, lgr)
	if err != nil {
		return err
	}

	return menu.New(deps.CourseService, c.App.Reader, c.App.Writer).Run(c.Context)
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	lgr := bootstrap.SetupLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
