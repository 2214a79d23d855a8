package main

import (
	"os"

	"github.com/kbolino/ufrac/internal/logger"
	"github.com/urfave/cli/v2"
)

const BuildVersion = "v0.1.0"

func main() {
	logger.SetLevel(logger.ERROR)
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ufrac"
	app.Usage = "Exact fraction arithmetic and proportional splits"
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "level",
			Value: logger.ERROR,
			Usage: "the log level, 1 error, 2 info, 3 verbose, 7 debug",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "only log messages matching this regular expression",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "print each distinct log message at most this many times, 0 for no limit",
		},
	}
	app.Before = func(c *cli.Context) error {
		logger.SetLevel(c.Int("level"))
		logger.SetLimiter(c.Int("limit"))
		return logger.SetFilter(c.String("filter"))
	}
	app.Commands = []*cli.Command{
		{
			Name:      "sum",
			Usage:     "Add fractions",
			ArgsUsage: "FRACTION...",
			Action:    sumCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "prec",
					Value: 6,
					Usage: "digits after the decimal point",
				},
			},
		},
		{
			Name:      "cmp",
			Usage:     "Compare two fractions by value",
			ArgsUsage: "X Y",
			Action:    cmpCmd,
		},
		{
			Name:      "scale",
			Usage:     "Multiply and divide a fraction by integers",
			ArgsUsage: "FRACTION",
			Action:    scaleCmd,
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:  "mul",
					Value: 1,
					Usage: "the multiplier",
				},
				&cli.Uint64Flag{
					Name:  "div",
					Value: 1,
					Usage: "the divisor",
				},
			},
		},
		{
			Name:      "split",
			Usage:     "Divide an integer total in proportion to weights",
			ArgsUsage: "WEIGHT...",
			Action:    splitCmd,
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:  "total",
					Usage: "the total to divide, overrides the plan total",
				},
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "the TOML split plan",
				},
			},
		},
	}
	return app
}
