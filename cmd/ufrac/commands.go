package main

import (
	"errors"
	"fmt"

	"github.com/kbolino/ufrac"
	"github.com/kbolino/ufrac/internal/config"
	"github.com/kbolino/ufrac/internal/logger"
	"github.com/kbolino/ufrac/split"
	"github.com/urfave/cli/v2"
)

func parseArgs(c *cli.Context) ([]ufrac.Fraction, error) {
	args := c.Args().Slice()
	xs := make([]ufrac.Fraction, len(args))
	for i, a := range args {
		x, err := ufrac.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, err)
		}
		xs[i] = x
	}
	return xs, nil
}

func sumCmd(c *cli.Context) error {
	xs, err := parseArgs(c)
	if err != nil {
		return err
	}
	var total ufrac.Fraction
	for _, x := range xs {
		total, err = total.TryAdd(x)
		if err != nil {
			return fmt.Errorf("adding %s: %w", x, err)
		}
		logger.Debugf("running total %s\n", total)
	}
	fmt.Fprintf(c.App.Writer, "%s %s\n", total, total.DecimalString(int32(c.Int("prec"))))
	return nil
}

func cmpCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("cmp takes exactly two fractions")
	}
	xs, err := parseArgs(c)
	if err != nil {
		return err
	}
	op := "="
	switch xs[0].Cmp(xs[1]) {
	case -1:
		op = "<"
	case 1:
		op = ">"
	}
	fmt.Fprintf(c.App.Writer, "%s %s %s\n", xs[0], op, xs[1])
	return nil
}

func scaleCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("scale takes exactly one fraction")
	}
	xs, err := parseArgs(c)
	if err != nil {
		return err
	}
	x, err := xs[0].TryMulScalar(c.Uint64("mul"))
	if err != nil {
		return fmt.Errorf("multiplying by %d: %w", c.Uint64("mul"), err)
	}
	x, err = x.TryDivScalar(c.Uint64("div"))
	if err != nil {
		return fmt.Errorf("dividing by %d: %w", c.Uint64("div"), err)
	}
	fmt.Fprintln(c.App.Writer, x)
	return nil
}

func splitCmd(c *cli.Context) error {
	var total uint64
	var names []string
	var weights []ufrac.Fraction
	if file := c.String("config"); file != "" {
		plan, err := config.Initialize(file)
		if err != nil {
			return err
		}
		total, names, weights = plan.Total, plan.Names(), plan.Weights()
		logger.Printf("loaded plan %s with %d parts\n", file, len(names))
		if c.NArg() > 0 {
			return errors.New("split takes weights from either the plan or the arguments")
		}
	} else {
		xs, err := parseArgs(c)
		if err != nil {
			return err
		}
		names, weights = c.Args().Slice(), xs
	}
	if c.IsSet("total") {
		total = c.Uint64("total")
	}

	shares, err := split.Shares(total, weights)
	if err != nil {
		return err
	}
	parts, err := split.Split(total, weights)
	if err != nil {
		return err
	}
	logger.Verbosef("split %d into %d parts\n", total, len(parts))
	for i, p := range parts {
		fmt.Fprintf(c.App.Writer, "%s\t%d\t%s\n", names[i], p, shares[i])
	}
	return nil
}
