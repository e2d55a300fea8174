package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/e11jah/bstset"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	app := cli.App{
		Name:   "bstset",
		Usage:  "build an ordered set from the given values and inspect it",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Usage:   "value type: int, float or string",
				Value:   "int",
				EnvVars: []string{"BSTSET_TYPE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"BSTSET_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"BSTSET_LOG_FMT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			_, err := setupSlog(cctx.String("log-level"), cctx.String("log-format"))
			return err
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "traverse",
			Usage:     "print the values in in-, pre- or post-order",
			ArgsUsage: "<value>...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "order",
					Usage: "in, pre or post",
					Value: "in",
				},
			},
			Action: runTraverse,
		},
		&cli.Command{
			Name:      "show",
			Usage:     "print the shape of the tree",
			ArgsUsage: "<value>...",
			Action:    runShow,
		},
		&cli.Command{
			Name:      "stats",
			Usage:     "print size, height and bounds of the set",
			ArgsUsage: "<value>...",
			Action:    runStats,
		},
		&cli.Command{
			Name:      "erase",
			Usage:     "remove one value and print what is left",
			ArgsUsage: "<value>...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Usage:    "value to remove",
					Required: true,
				},
			},
			Action: runErase,
		},
		&cli.Command{
			Name:      "check",
			Usage:     "verify the search tree invariants",
			ArgsUsage: "<value>...",
			Action:    runCheck,
		},
	}
	return app.Run(args)
}

func setupSlog(level, format string) (*slog.Logger, error) {
	var hopts slog.HandlerOptions
	switch strings.ToLower(level) {
	case "debug":
		hopts.Level = slog.LevelDebug
	case "info":
		hopts.Level = slog.LevelInfo
	case "warn", "":
		hopts.Level = slog.LevelWarn
	case "error":
		hopts.Level = slog.LevelError
	default:
		return nil, errors.Newf("unknown log level: %q", level)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, &hopts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &hopts)
	default:
		return nil, errors.Newf("unknown log format: %q", format)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

func loadSet(cctx *cli.Context) (valueSet, error) {
	typ := cctx.String("type")
	s, err := buildSet(typ, cctx.Args().Slice())
	if err != nil {
		return nil, err
	}
	slog.Debug("built set", "type", typ, "args", cctx.Args().Len(), "size", s.size())
	return s, nil
}

func runTraverse(cctx *cli.Context) error {
	order, err := parseOrder(cctx.String("order"))
	if err != nil {
		return err
	}
	s, err := loadSet(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(s.traverse(order), " "))
	return nil
}

func runShow(cctx *cli.Context) error {
	s, err := loadSet(cctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, s.show())
	return nil
}

func runStats(cctx *cli.Context) error {
	s, err := loadSet(cctx)
	if err != nil {
		return err
	}
	st := s.stats()

	table := tablewriter.NewWriter(cctx.App.Writer)
	table.SetHeader([]string{"size", "height", "root", "min", "max"})
	table.Append([]string{
		fmt.Sprint(st.size),
		fmt.Sprint(st.height),
		st.root,
		st.min,
		st.max,
	})
	table.Render()
	return nil
}

func runErase(cctx *cli.Context) error {
	s, err := loadSet(cctx)
	if err != nil {
		return err
	}
	removed, err := s.erase(cctx.String("value"))
	if err != nil {
		return err
	}
	slog.Info("erase", "value", cctx.String("value"), "removed", removed, "size", s.size())
	fmt.Fprintf(cctx.App.Writer, "removed: %t\n%s\n", removed, strings.Join(s.traverse(bstset.InOrder), " "))
	return nil
}

func runCheck(cctx *cli.Context) error {
	s, err := loadSet(cctx)
	if err != nil {
		return err
	}
	if err := s.check(); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "ok: %d values\n", s.size())
	return nil
}

func parseOrder(s string) (bstset.Order, error) {
	switch s {
	case "in":
		return bstset.InOrder, nil
	case "pre":
		return bstset.PreOrder, nil
	case "post":
		return bstset.PostOrder, nil
	}
	return 0, errors.Newf("unknown traversal order: %q", s)
}
