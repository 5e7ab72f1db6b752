package main

import (
	"bufio"
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/convox/logger"
	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	patience "github.com/pavelkryukov/patience-sorting"
	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/internal/bench"
	"github.com/pavelkryukov/patience-sorting/internal/check"
	"github.com/pavelkryukov/patience-sorting/list"
	"github.com/pavelkryukov/patience-sorting/metrics"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func runCheck(c *stdcli.Context) error {
	if err := check.Run(check.All()); err != nil {
		fmt.Fprintf(c, "%s: %s\n", red("Failure"), err)
		return stdcli.Exit(1)
	}

	fmt.Fprintln(c, green("Success"))
	return nil
}

func runBench(c *stdcli.Context) error {
	kind, err := frontier.ParseKind(c.String("frontier"))
	if err != nil {
		return errors.WithStack(err)
	}

	cfg := bench.Config{
		Min:        c.Int("min"),
		Max:        c.Int("max"),
		Iterations: c.Int("iterations"),
		Only:       c.String("only"),
		Frontier:   kind,
		Seed:       int64(c.Int("seed")),
	}

	stderr := c.Writer().Stderr

	var log *logger.Logger
	if c.Bool("verbose") {
		log = logger.NewWriter("ns=patience", stderr)
	}

	progress := stderr
	if c.Bool("quiet") {
		progress = nil
	}

	results, err := bench.Run(cfg, log, progress)
	if err != nil {
		return errors.Wrap(err, "bench")
	}

	t := c.Table(bench.Columns...)
	for _, r := range results {
		t.AddRow(r.Row()...)
	}
	return t.Print()
}

func runSort(c *stdcli.Context) error {
	kind, err := frontier.ParseKind(c.String("frontier"))
	if err != nil {
		return errors.WithStack(err)
	}

	less := cmp.Less[int]
	if c.Bool("reverse") {
		less = func(a, b int) bool { return a > b }
	}

	l, err := readInts(c)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	patience.New(less, patience.WithFrontier(kind), patience.WithMetrics(reg)).Sort(l)

	w := bufio.NewWriter(c)
	for v := range l.All() {
		fmt.Fprintln(w, v)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	if c.Bool("stats") {
		fmt.Fprintf(c.Writer().Stderr, "sorted %s elements into %s piles\n",
			humanize.Comma(int64(reg.Sum(patience.MetricElements, nil))),
			humanize.Comma(int64(reg.Sum(patience.MetricPiles, nil))),
		)
	}
	return nil
}

// readInts reads one integer per line. Blank lines are skipped.
func readInts(c *stdcli.Context) (*list.List[int], error) {
	l := list.New[int]()
	s := bufio.NewScanner(c)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		l.PushBack(v)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return l, nil
}
