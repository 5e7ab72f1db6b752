// Command patience runs the sorting checks, benchmarks the sorts and sorts
// integers from stdin.
package main

import (
	"os"

	"github.com/convox/stdcli"

	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/internal/bench"
)

var version = "dev"

func main() {
	os.Exit(newEngine().Execute(os.Args[1:]))
}

func newEngine() *stdcli.Engine {
	e := stdcli.New("patience", version)
	defaults := bench.DefaultConfig()

	e.Command("check", "run the built-in sorting checks", runCheck, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})

	e.Command("bench", "time patience sort against baseline sorts", runBench, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			withDefault(stdcli.IntFlag("min", "", "log2 of the smallest input"), defaults.Min),
			withDefault(stdcli.IntFlag("max", "", "log2 of the largest input"), defaults.Max),
			withDefault(stdcli.IntFlag("iterations", "i", "runs per algorithm and size"), defaults.Iterations),
			stdcli.StringFlag("only", "o", "only algorithms whose name contains this"),
			frontierFlag(),
			withDefault(stdcli.IntFlag("seed", "", "first shuffle seed"), int(defaults.Seed)),
			stdcli.BoolFlag("quiet", "q", "hide the progress bar"),
			stdcli.BoolFlag("verbose", "", "log every measurement"),
		},
		Validate: stdcli.Args(0),
	})

	e.Command("sort", "sort integers read from stdin, one per line", runSort, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.BoolFlag("reverse", "r", "sort in descending order"),
			stdcli.BoolFlag("stats", "s", "report element and pile counts on stderr"),
			frontierFlag(),
		},
		Validate: stdcli.Args(0),
	})

	return e
}

func frontierFlag() stdcli.Flag {
	return withDefault(stdcli.StringFlag("frontier", "f", "merge frontier: heap, tournament or ordered"), frontier.Heap.String())
}

func withDefault(f stdcli.Flag, v interface{}) stdcli.Flag {
	f.Default = v
	return f
}
