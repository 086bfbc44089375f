// Command seenset is a streaming dedup filter: it reads lines from stdin and
// writes each distinct line to stdout the first time it appears. Memory use
// stays sublinear in the input because membership is tracked by a scalable
// Bloom filter rather than a hash set; a vanishingly small fraction of
// distinct lines may be dropped as false duplicates, tunable via --error-rate.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seenset"
	"github.com/fwojciec/seenset/bloom"
	setslog "github.com/fwojciec/seenset/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode      string  `default:"small" enum:"small,large" help:"Growth mode preset (small or large)."`
	Capacity  int     `short:"c" default:"0" help:"Initial capacity override (0 keeps the preset value)."`
	ErrorRate float64 `short:"e" default:"0" help:"Target false-positive rate override (0 keeps the preset value)."`
	Count     bool    `help:"Print only the number of distinct lines."`
	Verbose   bool    `short:"v" help:"Log each operation to stderr."`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seenset"),
		kong.Description("Deduplicate lines from stdin using a scalable Bloom filter."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := bloom.SmallSetGrowth()
	if cli.Mode == "large" {
		cfg = bloom.LargeSetGrowth()
	}
	if cli.Capacity > 0 {
		cfg.InitialCapacity = cli.Capacity
	}
	if cli.ErrorRate > 0 {
		cfg.InitialErrorRate = cli.ErrorRate
	}

	filter, err := bloom.NewScalable(cfg)
	if err != nil {
		return fmt.Errorf("invalid filter configuration: %s", seenset.ErrorMessage(err))
	}

	var set seenset.Set = filter
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		set = setslog.NewLoggingSet(filter, logger)
	}

	total := 0
	out := bufio.NewWriter(stdout)
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		total++
		line := scanner.Text()
		if set.Add(seenset.StringKey(line)) {
			continue
		}
		if !cli.Count {
			fmt.Fprintln(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cli.Count {
		fmt.Fprintln(stdout, set.Len())
	}
	if cli.Verbose {
		fmt.Fprintf(stderr, "read %d lines, %d distinct, %d duplicates\n",
			total, set.Len(), total-set.Len())
	}
	return nil
}
