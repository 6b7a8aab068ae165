package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/routines/genericdate"
	"github.com/scylladb/termtables"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	patterns   []string
	timeOnly   bool
	file       string
	workers    int
	timezone   string
	configPath string
	debug      bool
}

func main() {
	_ = godotenv.Load() // .env is optional
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "gendate [flags] TEXT...",
		Short: "Parse dates and times of unknown format",
		Long: `gendate tries the built-in date patterns (yyyy-MM-dd, dd.MM.yyyy, MM/dd/yyyy ...)
on every value, optionally followed by a time, and prints the pattern that matched.

  gendate "2020-01-15 10:30:00" 15.01.2020
  gendate --time 14:05:30
  gendate -p "yyyy-'Q'q" 2020-Q1`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	workers, _ := strconv.Atoi(os.Getenv("GENDATE_WORKERS"))
	f := cmd.Flags()
	f.StringArrayVarP(&o.patterns, "pattern", "p", nil, "pattern to try first, may be repeated")
	f.BoolVar(&o.timeOnly, "time", false, "values hold only a time of day")
	f.StringVarP(&o.file, "file", "f", "", "read values from a file, one per line")
	f.IntVarP(&o.workers, "workers", "w", workers, "number of parsing workers (default NumCPU)")
	f.StringVar(&o.timezone, "timezone", os.Getenv("GENDATE_TIMEZONE"), "Timezone aka `America/Los_Angeles` for values without offset")
	f.StringVar(&o.configPath, "config", os.Getenv("GENDATE_CONFIG"), "YAML config file")
	f.BoolVar(&o.debug, "debug", false, "log pattern promotions")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	if o.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	inputs := args
	if o.file != "" {
		lines, err := readLines(o.file)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return errors.New(`must pass   gendate "2009-08-12 22:15:09"`)
	}

	cfg := genericdate.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = genericdate.LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	if o.timezone != "" {
		cfg.Timezone = o.timezone
	}
	popts, err := cfg.ParserOptions()
	if err != nil {
		return err
	}

	results, err := genericdate.ParseAll(cmd.Context(), inputs, genericdate.BatchOptions{
		Workers:       o.workers,
		Time:          o.timeOnly,
		Patterns:      o.patterns,
		ParserOptions: popts,
	})
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
}

func render(out, errOut io.Writer, results []genericdate.Result) error {
	table := termtables.CreateTable()
	table.AddHeaders("Input", "Pattern", "Parsed, and Output as %v")

	red := color.New(color.FgRed)
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			table.AddRow(r.Input, "-", "error")
		case r.Time.IsZero():
			table.AddRow(r.Input, "-", "no value")
		default:
			table.AddRow(r.Input, r.Pattern, fmt.Sprintf("%v", r.Time))
		}
	}
	fmt.Fprintln(out, table.Render())

	for _, r := range results {
		if r.Err != nil {
			red.Fprintln(errOut, r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be parsed", failed, len(results))
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	return lines, s.Err()
}
