package genericdate

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Result is the outcome for one input of ParseAll.
type Result struct {
	Index   int
	Input   string
	Time    time.Time
	Pattern string
	Err     error
}

// BatchOptions configures ParseAll.
type BatchOptions struct {
	// Workers defaults to runtime.NumCPU().
	Workers int
	// Time parses the inputs with ParseTime instead of ParseDate.
	Time          bool
	Patterns      []string
	ParserOptions []ParserOption
}

// ParseAll parses inputs on a pool of workers, each with a Parser of its own.
// Results are in input order. Per-value failures are reported in
// Result.Err; the returned error is for bad options or a done ctx.
func ParseAll(ctx context.Context, inputs []string, opts BatchOptions) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	parsers := make([]*Parser, workers)
	for i := range parsers {
		p, err := NewParser(opts.ParserOptions...)
		if err != nil {
			return nil, err
		}
		parsers[i] = p
	}

	results := make([]Result, len(inputs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for _, p := range parsers {
		wg.Add(1)
		go func(p *Parser) {
			defer wg.Done()
			for i := range jobs {
				results[i] = parseOne(p, i, inputs[i], opts)
			}
		}(p)
	}

feed:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseOne(p *Parser, i int, input string, opts BatchOptions) Result {
	r := Result{Index: i, Input: input}
	if opts.Time {
		r.Time, r.Err = p.ParseTime(input, opts.Patterns...)
		if r.Err == nil {
			r.Pattern = strings.TrimSpace(p.timePatterns[0])
		}
		return r
	}
	r.Time, r.Err = p.ParseDate(input, opts.Patterns...)
	if r.Err == nil && input != "" {
		r.Pattern = p.datePatterns[0]
	}
	return r
}
