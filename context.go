package genericdate

import (
	"context"
	"sync"
	"time"
)

type parserKey struct{}

type parserHolder struct {
	once sync.Once
	opts []ParserOption
	p    *Parser
	err  error
}

// NewContext returns a copy of parent that owns a Parser. The Parser is built
// with opts on first use. Derive one context per goroutine: the Parser it
// carries must not be used from two goroutines at once.
func NewContext(parent context.Context, opts ...ParserOption) context.Context {
	return context.WithValue(parent, parserKey{}, &parserHolder{opts: opts})
}

// FromContext returns the Parser owned by ctx, creating it if needed. It
// returns ErrNoParser if ctx was not made by NewContext.
func FromContext(ctx context.Context) (*Parser, error) {
	h, ok := ctx.Value(parserKey{}).(*parserHolder)
	if !ok {
		return nil, ErrNoParser
	}
	h.once.Do(func() {
		h.p, h.err = NewParser(h.opts...)
	})
	return h.p, h.err
}

func contextParser(ctx context.Context) (*Parser, error) {
	p, err := FromContext(ctx)
	if err == ErrNoParser {
		return NewParser()
	}
	return p, err
}

// ParseDate parses text with the Parser of ctx. Without one a fresh Parser
// is used, which learns nothing across calls.
func ParseDate(ctx context.Context, text string, suggested ...string) (time.Time, error) {
	p, err := contextParser(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return p.ParseDate(text, suggested...)
}

// ParseTime is the time-only form of ParseDate.
func ParseTime(ctx context.Context, text string, suggested ...string) (time.Time, error) {
	p, err := contextParser(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return p.ParseTime(text, suggested...)
}
