// Package genericdate parses dates and times of unknown format by trying a
// list of known patterns until one fits. The pattern that fits moves to the
// front of its list, so a column of values in one format converges to a
// single attempt per value.
//
// A Parser is not safe for concurrent use. Give every goroutine its own
// Parser (see NewContext and ParseAll), adaptation is then local to it.
package genericdate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// DefaultSuffixThreshold is how many more runes the text must have than the
// date pattern before time suffixes are tried. It is a heuristic tuned to
// the built-in patterns.
const DefaultSuffixThreshold = 6

// Parser holds the ordered date and time pattern lists of one goroutine.
type Parser struct {
	datePatterns []string
	timePatterns []string
	initialDate  []string
	initialTime  []string
	layouts      map[string]*Layout
	loc          *time.Location
	threshold    int
	log          logrus.FieldLogger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser) error

// WithLocation sets the location of values without an offset. Default time.Local.
func WithLocation(loc *time.Location) ParserOption {
	return func(p *Parser) error {
		p.loc = loc
		return nil
	}
}

// WithSuffixThreshold changes DefaultSuffixThreshold.
func WithSuffixThreshold(n int) ParserOption {
	return func(p *Parser) error {
		if n < 0 {
			return fmt.Errorf("genericdate: negative suffix threshold %d", n)
		}
		p.threshold = n
		return nil
	}
}

// WithLogger sets the logger, default logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) ParserOption {
	return func(p *Parser) error {
		p.log = log
		return nil
	}
}

// WithDatePatterns replaces the built-in date patterns.
func WithDatePatterns(patterns ...string) ParserOption {
	return func(p *Parser) error {
		list, err := p.patternList(patterns, false)
		if err != nil {
			return err
		}
		p.initialDate = list
		return nil
	}
}

// WithTimePatterns replaces the built-in time patterns.
func WithTimePatterns(patterns ...string) ParserOption {
	return func(p *Parser) error {
		list, err := p.patternList(patterns, true)
		if err != nil {
			return err
		}
		p.initialTime = list
		return nil
	}
}

// NewParser returns a Parser with the built-in pattern lists.
func NewParser(opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		initialDate: DefaultDatePatterns(),
		initialTime: DefaultTimePatterns(),
		layouts:     make(map[string]*Layout),
		loc:         time.Local,
		threshold:   DefaultSuffixThreshold,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.Reset()
	return p, nil
}

// Reset drops everything the Parser learned and restores the initial order.
func (p *Parser) Reset() {
	p.datePatterns = append([]string(nil), p.initialDate...)
	p.timePatterns = append([]string(nil), p.initialTime...)
}

// DatePatterns returns the date patterns in their current order.
func (p *Parser) DatePatterns() []string {
	return append([]string(nil), p.datePatterns...)
}

// TimePatterns returns the time patterns in their current order.
func (p *Parser) TimePatterns() []string {
	return append([]string(nil), p.timePatterns...)
}

// ParseDate parses text as a date, optionally followed by a time. The
// suggested patterns are moved to the front of the date list first, the
// last one given ends up first. An empty text returns the zero time and no
// error.
func (p *Parser) ParseDate(text string, suggested ...string) (time.Time, error) {
	if text == "" {
		return time.Time{}, nil
	}
	if err := p.suggest(&p.datePatterns, suggested, false); err != nil {
		return time.Time{}, err
	}

	textLen := utf8.RuneCountInString(text)
	for _, pattern := range p.datePatterns {
		l, err := p.layout(pattern)
		if err != nil {
			continue
		}
		t, n, ok := l.match(text, p.loc)
		if !ok {
			continue
		}
		winner := pattern
		complete := n == len(text)
		if textLen-utf8.RuneCountInString(pattern) >= p.threshold {
			// more text than a date, look for a time part
			for _, suffix := range p.timePatterns {
				combined := pattern + suffix
				cl, err := p.layout(combined)
				if err != nil {
					continue
				}
				if ct, ok := cl.parseFull(text, p.loc); ok {
					t = ct
					winner = combined
					complete = true
					break
				}
			}
		}
		if !complete {
			continue
		}
		p.datePatterns = moveToFront(p.datePatterns, winner)
		p.log.WithFields(logrus.Fields{"pattern": winner, "input": text}).Debug("date pattern promoted")
		return t, nil
	}

	p.log.WithField("input", text).Debug(reasonNoDate)
	return time.Time{}, &ParseError{Reason: reasonNoDate, Input: text}
}

// ParseTime parses text holding only a time of day. The date part of the
// result is 1970-01-01.
func (p *Parser) ParseTime(text string, suggested ...string) (time.Time, error) {
	if err := p.suggest(&p.timePatterns, suggested, true); err != nil {
		return time.Time{}, err
	}
	for _, pattern := range p.timePatterns {
		l, err := p.layout(strings.TrimSpace(pattern))
		if err != nil {
			continue
		}
		t, ok := l.parseFull(text, p.loc)
		if !ok {
			continue
		}
		p.timePatterns = moveToFront(p.timePatterns, pattern)
		p.log.WithFields(logrus.Fields{"pattern": pattern, "input": text}).Debug("time pattern promoted")
		return t, nil
	}

	p.log.WithField("input", text).Debug(reasonNoTime)
	return time.Time{}, &ParseError{Reason: reasonNoTime, Input: text}
}

// suggest validates all patterns before putting any of them in front.
func (p *Parser) suggest(list *[]string, patterns []string, trim bool) error {
	for _, pattern := range patterns {
		if _, err := p.compile(pattern, trim); err != nil {
			return err
		}
	}
	for _, pattern := range patterns {
		*list = moveToFront(*list, pattern)
	}
	return nil
}

func (p *Parser) compile(pattern string, trim bool) (*Layout, error) {
	if trim {
		pattern = strings.TrimSpace(pattern)
	}
	return p.layout(pattern)
}

// layout returns the cached compiled form of pattern.
func (p *Parser) layout(pattern string) (*Layout, error) {
	if l, ok := p.layouts[pattern]; ok {
		return l, nil
	}
	l, err := CompileLayout(pattern)
	if err != nil {
		return nil, err
	}
	p.layouts[pattern] = l
	return l, nil
}

// patternList validates patterns and drops repeated entries.
func (p *Parser) patternList(patterns []string, trim bool) ([]string, error) {
	list := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, err := p.compile(pattern, trim); err != nil {
			return nil, err
		}
		if indexOf(list, pattern) < 0 {
			list = append(list, pattern)
		}
	}
	return list, nil
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// moveToFront puts s at index 0, removing an existing entry first.
func moveToFront(list []string, s string) []string {
	i := indexOf(list, s)
	switch {
	case i == 0:
	case i > 0:
		copy(list[1:i+1], list[:i])
		list[0] = s
	default:
		list = append(list, "")
		copy(list[1:], list)
		list[0] = s
	}
	return list
}
