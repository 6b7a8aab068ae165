package genericdate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type fieldKind uint8

const (
	fieldLiteral fieldKind = iota
	fieldYear
	fieldMonth
	fieldMonthName
	fieldDay
	fieldHour   // H 0-23
	fieldHour24 // k 1-24
	fieldHour12 // h 1-12
	fieldHour11 // K 0-11
	fieldMinute
	fieldSecond
	fieldFraction
	fieldAmPm
	fieldWeekday
	fieldQuarter
	fieldQuarterText
	fieldOffset    // Z
	fieldOffsetISO // X
)

type layoutField struct {
	kind  fieldKind
	count int
	lit   string
	// fixed is set when the next field is numeric too (yyyyMMdd, HHmmss),
	// the field then consumes exactly count digits.
	fixed bool
}

func (f layoutField) numeric() bool {
	switch f.kind {
	case fieldYear, fieldMonth, fieldDay, fieldHour, fieldHour24, fieldHour12,
		fieldHour11, fieldMinute, fieldSecond, fieldFraction, fieldQuarter:
		return true
	}
	return false
}

// width returns how many digits a numeric field accepts.
func (f layoutField) width() (lo, hi int) {
	if f.fixed {
		return f.count, f.count
	}
	switch f.kind {
	case fieldYear:
		if f.count <= 2 {
			return 2, 4
		}
		if f.count > 4 {
			return f.count, f.count
		}
		return f.count, 4
	case fieldFraction:
		return 1, 9
	case fieldQuarter:
		return 1, 1
	}
	return 1, 2
}

// Layout is a compiled pattern. Patterns use the SimpleDateFormat style
// token letters (yyyy, MM, dd, HH, mm, ss, SSS, Z ...) with quoted literals.
type Layout struct {
	pattern string
	fields  []layoutField
}

func letterKind(r rune, count int) (fieldKind, bool) {
	switch r {
	case 'y':
		return fieldYear, true
	case 'M':
		if count >= 3 {
			return fieldMonthName, true
		}
		return fieldMonth, true
	case 'd':
		return fieldDay, true
	case 'H':
		return fieldHour, true
	case 'k':
		return fieldHour24, true
	case 'h':
		return fieldHour12, true
	case 'K':
		return fieldHour11, true
	case 'm':
		return fieldMinute, true
	case 's':
		return fieldSecond, true
	case 'S':
		return fieldFraction, true
	case 'a':
		return fieldAmPm, true
	case 'E':
		return fieldWeekday, true
	case 'Q', 'q':
		if count >= 3 {
			return fieldQuarterText, true
		}
		return fieldQuarter, true
	case 'Z':
		return fieldOffset, true
	case 'X':
		return fieldOffsetISO, true
	}
	return fieldLiteral, false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// CompileLayout checks a pattern and turns it into a Layout.
func CompileLayout(pattern string) (*Layout, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Msg: "empty pattern"}
	}
	l := &Layout{pattern: pattern}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			l.fields = append(l.fields, layoutField{kind: fieldLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		switch {
		case r == '\'':
			// '' outside of a quoted section is a single quote
			if strings.HasPrefix(pattern[i+1:], "'") {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			start := i
			closed := false
			i++
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						lit.WriteByte('\'')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				lit.WriteByte(pattern[i])
				i++
			}
			if !closed {
				return nil, &PatternError{Pattern: pattern, Pos: start, Msg: "unterminated quote"}
			}
		case isASCIILetter(r):
			count := 1
			for i+count < len(pattern) && rune(pattern[i+count]) == r {
				count++
			}
			kind, ok := letterKind(r, count)
			if !ok {
				return nil, &PatternError{Pattern: pattern, Pos: i, Msg: fmt.Sprintf("illegal pattern character %q", r)}
			}
			flush()
			l.fields = append(l.fields, layoutField{kind: kind, count: count})
			i += count
		default:
			lit.WriteString(pattern[i : i+size])
			i += size
		}
	}
	flush()

	for i := 0; i+1 < len(l.fields); i++ {
		if l.fields[i].numeric() && l.fields[i+1].numeric() {
			l.fields[i].fixed = true
		}
	}
	return l, nil
}

// MustCompileLayout is like CompileLayout but panics on a bad pattern.
func MustCompileLayout(pattern string) *Layout {
	l, err := CompileLayout(pattern)
	if err != nil {
		panic(err.Error())
	}
	return l
}

func (l *Layout) String() string {
	return l.pattern
}

// Parse requires the whole text to be consumed by the layout. Values without
// an offset token are placed in loc.
func (l *Layout) Parse(text string, loc *time.Location) (time.Time, error) {
	t, ok := l.parseFull(text, loc)
	if !ok {
		return time.Time{}, &ParseError{Reason: fmt.Sprintf("does not match %q", l.pattern), Input: text}
	}
	return t, nil
}

func (l *Layout) parseFull(text string, loc *time.Location) (time.Time, bool) {
	t, n, ok := l.match(text, loc)
	if !ok || n != len(text) {
		return time.Time{}, false
	}
	return t, true
}

// match parses a prefix of text, returning the value and the number of
// bytes consumed.
func (l *Layout) match(text string, loc *time.Location) (time.Time, int, bool) {
	v := parsed{year: 1970, day: 1, pm: -1}
	pos := 0
	for _, f := range l.fields {
		n, ok := f.scan(text[pos:], &v)
		if !ok {
			return time.Time{}, 0, false
		}
		pos += n
	}
	t, ok := v.resolve(loc)
	if !ok {
		return time.Time{}, 0, false
	}
	return t, pos, true
}

type parsed struct {
	year, month, day           int
	hour, minute, second, nsec int
	pm                         int
	hour12                     bool
	quarter                    int
	offset                     int
	hasOffset                  bool
}

func (f layoutField) scan(s string, v *parsed) (int, bool) {
	switch f.kind {
	case fieldLiteral:
		if !strings.HasPrefix(s, f.lit) {
			return 0, false
		}
		return len(f.lit), true
	case fieldMonthName:
		i, n := lookupName(s, longMonthNames, shortMonthNames)
		if n == 0 {
			return 0, false
		}
		v.month = i + 1
		return n, true
	case fieldWeekday:
		_, n := lookupName(s, longDayNames, shortDayNames)
		return n, n > 0
	case fieldAmPm:
		if len(s) < 2 {
			return 0, false
		}
		switch strings.ToUpper(s[:2]) {
		case "AM":
			v.pm = 0
		case "PM":
			v.pm = 1
		default:
			return 0, false
		}
		return 2, true
	case fieldQuarterText:
		if s == "" || (s[0] != 'Q' && s[0] != 'q') {
			return 0, false
		}
		q, n, ok := getDigits(s[1:], 1, 1)
		if !ok || q < 1 || q > 4 {
			return 0, false
		}
		v.quarter = q
		return n + 1, true
	case fieldOffset, fieldOffsetISO:
		return scanOffset(s, f.kind == fieldOffsetISO, v)
	}

	lo, hi := f.width()
	val, n, ok := getDigits(s, lo, hi)
	if !ok {
		return 0, false
	}
	switch f.kind {
	case fieldYear:
		if f.count <= 2 && n == 2 {
			if val < 69 {
				val += 2000
			} else {
				val += 1900
			}
		}
		v.year = val
	case fieldMonth:
		if val < 1 || val > 12 {
			return 0, false
		}
		v.month = val
	case fieldDay:
		if val < 1 || val > 31 {
			return 0, false
		}
		v.day = val
	case fieldHour:
		if val > 23 {
			return 0, false
		}
		v.hour = val
	case fieldHour24:
		if val < 1 || val > 24 {
			return 0, false
		}
		v.hour = val % 24
	case fieldHour12:
		if val < 1 || val > 12 {
			return 0, false
		}
		v.hour = val % 12
		v.hour12 = true
	case fieldHour11:
		if val > 11 {
			return 0, false
		}
		v.hour = val
		v.hour12 = true
	case fieldMinute:
		if val > 59 {
			return 0, false
		}
		v.minute = val
	case fieldSecond:
		if val > 59 {
			return 0, false
		}
		v.second = val
	case fieldFraction:
		for i := n; i < 9; i++ {
			val *= 10
		}
		for i := n; i > 9; i-- {
			val /= 10
		}
		v.nsec = val
	case fieldQuarter:
		if val < 1 || val > 4 {
			return 0, false
		}
		v.quarter = val
	}
	return n, true
}

func getDigits(s string, lo, hi int) (int, int, bool) {
	val, n := 0, 0
	for n < hi && n < len(s) && s[n] >= '0' && s[n] <= '9' {
		val = val*10 + int(s[n]-'0')
		n++
	}
	if n < lo {
		return 0, 0, false
	}
	return val, n, true
}

// scanOffset reads +hh, +hhmm or +hh:mm. The ISO form also takes Z.
func scanOffset(s string, iso bool, v *parsed) (int, bool) {
	if iso && strings.HasPrefix(s, "Z") {
		v.hasOffset = true
		v.offset = 0
		return 1, true
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	hh, n, ok := getDigits(s[1:], 2, 2)
	if !ok || hh > 23 {
		return 0, false
	}
	pos := 1 + n
	mm := 0
	rest := s[pos:]
	colon := strings.HasPrefix(rest, ":")
	if colon {
		rest = rest[1:]
	}
	if m, n, ok := getDigits(rest, 2, 2); ok {
		if m > 59 {
			return 0, false
		}
		mm = m
		pos += n
		if colon {
			pos++
		}
	}
	secs := (hh*60 + mm) * 60
	if s[0] == '-' {
		secs = -secs
	}
	v.offset = secs
	v.hasOffset = true
	return pos, true
}

func (v *parsed) resolve(loc *time.Location) (time.Time, bool) {
	if v.quarter > 0 {
		if v.month == 0 {
			v.month = (v.quarter-1)*3 + 1
		} else if (v.month-1)/3+1 != v.quarter {
			return time.Time{}, false
		}
	}
	if v.month == 0 {
		v.month = 1
	}
	if v.hour12 && v.pm == 1 {
		v.hour += 12
	}
	if v.hasOffset {
		loc = time.FixedZone("", v.offset)
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(v.year, time.Month(v.month), v.day, v.hour, v.minute, v.second, v.nsec, loc)
	// time.Date normalizes 31.02 into March, we don't
	if t.Year() != v.year || int(t.Month()) != v.month || t.Day() != v.day {
		return time.Time{}, false
	}
	return t, true
}
