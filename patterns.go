package genericdate

// Order matters: the most common formats come first.
var defaultDatePatterns = []string{
	"yyyy-MM-dd",
	"dd.MM.yyyy",
	"d.MM.yyyy",
	"d.M.yy",
	"dd.MM.yy",
	"dd.MMM.yyyy",
	"yyyyMMdd",
	"dd/MM/yyyy",
	"dd/MM/yy",
	"dd/MMM/yyyy",
	"d/M/yy",
	"MM/dd/yyyy",
	"MM/dd/yy",
	"M/d/yy",
	"dd-MM-yyyy",
	"dd-MM-yy",
	"dd-MMM-yyyy",
	"d-M-yy",
	"yyyyMM",
	"yyyy",
}

// Time patterns double as suffixes of a date pattern, hence the leading
// space on most of them. They are trimmed when used on their own.
var defaultTimePatterns = []string{
	"'T'HH:mm:ss.SSSZ",
	" HHmmss",
	" HH'h'mm'm'ss's'",
	" HH'h' mm'm' ss's'",
	" HH:mm:ss.SSS",
	" HH:mm:ss",
	" mm'′'ss'\"'",
	" HH'h'mm'm'",
	" HH'h' mm'm'",
}

// DefaultDatePatterns returns a copy of the built-in date patterns.
func DefaultDatePatterns() []string {
	return append([]string(nil), defaultDatePatterns...)
}

// DefaultTimePatterns returns a copy of the built-in time patterns.
func DefaultTimePatterns() []string {
	return append([]string(nil), defaultTimePatterns...)
}
