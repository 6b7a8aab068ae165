package genericdate

import "strings"

var (
	longMonthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	shortMonthNames = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	longDayNames = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	shortDayNames = []string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	}
)

// lookupName finds the name at the start of s, ignoring case. Tables are
// tried in order so long names win over their abbreviation.
func lookupName(s string, tables ...[]string) (int, int) {
	for _, names := range tables {
		for i, name := range names {
			if len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
				return i, len(name)
			}
		}
	}
	return -1, 0
}
