package verify

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	rollStripRe  = regexp.MustCompile(`[^A-Z0-9/]`)
	isoDateRe    = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$`)
	wordDateRe   = regexp.MustCompile(`(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)
	marksNumRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

var monthTable = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "sept": "09", "oct": "10", "nov": "11", "dec": "12",
}

// TextNorm lowercases, collapses whitespace runs and trims. Used for
// free-text fields such as Name and Course.
func TextNorm(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// RollNorm uppercases and strips everything but letters, digits and '/'
// so punctuation and spacing differences never fail a roll comparison.
func RollNorm(s string) string {
	return strings.TrimSpace(rollStripRe.ReplaceAllString(strings.ToUpper(s), ""))
}

// DateNorm canonicalizes date-like strings to YYYY-MM-DD. Best effort:
// anything it cannot recognize comes back unchanged (trimmed), never an
// error.
func DateNorm(s string) string {
	t := strings.TrimSpace(s)
	if isoDateRe.MatchString(t) {
		return strings.ReplaceAll(t, "/", "-")
	}
	if m := wordDateRe.FindStringSubmatch(t); m != nil {
		day := m[1]
		if len(day) == 1 {
			day = "0" + day
		}
		mon := strings.ToLower(m[2])
		if len(mon) > 3 {
			mon = mon[:3]
		}
		if month, ok := monthTable[mon]; ok {
			return m[3] + "-" + month + "-" + day
		}
	}
	return t
}

// MarksNorm extracts the first numeric substring and formats it with one
// decimal place. The second return is false when the input carries no
// number at all.
func MarksNorm(s string) (string, bool) {
	m := marksNumRe.FindString(s)
	if m == "" {
		return "", false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', 1, 64), true
}
