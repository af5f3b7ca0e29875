// README: Date extraction: temporal phrases to ISO dates, with raw-text fallback.
package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthAlt = "january|february|march|april|may|june|july|august|september|october|november|december"

var monthIndex = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// specificDateRe covers "27 July" / "27th of July" as groups 1-2 and
// "July 27th" as groups 3-4.
var specificDateRe = regexp.MustCompile(
	`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)|(` + monthAlt + `)\s+(\d{1,2})(?:st|nd|rd|th)?`)

var monthNameRe = regexp.MustCompile(`(?i)` + monthAlt)

// secondaryDatePatterns is evaluated top-down with early exit; the order is
// part of the contract (a message matching several patterns takes the first).
// monthGroup names the capture group inspected for a month name; 0 means the
// match is kept as raw text unless it contains "tomorrow"/"today".
type secondaryDatePattern struct {
	re         *regexp.Regexp
	monthGroup int
}

var secondaryDatePatterns = []secondaryDatePattern{
	{re: regexp.MustCompile(`(?i)(?:on|date)\s+([a-zA-Z0-9\s,]+)`), monthGroup: 1},
	{re: regexp.MustCompile(`(?i)tomorrow`)},
	{re: regexp.MustCompile(`(?i)today`)},
	{re: regexp.MustCompile(`(?i)(` + monthAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`), monthGroup: 1},
	{re: regexp.MustCompile(`(?i)\d{1,2}(?:st|nd|rd|th)?\s+(` + monthAlt + `)(?:,?\s+\d{4})?`), monthGroup: 1},
	{re: regexp.MustCompile(`(?i)\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)},
	{re: regexp.MustCompile(`(?i)\d{1,2}\s+(?:of\s+)?(` + monthAlt + `)`), monthGroup: 1},
	{re: regexp.MustCompile(`(?i)(?:` + monthAlt + `)\s+\d{1,2}`)},
}

// ExtractDate turns a temporal phrase inside message into an ISO calendar date
// when it can, or the raw matched fragment when it cannot. The second return
// is false when no pattern matched at all.
func ExtractDate(message string, now time.Time) (string, bool) {
	if m := specificDateRe.FindStringSubmatch(message); m != nil {
		day, month := m[1], m[2]
		if day == "" {
			month, day = m[3], m[4]
		}
		if mi, ok := monthIndex[strings.ToLower(month)]; ok {
			d, _ := strconv.Atoi(day)
			date := time.Date(now.Year(), mi, d, 0, 0, 0, 0, time.UTC)
			return date.Format("2006-01-02"), true
		}
	}

	for _, p := range secondaryDatePatterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		text := m[0]
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "tomorrow"):
			return now.AddDate(0, 0, 1).Format("2006-01-02"), true
		case strings.Contains(lower, "today"):
			return now.Format("2006-01-02"), true
		case p.monthGroup > 0 && m[p.monthGroup] != "" && monthNameRe.MatchString(m[p.monthGroup]):
			dateStr := strings.TrimSpace(text)
			year := fmt.Sprintf("%d", now.Year())
			if !strings.Contains(dateStr, year) {
				dateStr = dateStr + ", " + year
			}
			if parsed, err := parseCalendarDate(dateStr); err == nil {
				return parsed.Format("2006-01-02"), true
			}
			// Unparseable month phrases are kept verbatim, not treated as errors.
			return strings.TrimSpace(text), true
		default:
			return strings.TrimSpace(text), true
		}
	}
	return "", false
}

func parseCalendarDate(s string) (time.Time, error) {
	s = capitalizeWords(s)
	var lastErr error
	for _, layout := range []string{"January 2, 2006", "January 2 2006", "2 January, 2006", "2 January 2006"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// capitalizeWords upper-cases the first letter of each word so month names
// match time.Parse layouts regardless of input casing.
func capitalizeWords(s string) string {
	var b strings.Builder
	prevSpace := true
	for _, r := range s {
		if prevSpace && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		prevSpace = r == ' ' || r == ',' || r == '\t'
		b.WriteRune(r)
	}
	return b.String()
}
