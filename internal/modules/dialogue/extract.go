// README: Slot extraction: origin/destination cities, date, passengers, cabin class.
package dialogue

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"skybot/internal/cities"
)

// fromToRe captures both spans of a combined "from X to Y" phrase; either span
// may still fail city resolution independently.
var fromToRe = regexp.MustCompile(`(?i)(?:from|departing|leaving)\s+([a-zA-Z\s]+)\s+(?:to|for|towards)\s+([a-zA-Z\s]+)`)

var fromRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)from\s+([a-zA-Z\s]+?)(?:\s+to|\s+$)`),
	regexp.MustCompile(`(?i)leaving\s+([a-zA-Z\s]+?)(?:\s+to|\s+$)`),
	regexp.MustCompile(`(?i)departing\s+([a-zA-Z\s]+?)(?:\s+to|\s+$)`),
}

var toRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)to\s+([a-zA-Z\s]+?)(?:\s+on|\s+tomorrow|\s+today|\s+$)`),
	regexp.MustCompile(`(?i)going\s+to\s+([a-zA-Z\s]+?)(?:\s+on|\s+tomorrow|\s+today|\s+$)`),
	regexp.MustCompile(`(?i)flying\s+to\s+([a-zA-Z\s]+?)(?:\s+on|\s+tomorrow|\s+today|\s+$)`),
}

var passengersRe = regexp.MustCompile(`(?i)(\d+)\s+(?:passenger|person|people|traveler)`)

var classRe = regexp.MustCompile(`(?i)(economy|business|first)\s*class`)

// ExtractFlightInfo pulls the search slots out of a message. Each step only
// runs while its slot is still empty, except the date, which is extracted
// unconditionally.
func ExtractFlightInfo(message string, now time.Time) SearchParams {
	var params SearchParams

	if m := fromToRe.FindStringSubmatch(message); m != nil {
		if key, ok := cities.Resolve(strings.TrimSpace(m[1])); ok {
			params.From = key
		}
		if key, ok := cities.Resolve(strings.TrimSpace(m[2])); ok {
			params.To = key
		}
	}

	if params.From == "" {
		for _, re := range fromRes {
			m := re.FindStringSubmatch(message)
			if m == nil {
				continue
			}
			if key, ok := cities.Resolve(strings.TrimSpace(m[1])); ok {
				params.From = key
				break
			}
		}
	}

	if params.To == "" {
		for _, re := range toRes {
			m := re.FindStringSubmatch(message)
			if m == nil {
				continue
			}
			if key, ok := cities.Resolve(strings.TrimSpace(m[1])); ok {
				params.To = key
				break
			}
		}
	}

	if date, ok := ExtractDate(message, now); ok {
		params.Date = date
	}

	if m := passengersRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			params.Passengers = n
		}
	}

	if m := classRe.FindStringSubmatch(message); m != nil {
		params.Class = strings.ToLower(m[1])
	}

	return params
}
