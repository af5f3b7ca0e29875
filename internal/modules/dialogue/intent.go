// README: Intent classification as an ordered predicate chain.
package dialogue

import (
	"regexp"
	"strings"
)

// One fixed greeting list regardless of the request language.
var greetings = []string{
	"hi", "hello", "hey", "greetings",
	"good morning", "good afternoon", "good evening",
	"howdy", "namaste", "hola", "bonjour", "ciao", "konnichiwa", "salaam", "ni hao",
}

var statusKeywords = []string{"status", "check", "track", "flight number", "delayed", "on time"}

var searchKeywords = []string{
	"flight", "fly", "travel", "book", "ticket", "from", "to", "trip", "journey",
	"plane", "air", "aviation", "departure", "arrival", "cheap", "best",
	"options", "show", "find", "search",
}

var flightNumberRe = regexp.MustCompile(`(?i)\b([A-Z0-9]{2})\s*(\d{3,4})\b`)

type intentRule struct {
	intent Intent
	match  func(lower string) bool
}

// intentRules is evaluated top-down, first match wins. Several keyword sets
// overlap ("book" appears in both the search keywords and the booking check,
// "status"/"check" in both status checks), so this order is the tie-break and
// must not be rearranged.
var intentRules = []intentRule{
	{IntentGreeting, isGreeting},
	{IntentFlightStatus, func(m string) bool {
		return containsAny(m, statusKeywords) || flightNumberRe.MatchString(m)
	}},
	{IntentFlightSearch, func(m string) bool { return containsAny(m, searchKeywords) }},
	{IntentHelp, func(m string) bool {
		return strings.Contains(m, "help") || strings.Contains(m, "what can you do")
	}},
	{IntentPriceInquiry, func(m string) bool {
		return containsAny(m, []string{"price", "cost", "cheap"})
	}},
	{IntentStatusInquiry, func(m string) bool {
		return containsAny(m, []string{"status", "check"})
	}},
	{IntentBookingInquiry, func(m string) bool {
		return containsAny(m, []string{"book", "reserve"})
	}},
	{IntentOptionsInquiry, func(m string) bool {
		return containsAny(m, []string{"options", "give options"})
	}},
}

// Classify decides which conversational intent a message represents.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, r := range intentRules {
		if r.match(lower) {
			return r.intent
		}
	}
	return IntentFallback
}

func isGreeting(lower string) bool {
	trimmed := strings.TrimSpace(lower)
	for _, g := range greetings {
		if trimmed == g || strings.HasPrefix(trimmed, g+" ") {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// extractFlightNumber pulls a normalized flight number ("AI101") from the
// message, defaulting when the pattern is absent.
func extractFlightNumber(message string) string {
	m := flightNumberRe.FindStringSubmatch(message)
	if m == nil {
		return "6E2345"
	}
	return strings.ToUpper(m[1]) + m[2]
}
