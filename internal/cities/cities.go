// README: Ordered city alias catalog and the resolver that maps free text to city keys.
package cities

import "strings"

// City binds a stable key to the surface forms a traveler may type: IATA code,
// English names, Devanagari spellings, and romanized variants.
type City struct {
	Key     string
	Aliases []string
}

// Table is scanned top-down; when alias substrings overlap, the earlier entry
// wins, so declaration order is part of the contract.
var Table = []City{
	{Key: "delhi", Aliases: []string{"DEL", "Delhi", "New Delhi", "दिल्ली", "नई दिल्ली", "Delhi", "Nueva Delhi"}},
	{Key: "mumbai", Aliases: []string{"BOM", "Mumbai", "Bombay", "मुंबई", "बॉम्बे", "Bombay", "Bombay"}},
	{Key: "bangalore", Aliases: []string{"BLR", "Bangalore", "Bengaluru", "बैंगलोर", "बेंगलुरु", "Bangalore", "Bangalore"}},
	{Key: "chennai", Aliases: []string{"MAA", "Chennai", "Madras", "चेन्नई", "मद्रास", "Chennai", "Chennai"}},
	{Key: "kolkata", Aliases: []string{"CCU", "Kolkata", "Calcutta", "कोलकाता", "कलकत्ता", "Calcuta", "Calcuta"}},
	{Key: "hyderabad", Aliases: []string{"HYD", "Hyderabad", "हैदराबाद", "Hyderabad", "Hyderabad"}},
	{Key: "pune", Aliases: []string{"PNQ", "Pune", "पुणे", "Pune", "Pune"}},
	{Key: "ahmedabad", Aliases: []string{"AMD", "Ahmedabad", "अहमदाबाद", "Ahmedabad", "Ahmedabad"}},
	{Key: "jaipur", Aliases: []string{"JAI", "Jaipur", "जयपुर", "Jaipur", "Jaipur"}},
	{Key: "goa", Aliases: []string{"GOI", "Goa", "Panaji", "गोवा", "पणजी", "Goa", "Goa"}},
	{Key: "kochi", Aliases: []string{"COK", "Kochi", "Cochin", "कोच्चि", "कोचीन", "Kochi", "Kochi"}},
	{Key: "lucknow", Aliases: []string{"LKO", "Lucknow", "लखनऊ", "Lucknow", "Lucknow"}},
	{Key: "chandigarh", Aliases: []string{"IXC", "Chandigarh", "चंडीगढ़", "Chandigarh", "Chandigarh"}},
	{Key: "bhubaneswar", Aliases: []string{"BBI", "Bhubaneswar", "भुवनेश्वर", "Bhubaneswar", "Bhubaneswar"}},
	{Key: "indore", Aliases: []string{"IDR", "Indore", "इंदौर", "Indore", "Indore"}},
	{Key: "coimbatore", Aliases: []string{"CJB", "Coimbatore", "कोयंबटूर", "Coimbatore", "Coimbatore"}},
	{Key: "nagpur", Aliases: []string{"NAG", "Nagpur", "नागपुर", "Nagpur", "Nagpur"}},
	{Key: "vadodara", Aliases: []string{"BDQ", "Vadodara", "वडोदरा", "Vadodara", "Vadodara"}},
	{Key: "srinagar", Aliases: []string{"SXR", "Srinagar", "श्रीनगर", "Srinagar", "Srinagar"}},
	{Key: "thiruvananthapuram", Aliases: []string{"TRV", "Thiruvananthapuram", "Trivandrum", "तिरुवनंतपुरम", "त्रिवेंद्रम", "Thiruvananthapuram", "Trivandrum"}},
}

// Resolve matches a text fragment against the alias table and returns the first
// city whose alias appears as a case-insensitive substring. Substring matching
// tolerates surrounding words ("new delhi please" still resolves); the
// occasional false positive from a short alias inside an unrelated word is an
// accepted trade-off.
func Resolve(fragment string) (string, bool) {
	if fragment == "" {
		return "", false
	}
	lower := strings.ToLower(fragment)
	for _, c := range Table {
		for _, alias := range c.Aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return c.Key, true
			}
		}
	}
	return "", false
}

// Get returns the catalog entry for a city key.
func Get(key string) (City, bool) {
	for _, c := range Table {
		if c.Key == key {
			return c, true
		}
	}
	return City{}, false
}

// IATA returns the airport code for a city key, or "" when unknown.
func IATA(key string) string {
	if c, ok := Get(key); ok {
		return c.Aliases[0]
	}
	return ""
}

// DisplayName returns the English display name for a city key. Unknown keys
// fall back to the key itself so reply text never renders empty.
func DisplayName(key string) string {
	if c, ok := Get(key); ok && len(c.Aliases) > 1 {
		return c.Aliases[1]
	}
	return key
}
