// README: Contextual follow-up suggestions keyed by response context and language.
package dialogue

// Context keys for suggestion lookup.
const (
	ContextFlightResults       = "flight_results"
	ContextBookingConfirmation = "booking_confirmation"
	ContextFlightStatus        = "flight_status"
	ContextGreeting            = "greeting"
	ContextDefault             = "default"
)

// suggestionTable holds four follow-up prompts per context per language. Every
// language carries a default list; missing contexts fall back to it, missing
// languages fall back to English.
var suggestionTable = map[string]map[string][]string{
	"en": {
		ContextFlightResults: {
			"Show me business class options",
			"Find flights for tomorrow",
			"I need the cheapest option",
			"Show me return flights",
		},
		ContextBookingConfirmation: {
			"Check flight status",
			"Modify booking",
			"Book another flight",
			"Get boarding pass",
		},
		ContextFlightStatus: {
			"Book another flight",
			"Modify booking",
			"Contact airline",
			"Check baggage allowance",
		},
		ContextGreeting: {
			"I want to fly from Delhi to Mumbai",
			"Show me flights to Bangalore",
			"Find cheap flights to Goa",
			"Check flight status",
		},
		ContextDefault: {
			"I want to fly from Delhi to Mumbai tomorrow",
			"Show flights from Bangalore to Chennai",
			"Find cheap flights to Goa",
			"Book a business class ticket",
		},
	},
	"hi": {
		ContextFlightResults: {
			"मुझे बिजनेस क्लास के विकल्प दिखाएं",
			"कल के लिए उड़ानें खोजें",
			"मुझे सबसे सस्ता विकल्प चाहिए",
			"मुझे वापसी की उड़ानें दिखाएं",
		},
		ContextGreeting: {
			"मैं दिल्ली से मुंबई जाना चाहता हूं",
			"मुझे बैंगलोर के लिए उड़ानें दिखाएं",
			"गोवा के लिए सस्ती उड़ानें खोजें",
			"उड़ान की स्थिति जांचें",
		},
		ContextDefault: {
			"मैं कल दिल्ली से मुंबई जाना चाहता हूं",
			"बैंगलोर से चेन्नई की उड़ानें दिखाएं",
			"गोवा के लिए सस्ती उड़ानें खोजें",
			"एक बिजनेस क्लास टिकट बुक करें",
		},
	},
	"es": {
		ContextFlightResults: {
			"Muéstrame opciones de clase ejecutiva",
			"Buscar vuelos para mañana",
			"Necesito la opción más barata",
			"Muéstrame vuelos de regreso",
		},
		ContextGreeting: {
			"Quiero volar de Delhi a Mumbai",
			"Muéstrame vuelos a Bangalore",
			"Encuentra vuelos baratos a Goa",
			"Verificar el estado del vuelo",
		},
		ContextDefault: {
			"Quiero volar de Delhi a Mumbai mañana",
			"Mostrar vuelos de Bangalore a Chennai",
			"Encontrar vuelos baratos a Goa",
			"Reservar un billete de clase ejecutiva",
		},
	},
	"fr": {
		ContextFlightResults: {
			"Montrez-moi les options de classe affaires",
			"Trouver des vols pour demain",
			"J'ai besoin de l'option la moins chère",
			"Montrez-moi les vols de retour",
		},
		ContextGreeting: {
			"Je veux voler de Delhi à Mumbai",
			"Montrez-moi les vols pour Bangalore",
			"Trouvez des vols pas chers pour Goa",
			"Vérifier l'état du vol",
		},
		ContextDefault: {
			"Je veux voler de Delhi à Mumbai demain",
			"Afficher les vols de Bangalore à Chennai",
			"Trouver des vols pas chers pour Goa",
			"Réserver un billet en classe affaires",
		},
	},
	"de": {
		ContextFlightResults: {
			"Zeigen Sie mir Business-Class-Optionen",
			"Flüge für morgen finden",
			"Ich brauche die günstigste Option",
			"Zeigen Sie mir Rückflüge",
		},
		ContextGreeting: {
			"Ich möchte von Delhi nach Mumbai fliegen",
			"Zeigen Sie mir Flüge nach Bangalore",
			"Finden Sie günstige Flüge nach Goa",
			"Flugstatus überprüfen",
		},
		ContextDefault: {
			"Ich möchte morgen von Delhi nach Mumbai fliegen",
			"Flüge von Bangalore nach Chennai anzeigen",
			"Günstige Flüge nach Goa finden",
			"Ein Business-Class-Ticket buchen",
		},
	},
}

// Suggestions returns the follow-up prompt list for a context and language.
func Suggestions(context, language string) []string {
	lang, ok := suggestionTable[language]
	if !ok {
		lang = suggestionTable["en"]
	}
	if list, ok := lang[context]; ok {
		return list
	}
	return lang[ContextDefault]
}
