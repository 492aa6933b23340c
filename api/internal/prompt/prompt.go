// Package prompt holds the per-language instruction templates sent to the
// model. Tables are read-only after init; an unknown language code selects
// DefaultLanguage.
package prompt

import (
	"fmt"
	"sort"
)

const DefaultLanguage = "en"

var quoteTemplates = map[string]string{
	"en": "Generate a short, original motivational quote about productivity and focus. Respond with only the quote text, without an author and without any extra commentary.",
	"es": "Genera una cita motivacional breve y original sobre la productividad y la concentración. Responde solo con el texto de la cita, sin autor y sin comentarios adicionales.",
	"hi": "उत्पादकता और एकाग्रता के बारे में एक छोटा, मौलिक प्रेरणादायक उद्धरण लिखें। केवल उद्धरण का पाठ लौटाएँ, लेखक का नाम या कोई अतिरिक्त टिप्पणी न जोड़ें।",
}

var breakTemplates = map[string]string{
	"en": "Suggest one short, healthy break activity (under 10 minutes) for someone who has been working on their tasks for a while. Respond with a single sentence only.",
	"es": "Sugiere una actividad de descanso breve y saludable (menos de 10 minutos) para alguien que lleva un rato trabajando en sus tareas. Responde solo con una frase.",
	"hi": "कुछ समय से अपने कार्यों पर काम कर रहे व्यक्ति के लिए एक छोटी, स्वस्थ विश्राम गतिविधि (10 मिनट से कम) सुझाएँ। केवल एक वाक्य में उत्तर दें।",
}

// priorityTemplates take the task text as their single %s verb.
var priorityTemplates = map[string]string{
	"en": "Given the task: '%s', determine its priority as 'low', 'medium', or 'high'. Consider task urgency, importance, and complexity. Respond with just a JSON object with two fields: 'priority' which is one of: 'low', 'medium', or 'high', and 'explanation' which is a short explanation of why you chose that priority.",
	"es": "Dada la tarea: '%s', determina su prioridad como 'baja', 'media', o 'alta'. Considera la urgencia, importancia y complejidad de la tarea. Responde con un objeto JSON con dos campos: 'priority' que es uno de: 'low', 'medium', o 'high', y 'explanation' que es una breve explicación de por qué elegiste esa prioridad.",
	"hi": "कार्य के आधार पर: '%s', इसकी प्राथमिकता 'निम्न', 'मध्यम', या 'उच्च' के रूप में निर्धारित करें। कार्य की तात्कालिकता, महत्व और जटिलता पर विचार करें। केवल एक JSON ऑब्जेक्ट के साथ उत्तर दें जिसमें दो फील्ड हों: 'priority' जो इनमें से एक है: 'low', 'medium', या 'high', और 'explanation' जो एक संक्षिप्त स्पष्टीकरण है कि आपने वह प्राथमिकता क्यों चुनी।",
}

func Quote(lang string) string {
	return lookup(quoteTemplates, lang)
}

func BreakSuggestion(lang string) string {
	return lookup(breakTemplates, lang)
}

// Priority interpolates task verbatim; it is plain text to the model.
func Priority(task, lang string) string {
	return fmt.Sprintf(lookup(priorityTemplates, lang), task)
}

// Supported reports whether lang has its own templates.
func Supported(lang string) bool {
	_, ok := quoteTemplates[lang]
	return ok
}

// Languages returns the supported codes in sorted order.
func Languages() []string {
	out := make([]string, 0, len(quoteTemplates))
	for k := range quoteTemplates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func lookup(table map[string]string, lang string) string {
	if t, ok := table[lang]; ok {
		return t
	}
	return table[DefaultLanguage]
}
