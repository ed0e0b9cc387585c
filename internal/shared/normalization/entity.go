package normalization

import "strings"

// entityAliases maps the entity names used by the web application's events to their canonical form.
var entityAliases = map[string]string{
	"":        "",
	"-":       "",
	"default": "",

	"listing":    "listings",
	"listings":   "listings",
	"business":   "listings",
	"businesses": "listings",
	"negocio":    "listings",
	"negocios":   "listings",

	"hours":    "hours",
	"horario":  "hours",
	"horarios": "hours",
}

// NormalizeEntity converts entity names to their canonical form, handling singular/plural forms,
// separators and Spanish aliases. Unknown names are returned lowercased and hyphenated.
//
// Example:
//
//	NormalizeEntity("Negocio") => "listings"
//	NormalizeEntity("horarios") => "hours"
func NormalizeEntity(raw string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	return normalized
}
