package api

import "golang.org/x/text/language"

// Reports default to French; English is the only other supported
// output language.
var languageMatcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

// negotiateLanguage maps an Accept-Language header to a report
// language code. Unparseable or absent headers fall back to French.
func negotiateLanguage(header string) string {
	if header == "" {
		return "fr"
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "fr"
	}
	_, idx, _ := languageMatcher.Match(tags...)
	if idx == 1 {
		return "en"
	}
	return "fr"
}
