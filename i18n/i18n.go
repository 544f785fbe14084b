// Package i18n localizes validation messages. Catalogs exist for English,
// German, French and Italian; English is the fallback.
package i18n

import (
	"strconv"
	"strings"
)

const defaultLanguage = "en"

// DetectLanguage picks a supported language from an Accept-Language header.
// It returns the first supported language in header order, or "en".
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(lang, "-;"); i >= 0 {
			lang = lang[:i]
		}
		if _, ok := catalogs[lang]; ok {
			return lang
		}
	}
	return defaultLanguage
}

// T returns the translation of the message key. Unknown languages fall back
// to English; unknown keys are returned unchanged.
func T(lang, key string) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[defaultLanguage]
	}
	if msg, ok := catalog[key]; ok {
		return msg
	}
	if msg, ok := catalogs[defaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Localize translates the message key and substitutes the numbered
// placeholders {0}, {1}, ... with the message parameters.
func Localize(lang, key string, params []string) string {
	msg := T(lang, key)
	for i, p := range params {
		msg = strings.ReplaceAll(msg, "{"+strconv.Itoa(i)+"}", p)
	}
	return msg
}
