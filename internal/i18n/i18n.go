// Package i18n renders selection errors as localized, human readable text.
package i18n

import (
	"errors"
	"strings"

	"github.com/mydehq/pagesel/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	keyInvalidNumber  = "Invalid number: %s."
	keyAmbiguousRange = "Ambiguous page range definition: %s. Use following formats: [n] or [n1-n2] or [-n] or [n-]"
	keyInvalidRange   = "Invalid range: %s."
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		keyInvalidNumber:  keyInvalidNumber,
		keyAmbiguousRange: keyAmbiguousRange,
		keyInvalidRange:   keyInvalidRange,
	},
	language.Italian: {
		keyInvalidNumber:  "Numero non valido: %s.",
		keyAmbiguousRange: "Definizione di intervallo di pagine ambigua: %s. Usa i seguenti formati: [n] o [n1-n2] o [-n] o [n-]",
		keyInvalidRange:   "Intervallo non valido: %s.",
	},
	language.German: {
		keyInvalidNumber:  "Ungültige Zahl: %s.",
		keyAmbiguousRange: "Mehrdeutige Seitenbereichsangabe: %s. Erlaubte Formate: [n] oder [n1-n2] oder [-n] oder [n-]",
		keyInvalidRange:   "Ungültiger Bereich: %s.",
	},
}

// Supported lists the available locales; the first entry is the fallback.
var Supported = []language.Tag{language.English, language.Italian, language.German}

var (
	messages = buildCatalog()
	matcher  = language.NewMatcher(Supported)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Match resolves a locale such as "it_IT.UTF-8", "de-AT" or "fr" to the
// closest supported language, falling back to English.
func Match(locale string) language.Tag {
	// HTTP Accept-Language lists, e.g. "it-IT,it;q=0.9,en;q=0.8"
	if strings.ContainsAny(locale, ",;") {
		tags, _, err := language.ParseAcceptLanguage(locale)
		if err != nil || len(tags) == 0 {
			return Supported[0]
		}
		_, idx, _ := matcher.Match(tags...)
		return Supported[idx]
	}

	// POSIX codeset and modifier suffixes
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Supported[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// printer returns a message printer for the given locale
func printer(locale string) *message.Printer {
	return message.NewPrinter(Match(locale), message.Catalog(messages))
}

// Message renders err for an end user in the given locale. Errors that are
// not selection errors are returned as err.Error().
func Message(err error, locale string) string {
	if err == nil {
		return ""
	}

	var selErr types.SelectionError
	if !errors.As(err, &selErr) {
		return err.Error()
	}

	key := keyFor(selErr.Kind())
	if key == "" {
		return err.Error()
	}
	return printer(locale).Sprintf(key, selErr.Value())
}

func keyFor(kind string) string {
	switch kind {
	case types.KindInvalidNumber:
		return keyInvalidNumber
	case types.KindAmbiguousRange:
		return keyAmbiguousRange
	case types.KindInvalidRange:
		return keyInvalidRange
	}
	return ""
}
