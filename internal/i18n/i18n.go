// Package i18n holds the English and French string tables and picks a locale
// for a request.
package i18n

import (
	"fmt"
	"strings"

	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	tags = map[string]language.Tag{
		constants.LocaleEnglish: language.English,
		constants.LocaleFrench:  language.French,
	}

	// supported is ordered to match matcher indexes.
	supported = []string{constants.LocaleEnglish, constants.LocaleFrench}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.French})

	messages = mustCatalog()
)

func mustCatalog() *catalog.Builder {
	b, err := newCatalog(map[language.Tag]map[string]string{
		language.English: english,
		language.French:  french,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to build message catalog: %v", err))
	}
	return b
}

func newCatalog(tables map[language.Tag]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s message %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

// Supported returns the locale codes that have a string table.
func Supported() []string {
	return append([]string(nil), supported...)
}

// Normalize maps a locale code such as "fr-CA" or "EN" onto a supported
// locale. The second result is false when nothing matches.
func Normalize(locale string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	if _, ok := tags[code]; ok {
		return code, true
	}
	return "", false
}

// Match picks a supported locale from an Accept-Language header value. The
// second result is false when the header names no supported language.
func Match(acceptLanguage string) (string, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return "", false
	}
	return supported[index], true
}

// Toggle returns the other locale.
func Toggle(locale string) string {
	if locale == constants.LocaleFrench {
		return constants.LocaleEnglish
	}
	return constants.LocaleFrench
}

// Translator renders messages for one locale.
type Translator struct {
	locale  string
	printer *message.Printer
}

// New returns a Translator for locale, falling back to English.
func New(locale string) *Translator {
	code, ok := Normalize(locale)
	if !ok {
		code = constants.DefaultLocale
	}
	return &Translator{
		locale:  code,
		printer: message.NewPrinter(tags[code], message.Catalog(messages)),
	}
}

// Locale returns the locale code the translator renders.
func (t *Translator) Locale() string {
	return t.locale
}

// T renders the message registered under key.
func (t *Translator) T(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// Error renders the message for a validation failure reason.
func (t *Translator) Error(reason string) string {
	return t.T(ErrorKey(reason))
}
