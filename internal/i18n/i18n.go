// Package i18n resolves the few user-facing strings the service produces
// itself and maps studio languages to locales. Page copy stays with the
// presentation layer.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Supported languages. Russian is the studio default.
const (
	LangRU = "ru"
	LangEN = "en"
	LangHE = "he"

	DefaultLang = LangRU
)

// Languages lists the supported languages in switcher order.
var Languages = []string{LangRU, LangHE, LangEN}

var supportedTags = []language.Tag{language.Russian, language.Hebrew, language.English}

var matcher = language.NewMatcher(supportedTags)

// Supported reports whether lang is one of the studio languages.
func Supported(lang string) bool {
	switch lang {
	case LangRU, LangEN, LangHE:
		return true
	}
	return false
}

// Normalize reduces a language or locale tag ("he-IL", "RU") to a supported
// language code, or "" when the tag is not supported.
func Normalize(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	if Supported(base.String()) {
		return base.String()
	}
	return ""
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// Locale returns the BCP 47 locale used for date formatting.
func Locale(lang string) string {
	switch lang {
	case LangHE:
		return "he-IL"
	case LangRU:
		return "ru-RU"
	default:
		return "en-US"
	}
}

// Dir returns the text direction for lang.
func Dir(lang string) string {
	if lang == LangHE {
		return "rtl"
	}
	return "ltr"
}

// WeekStartsMonday reports whether the month grid for locale starts on
// Monday. Russian and Hebrew locales do; everything else starts on Sunday.
func WeekStartsMonday(locale string) bool {
	switch Normalize(locale) {
	case LangRU, LangHE:
		return true
	}
	return false
}

// Translator looks strings up in the compiled-in catalog.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator returns a Translator over the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// T returns the localized string for key in lang. Missing languages fall back
// to English, unknown keys return the key itself. Args are applied with
// fmt.Sprintf when present.
func (tr *Translator) T(lang, key string, args ...any) string {
	byLang, ok := tr.messages[lang]
	if !ok {
		byLang = tr.messages[LangEN]
	}
	tmpl, ok := byLang[key]
	if !ok {
		tmpl, ok = tr.messages[LangEN][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// WeekdayNames returns short weekday names for lang in grid column order.
func (tr *Translator) WeekdayNames(lang string, weekdays []time.Weekday) []string {
	names, ok := shortWeekdays[lang]
	if !ok {
		names = shortWeekdays[LangEN]
	}
	out := make([]string, len(weekdays))
	for i, wd := range weekdays {
		out[i] = names[wd]
	}
	return out
}
