// Package i18n is the translation service: key-path lookup with {param}
// interpolation over two static language tables. A missing key resolves to
// the key string itself rather than an error.
package i18n

import (
	"log"
	"strings"
	"sync"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleTR Locale = "tr"
)

var Locales = []Locale{LocaleEN, LocaleTR}

// PrefStore is the persistence hook for the current locale, stored under
// the "locale" key.
type PrefStore interface {
	Get(key, fallback string) string
	Set(key, value string)
}

type Translator struct {
	mu     sync.RWMutex
	locale Locale
	prefs  PrefStore
}

// New restores the saved locale, defaulting to English on anything unknown.
func New(prefs PrefStore) *Translator {
	tr := &Translator{locale: LocaleEN, prefs: prefs}
	if prefs != nil {
		if saved := Locale(prefs.Get("locale", "")); saved == LocaleEN || saved == LocaleTR {
			tr.locale = saved
		}
	}
	return tr
}

func (tr *Translator) Locale() Locale {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.locale
}

// SetLocale switches the active language and persists the choice. Unknown
// locales are ignored.
func (tr *Translator) SetLocale(l Locale) {
	valid := false
	for _, known := range Locales {
		if l == known {
			valid = true
			break
		}
	}
	if !valid {
		log.Printf("Unknown locale '%s', keeping current", l)
		return
	}

	tr.mu.Lock()
	tr.locale = l
	tr.mu.Unlock()

	if tr.prefs != nil {
		tr.prefs.Set("locale", string(l))
	}
}

// T looks up a dotted key path ("notifications.levelUp") in the active
// locale's table and substitutes {param} placeholders. A missing key falls
// back to the key itself.
func (tr *Translator) T(key string, params map[string]string) string {
	tr.mu.RLock()
	locale := tr.locale
	tr.mu.RUnlock()

	value, ok := lookup(messages[locale], key)
	if !ok {
		return key
	}

	for k, v := range params {
		value = strings.ReplaceAll(value, "{"+k+"}", v)
	}
	return value
}

func lookup(table map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	var current any = table
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}
