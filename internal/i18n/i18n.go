// Package i18n supplies UI label lookup and locale-aware month names.
package i18n

import "time"

// DefaultLocale is used when a requested locale is unknown.
const DefaultLocale = "en"

// Bundle resolves labels for one active locale, falling back to the key
// itself when a label is missing so untranslated keys stay visible instead
// of disappearing.
type Bundle struct {
	locale string
	labels map[string]string
	months [12]string
}

var locales = map[string]struct {
	labels map[string]string
	months [12]string
}{
	"en": {
		labels: map[string]string{
			"week_short":  "W",
			"today":       "Today",
			"tasks":       "Tasks",
			"legend":      "Legend",
			"no_tasks":    "No tasks yet",
			"progress":    "Progress",
			"zoom_day":    "Day",
			"zoom_week":   "Week",
			"zoom_month":  "Month",
			"zoom_quarter": "Quarter",
		},
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	"sk": {
		labels: map[string]string{
			"week_short":  "T",
			"today":       "Dnes",
			"tasks":       "Úlohy",
			"legend":      "Legenda",
			"no_tasks":    "Zatiaľ žiadne úlohy",
			"progress":    "Priebeh",
			"zoom_day":    "Deň",
			"zoom_week":   "Týždeň",
			"zoom_month":  "Mesiac",
			"zoom_quarter": "Kvartál",
		},
		months: [12]string{"jan", "feb", "mar", "apr", "máj", "jún", "júl", "aug", "sep", "okt", "nov", "dec"},
	},
}

// NewBundle returns the bundle for the given locale, defaulting to English
// for unknown locales.
func NewBundle(locale string) *Bundle {
	data, ok := locales[locale]
	if !ok {
		locale = DefaultLocale
		data = locales[DefaultLocale]
	}
	return &Bundle{locale: locale, labels: data.labels, months: data.months}
}

// Locale returns the active locale code.
func (b *Bundle) Locale() string {
	return b.locale
}

// Label resolves a UI string by key, returning the key when unknown.
func (b *Bundle) Label(key string) string {
	if label, ok := b.labels[key]; ok {
		return label
	}
	return key
}

// MonthShort returns the short month name for the active locale.
func (b *Bundle) MonthShort(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return b.months[m-1]
}

// Locales lists the supported locale codes.
func Locales() []string {
	return []string{"en", "sk"}
}
