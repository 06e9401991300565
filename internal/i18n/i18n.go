// Package i18n holds the localized terminal strings. Templates use
// {name} placeholders substituted by Format.
package i18n

import "strings"

// DefaultLocale is used when the requested locale has no table.
const DefaultLocale = "en-us"

// Catalog resolves message keys for one locale.
type Catalog struct {
	locale string
	table  map[string]string
}

// New returns the catalog for the given locale. Unknown locales fall
// back to en-us; lookup is case-insensitive.
func New(locale string) *Catalog {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	table, ok := locales[normalized]
	if !ok {
		normalized = DefaultLocale
		table = locales[DefaultLocale]
	}
	return &Catalog{locale: normalized, table: table}
}

// Locale returns the locale the catalog resolved to.
func (c *Catalog) Locale() string {
	return c.locale
}

// Get returns the message for key, or the key itself when no message
// exists in this locale or the default one.
func (c *Catalog) Get(key string) string {
	if msg, ok := c.table[key]; ok {
		return msg
	}
	if msg, ok := locales[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Format resolves key and substitutes each {name} placeholder with the
// matching args value. Placeholders without a value are left intact.
func (c *Catalog) Format(key string, args map[string]string) string {
	msg := c.Get(key)
	for name, value := range args {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Locales lists the available locale codes.
func Locales() []string {
	return []string{"en-us", "pt-br"}
}
