package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

//go:embed locales/*.json
var localeFS embed.FS

// Params are interpolation values. The "defaultValue" entry is used when a
// key is missing from every table.
type Params map[string]string

// DefaultValueParam is the params key holding the fallback template.
const DefaultValueParam = "defaultValue"

// Catalog holds one flat key -> template table per locale.
type Catalog struct {
	tables map[Locale]map[string]string
}

// NewCatalog builds a catalog from in-memory tables.
func NewCatalog(tables map[Locale]map[string]string) *Catalog {
	c := &Catalog{tables: make(map[Locale]map[string]string, len(tables))}
	for l, t := range tables {
		c.tables[l] = t
	}
	return c
}

// LoadCatalog loads the embedded tables for every supported locale.
func LoadCatalog() (*Catalog, error) {
	tables := make(map[Locale]map[string]string, len(Supported))
	for _, l := range Supported {
		data, err := localeFS.ReadFile("locales/" + string(l) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s table: %w", l, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s table: %w", l, err)
		}
		tables[l] = table
	}
	return NewCatalog(tables), nil
}

// MustLoadCatalog is LoadCatalog for callers that cannot recover. The tables
// are compiled in, so failure means a broken build.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Has reports whether l's own table defines key.
func (c *Catalog) Has(l Locale, key string) bool {
	_, ok := c.tables[l][key]
	return ok
}

// Keys returns the sorted keys of l's table.
func (c *Catalog) Keys(l Locale) []string {
	keys := make([]string, 0, len(c.tables[l]))
	for k := range c.tables[l] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves key for locale l and interpolates params.
func (c *Catalog) Lookup(l Locale, key string, params Params) string {
	tmpl, ok := c.tables[l][key]
	if !ok && l != Default {
		tmpl, ok = c.tables[Default][key]
	}
	if !ok {
		if def, has := params[DefaultValueParam]; has {
			tmpl, ok = def, true
		}
	}
	if !ok {
		return key
	}
	return interpolate(tmpl, params)
}

var placeholder = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}|%\{\s*([\w.]+)\s*\}`)

func interpolate(tmpl string, params Params) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		sub := placeholder.FindStringSubmatch(match)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		if v, ok := params[name]; ok {
			return v
		}
		return fmt.Sprintf("[missing %q value]", match)
	})
}
