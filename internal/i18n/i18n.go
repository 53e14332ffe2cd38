// Package i18n resolves translation keys against embedded catalogs.
//
// Catalogs are nested JSON objects flattened to dotted keys. A node that has
// both a message and children stores its own message under "_", so
// "error.notFound" and "error.notFound.jobPosting" can both resolve.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

const selfKey = "_"

type Bundle struct {
	fallback language.Tag
	tags     []language.Tag
	catalogs map[language.Tag]map[string]string
	matcher  language.Matcher
}

// Load builds a bundle from the embedded catalogs.
func Load(defaultLocale string) (*Bundle, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return New(sub, defaultLocale)
}

// New reads every <locale>.json in fsys. The default locale must be present;
// it is the fallback for keys missing in other catalogs.
func New(fsys fs.FS, defaultLocale string) (*Bundle, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	b := &Bundle{fallback: fallback, catalogs: map[language.Tag]map[string]string{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", e.Name(), err)
		}
		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", e.Name(), err)
		}
		flat := map[string]string{}
		flatten("", tree, flat)
		b.catalogs[tag] = flat
	}

	if _, ok := b.catalogs[fallback]; !ok {
		return nil, fmt.Errorf("missing catalog for default locale %s", fallback)
	}

	// the matcher treats the first tag as the default
	b.tags = append(b.tags, fallback)
	others := make([]language.Tag, 0, len(b.catalogs))
	for tag := range b.catalogs {
		if tag != fallback {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	b.tags = append(b.tags, others...)
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if k == selfKey {
			key = prefix
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// Match picks the best supported locale for the given preferences, which may
// be plain tags or Accept-Language header values.
func (b *Bundle) Match(prefs ...string) language.Tag {
	var wanted []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(wanted...)
	if conf == language.No {
		return b.fallback
	}
	return b.tags[idx]
}

func (b *Bundle) Supported() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Lookup resolves key in the matched catalog, then in the default catalog.
func (b *Bundle) Lookup(locale, key string) (string, bool) {
	tag := b.Match(locale)
	if msg, ok := b.catalogs[tag][key]; ok {
		return msg, true
	}
	msg, ok := b.catalogs[b.fallback][key]
	return msg, ok
}

// T translates key, returning the key itself when no catalog has it.
func (b *Bundle) T(locale, key string, values map[string]any) string {
	msg, ok := b.Lookup(locale, key)
	if !ok {
		return key
	}
	return interpolate(msg, values)
}

// Message renders an error for display: the translated key when known,
// otherwise the error's own message, otherwise the key.
func (b *Bundle) Message(locale, key, fallbackMessage string) string {
	if msg, ok := b.Lookup(locale, key); ok {
		return msg
	}
	if fallbackMessage != "" {
		return fallbackMessage
	}
	return key
}

func interpolate(msg string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
