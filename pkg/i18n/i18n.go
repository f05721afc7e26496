package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator resolves dotted key paths against per-language message trees.
// Missing keys fall back to the configured fallback language, then to the
// raw key itself.
type Translator struct {
	messages map[string]map[string]interface{}
	fallback string
}

// NewTranslator creates an empty translator with the given fallback language.
func NewTranslator(fallback string) *Translator {
	return &Translator{
		messages: make(map[string]map[string]interface{}),
		fallback: fallback,
	}
}

// LoadDir loads every *.yaml file in dir as a language, keyed by file name
// (e.g. "en.yaml" becomes language "en").
func LoadDir(dir, fallback string) (*Translator, error) {
	t := NewTranslator(fallback)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: failed to read locale dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: failed to read locale file %s: %w", entry.Name(), err)
		}
		if err := t.LoadLanguage(lang, data); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// LoadLanguage parses YAML message data for a language.
func (t *Translator) LoadLanguage(lang string, data []byte) error {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("i18n: invalid locale data for %q: %w", lang, err)
	}
	t.messages[lang] = tree
	return nil
}

// Languages returns the loaded language codes.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.messages))
	for lang := range t.messages {
		langs = append(langs, lang)
	}
	return langs
}

// T resolves a dotted key path for the given language, substituting
// {{name}} placeholders from replacements. Lookup order: requested
// language, fallback language, then the key itself.
func (t *Translator) T(lang, key string, replacements map[string]string) string {
	msg, ok := lookup(t.messages[lang], key)
	if !ok {
		msg, ok = lookup(t.messages[t.fallback], key)
	}
	if !ok {
		return key
	}

	for name, value := range replacements {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", value)
	}
	return msg
}

// lookup walks a nested message tree along a dotted key path.
func lookup(tree map[string]interface{}, key string) (string, bool) {
	if tree == nil {
		return "", false
	}

	parts := strings.Split(key, ".")
	var current interface{} = tree
	for _, part := range parts {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}

	msg, ok := current.(string)
	return msg, ok
}
