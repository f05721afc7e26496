package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enYAML = `
receipt:
  total: TOTAL
  greeting: Hello {{name}}!
common:
  yes: "Yes"
`

const hiYAML = `
receipt:
  total: कुल
`

func newTestTranslator(t *testing.T) *Translator {
	tr := NewTranslator("en")
	require.NoError(t, tr.LoadLanguage("en", []byte(enYAML)))
	require.NoError(t, tr.LoadLanguage("hi", []byte(hiYAML)))
	return tr
}

func TestT_DottedLookup(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "TOTAL", tr.T("en", "receipt.total", nil))
	assert.Equal(t, "कुल", tr.T("hi", "receipt.total", nil))
}

func TestT_FallsBackToFallbackLanguage(t *testing.T) {
	tr := newTestTranslator(t)

	// "hi" has no common.yes, the English message is used
	assert.Equal(t, "Yes", tr.T("hi", "common.yes", nil))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "receipt.missing", tr.T("en", "receipt.missing", nil))
	assert.Equal(t, "receipt.total.extra", tr.T("en", "receipt.total.extra", nil))
}

func TestT_UnknownLanguageUsesFallback(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "TOTAL", tr.T("fr", "receipt.total", nil))
}

func TestT_Placeholders(t *testing.T) {
	tr := newTestTranslator(t)

	got := tr.T("en", "receipt.greeting", map[string]string{"name": "Asha"})
	assert.Equal(t, "Hello Asha!", got)
}

func TestLoadLanguage_InvalidYAML(t *testing.T) {
	tr := NewTranslator("en")
	assert.Error(t, tr.LoadLanguage("en", []byte("receipt: [unclosed")))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(enYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hi.yaml"), []byte(hiYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	tr, err := LoadDir(dir, "en")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "hi"}, tr.Languages())
	assert.Equal(t, "कुल", tr.T("hi", "receipt.total", nil))
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := LoadDir("/does/not/exist", "en")
	assert.Error(t, err)
}
