package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument_StartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}))
}

func TestNewDocument_DefaultsWidth(t *testing.T) {
	doc := NewDocument(0)
	doc.Separator('-')
	assert.Contains(t, string(doc.Bytes()), strings.Repeat("-", 32))
}

func TestKeyValue_RightAlignsValue(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Subtotal:", "350.00")

	line := "Subtotal:" + strings.Repeat(" ", 32-len("Subtotal:")-len("350.00")) + "350.00"
	assert.Contains(t, string(doc.Bytes()), line+"\n")
}

func TestKeyValue_NeverCollapsesBelowOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("averylongkey:", "99999.99")
	assert.Contains(t, string(doc.Bytes()), "averylongkey: 99999.99")
}

func TestWeightLine(t *testing.T) {
	doc := NewDocument(32)
	doc.WeightLine("Tomato", 500, "25.00")

	out := string(doc.Bytes())
	assert.Contains(t, out, "Tomato 500g")
	assert.Contains(t, out, "25.00\n")

	idx := strings.Index(out, "Tomato 500g")
	end := strings.Index(out[idx:], "\n")
	assert.Equal(t, 32, end)
}

func TestSeparator(t *testing.T) {
	doc := NewDocument(16)
	doc.Separator('=')
	assert.Contains(t, string(doc.Bytes()), strings.Repeat("=", 16)+"\n")
}

func TestCutCommands(t *testing.T) {
	full := NewDocument(32)
	full.Cut()
	assert.True(t, bytes.HasSuffix(full.Bytes(), []byte{GS, 'V', 0x00}))

	partial := NewDocument(32)
	partial.PartialCut()
	assert.True(t, bytes.HasSuffix(partial.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte("anything")))
	assert.NoError(t, p.Close())
	assert.False(t, p.IsConnected())
}

func TestNewPrinterFromConfig_None(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.False(t, p.IsConnected())
}

func TestNewPrinterFromConfig_Unknown(t *testing.T) {
	_, err := NewPrinterFromConfig("carrier-pigeon", "", "")
	assert.Error(t, err)
}
