package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument_StartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.Equal(t, []byte{0x1B, '@'}, doc.Bytes()[:2])
}

func TestKeyValue_RightAlignsValue(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total", "99.00")

	out := string(doc.Bytes())
	assert.Contains(t, out, "Total          99.00\n")
}

func TestKeyValue_OverlongKeepsSingleSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("Very long key", "123456.00")

	out := string(doc.Bytes())
	assert.Contains(t, out, "Very long key 123456.00")
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(24)
	doc.ItemLine(2, "Burger", "240.00")

	out := string(doc.Bytes())
	assert.Contains(t, out, "2x Burger")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "240.00"))
}

func TestSeparator_FullWidth(t *testing.T) {
	doc := NewDocument(16)
	doc.Separator('-')

	assert.Contains(t, string(doc.Bytes()), strings.Repeat("-", 16)+"\n")
}

func TestCut_AppendsCutCommand(t *testing.T) {
	doc := NewDocument(32)
	doc.Cut()

	out := doc.Bytes()
	assert.Equal(t, []byte{0x1D, 'V', 0x00}, out[len(out)-3:])
}

func TestZeroWidthDefaultsTo32(t *testing.T) {
	doc := NewDocument(0)
	doc.Separator('=')

	assert.Contains(t, string(doc.Bytes()), strings.Repeat("=", 32))
}
