package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustom(t *testing.T) {
	raw := []byte(`{
		"name": "custom_invoice",
		"fields": {
			"invoice_number": {
				"pattern": "Invoice No:\\s*(?P<value>[A-Z0-9\\-]+)",
				"postprocess": "strip",
				"required": true
			},
			"total": {
				"pattern": "Total:\\s*(?P<value>\\$[\\d,]+\\.\\d+)",
				"postprocess": "currency",
				"required": false
			}
		}
	}`)

	tmpl, err := ParseCustom(raw)
	require.NoError(t, err)

	assert.Equal(t, "custom_invoice", tmpl.Name)
	require.Len(t, tmpl.Fields, 2)
	assert.Equal(t, "invoice_number", tmpl.Fields[0].Name)
	assert.Equal(t, "total", tmpl.Fields[1].Name)
	assert.True(t, tmpl.Fields[0].Spec.Required)
	assert.False(t, tmpl.Fields[1].Spec.Required)
	assert.Equal(t, "currency", tmpl.Fields[1].Spec.Postprocess)
}

func TestParseCustomDefaults(t *testing.T) {
	raw := []byte(`{"name": "t", "fields": {"ref": {"pattern": "Ref: (\\w+)"}}}`)

	tmpl, err := ParseCustom(raw)
	require.NoError(t, err)
	require.Len(t, tmpl.Fields, 1)
	assert.Equal(t, "strip", tmpl.Fields[0].Spec.Postprocess)
	assert.True(t, tmpl.Fields[0].Spec.Required)
}

func TestParseCustomPreservesFieldOrder(t *testing.T) {
	raw := []byte(`{"name": "t", "fields": {
		"zebra": {"pattern": "z"},
		"alpha": {"pattern": "a"},
		"mid": {"pattern": "m"}
	}}`)

	tmpl, err := ParseCustom(raw)
	require.NoError(t, err)

	var names []string
	for _, f := range tmpl.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"zebra", "alpha", "mid"}, names)
}

func TestParseCustomInvalidJSON(t *testing.T) {
	_, err := ParseCustom([]byte(`{"name": "broken"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseCustomMissingRequiredKeys(t *testing.T) {
	_, err := ParseCustom([]byte(`{"fields": {"a": {"pattern": "x"}}}`))
	require.Error(t, err)

	_, err = ParseCustom([]byte(`{"name": "no_fields"}`))
	require.Error(t, err)

	_, err = ParseCustom([]byte(`{"name": "empty", "fields": {}}`))
	require.Error(t, err)
}

func TestParseCustomFieldMissingPattern(t *testing.T) {
	_, err := ParseCustom([]byte(`{"name": "t", "fields": {"a": {"postprocess": "strip"}}}`))
	require.Error(t, err)
}

func TestParseCustomRejectsBadPattern(t *testing.T) {
	_, err := ParseCustom([]byte(`{"name": "t", "fields": {"bad": {"pattern": "(["}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "bad"`)
}

func TestParseCustomIgnoresExtraTopLevelKeys(t *testing.T) {
	raw := []byte(`{"name": "t", "version": 2, "fields": {"a": {"pattern": "x"}}}`)

	tmpl, err := ParseCustom(raw)
	require.NoError(t, err)
	assert.Equal(t, "t", tmpl.Name)
	require.Len(t, tmpl.Fields, 1)
}
