package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/akinlade-dev/Extracta/internal/models"
)

// JSON-Schema for caller-supplied ad-hoc templates: top-level "name" and
// "fields" are required, every field needs at least a pattern.
const customTemplateSchema = `{
	"type": "object",
	"required": ["name", "fields"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"fields": {
			"type": "object",
			"minProperties": 1,
			"additionalProperties": {
				"type": "object",
				"required": ["pattern"],
				"properties": {
					"pattern": {"type": "string", "minLength": 1},
					"postprocess": {"type": "string"},
					"required": {"type": "boolean"}
				}
			}
		}
	}
}`

var customSchema = jsonschema.MustCompileString("template.json", customTemplateSchema)

// ParseCustom validates and decodes an ad-hoc template definition. It rejects
// malformed JSON, definitions missing the required shape, and patterns that do
// not compile, so extraction itself never sees an invalid template. Field
// order in the JSON object is preserved because it defines extraction order.
func ParseCustom(raw []byte) (models.Template, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.Template{}, fmt.Errorf("invalid JSON in template: %w", err)
	}
	if err := customSchema.Validate(v); err != nil {
		return models.Template{}, fmt.Errorf("template must have 'name' and 'fields': %w", err)
	}

	tmpl, err := decodeOrdered(raw)
	if err != nil {
		return models.Template{}, err
	}

	for _, f := range tmpl.Fields {
		if _, err := regexp.Compile("(?im)" + f.Spec.Pattern); err != nil {
			return models.Template{}, fmt.Errorf("field %q: pattern does not compile: %w", f.Name, err)
		}
	}
	return tmpl, nil
}

// fieldSpecJSON mirrors models.FieldSpec with a pointer Required so defaults
// apply when keys are absent (postprocess=strip, required=true).
type fieldSpecJSON struct {
	Pattern     string `json:"pattern"`
	Postprocess string `json:"postprocess"`
	Required    *bool  `json:"required"`
}

// decodeOrdered walks the JSON tokens of an already schema-validated template
// so that the "fields" object keys come out in document order; a plain map
// decode would lose it.
func decodeOrdered(raw []byte) (models.Template, error) {
	var tmpl models.Template

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening {
		return tmpl, fmt.Errorf("decode template: %w", err)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return tmpl, fmt.Errorf("decode template: %w", err)
		}
		key, _ := keyTok.(string)

		switch key {
		case "name":
			if err := dec.Decode(&tmpl.Name); err != nil {
				return tmpl, fmt.Errorf("decode template name: %w", err)
			}
		case "fields":
			if _, err := dec.Token(); err != nil { // opening {
				return tmpl, fmt.Errorf("decode template fields: %w", err)
			}
			for dec.More() {
				nameTok, err := dec.Token()
				if err != nil {
					return tmpl, fmt.Errorf("decode template fields: %w", err)
				}
				fieldName, _ := nameTok.(string)

				var fs fieldSpecJSON
				if err := dec.Decode(&fs); err != nil {
					return tmpl, fmt.Errorf("decode field %q: %w", fieldName, err)
				}

				spec := models.FieldSpec{
					Pattern:     fs.Pattern,
					Postprocess: fs.Postprocess,
					Required:    true,
				}
				if spec.Postprocess == "" {
					spec.Postprocess = "strip"
				}
				if fs.Required != nil {
					spec.Required = *fs.Required
				}
				tmpl.Fields = append(tmpl.Fields, models.Field{Name: fieldName, Spec: spec})
			}
			if _, err := dec.Token(); err != nil { // closing }
				return tmpl, fmt.Errorf("decode template fields: %w", err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return tmpl, fmt.Errorf("decode template: %w", err)
			}
		}
	}
	return tmpl, nil
}
