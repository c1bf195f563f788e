package templates

import (
	"github.com/akinlade-dev/Extracta/internal/models"
)

// Built-in template catalog. Constructed once at init and never mutated, so
// concurrent readers need no synchronization.
var builtins = []models.Template{
	{
		Name: "invoice_v1",
		Fields: []models.Field{
			{Name: "invoice_number", Spec: models.FieldSpec{
				Pattern:     `(?:Invoice\s*(?:No\.?|#)\s*)\s*(?P<value>[A-Z0-9\-_/]{3,})`,
				Postprocess: "strip",
				Required:    true,
			}},
			{Name: "invoice_date", Spec: models.FieldSpec{
				Pattern:     `(?:Date)[:\s]*?(?P<value>\d{2}[/-]\d{2}[/-]\d{4}|\d{4}[/-]\d{2}[/-]\d{2})`,
				Postprocess: "date",
				Required:    true,
			}},
			{Name: "total_amount", Spec: models.FieldSpec{
				Pattern:     `(?:Total)[:\s]*?(?P<value>[\p{Sc}]?\s?\d{1,3}(?:[\s,]\d{3})*(?:\.\d{2})?)`,
				Postprocess: "currency",
				Required:    true,
			}},
			{Name: "currency", Spec: models.FieldSpec{
				Pattern:     `(?P<value>USD|EUR|GBP|\$|€|£)`,
				Postprocess: "strip",
				Required:    false,
			}},
		},
	},
	{
		Name: "receipt_v1",
		Fields: []models.Field{
			{Name: "store_name", Spec: models.FieldSpec{
				Pattern:     `(?P<value>[A-Za-z\s&.,]{2,50})`,
				Postprocess: "strip",
				Required:    true,
			}},
			{Name: "total_amount", Spec: models.FieldSpec{
				Pattern:     `(?:Total|Amount)[:\s]*?(?P<value>[\p{Sc}]?\s?\d{1,3}(?:[\s,]\d{3})*(?:\.\d{2})?)`,
				Postprocess: "currency",
				Required:    true,
			}},
			{Name: "date", Spec: models.FieldSpec{
				Pattern:     `(?P<value>\d{2}[/-]\d{2}[/-]\d{4}|\d{4}[/-]\d{2}[/-]\d{2})`,
				Postprocess: "date",
				Required:    true,
			}},
		},
	},
}

var catalog = func() map[string]models.Template {
	m := make(map[string]models.Template, len(builtins))
	for _, t := range builtins {
		m[t.Name] = t
	}
	return m
}()

// Get looks up a built-in template by name.
func Get(name string) (models.Template, bool) {
	t, ok := catalog[name]
	return t, ok
}

// Names lists the catalog keys in declaration order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for _, t := range builtins {
		out = append(out, t.Name)
	}
	return out
}
