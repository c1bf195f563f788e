package extraction

import (
	"regexp"
	"unicode/utf8"

	"github.com/akinlade-dev/Extracta/internal/models"
)

// Value shape classes used for the confidence bonus, checked in priority
// order; the first hit wins so bonuses never stack.
var shapeClasses = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z0-9\-_/]{3,}$`),  // identifier-like
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), // ISO date
	regexp.MustCompile(`^\d+(\.\d{2})?$`),     // plain number / currency amount
}

// Extract applies each of the template's field rules against text and returns
// the per-field results plus the arithmetic mean of the recorded confidences
// (0.0 when no field contributed).
//
// The function is total: malformed patterns and any other per-field failure
// degrade to "no match". A required field that does not match is emitted as an
// empty zero-confidence placeholder and counted in the average; an optional
// one is omitted entirely. Extract reads only its inputs and is safe for
// concurrent use as long as the template is not mutated.
func Extract(text string, tmpl models.Template) (map[string]models.FieldResult, float64) {
	fields := make(map[string]models.FieldResult)
	var confidences []float64

	record := func(name string, res models.FieldResult) {
		fields[name] = res
		confidences = append(confidences, res.Confidence)
	}

	for _, f := range tmpl.Fields {
		raw, ok := matchField(text, f.Spec.Pattern)
		if !ok {
			if f.Spec.Required {
				record(f.Name, models.FieldResult{Value: "", Confidence: 0.0})
			}
			continue
		}

		value := Normalize(raw, f.Spec.Postprocess)
		record(f.Name, models.FieldResult{
			Value:      value,
			Confidence: confidence(f.Spec.Pattern, value),
		})
	}

	if len(confidences) == 0 {
		return fields, 0.0
	}
	var sum float64
	for _, c := range confidences {
		sum += c
	}
	return fields, sum / float64(len(confidences))
}

// matchField returns the extracted substring for the leftmost match of
// pattern in text, or ok=false on no match or any compile/processing error.
// Patterns are applied case-insensitively with multi-line anchors, matching
// the template authoring convention.
func matchField(text, pattern string) (string, bool) {
	re, err := regexp.Compile("(?im)" + pattern)
	if err != nil {
		return "", false
	}

	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}

	group := 0
	if idx := re.SubexpIndex("value"); idx >= 0 {
		group = idx
	} else if re.NumSubexp() >= 1 {
		group = 1
	}

	// A chosen group that did not participate in the match carries no value;
	// treated like any other field-level failure.
	if loc[2*group] < 0 {
		return "", false
	}
	return text[loc[2*group]:loc[2*group+1]], true
}

// confidence scores a match: longer (more specific) patterns start at 0.8,
// shorter ones at 0.6, with a single +0.1 bonus when the normalized value has
// a recognizable shape. The result is clamped to 1.0.
func confidence(pattern, value string) float64 {
	score := 0.6
	if utf8.RuneCountInString(pattern) > 30 {
		score = 0.8
	}
	for _, re := range shapeClasses {
		if re.MatchString(value) {
			score += 0.1
			break
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
