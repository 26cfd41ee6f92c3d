// Package notes turns loosely structured workflow JSON into the canonical
// record the study-sheet renderer consumes. The upstream AI workflow has
// shipped several nesting conventions over time, so extraction is an ordered
// set of lookups with fallbacks rather than a schema.
package notes

import (
	"encoding/json"
	"fmt"
)

// DefaultTitle is used when no title is found at any searched location.
const DefaultTitle = "No Title"

// itemsRule picks the pre-filter vocabulary source from the working object.
// Rules are tried in order; the first key that is present wins, even if its
// value has an unexpected type.
type itemsRule struct {
	name string
	pick func(obj map[string]any) ([]any, bool)
}

func listKey(key string) itemsRule {
	return itemsRule{
		name: key,
		pick: func(obj map[string]any) ([]any, bool) {
			v, ok := obj[key]
			if !ok {
				return nil, false
			}
			if list, ok := v.([]any); ok {
				return list, true
			}
			// wrong type at the expected key: presence still stops the
			// search, but the vocabulary source degrades to empty
			return []any{}, true
		},
	}
}

// Precedence is fixed: output, then data, then words.
var itemsRules = []itemsRule{
	listKey("output"),
	listKey("data"),
	listKey("words"),
}

// Resolver extracts canonical records from decoded JSON values.
// The zero value uses DefaultTitle.
type Resolver struct {
	DefaultTitle string
}

// Resolve never fails: missing or wrongly typed fields degrade to defaults,
// and the returned record is always fully populated.
func (r Resolver) Resolve(raw any) Record {
	dt := r.DefaultTitle
	if dt == "" {
		dt = DefaultTitle
	}

	obj := workingObject(raw)
	msg := extractMessage(obj)

	return Record{
		Title:     firstNonEmpty(msg.title, stringAt(obj, "title"), dt),
		RawTime:   firstNonEmpty(msg.time, stringAt(obj, "time")),
		Message:   msg.content,
		Words:     mapWords(pickItems(obj)),
		Sentences: msg.sentences,
	}
}

// workingObject narrows the raw value to the object extraction operates on.
// A sequence contributes its first element; anything that is not an object
// (scalar, empty sequence, sequence of scalars) degrades to an empty object,
// which later becomes the single vocabulary source and renders as one blank
// row.
func workingObject(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case []any:
		if len(v) > 0 {
			if obj, ok := v[0].(map[string]any); ok {
				return obj
			}
		}
	}
	return map[string]any{}
}

func pickItems(obj map[string]any) []any {
	for _, rule := range itemsRules {
		if list, ok := rule.pick(obj); ok {
			return list
		}
	}
	// no list-bearing key: the whole object is the single source
	return []any{obj}
}

// messageFields holds everything extractable from the "message" key. Values
// found here take precedence over same-named top-level keys, but only when
// non-empty.
type messageFields struct {
	content   string
	title     string
	time      string
	sentences []Sentence
}

func extractMessage(obj map[string]any) messageFields {
	var m messageFields
	switch v := obj["message"].(type) {
	case map[string]any:
		m.content = stringAt(v, "content")
		m.title = stringAt(v, "title")
		m.time = stringAt(v, "time")
		if s, err := decodeSentences(stringAt(v, "sentence")); err == nil {
			m.sentences = s
		}
	case string:
		m.content = v
	}
	return m
}

// decodeSentences parses the JSON-encoded sentence payload embedded in a
// message object. The caller maps a failure to "no sentence table"; decode
// errors never travel further than this boundary.
func decodeSentences(s string) ([]Sentence, error) {
	if s == "" {
		return nil, nil
	}
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("decode sentence payload: %w", err)
	}
	out := make([]Sentence, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Sentence{
			Word:      stringAt(obj, "word"),
			MeaningBn: stringAt(obj, "meaning_bn"),
			ExampleEn: stringAt(obj, "example_en"),
			ExampleBn: stringAt(obj, "example_bn"),
		})
	}
	return out, nil
}

// mapWords converts the raw item list, silently dropping anything that is not
// an object. Row numbering happens after this filter, so skipped items never
// leave gaps in the rendered table.
func mapWords(items []any) []Word {
	out := make([]Word, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Word{
			English:  stringAt(obj, "english"),
			Bengali:  stringAt(obj, "bengali"),
			Synonyms: stringsAt(obj, "synonyms"),
			Antonyms: stringsAt(obj, "antonyms"),
		})
	}
	return out
}

func stringAt(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringsAt(obj map[string]any, key string) []string {
	list, _ := obj[key].([]any)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
