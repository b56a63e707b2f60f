package rowify

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Record is a single normalized row: an insertion-ordered set of key/value
// pairs. Values are strings, float64 (coerced rank/rating), or nil (a field
// that failed coercion). Ordering is preserved through JSON and YAML
// serialization so that id-first, metadata-last construction is visible in
// the output.
type Record struct {
	keys []string
	vals map[string]any
}

// Get returns the value stored under key and whether the key exists.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Keys returns the record's keys in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields in the record.
func (r Record) Len() int { return len(r.keys) }

// Map returns the record's fields as a plain map. Insertion order is lost;
// intended for consumers like text/template that need map access.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.vals))
	for k, v := range r.vals {
		out[k] = v
	}
	return out
}

// set stores val under key, appending the key if it is new.
func (r *Record) set(key string, val any) {
	if r.vals == nil {
		r.vals = make(map[string]any)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// setLast stores val under key at the end of the key order, displacing any
// earlier position the key held. Used for the metadata merge, where
// overwritten fields move to the tail.
func (r *Record) setLast(key string, val any) {
	if r.vals == nil {
		r.vals = make(map[string]any)
	}
	if _, ok := r.vals[key]; ok {
		for i, k := range r.keys {
			if k == key {
				r.keys = append(r.keys[:i], r.keys[i+1:]...)
				break
			}
		}
	}
	r.keys = append(r.keys, key)
	r.vals[key] = val
}

// MarshalJSON encodes the record as a JSON object with keys in insertion
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping with keys in insertion
// order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: k}
		valNode := &yaml.Node{}
		val := r.vals[k]
		// Whole-number floats encode as ints so the emitter writes "1"
		// rather than a tagged float scalar.
		if n, isNum := val.(float64); isNum && n == math.Trunc(n) && !math.IsInf(n, 0) {
			val = int64(n)
		}
		if err := valNode.Encode(val); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// Columns returns the union of keys across records, in first-seen order.
// Columnar writers (CSV, TSV, Markdown, Table, HTML) use it as the header.
func Columns(records []Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range rec.keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// cellString renders a field value for columnar output. Numbers print without
// a trailing ".0"; nil prints as an empty cell.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// cells renders one record against the given column order.
func cells(rec Record, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		if v, ok := rec.vals[c]; ok {
			out[i] = cellString(v)
		}
	}
	return out
}
