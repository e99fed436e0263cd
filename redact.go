package strfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaskRule masks the value of every JSON key equal (case-insensitively) to Field.
type MaskRule struct {
	Field  string
	Config MaskConfig
}

// Redactor hides configured fields of structured payloads before they are
// logged or displayed. It is safe for concurrent use.
type Redactor struct {
	rules map[string]MaskConfig
}

// NewRedactor validates rules and indexes them by lower-cased field name.
func NewRedactor(rules ...MaskRule) (*Redactor, error) {
	r := &Redactor{rules: make(map[string]MaskConfig, len(rules))}

	for _, rule := range rules {
		if strings.TrimSpace(rule.Field) == "" {
			return nil, fmt.Errorf("mask rule field is empty: %w", ErrInvalidParameter)
		}
		if err := rule.Config.Validate(); err != nil {
			return nil, fmt.Errorf("mask rule %q: %w", rule.Field, err)
		}
		r.rules[strings.ToLower(rule.Field)] = rule.Config
	}

	return r, nil
}

func (r *Redactor) lookup(key string) (MaskConfig, bool) {
	if r == nil {
		return MaskConfig{}, false
	}
	c, ok := r.rules[strings.ToLower(key)]
	return c, ok
}

// RedactJSON returns doc with every configured field masked. Keys are written
// in sorted order.
func (r *Redactor) RedactJSON(doc []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to decode payload: unexpected data after top-level value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.RedactValue(data)); err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// RedactValue walks decoded data and returns a copy with every configured
// field masked. The input is not modified.
func (r *Redactor) RedactValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for key, item := range val {
			if c, ok := r.lookup(key); ok {
				out[key] = maskValue(item, c)
				continue
			}
			out[key] = r.RedactValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = r.RedactValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for key, item := range val {
			if c, ok := r.lookup(key); ok {
				item = c.mask(item)
			}
			out[key] = item
		}
		return out
	case map[string][]string:
		out := make(map[string][]string, len(val))
		for key, items := range val {
			if c, ok := r.lookup(key); ok {
				out[key] = maskStrings(items, c)
				continue
			}
			out[key] = append([]string(nil), items...)
		}
		return out
	default:
		return v
	}
}

// maskValue masks everything below a matched key with the same config.
func maskValue(v interface{}, c MaskConfig) interface{} {
	switch val := v.(type) {
	case string:
		return c.mask(val)
	case json.Number:
		return c.mask(val.String())
	case float64:
		return c.mask(strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		return c.mask(strconv.Itoa(val))
	case int64:
		return c.mask(strconv.FormatInt(val, 10))
	case []string:
		return maskStrings(val, c)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = maskValue(item, c)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for key, item := range val {
			out[key] = maskValue(item, c)
		}
		return out
	default:
		return v
	}
}

func maskStrings(items []string, c MaskConfig) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = c.mask(item)
	}
	return out
}
