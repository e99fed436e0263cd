package strfmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Field         string `yaml:"field"`
	PrefixLength  *int   `yaml:"prefix_length"`
	SuffixLength  *int   `yaml:"suffix_length"`
	MaskCharCount *int   `yaml:"mask_char_count"`
}

func (e ruleEntry) rule() MaskRule {
	opts := make([]MaskOption, 0, 3)
	if e.PrefixLength != nil {
		opts = append(opts, WithPrefixLength(*e.PrefixLength))
	}
	if e.SuffixLength != nil {
		opts = append(opts, WithSuffixLength(*e.SuffixLength))
	}
	if e.MaskCharCount != nil {
		opts = append(opts, WithMaskCharCount(*e.MaskCharCount))
	}

	return MaskRule{Field: e.Field, Config: NewMaskConfig(opts...)}
}

// LoadMaskRules reads rules from a YAML document such as
//
//	rules:
//	  - field: password
//	    prefix_length: 0
//	    suffix_length: 0
//	  - field: msisdn
//
// Omitted lengths take the Mask defaults. An empty document yields no rules.
func LoadMaskRules(r io.Reader) ([]MaskRule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f ruleFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode mask rules: %w", err)
	}

	rules := make([]MaskRule, 0, len(f.Rules))
	for _, e := range f.Rules {
		rules = append(rules, e.rule())
	}

	return rules, nil
}
