package strfmt

import (
	"fmt"
	"strings"
)

// Defaults used by Mask when no option overrides them.
const (
	DefaultPrefixLength  = 3
	DefaultSuffixLength  = 4
	DefaultMaskCharCount = 4

	maskChar = "*"
)

// MaskConfig describes how much of a value stays visible when it is masked.
type MaskConfig struct {
	PrefixLength  int
	SuffixLength  int
	MaskCharCount int
}

// MaskOption overrides a single MaskConfig field.
type MaskOption func(*MaskConfig)

// DefaultMaskConfig keeps 3 leading and 4 trailing characters around 4 asterisks.
func DefaultMaskConfig() MaskConfig {
	return MaskConfig{
		PrefixLength:  DefaultPrefixLength,
		SuffixLength:  DefaultSuffixLength,
		MaskCharCount: DefaultMaskCharCount,
	}
}

// WithPrefixLength sets how many leading characters stay visible.
func WithPrefixLength(n int) MaskOption {
	return func(c *MaskConfig) {
		c.PrefixLength = n
	}
}

// WithSuffixLength sets how many trailing characters stay visible.
func WithSuffixLength(n int) MaskOption {
	return func(c *MaskConfig) {
		c.SuffixLength = n
	}
}

// WithMaskCharCount sets how many asterisks replace the hidden part.
func WithMaskCharCount(n int) MaskOption {
	return func(c *MaskConfig) {
		c.MaskCharCount = n
	}
}

// NewMaskConfig returns the default config with opts applied in order.
func NewMaskConfig(opts ...MaskOption) MaskConfig {
	c := DefaultMaskConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports ErrInvalidParameter when any field is negative.
func (c MaskConfig) Validate() error {
	switch {
	case c.PrefixLength < 0:
		return fmt.Errorf("prefix length %d: %w", c.PrefixLength, ErrInvalidParameter)
	case c.SuffixLength < 0:
		return fmt.Errorf("suffix length %d: %w", c.SuffixLength, ErrInvalidParameter)
	case c.MaskCharCount < 0:
		return fmt.Errorf("mask char count %d: %w", c.MaskCharCount, ErrInvalidParameter)
	}
	return nil
}

// Mask keeps the first PrefixLength and last SuffixLength characters of s and
// puts MaskCharCount asterisks between them. Strings too short to hide
// anything are returned unchanged.
func (c MaskConfig) Mask(s string) (string, error) {
	if s == "" {
		return s, nil
	}

	if err := c.Validate(); err != nil {
		return "", err
	}

	return c.mask(s), nil
}

// mask assumes c has been validated.
func (c MaskConfig) mask(s string) string {
	parts := graphemes(s)
	n := len(parts)

	// Compared one at a time so huge lengths cannot overflow.
	if c.PrefixLength >= n || c.SuffixLength >= n-c.PrefixLength {
		return s
	}

	return join(parts[:c.PrefixLength]) +
		strings.Repeat(maskChar, c.MaskCharCount) +
		join(parts[n-c.SuffixLength:])
}

// Mask masks s with the default config adjusted by opts.
//
//	Mask("13812345678")                      // "138****5678"
//	Mask("13812345678", WithMaskCharCount(0)) // "1385678"
func Mask(s string, opts ...MaskOption) (string, error) {
	return NewMaskConfig(opts...).Mask(s)
}

// MaskPtr is Mask for optional values. A nil pointer is returned as nil and
// a value left unchanged comes back as the same pointer.
func MaskPtr(s *string, opts ...MaskOption) (*string, error) {
	if s == nil {
		return nil, nil
	}

	out, err := Mask(*s, opts...)
	if err != nil {
		return nil, err
	}

	if out == *s {
		return s, nil
	}

	return &out, nil
}
