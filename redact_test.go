package strfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedactor(t *testing.T) *Redactor {
	t.Helper()

	r, err := NewRedactor(
		MaskRule{Field: "password", Config: MaskConfig{MaskCharCount: 8}},
		MaskRule{Field: "credit_card", Config: MaskConfig{PrefixLength: 4, SuffixLength: 4, MaskCharCount: 4}},
		MaskRule{Field: "msisdn", Config: DefaultMaskConfig()},
	)
	require.NoError(t, err)

	return r
}

func TestNewRedactor(t *testing.T) {
	t.Run("no rules", func(t *testing.T) {
		r, err := NewRedactor()
		require.NoError(t, err)
		assert.Empty(t, r.rules)
	})

	t.Run("empty field", func(t *testing.T) {
		r, err := NewRedactor(MaskRule{Field: " ", Config: DefaultMaskConfig()})
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Nil(t, r)
	})

	t.Run("invalid config", func(t *testing.T) {
		r, err := NewRedactor(MaskRule{Field: "token", Config: MaskConfig{PrefixLength: -1}})
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Contains(t, err.Error(), `"token"`)
		assert.Nil(t, r)
	})

	t.Run("huge lengths", func(t *testing.T) {
		r, err := NewRedactor(MaskRule{Field: "token", Config: MaskConfig{PrefixLength: math.MaxInt, SuffixLength: 1}})
		require.NoError(t, err)

		result, err := r.RedactJSON([]byte(`{"token":"abcdef"}`))
		require.NoError(t, err)
		assert.Equal(t, `{"token":"abcdef"}`, string(result))
	})

	t.Run("case insensitive lookup", func(t *testing.T) {
		r := testRedactor(t)

		_, ok := r.lookup("PASSWORD")
		assert.True(t, ok)

		_, ok = r.lookup("username")
		assert.False(t, ok)
	})
}

func TestRedactJSON(t *testing.T) {
	r := testRedactor(t)

	t.Run("invalid json", func(t *testing.T) {
		result, err := r.RedactJSON([]byte("invalid json"))
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := r.RedactJSON([]byte(`{"a":1} {"b":2}`))
		assert.Error(t, err)
	})

	t.Run("simple json", func(t *testing.T) {
		result, err := r.RedactJSON([]byte(`{"username":"john","password":"secret123"}`))
		require.NoError(t, err)
		assert.Equal(t, `{"password":"********","username":"john"}`, string(result))
	})

	t.Run("nested json", func(t *testing.T) {
		doc := `{"user":{"username":"john","Password":"secret123"},"payment":{"credit_card":"1234567890123456"}}`
		result, err := r.RedactJSON([]byte(doc))
		require.NoError(t, err)
		assert.Contains(t, string(result), `"username":"john"`)
		assert.Contains(t, string(result), `"Password":"********"`)
		assert.Contains(t, string(result), `"credit_card":"1234****3456"`)
	})

	t.Run("numbers and arrays", func(t *testing.T) {
		doc := `{"msisdn":6281234567890,"contacts":[{"msisdn":"081234567890"}],"password":["a1b2c3d4","x"],"age":30}`
		result, err := r.RedactJSON([]byte(doc))
		require.NoError(t, err)
		assert.Contains(t, string(result), `"msisdn":"628****7890"`)
		assert.Contains(t, string(result), `"contacts":[{"msisdn":"081****7890"}]`)
		assert.Contains(t, string(result), `"password":["********","********"]`)
		assert.Contains(t, string(result), `"age":30`)
	})

	t.Run("booleans and null untouched", func(t *testing.T) {
		result, err := r.RedactJSON([]byte(`{"password":null,"msisdn":true}`))
		require.NoError(t, err)
		assert.Equal(t, `{"msisdn":true,"password":null}`, string(result))
	})

	t.Run("html not escaped", func(t *testing.T) {
		result, err := r.RedactJSON([]byte(`{"note":"<a&b>"}`))
		require.NoError(t, err)
		assert.Equal(t, `{"note":"<a&b>"}`, string(result))
	})
}

func TestRedactValue(t *testing.T) {
	r := testRedactor(t)

	t.Run("input not modified", func(t *testing.T) {
		data := map[string]interface{}{
			"password": "secret",
			"nested":   map[string]interface{}{"msisdn": "081234567890"},
		}

		result := r.RedactValue(data).(map[string]interface{})
		assert.Equal(t, "********", result["password"])
		assert.Equal(t, "081****7890", result["nested"].(map[string]interface{})["msisdn"])
		assert.Equal(t, "secret", data["password"])
		assert.Equal(t, "081234567890", data["nested"].(map[string]interface{})["msisdn"])
	})

	t.Run("header like maps", func(t *testing.T) {
		headers := map[string][]string{
			"Password":     {"secret123"},
			"Content-Type": {"application/json"},
		}

		result := r.RedactValue(headers).(map[string][]string)
		assert.Equal(t, []string{"********"}, result["Password"])
		assert.Equal(t, []string{"application/json"}, result["Content-Type"])
		assert.Equal(t, "secret123", headers["Password"][0])
	})

	t.Run("string maps", func(t *testing.T) {
		result := r.RedactValue(map[string]string{"msisdn": "081234567890", "name": "john"}).(map[string]string)
		assert.Equal(t, "081****7890", result["msisdn"])
		assert.Equal(t, "john", result["name"])
	})

	t.Run("plain values pass through", func(t *testing.T) {
		assert.Equal(t, "secret", r.RedactValue("secret"))
		assert.Equal(t, 42, r.RedactValue(42))
	})

	t.Run("nil redactor", func(t *testing.T) {
		var nr *Redactor
		data := map[string]interface{}{"password": "secret"}
		assert.Equal(t, data, nr.RedactValue(data))
	})
}

func TestMaskValue(t *testing.T) {
	c := MaskConfig{PrefixLength: 1, SuffixLength: 1, MaskCharCount: 3}

	assert.Equal(t, "s***t", maskValue("secret", c))
	assert.Equal(t, "1***5", maskValue(12345, c))
	assert.Equal(t, "1***5", maskValue(int64(12345), c))
	assert.Equal(t, "1***5", maskValue(123.45, c))
	assert.Equal(t, []string{"a***c", "ab"}, maskValue([]string{"abbbc", "ab"}, c))
	assert.Equal(t, map[string]interface{}{"k": "v***e"}, maskValue(map[string]interface{}{"k": "value"}, c))
	assert.Equal(t, true, maskValue(true, c))
}
