package questionnaires

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]string{
		{"A", "B"},
		{"Yes", "No", "Maybe"},
		{"single"},
		{"with \"quotes\"", "with, comma", "açúcar"},
		{"", "empty allowed"},
		{"Disagree", "Partially disagree", "Neutral", "Agree", "Fully agree"},
	}

	for _, opts := range cases {
		encoded := EncodeOptions(opts)
		assert.Equal(t, opts, DecodeOptions(encoded), "round-trip of %v", opts)
	}
}

func TestEncodeEmptyOptions(t *testing.T) {
	assert.Equal(t, "[]", EncodeOptions(nil))
	assert.Equal(t, "[]", EncodeOptions([]string{}))
	assert.Equal(t, []string{}, DecodeOptions(EncodeOptions(nil)))
}

func TestDecodeMalformedIsTotal(t *testing.T) {
	malformed := []string{
		"",
		"not json",
		"{",
		"[1,2,3]",
		`{"a":"b"}`,
		`["unterminated`,
		"null",
		"42",
	}

	for _, raw := range malformed {
		assert.NotPanics(t, func() {
			assert.Equal(t, []string{}, DecodeOptions(raw), "input %q", raw)
		})
	}
}
