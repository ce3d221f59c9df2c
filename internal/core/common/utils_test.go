package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name       string  `json:"chandas_name"`
	Confidence float64 `json:"confidence"`
}

func TestParseJSON_PlainObject(t *testing.T) {
	out, err := ParseJSON[sample](`{"chandas_name": "Anushtubh", "confidence": 0.85}`)
	require.NoError(t, err)
	assert.Equal(t, "Anushtubh", out.Name)
	assert.Equal(t, 0.85, out.Confidence)
}

func TestParseJSON_FencedObject(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"chandas_name\": \"Trishtubh\", \"confidence\": 0.9}\n```\nHope that helps."
	out, err := ParseJSON[sample](raw)
	require.NoError(t, err)
	assert.Equal(t, "Trishtubh", out.Name)
}

func TestParseJSON_NoObject(t *testing.T) {
	_, err := ParseJSON[sample]("no braces here")
	assert.Error(t, err)

	_, err = ParseJSON[sample]("open only {")
	assert.Error(t, err)
}

func TestParseJSON_MalformedObject(t *testing.T) {
	_, err := ParseJSON[sample](`{"chandas_name": }`)
	assert.Error(t, err)
}
