package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWellFormed(t *testing.T) {
	desc, err := Decode([]byte(`{"objects":[{"type":"cube"},"garbage",null],"background":"#202040"}`))
	require.NoError(t, err)
	assert.Len(t, desc.Objects, 3)
	assert.Equal(t, "#202040", desc.Background)
}

func TestDecodeMissingBackground(t *testing.T) {
	desc, err := Decode([]byte(`{"objects":[]}`))
	require.NoError(t, err)
	assert.Empty(t, desc.Objects)
	assert.Nil(t, desc.Background)
}

func TestDecodeStructuralFailures(t *testing.T) {
	cases := []string{
		`not json at all`,
		`[1,2,3]`,
		`{"objects":"nope"}`,
		`{"background":"#fff"}`,
		`42`,
	}
	for _, c := range cases {
		_, err := Decode([]byte(c))
		assert.Error(t, err, "input %s", c)
	}
}

func TestExtractJSONBare(t *testing.T) {
	out, err := ExtractJSON(`{"objects":[]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[]}`, out)
}

func TestExtractJSONFenced(t *testing.T) {
	out, err := ExtractJSON("```json\n{\"objects\":[{\"type\":\"cube\"}]}\n```")
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[{"type":"cube"}]}`, out)
}

func TestExtractJSONWithProse(t *testing.T) {
	out, err := ExtractJSON("Here is your scene:\n{\"objects\":[]}\nEnjoy!")
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[]}`, out)
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	out, err := ExtractJSON(`{"objects":[{"name":"weird } name"}]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[{"name":"weird } name"}]}`, out)
}

func TestExtractJSONFailures(t *testing.T) {
	_, err := ExtractJSON("no json here")
	assert.Error(t, err)
	_, err = ExtractJSON(`{"objects":[`)
	assert.Error(t, err)
}
