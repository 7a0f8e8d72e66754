package voicebot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelResponseWrapped(t *testing.T) {
	raw := "Sure, here is the result:\n```json\n" +
		`{"intent":"reservation","confidence":0.9,"action_required":"book_table"}` +
		"\n```\nLet me know if you need anything else."

	res := parseModelResponse(raw)
	require.Equal(t, ParseOK, res.Outcome)
	assert.Equal(t, "reservation", res.Reply.Intent)
	assert.Equal(t, 0.9, res.Reply.Confidence)
}

func TestParseModelResponseNoJSON(t *testing.T) {
	for _, raw := range []string{"", "I cannot help with that.", "}{"} {
		res := parseModelResponse(raw)
		assert.Equal(t, ParseNoJSON, res.Outcome, "raw=%q", raw)
	}
}

func TestParseModelResponseSchemaViolations(t *testing.T) {
	cases := []struct {
		raw   string
		field string
	}{
		{`{"confidence":0.9,"action_required":"book_table"}`, "intent"},
		{`{"intent":"reservation","confidence":0.9}`, "action_required"},
		{`{"intent":"reservation","confidence":1.5,"action_required":"book_table"}`, "confidence"},
	}
	for _, c := range cases {
		res := parseModelResponse(c.raw)
		require.Equal(t, ParseSchemaViolation, res.Outcome, "raw=%s", c.raw)
		assert.Equal(t, c.field, res.Field)
	}
}

func TestGuestsAsInt(t *testing.T) {
	g, ok := guestsAsInt(float64(4))
	require.True(t, ok)
	assert.Equal(t, 4, g)

	_, ok = guestsAsInt("four")
	assert.False(t, ok)

	_, ok = guestsAsInt(2.5)
	assert.False(t, ok)

	_, ok = guestsAsInt(nil)
	assert.False(t, ok)
}
