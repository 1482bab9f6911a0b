package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Direct(t *testing.T) {
	obj, err := JSON(`  {"uxScore": 91, "note": "ok"}  `)
	require.NoError(t, err)
	assert.Equal(t, float64(91), obj["uxScore"])
	assert.Equal(t, "ok", obj["note"])
}

func TestJSON_FencedBlock(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n{\"uxScore\": 42}\n```\nLet me know if you need more."
	obj, err := JSON(raw)
	require.NoError(t, err)
	assert.Equal(t, float64(42), obj["uxScore"])
}

func TestJSON_FencedBlockNoTag(t *testing.T) {
	raw := "```\n{\"clarity\": 65}\n```"
	obj, err := JSON(raw)
	require.NoError(t, err)
	assert.Equal(t, float64(65), obj["clarity"])
}

func TestJSON_EmbeddedInProse(t *testing.T) {
	raw := `Voici le résultat: {"uxScore": 77, "label": "a {nested} brace in a string"} et c'est tout.`
	obj, err := JSON(raw)
	require.NoError(t, err)
	assert.Equal(t, float64(77), obj["uxScore"])
	assert.Equal(t, "a {nested} brace in a string", obj["label"])
}

func TestJSON_NestedObjects(t *testing.T) {
	raw := `prefix {"a": {"b": {"c": 1}}} suffix`
	obj, err := JSON(raw)
	require.NoError(t, err)
	inner := obj["a"].(map[string]any)["b"].(map[string]any)
	assert.Equal(t, float64(1), inner["c"])
}

func TestJSON_TruncatedRepair(t *testing.T) {
	// Response cut off before the closing brace.
	obj, err := JSON(`The object is {"uxScore": 58`)
	require.NoError(t, err)
	assert.Equal(t, float64(58), obj["uxScore"])
}

func TestJSON_NoPayload(t *testing.T) {
	long := strings.Repeat("no structured data here ", 20)
	_, err := JSON(long)
	require.Error(t, err)

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.LessOrEqual(t, len(ee.Snippet), 100)
	assert.Contains(t, err.Error(), "no valid JSON")
}

func TestJSON_UnbalancedGarbage(t *testing.T) {
	_, err := JSON(`{"a": [1, 2`)
	// Repair only appends a single brace; this stays invalid.
	require.Error(t, err)
}

func TestInto_Typed(t *testing.T) {
	var out struct {
		JourneySteps []struct {
			Stage string `json:"stage"`
		} `json:"journeySteps"`
	}
	raw := "```json\n{\"journeySteps\": [{\"stage\": \"Découverte\"}]}\n```"
	require.NoError(t, Into(raw, &out))
	require.Len(t, out.JourneySteps, 1)
	assert.Equal(t, "Découverte", out.JourneySteps[0].Stage)
}

func TestBalancedSpan_IgnoresStringBraces(t *testing.T) {
	span := balancedSpan(`x {"k": "}{"} y`)
	assert.Equal(t, `{"k": "}{"}`, span)
}

func TestBalancedSpan_NoClose(t *testing.T) {
	assert.Empty(t, balancedSpan(`{"k": 1`))
	assert.Empty(t, balancedSpan(`no braces`))
}
