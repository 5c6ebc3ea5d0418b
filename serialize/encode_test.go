package serialize

import (
	"strings"
	"testing"

	"github.com/googgom/go-resolution-engine/resolution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeClauses_RoundTrip(t *testing.T) {
	original := []byte(`[
		{"literals": [{"predicate": "P", "negated": false, "args": ["x"]}]},
		{"literals": [{"predicate": "P", "negated": true, "args": ["a"]}]}
	]`)

	clauses, err := Decode("scenario.json", original)
	require.NoError(t, err)

	encoded, err := EncodeClauses(clauses)
	require.NoError(t, err)

	roundTripped, err := Decode("roundtrip.json", encoded)
	require.NoError(t, err)

	require.Len(t, roundTripped, len(clauses))
	for i := range clauses {
		assert.True(t, clauses[i].Equal(roundTripped[i]), "clause %d: %s != %s", i, clauses[i], roundTripped[i])
	}
}

func TestEncodeClauses_NestedCompound(t *testing.T) {
	original := []byte(`[{"literals": [{"predicate": "Q", "negated": false, "args": [{"name": "f", "args": ["x", "a"]}]}]}]`)
	clauses, err := Decode("scenario.json", original)
	require.NoError(t, err)

	encoded, err := EncodeClauses(clauses)
	require.NoError(t, err)

	roundTripped, err := Decode("roundtrip.json", encoded)
	require.NoError(t, err)
	assert.Equal(t, "Q(f(x, a))", roundTripped[0].String())
}

func TestEncodeClauses_AfterProve(t *testing.T) {
	p := resolution.NewLiteral("P", []*resolution.Term{resolution.NewVar("x")}, false)
	notP := resolution.NewLiteral("P", []*resolution.Term{resolution.NewConst("a")}, true)
	c1 := resolution.NewClause(1, []*resolution.Literal{p}, "init", [2]*resolution.Clause{}, "")
	c2 := resolution.NewClause(2, []*resolution.Literal{notP}, "init", [2]*resolution.Clause{}, "")

	result := resolution.Prove([]*resolution.Clause{c1, c2}, resolution.DefaultBudget)
	require.Equal(t, resolution.Proved, result.Outcome)

	encoded, err := EncodeClauses(result.FinalSet)
	require.NoError(t, err)

	decoded, err := Decode("final.json", encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(result.FinalSet))
	assert.True(t, decoded[len(decoded)-1].IsEmpty())
}

func TestWriteTrace_ContainsHeaderAndVerdict(t *testing.T) {
	p := resolution.NewLiteral("P", []*resolution.Term{resolution.NewVar("x")}, false)
	notP := resolution.NewLiteral("P", []*resolution.Term{resolution.NewConst("a")}, true)
	c1 := resolution.NewClause(1, []*resolution.Literal{p}, "init", [2]*resolution.Clause{}, "")
	c2 := resolution.NewClause(2, []*resolution.Literal{notP}, "init", [2]*resolution.Clause{}, "")

	result := resolution.Prove([]*resolution.Clause{c1, c2}, resolution.DefaultBudget)

	var buf strings.Builder
	err := WriteTrace(&buf, result, false)
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, traceHeader))
	assert.Contains(t, output, "Противоречие найдено: true")
}

func TestWriteTrace_SaturatedYieldsFalse(t *testing.T) {
	p := resolution.NewLiteral("P", []*resolution.Term{resolution.NewConst("a")}, false)
	c1 := resolution.NewClause(1, []*resolution.Literal{p}, "init", [2]*resolution.Clause{}, "")

	result := resolution.Prove([]*resolution.Clause{c1}, resolution.DefaultBudget)

	var buf strings.Builder
	err := WriteTrace(&buf, result, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Противоречие найдено: false")
}
