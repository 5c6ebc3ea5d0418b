package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfixClause_SingleLiteral(t *testing.T) {
	c, err := ParseInfixClause("P(x, a)")
	require.NoError(t, err)
	assert.Equal(t, "P(x, a)", c.String())
}

func TestParseInfixClause_Disjunction(t *testing.T) {
	c, err := ParseInfixClause("¬Q(x) ∨ P(a)")
	require.NoError(t, err)
	assert.Equal(t, "P(a) ∨ ¬Q(x)", c.String())
}

func TestParseInfixClause_NestedCompound(t *testing.T) {
	c, err := ParseInfixClause("Q(f(x, a))")
	require.NoError(t, err)
	assert.Equal(t, "Q(f(x, a))", c.String())
}

func TestParseInfixClause_NullaryPredicate(t *testing.T) {
	c, err := ParseInfixClause("P")
	require.NoError(t, err)
	assert.Equal(t, "P()", c.String())
}

func TestParseInfixClause_VariableVsConstant(t *testing.T) {
	c, err := ParseInfixClause("P(x, Alice)")
	require.NoError(t, err)
	lit := c.Literals[0]
	assert.True(t, lit.Args[0].IsVariable())
	assert.False(t, lit.Args[1].IsVariable())
}

func TestParseInfixClause_UnbalancedParens(t *testing.T) {
	_, err := ParseInfixClause("P(x, a")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseInfixClause_EmptyLiteral(t *testing.T) {
	_, err := ParseInfixClause("P(x) ∨ ")
	require.Error(t, err)
}
