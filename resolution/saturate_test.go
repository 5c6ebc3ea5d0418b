package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clause(id int, lits ...*Literal) *Clause {
	return NewClause(id, lits, "init", [2]*Clause{}, "")
}

func lit(pred string, negated bool, args ...*Term) *Literal {
	return NewLiteral(pred, args, negated)
}

func TestProve_S1_PropositionalModusPonens(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false)),
		clause(2, lit("P", true), lit("Q", false)),
		clause(3, lit("Q", true)),
	}

	result := Prove(clauses, DefaultBudget)
	require.Equal(t, Proved, result.Outcome)
	require.NotEmpty(t, result.Trace.Records)
	last := result.Trace.Records[len(result.Trace.Records)-1]
	assert.Equal(t, StepContradiction, last.Kind)
}

func TestProve_S2_FirstOrderUnifier(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false, NewVar("x"))),
		clause(2, lit("P", true, NewConst("a"))),
	}
	result := Prove(clauses, DefaultBudget)
	require.Equal(t, Proved, result.Outcome)
	last := result.Trace.Records[len(result.Trace.Records)-1]
	assert.Equal(t, StepContradiction, last.Kind)
}

func TestProve_S3_OccursCheckBlocksRefutation(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false, NewVar("x"))),
		clause(2, lit("P", true, NewCompound("f", NewVar("x")))),
	}
	result := Prove(clauses, DefaultBudget)
	assert.Equal(t, Saturated, result.Outcome)
}

func TestProve_S4_StructuralMismatch(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false, NewCompound("f", NewConst("a"), NewVar("x")))),
		clause(2, lit("P", true, NewCompound("g", NewConst("b"), NewVar("y")))),
	}
	result := Prove(clauses, DefaultBudget)
	assert.Equal(t, Saturated, result.Outcome)
}

func TestProve_S5_NestedUnification(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false, NewCompound("f", NewVar("x")), NewVar("x"))),
		clause(2, lit("P", true, NewCompound("f", NewCompound("g", NewVar("z"))), NewCompound("g", NewVar("y")))),
	}
	result := Prove(clauses, DefaultBudget)
	require.Equal(t, Proved, result.Outcome)
}

func TestProve_S6_NoProgressFixedPoint(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false, NewConst("a"))),
		clause(2, lit("Q", false, NewConst("b"))),
	}
	result := Prove(clauses, DefaultBudget)
	assert.Equal(t, Saturated, result.Outcome)
	assert.Empty(t, result.Trace.Records)
}

func TestProve_S7_MultipleResolventsAcrossClausePairs(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false)),
		clause(2, lit("P", true), lit("Q", false)),
		clause(3, lit("P", true), lit("R", false)),
	}
	result := Prove(clauses, DefaultBudget)
	// {Q} and {R} are both derived from {P} in the first round.
	derivedPredicates := map[string]bool{}
	for _, r := range result.Trace.Records {
		if r.Kind == StepResolution {
			for _, l := range r.Resolvent.Literals {
				derivedPredicates[l.Predicate] = true
			}
		}
	}
	assert.True(t, derivedPredicates["Q"])
	assert.True(t, derivedPredicates["R"])
}

func TestProve_WorkingSetMonotonicallyGrows(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false)),
		clause(2, lit("P", true), lit("Q", false)),
	}
	result := Prove(clauses, DefaultBudget)
	assert.GreaterOrEqual(t, len(result.FinalSet), len(clauses))
	for _, c := range clauses {
		assert.True(t, containsEqual(result.FinalSet, c))
	}
}

func TestProve_SingletonClauseCannotSelfResolve(t *testing.T) {
	clauses := []*Clause{clause(1, lit("P", false))}
	result := Prove(clauses, DefaultBudget)
	assert.Equal(t, Saturated, result.Outcome)
	assert.Empty(t, result.Trace.Records)
}

func TestProve_EmptyClauseAsInputIsTriviallyRefuted(t *testing.T) {
	clauses := []*Clause{clause(1)} // □ supplied directly
	result := Prove(clauses, DefaultBudget)
	assert.Equal(t, Proved, result.Outcome)
}

func TestProve_BudgetExhaustedOnNonTerminatingGrowth(t *testing.T) {
	// P(x) vs ¬P(f(x)) blocked by occurs-check, but a pair of clauses that
	// keeps producing distinct resolvents (no occurs-check or arity
	// collision) forces budget exhaustion when the budget is tiny and the
	// chain hasn't reached a fixed point yet.
	clauses := []*Clause{
		clause(1, lit("Chain", false, NewConst("a0")), lit("Stop", false)),
		clause(2, lit("Chain", true, NewVar("x")), lit("Chain", false, NewCompound("s", NewVar("x")))),
	}
	result := Prove(clauses, 1)
	assert.Equal(t, BudgetExhausted, result.Outcome)
	assert.Len(t, result.FinalSet, 3) // one resolvent derived before the budget ran out
}

func TestProve_TraceRendersFixedTemplates(t *testing.T) {
	clauses := []*Clause{
		clause(1, lit("P", false)),
		clause(2, lit("P", true), lit("Q", false)),
		clause(3, lit("Q", true)),
	}
	result := Prove(clauses, DefaultBudget)
	require.Equal(t, Proved, result.Outcome)
	for _, r := range result.Trace.Records {
		line := r.Render(false)
		if r.Kind == StepContradiction {
			assert.Contains(t, line, "-> Противоречие.")
		} else {
			assert.Contains(t, line, "Резолюция ->")
		}
	}
}
