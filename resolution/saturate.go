package resolution

// (Saturation driver) — level-saturated search to the empty clause or to
// a fixed point, bounded by a step budget. Single-threaded, non-suspending:
// the only cancellation mechanism is the budget itself; there is no
// blocking prompt in this package — that belongs to the driver's caller
// (cmd/prove).

// Outcome is the three-way result prove(...) can settle on.
type Outcome int

const (
	Saturated Outcome = iota
	Proved
	BudgetExhausted
)

func (o Outcome) String() string {
	switch o {
	case Proved:
		return "proved"
	case BudgetExhausted:
		return "budget_exhausted"
	default:
		return "saturated"
	}
}

// DefaultBudget is the default outer-round budget (50 rounds).
const DefaultBudget = 50

// Result is the full return value of Prove: outcome, trace, and the final
// working set (proved and budget_exhausted both return the set as it stood
// at the moment the loop stopped; saturated returns the fixed point).
type Result struct {
	Outcome  Outcome
	Trace    *Trace
	FinalSet []*Clause
}

// Prove drives binary resolution over unification to a fixed point, to the
// empty clause, or to budget exhaustion. initialClauses may
// contain duplicates; they are deduplicated (by clause set-equality) before
// the first round. A step budget <= 0 is treated as DefaultBudget.
func Prove(initialClauses []*Clause, budget int) Result {
	if budget <= 0 {
		budget = DefaultBudget
	}

	working := dedupeClauses(initialClauses)
	trace := &Trace{}

	// Degenerate case: the input already contains □ — trivially refuted,
	// no resolution step is needed.
	for _, c := range working {
		if c.IsEmpty() {
			return Result{Outcome: Proved, Trace: trace, FinalSet: working}
		}
	}

	nextID := maxClauseID(working) + 1
	stepN := 1

	for round := 0; round < budget; round++ {
		pool := working
		var derived []*Clause

		for i := 0; i < len(pool); i++ {
			for j := i + 1; j < len(pool); j++ {
				c1, c2 := pool[i], pool[j]
				result, ok := ResolvePair(c1, c2)
				if !ok {
					continue
				}

				resolvent := NewClause(nextID, result.Literals, "res", [2]*Clause{c1, c2}, ruleText(result.Substitution))
				nextID++

				if resolvent.IsEmpty() {
					trace.append(StepRecord{
						N: stepN, Kind: StepContradiction,
						C1: c1, C2: c2, Resolvent: resolvent,
						Substitution: result.Substitution, UnifySteps: result.UnifySteps,
					})
					final := append(append([]*Clause{}, working...), derived...)
					final = append(final, resolvent)
					return Result{Outcome: Proved, Trace: trace, FinalSet: final}
				}

				if containsEqual(working, resolvent) || containsEqual(derived, resolvent) {
					continue
				}

				trace.append(StepRecord{
					N: stepN, Kind: StepResolution,
					C1: c1, C2: c2, Resolvent: resolvent,
					Substitution: result.Substitution, UnifySteps: result.UnifySteps,
				})
				stepN++
				derived = append(derived, resolvent)
			}
		}

		if len(derived) == 0 {
			return Result{Outcome: Saturated, Trace: trace, FinalSet: working}
		}
		working = append(working, derived...)
	}

	return Result{Outcome: BudgetExhausted, Trace: trace, FinalSet: working}
}

func dedupeClauses(clauses []*Clause) []*Clause {
	out := make([]*Clause, 0, len(clauses))
	for _, c := range clauses {
		if !containsEqual(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func maxClauseID(clauses []*Clause) int {
	max := 0
	for _, c := range clauses {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

func ruleText(theta Substitution) string {
	return "Унификация " + FormatSubstitution(theta)
}
