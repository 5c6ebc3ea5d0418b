package resolution

// (Standardization apart) — optional hook. The core engine omits renaming
// variables apart before resolution and relies on callers supplying clauses
// with disjoint variable names already; this exposes that renaming as an
// opt-in utility rather than baking it into the core. ResolvePair/Prove
// never call this themselves — callers opt in explicitly.

import "fmt"

// StandardizeApart returns a copy of clauses where every variable has been
// renamed to a name that is unique across the whole returned set, using the
// suffix "#<clause index>". Constants and literal/clause shape (ID, Origin,
// Parents, Rule) are left untouched; only the variable names inside
// Literals change.
func StandardizeApart(clauses []*Clause) []*Clause {
	out := make([]*Clause, len(clauses))
	for i, c := range clauses {
		renaming := renamingFor(c, i)
		out[i] = NewClause(c.ID, c.Apply(renaming), c.Origin, c.Parents, c.Rule)
	}
	return out
}

func renamingFor(c *Clause, index int) Substitution {
	renaming := EmptySubstitution()
	for _, lit := range c.Literals {
		for _, arg := range lit.Args {
			collectVarRenames(arg, index, renaming)
		}
	}
	return renaming
}

func collectVarRenames(t *Term, index int, renaming Substitution) {
	switch t.Classify() {
	case KindVariable:
		if _, exists := renaming[t.Name]; !exists {
			renaming[t.Name] = NewVar(fmt.Sprintf("%s#%d", t.Name, index))
		}
	case KindCompound:
		for _, a := range t.Args {
			collectVarRenames(a, index, renaming)
		}
	}
}
